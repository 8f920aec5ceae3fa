package timefmt

import "github.com/bytom/timefmt/calendar"

// Components are the calendar fields of a timestamp.
type Components struct {
	// Second (0-60).
	Sec int `json:"sec" yaml:"sec"`
	// Minute (0-59).
	Min int `json:"min" yaml:"min"`
	// Hour (0-23).
	Hour int `json:"hour" yaml:"hour"`
	// Day of month (1-31).
	MonthDay int `json:"month_day" yaml:"month_day"`
	// Month - January is 1, December is 12.
	Month int `json:"month" yaml:"month"`
	// Year, e.g. 2025.
	Year int `json:"year" yaml:"year"`
	// Day of week, Sunday is 0.
	WeekDay int `json:"week_day" yaml:"week_day"`
	// Day of year, January 1st is 0.
	YearDay int `json:"year_day" yaml:"year_day"`
}

func componentsOf(b calendar.Breakdown) Components {
	return Components{
		Sec:      b.Sec,
		Min:      b.Min,
		Hour:     b.Hour,
		MonthDay: b.MDay,
		Month:    b.Mon + 1,
		Year:     b.Year + 1900,
		WeekDay:  b.WDay,
		YearDay:  b.YDay,
	}
}

// Breakdown converts c back into calendar fields, without zone information.
func (c Components) Breakdown() calendar.Breakdown {
	return calendar.Breakdown{
		Sec:  c.Sec,
		Min:  c.Min,
		Hour: c.Hour,
		MDay: c.MonthDay,
		Mon:  c.Month - 1,
		Year: c.Year - 1900,
		WDay: c.WeekDay,
		YDay: c.YearDay,
	}
}
