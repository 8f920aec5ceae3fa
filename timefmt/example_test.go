package timefmt_test

import (
	"fmt"

	"github.com/bytom/timefmt/timefmt"
)

func ExampleStrftimeUTC() {
	s, err := timefmt.StrftimeUTC("%Y-%m-%d %H:%M:%S", 1673793045)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 2023-01-15 14:30:45
}

func ExampleStrftimeMsUTC() {
	s, err := timefmt.StrftimeMsUTC("%H:%M:%S.{ms}", timefmt.NewTimeStampMs(1673793045, 42))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 14:30:45.042
}

func ExampleFormatCommonUTC() {
	for _, d := range []timefmt.DateFormat{timefmt.RFC3339, timefmt.HTTP, timefmt.LongDate} {
		s, err := timefmt.FormatCommonUTC(1673793045, d)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s\n", d, s)
	}
	// Output:
	// RFC3339: 2023-01-15T14:30:45+00:00
	// HTTP: Sun, 15 Jan 2023 14:30:45 GMT
	// LongDate: Sunday, January 15, 2023
}

func ExampleComponentsUTC() {
	c, err := timefmt.ComponentsUTC(1673793045)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Year, c.Month, c.MonthDay, c.WeekDay, c.YearDay)
	// Output: 2023 1 15 0 14
}

func ExampleValidate() {
	fmt.Println(timefmt.Validate("%Y-%m-%d"))
	fmt.Println(timefmt.Validate("%Y-%q") != nil)
	// Output:
	// <nil>
	// true
}
