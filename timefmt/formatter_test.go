package timefmt

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/engine"
	"github.com/bytom/timefmt/errors"
)

// 2023-01-15T14:30:45Z, a Sunday
const sunday int64 = 1673793045

var est = time.FixedZone("EST", -5*60*60)

// spyEngine records the buffer sizes it is handed.
type spyEngine struct {
	engine.Renderer
	mu    sync.Mutex
	sizes []int
}

func (s *spyEngine) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	s.mu.Lock()
	s.sizes = append(s.sizes, len(buf))
	s.mu.Unlock()
	return s.Renderer.Render(buf, pattern, b)
}

type fixedEngine struct {
	out []byte
}

func (fixedEngine) Name() string { return "fixed" }

func (e fixedEngine) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	if len(e.out) >= len(buf) {
		return 0
	}
	return copy(buf, e.out)
}

func TestISO8601(t *testing.T) {
	f := New(WithLocation(est))

	s, err := f.FormatISO8601UTC(sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T14:30:45Z", s)

	s, err = f.FormatISO8601MsUTC(TimeStampMs{Seconds: sunday, Milliseconds: 678})
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T14:30:45.678Z", s)
	assert.True(t, strings.HasSuffix(s, ".678Z"))

	s, err = f.FormatISO8601Local(sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T09:30:45-05:00", s)

	s, err = f.FormatISO8601MsLocal(NewTimeStampMs(sunday, 7))
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T09:30:45.007-05:00", s)

	ist := New(WithLocation(time.FixedZone("IST", 5*60*60+30*60)))
	s, err = ist.FormatISO8601Local(sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T20:00:45+05:30", s)
}

func TestPackageLevelISO8601(t *testing.T) {
	s, err := FormatISO8601UTC(sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15T14:30:45Z", s)

	s, err = FormatISO8601MsUTC(NewTimeStampMs(sunday, 678))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(s, ".678Z"), s)

	s, err = StrftimeUTC("%B %d, %Y at %H:%M:%S", sunday)
	require.NoError(t, err)
	assert.Equal(t, "January 15, 2023 at 14:30:45", s)
}

func TestStrftimeLocal(t *testing.T) {
	f := New(WithLocation(est))

	s, err := f.StrftimeLocal("%Y-%m-%d %H:%M:%S %Z", sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15 09:30:45 EST", s)

	s, err = f.StrftimeMsLocal("%H:%M:%S.{ms}", NewTimeStampMs(sunday, 1042))
	require.NoError(t, err)
	assert.Equal(t, "09:30:45.042", s)
}

func TestMillisPlaceholder(t *testing.T) {
	f := New()

	s, err := f.StrftimeUTC("%S.{ms}", sunday)
	require.NoError(t, err)
	assert.Equal(t, "45.{ms}", s, "seconds only functions leave {ms} alone")

	s, err = f.StrftimeMsUTC("{ms}|%S|{ms}", NewTimeStampMs(sunday, 5))
	require.NoError(t, err)
	assert.Equal(t, "005|45|005", s)

	s, err = f.StrftimeMsUTC("%S", NewTimeStampMs(sunday, 5))
	require.NoError(t, err)
	assert.Equal(t, "45", s)
}

func TestBufferGrowth(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
		sizes   []int
	}{
		{"%%", "%", []int{2}},
		{"%Y", "2023", []int{2, 20}},
		{"%Y-%m-%dT%H:%M:%SZ", "2023-01-15T14:30:45Z", []int{18, 180}},
		{"%A", "Sunday", []int{2, 20}},
		{"x", "x", []int{1, 10}},
	}

	for _, c := range cases {
		spy := &spyEngine{Renderer: engine.NewLestrrat(0)}
		f := New(WithEngine(spy))
		s, err := f.StrftimeUTC(c.pattern, sunday)
		require.NoError(t, err, c.pattern)
		assert.Equal(t, c.want, s, c.pattern)
		assert.Equal(t, c.sizes, spy.sizes, c.pattern)
	}
}

func TestBufferRetryHeuristic(t *testing.T) {
	spy := &spyEngine{Renderer: engine.NewLestrrat(0)}
	f := New(WithEngine(spy))

	// "%c" expands to 24 bytes, more than ten times the pattern
	_, err := f.StrftimeUTC("%c", sunday)
	assert.Equal(t, ErrInvalidFormatString, errors.Root(err))
	assert.Equal(t, []int{2, 20}, spy.sizes)

	s, err := f.StrftimeUTC("%c|", sunday)
	require.NoError(t, err)
	assert.Equal(t, "Sun Jan 15 14:30:45 2023|", s)
}

func TestRenderStopsAfterRetry(t *testing.T) {
	spy := &spyEngine{Renderer: fixedEngine{}}
	f := New(WithEngine(spy))

	_, err := f.StrftimeUTC("%Y", sunday)
	assert.Equal(t, ErrInvalidFormatString, errors.Root(err))
	assert.Equal(t, []int{2, 20}, spy.sizes)
}

func TestRenderRejectedByEngine(t *testing.T) {
	f, err := NewWithEngine("tebeka")
	require.NoError(t, err)
	assert.Equal(t, "tebeka", f.Engine())

	_, err = f.StrftimeUTC("%Y%z", sunday)
	assert.Equal(t, ErrInvalidFormatString, errors.Root(err))
	assert.Contains(t, errors.Detail(err), "tebeka")

	s, err := f.StrftimeUTC("%Y-%m-%d", sunday)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15", s)
}

func TestRenderInvalidUTF8(t *testing.T) {
	f := New(WithEngine(fixedEngine{out: []byte{'a', 0xff, 0xfe}}))
	_, err := f.StrftimeUTC("%Y-%m-%d", sunday)
	assert.Equal(t, ErrUTF8, errors.Root(err))
}

func TestNeverTruncates(t *testing.T) {
	patterns := []struct {
		pattern string
		layout  string
	}{
		{"%Y", "2006"},
		{"%Y-%m-%d", "2006-01-02"},
		{"%a, %d %b %Y %H:%M:%S %z", "Mon, 02 Jan 2006 15:04:05 -0700"},
		{"%A, %B %d, %Y", "Monday, January 02, 2006"},
		{"%I:%M:%S %p", "03:04:05 PM"},
		{"{ms} %F %T", "{ms} 2006-01-02 15:04:05"},
		{"%n%t%%", "\n\t%"},
	}

	stamps := []int64{0, 1704067200, 1704069000, 1704110400}
	for ts := int64(-5000000000); ts < 5000000000; ts += 123456789 {
		stamps = append(stamps, ts)
	}

	for _, ts := range stamps {
		for _, p := range patterns {
			want := time.Unix(ts, 0).UTC().Format(p.layout)
			got, err := StrftimeUTC(p.pattern, ts)
			require.NoError(t, err, "%q at %d", p.pattern, ts)
			assert.Equal(t, want, got, "%q at %d", p.pattern, ts)
		}

		got, err := StrftimeUTC("%s", ts)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(ts), got)
	}
}

func TestAllEngines(t *testing.T) {
	for _, name := range engine.Names() {
		f, err := NewWithEngine(name, WithLocation(est))
		require.NoError(t, err)

		s, err := f.FormatISO8601UTC(sunday)
		require.NoError(t, err, name)
		assert.Equal(t, "2023-01-15T14:30:45Z", s, name)

		s, err = f.FormatCommonLocal(sunday, HTTP)
		require.NoError(t, err, name)
		assert.Equal(t, "Sun, 15 Jan 2023 14:30:45 GMT", s, name)

		s, err = f.FormatCommonUTC(1704067200, US)
		require.NoError(t, err, name)
		assert.Equal(t, "01/01/2024 12:00:00 AM", s, name)
	}

	_, err := NewWithEngine("strftime3")
	assert.Equal(t, ErrFormat, errors.Root(err))
}

func TestComponents(t *testing.T) {
	f := New(WithLocation(est))

	c, err := f.ComponentsUTC(sunday)
	require.NoError(t, err)
	assert.Equal(t, Components{Sec: 45, Min: 30, Hour: 14, MonthDay: 15, Month: 1, Year: 2023, WeekDay: 0, YearDay: 14}, c)

	c, err = f.ComponentsLocal(sunday)
	require.NoError(t, err)
	assert.Equal(t, Components{Sec: 45, Min: 30, Hour: 9, MonthDay: 15, Month: 1, Year: 2023, WeekDay: 0, YearDay: 14}, c)

	c, err = f.ComponentsUTC(-1)
	require.NoError(t, err)
	assert.Equal(t, 1969, c.Year)
	assert.Equal(t, 12, c.Month)

	_, err = f.ComponentsUTC(calendar.MaxTimestamp + 1)
	assert.Equal(t, ErrTime, errors.Root(err))

	_, err = f.StrftimeLocal("%Y", calendar.MinTimestamp-1)
	assert.Equal(t, ErrTime, errors.Root(err))
}

func TestComponentsRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		loc = est
	}
	f := New(WithLocation(loc))
	conv := calendar.NewConverter(loc)

	for ts := int64(-3000000000); ts < 6000000000; ts += 86400*97 + 3599 {
		c, err := f.ComponentsUTC(ts)
		require.NoError(t, err)
		assert.Equal(t, ts, calendar.Timegm(c.Breakdown()), "utc %d", ts)

		lc, err := f.ComponentsLocal(ts)
		require.NoError(t, err)
		if got := conv.Mktime(lc.Breakdown()); got != ts {
			// repeated wall clock hour when DST ends
			diff := got - ts
			if diff < 0 {
				diff = -diff
			}
			assert.Equal(t, int64(3600), diff, "local %d", ts)
		}
	}
}

func TestNow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(sunday, 678*int64(time.Millisecond)))
	f := New(WithClock(clock))

	ts, err := f.Now()
	require.NoError(t, err)
	assert.Equal(t, sunday, ts)

	ms, err := f.NowMs()
	require.NoError(t, err)
	assert.Equal(t, TimeStampMs{Seconds: sunday, Milliseconds: 678}, ms)

	clock.Advance(1500 * time.Millisecond)
	ms, err = f.NowMs()
	require.NoError(t, err)
	assert.Equal(t, TimeStampMs{Seconds: sunday + 2, Milliseconds: 178}, ms)

	now, err := Now()
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), now, 5)
}

func TestRetryIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	f := New(WithLogger(logger))

	_, err := f.StrftimeUTC("%Y", sunday)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, "%Y", entry.Data["pattern"])
	assert.Equal(t, 20, entry.Data["size"])
	assert.Equal(t, 4, entry.Data["written"])

	hook.Reset()
	_, err = f.StrftimeUTC("%Q", sunday)
	require.Error(t, err)
	assert.Nil(t, hook.LastEntry(), "failures are returned, not logged")
}

func TestConcurrentFormatting(t *testing.T) {
	f := New(WithLocation(est))
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ts := sunday + int64(i*100000+j*7919)
				want := time.Unix(ts, 0).In(est).Format("2006-01-02T15:04:05-07:00")
				got, err := f.FormatISO8601Local(ts)
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- fmt.Errorf("ts %d: got %s want %s", ts, got, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
