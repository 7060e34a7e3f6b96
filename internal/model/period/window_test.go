package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var current = time.Date(2024, 5, 15, 13, 30, 0, 0, time.UTC)

func Test_OnWeekWindow_ShouldStartOnMonday(t *testing.T) {
	from, to := Window{Mode: Week}.Bounds(current)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, current, to)
}

func Test_OnWeekWindowOnSunday_ShouldGoBackSixDays(t *testing.T) {
	sunday := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)
	from, _ := Window{Mode: Week}.Bounds(sunday)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), from)
}

func Test_OnMonthWindow_ShouldStartOnFirst(t *testing.T) {
	from, to := Window{Mode: Month}.Bounds(current)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, current, to)
}

func Test_OnAllWindow_ShouldStartAtEpoch(t *testing.T) {
	from, _ := Window{Mode: All}.Bounds(current)
	assert.Equal(t, int64(0), from.Unix())
	assert.True(t, Window{Mode: All}.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), current))
}

func Test_OnCustomWindow_ShouldIncludeWholeBoundaryDays(t *testing.T) {
	w, err := NewCustom(
		time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 20, 1, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), current))
	assert.True(t, w.Contains(time.Date(2024, 4, 20, 23, 59, 59, 0, time.UTC), current))
	assert.False(t, w.Contains(time.Date(2024, 4, 9, 23, 59, 59, 0, time.UTC), current))
	assert.False(t, w.Contains(time.Date(2024, 4, 21, 0, 0, 0, 0, time.UTC), current))
}

func Test_OnCustomWindowReversed_ShouldFail(t *testing.T) {
	_, err := NewCustom(
		time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func Test_OnOpenWindow_ShouldExcludeFuture(t *testing.T) {
	assert.False(t, Window{Mode: Month}.Contains(current.Add(time.Minute), current))
	assert.True(t, Window{Mode: Month}.Contains(current, current))
}

func Test_OnParse_ShouldAcceptAllFormats(t *testing.T) {
	tests := []struct {
		in   string
		mode Mode
	}{
		{"", Month},
		{"week", Week},
		{" MONTH ", Month},
		{"all", All},
		{"2024-01-01..2024-01-31", Custom},
		{"01.01.2024-31.01.2024", Custom},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := Parse(tt.in, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, w.Mode)
		})
	}
}

func Test_OnParseGarbage_ShouldFail(t *testing.T) {
	for _, in := range []string{"year", "2024-01-01..", "31.13.2024-01.01.2025"} {
		_, err := Parse(in, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidWindow, in)
	}
}

func Test_OnFromDates_ShouldBuildCustomWindow(t *testing.T) {
	w, err := FromDates("custom", "2024-02-01", "2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01..2024-02-29", w.String())

	w, err = FromDates("week", "", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Week, w.Mode)
}

func Test_OnMonthBounds_ShouldCoverPreviousMonths(t *testing.T) {
	from, to := MonthBounds(current, 1)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 30, to.Day())
	assert.Equal(t, time.April, to.Month())

	from, to = MonthBounds(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, time.February, from.Month())
	assert.Equal(t, 29, to.Day())
}
