package report

import (
	"sort"
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

// punchIndex holds each employee's punch instants per calendar day. The
// source does not guarantee intra-day ordering; lookups sort.
type punchIndex map[string]map[string][]time.Time

func buildPunchIndex(punches []report.Punch) punchIndex {
	idx := make(punchIndex)
	for _, p := range punches {
		byDay, ok := idx[p.Passport]
		if !ok {
			byDay = make(map[string][]time.Time)
			idx[p.Passport] = byDay
		}
		key := timeutil.DateKey(p.Time)
		byDay[key] = append(byDay[key], p.Time)
	}
	return idx
}

// forDay returns the employee's punches of the day, ascending.
func (idx punchIndex) forDay(passport string, day time.Time) []time.Time {
	byDay, ok := idx[passport]
	if !ok {
		return nil
	}
	times := byDay[timeutil.DateKey(day)]
	if len(times) == 0 {
		return nil
	}
	sorted := make([]time.Time, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted
}

// classification is the interpretation of one employee-day's punch sequence.
type classification struct {
	Count    int
	Entrance *time.Time
	LunchOut *time.Time
	LunchIn  *time.Time
	Exit     *time.Time

	Lunch     time.Duration
	NetWorked time.Duration
}

// classifyPunches interprets a sorted punch sequence. Entrance is the first
// punch, exit the last (absent on a single punch). The lunch interval is
// recognized only on exactly four punches: out is the second, back is the
// third. Any other count (2, 3, 5+) yields no lunch split. Net worked time
// is exit minus entrance minus lunch, clamped at zero, and only computed
// when at least two punches exist.
func classifyPunches(times []time.Time) classification {
	c := classification{Count: len(times)}
	if len(times) == 0 {
		return c
	}

	first := times[0]
	c.Entrance = &first
	if len(times) >= 2 {
		last := times[len(times)-1]
		c.Exit = &last
	}
	if len(times) == 4 {
		out, in := times[1], times[2]
		c.LunchOut = &out
		c.LunchIn = &in
		c.Lunch = timeutil.DurationBetween(out, in)
	}
	if c.Exit != nil {
		worked := timeutil.DurationBetween(*c.Entrance, *c.Exit) - c.Lunch
		if worked < 0 {
			worked = 0
		}
		c.NetWorked = worked
	}
	return c
}
