package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
)

func TestClassifyPunches(t *testing.T) {
	day := date(2025, time.June, 2)

	tests := []struct {
		name       string
		times      []time.Time
		wantCount  int
		wantLunch  time.Duration
		wantWorked time.Duration
		wantExit   bool
	}{
		{
			name:      "empty",
			times:     nil,
			wantCount: 0,
		},
		{
			name:      "single punch has no exit and no worked time",
			times:     []time.Time{at(day, 8, 0)},
			wantCount: 1,
		},
		{
			name:       "two punches span the day without lunch",
			times:      []time.Time{at(day, 8, 0), at(day, 18, 0)},
			wantCount:  2,
			wantWorked: 10 * time.Hour,
			wantExit:   true,
		},
		{
			name:       "three punches never split a lunch",
			times:      []time.Time{at(day, 8, 0), at(day, 12, 0), at(day, 18, 0)},
			wantCount:  3,
			wantWorked: 10 * time.Hour,
			wantExit:   true,
		},
		{
			name:       "four punches take the middle pair as lunch",
			times:      []time.Time{at(day, 8, 0), at(day, 12, 30), at(day, 13, 15), at(day, 18, 0)},
			wantCount:  4,
			wantLunch:  45 * time.Minute,
			wantWorked: 9*time.Hour + 15*time.Minute,
			wantExit:   true,
		},
		{
			name: "five punches fall back to no lunch",
			times: []time.Time{
				at(day, 8, 0), at(day, 10, 0), at(day, 10, 15), at(day, 12, 0), at(day, 18, 0),
			},
			wantCount:  5,
			wantWorked: 10 * time.Hour,
			wantExit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifyPunches(tt.times)

			assert.Equal(t, tt.wantCount, c.Count)
			assert.Equal(t, tt.wantLunch, c.Lunch)
			assert.Equal(t, tt.wantWorked, c.NetWorked)
			if tt.wantCount > 0 {
				require.NotNil(t, c.Entrance)
				assert.Equal(t, tt.times[0], *c.Entrance)
			} else {
				assert.Nil(t, c.Entrance)
			}
			if tt.wantExit {
				require.NotNil(t, c.Exit)
				assert.Equal(t, tt.times[len(tt.times)-1], *c.Exit)
			} else {
				assert.Nil(t, c.Exit)
			}
		})
	}
}

func TestPunchIndex_ForDaySorts(t *testing.T) {
	day := date(2025, time.June, 2)
	idx := buildPunchIndex([]report.Punch{
		{Passport: "p1", Time: at(day, 18, 0)},
		{Passport: "p1", Time: at(day, 8, 0)},
		{Passport: "p1", Time: at(day, 13, 0)},
		{Passport: "p1", Time: at(day, 12, 0)},
		{Passport: "p2", Time: at(day, 9, 0)},
	})

	times := idx.forDay("p1", day)
	require.Len(t, times, 4)
	assert.Equal(t, at(day, 8, 0), times[0])
	assert.Equal(t, at(day, 18, 0), times[3])

	assert.Nil(t, idx.forDay("p1", date(2025, time.June, 3)))
	assert.Nil(t, idx.forDay("unknown", day))
}
