package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
)

func TestBuildExceptionIndex_LeaveExpansionClampsToPeriod(t *testing.T) {
	periodStart := date(2025, time.June, 1)
	periodEnd := date(2025, time.June, 30)

	idx, anomalies := buildExceptionIndex([]justification.Justification{{
		ID: "j-1", Passport: "p1", Category: "vacation",
		DateStart: date(2025, time.May, 20), DateEnd: date(2025, time.June, 3),
	}}, nil, periodStart, periodEnd)

	assert.Empty(t, anomalies)
	assert.True(t, idx.onLeave("p1", date(2025, time.June, 1)))
	assert.True(t, idx.onLeave("p1", date(2025, time.June, 3)))
	assert.False(t, idx.onLeave("p1", date(2025, time.June, 4)))
	assert.False(t, idx.onLeave("p2", date(2025, time.June, 1)))
}

func TestBuildExceptionIndex_InvertedLeaveIsSkipped(t *testing.T) {
	idx, anomalies := buildExceptionIndex([]justification.Justification{{
		ID: "j-1", Passport: "p1", Category: "medical",
		DateStart: date(2025, time.June, 10), DateEnd: date(2025, time.June, 8),
	}}, nil, date(2025, time.June, 1), date(2025, time.June, 30))

	require.Len(t, anomalies, 1)
	assert.Equal(t, report.AnomalyInvertedLeave, anomalies[0].Kind)
	assert.False(t, idx.onLeave("p1", date(2025, time.June, 9)))
}

func TestBuildExceptionIndex_InvertedPermissionIsSkipped(t *testing.T) {
	day := date(2025, time.June, 2)
	from, _ := time.Parse("15:04", "14:00")
	to, _ := time.Parse("15:04", "10:00")

	idx, anomalies := buildExceptionIndex(nil, []permission.Permission{{
		ID: "p-1", Passport: "p1", Date: day, From: from, To: to,
	}}, date(2025, time.June, 1), date(2025, time.June, 30))

	require.Len(t, anomalies, 1)
	assert.Equal(t, report.AnomalyInvertedPermission, anomalies[0].Kind)
	_, ok := idx.permissionFor("p1", day)
	assert.False(t, ok)
}

func TestBuildExceptionIndex_DuplicatePermissionRejectsTheDay(t *testing.T) {
	day := date(2025, time.June, 2)
	from, _ := time.Parse("15:04", "08:00")
	to, _ := time.Parse("15:04", "10:00")

	idx, anomalies := buildExceptionIndex(nil, []permission.Permission{
		{ID: "p-1", Passport: "p1", Date: day, From: from, To: to},
		{ID: "p-2", Passport: "p1", Date: day, From: from, To: to},
		{ID: "p-3", Passport: "p1", Date: day, From: from, To: to},
	}, date(2025, time.June, 1), date(2025, time.June, 30))

	// One anomaly for the day, no matter how many collisions.
	require.Len(t, anomalies, 1)
	assert.Equal(t, report.AnomalyDuplicatePermission, anomalies[0].Kind)

	_, ok := idx.permissionFor("p1", day)
	assert.False(t, ok)

	// A clean day of the same employee is unaffected.
	other := date(2025, time.June, 3)
	idx2, _ := buildExceptionIndex(nil, []permission.Permission{
		{ID: "p-4", Passport: "p1", Date: other, From: from, To: to},
	}, date(2025, time.June, 1), date(2025, time.June, 30))
	_, ok = idx2.permissionFor("p1", other)
	assert.True(t, ok)
}
