package report

import (
	"fmt"
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

// exceptionIndex answers the two per-day questions of the evaluator: is the
// employee on justified leave, and does a usable permission window exist.
// Built once per run; immutable afterwards.
type exceptionIndex struct {
	leaveDays map[string]map[string]struct{}
	perms     map[string]map[string]permission.Permission

	// Days where more than one permission window was recorded. The engine
	// refuses to pick one: the day keeps its unadjusted schedule and the
	// collision is surfaced as an anomaly.
	rejected map[string]map[string]struct{}
}

// buildExceptionIndex expands leave windows into per-day membership (clamped
// to the reporting period) and indexes permissions by employee-day. Records
// the engine cannot interpret are reported as anomalies and skipped; they
// never abort the run.
func buildExceptionIndex(
	justifications []justification.Justification,
	permissions []permission.Permission,
	periodStart, periodEnd time.Time,
) (*exceptionIndex, []report.Anomaly) {
	idx := &exceptionIndex{
		leaveDays: make(map[string]map[string]struct{}),
		perms:     make(map[string]map[string]permission.Permission),
		rejected:  make(map[string]map[string]struct{}),
	}
	var anomalies []report.Anomaly

	for _, j := range justifications {
		if j.Voided {
			continue
		}
		if j.DateEnd.Before(j.DateStart) {
			anomalies = append(anomalies, report.Anomaly{
				Passport: j.Passport,
				Date:     j.DateStart,
				Kind:     report.AnomalyInvertedLeave,
				Detail:   fmt.Sprintf("leave window ends %s before it starts %s", timeutil.DateKey(j.DateEnd), timeutil.DateKey(j.DateStart)),
			})
			continue
		}

		days, ok := idx.leaveDays[j.Passport]
		if !ok {
			days = make(map[string]struct{})
			idx.leaveDays[j.Passport] = days
		}
		start, end := j.DateStart, j.DateEnd
		if start.Before(periodStart) {
			start = periodStart
		}
		if end.After(periodEnd) {
			end = periodEnd
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days[timeutil.DateKey(d)] = struct{}{}
		}
	}

	for _, p := range permissions {
		if p.To.Before(p.From) {
			anomalies = append(anomalies, report.Anomaly{
				Passport: p.Passport,
				Date:     p.Date,
				Kind:     report.AnomalyInvertedPermission,
				Detail:   fmt.Sprintf("permission runs %s to %s", timeutil.FormatClock(p.From), timeutil.FormatClock(p.To)),
			})
			continue
		}

		key := timeutil.DateKey(p.Date)
		byDay, ok := idx.perms[p.Passport]
		if !ok {
			byDay = make(map[string]permission.Permission)
			idx.perms[p.Passport] = byDay
		}
		if _, exists := byDay[key]; exists {
			rejectedDays, ok := idx.rejected[p.Passport]
			if !ok {
				rejectedDays = make(map[string]struct{})
				idx.rejected[p.Passport] = rejectedDays
			}
			if _, already := rejectedDays[key]; !already {
				rejectedDays[key] = struct{}{}
				anomalies = append(anomalies, report.Anomaly{
					Passport: p.Passport,
					Date:     p.Date,
					Kind:     report.AnomalyDuplicatePermission,
					Detail:   "multiple permission windows on one day; none applied",
				})
			}
			continue
		}
		byDay[key] = p
	}

	return idx, anomalies
}

// onLeave reports whether the day falls inside any active leave window.
func (x *exceptionIndex) onLeave(passport string, day time.Time) bool {
	days, ok := x.leaveDays[passport]
	if !ok {
		return false
	}
	_, covered := days[timeutil.DateKey(day)]
	return covered
}

// permissionFor returns the day's single permission window, if one usable
// window exists. Days with colliding windows return nothing.
func (x *exceptionIndex) permissionFor(passport string, day time.Time) (permission.Permission, bool) {
	key := timeutil.DateKey(day)
	if rejectedDays, ok := x.rejected[passport]; ok {
		if _, bad := rejectedDays[key]; bad {
			return permission.Permission{}, false
		}
	}
	byDay, ok := x.perms[passport]
	if !ok {
		return permission.Permission{}, false
	}
	p, ok := byDay[key]
	return p, ok
}
