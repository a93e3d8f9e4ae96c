package report

import (
	"context"
	"time"
)

// PunchRepository reads the external clock-transaction table. Localization to
// the operating timezone happens inside the query; the engine receives
// already-local timestamps.
type PunchRepository interface {
	// ListByEmployees returns punches of the given employee ids with
	// punch_time within [from, to] (to inclusive by day), localized.
	ListByEmployees(ctx context.Context, employeeIDs []int, from, to time.Time) ([]Punch, error)
}
