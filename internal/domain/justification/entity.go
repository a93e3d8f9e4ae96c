package justification

import "time"

// Justification is an approved leave-of-absence window. A day falls under it
// when date_start <= day <= date_end and the record is not voided. Overlaps
// between active windows of one employee are a data-entry conflict the UI
// prevents; the engine does not deduplicate them.
type Justification struct {
	ID        string
	Passport  string
	Category  string
	DateStart time.Time
	DateEnd   time.Time
	Reason    *string
	Voided    bool
	CreatedAt time.Time

	FirstName      string
	LastName       string
	DepartmentName string
}
