package lead

import "time"

// Filter holds optional criteria for selecting leads.
// Nil fields mean "no filter" for that dimension.
type Filter struct {
	AgentID  *string
	BoardID  *string
	DateFrom *time.Time
	DateTo   *time.Time
}
