package board

import "strings"

// Outcome classifies a final column as a won or lost exit.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// IsValid returns true if the outcome is one of the defined constants.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeNone, OutcomeWon, OutcomeLost:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return string(o)
}

// Name fragments recognized for final columns that carry no explicit outcome.
// Boards migrated from older deployments name their exits in Portuguese.
var (
	wonMarkers  = []string{"fechado", "convertido", "ganho", "vendido", "closed", "won"}
	lostMarkers = []string{"perdido", "cancelado", "lost", "cancelled", "canceled"}
)

// ClassifyName infers an outcome from a column name by case-insensitive
// containment. Lost markers are checked first so that "closed lost" is lost.
func ClassifyName(name string) Outcome {
	lower := strings.ToLower(name)
	for _, m := range lostMarkers {
		if strings.Contains(lower, m) {
			return OutcomeLost
		}
	}
	for _, m := range wonMarkers {
		if strings.Contains(lower, m) {
			return OutcomeWon
		}
	}
	return OutcomeNone
}
