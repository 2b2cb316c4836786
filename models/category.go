package models

import "strings"

// Category is the operator ownership of a bus.
type Category string

const (
	Government Category = "Government"
	Private    Category = "Private"
)

// GovernmentKeywords mark an operator name as a state-run transport service.
// Matching is a heuristic: misclassification is accepted, extend the list instead.
var GovernmentKeywords = []string{
	"KSRTC", "TSRTC", "APSRTC", "MSRTC", "GSRTC", "TNSTC",
	"State", "Government", "Corporation",
}

// IsGovernment reports whether name contains any government keyword, ignoring case.
func IsGovernment(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range GovernmentKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// CategoryOf maps an operator name to its Category.
func CategoryOf(name string) Category {
	if IsGovernment(name) {
		return Government
	}
	return Private
}
