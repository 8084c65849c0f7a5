package intent

import "strings"

// Intent is the outcome of matching a message against the ordered rules.
type Intent int

const (
	IntentNone Intent = iota
	IntentRating
	IntentEscalation
)

// Rule is a single keyword predicate: the message matches when it contains
// the keyword as a case-insensitive substring. No tokenization on purpose,
// "humanos" matches "humano".
type Rule struct {
	Intent   Intent
	Keywords []string
}

// Detector evaluates rules in order; the first matching rule wins.
type Detector struct {
	rules []Rule
}

func NewDetector(rules ...Rule) *Detector {
	return &Detector{rules: rules}
}

func (d *Detector) Detect(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range d.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Intent
			}
		}
	}
	return IntentNone
}
