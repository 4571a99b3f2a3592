package reconcile

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// RuleSet is the full collection of a user's rules together with the
// actions that distribute a matched transaction's amount.
//
// The actions belong to the set, not to individual rules: any enabled
// rule that fires causes the whole action pool to be applied. This is
// deliberately a simple "any rule matches" model for small user-authored
// configurations, not a priority or conflict-resolution engine.
//
// A RuleSet is a snapshot: callers build one from the stored rules at
// the start of a matching run, and concurrent edits do not affect an
// evaluation that is already in flight.
type RuleSet struct {
	Rules   []Rule
	Actions []Action
}

// Evaluate runs every enabled rule against the transaction and returns
// the deduplicated action pool together with the rules that fired.
//
// Rules are evaluated in (priority, position) order. The order does not
// change the outcome since firing is an OR across rules, but it keeps
// logs and tests reproducible.
func (s RuleSet) Evaluate(t Transaction) (actions []Action, fired []Rule) {
	for _, rule := range s.ordered() {
		if !rule.Matches(t) {
			continue
		}

		log.Debug().
			Str("transaction", t.ID.String()).
			Str("rule", rule.ID.String()).
			Str("name", rule.Name).
			Msg("rule fired")

		fired = append(fired, rule)
	}

	if len(fired) == 0 {
		return nil, nil
	}

	return dedupeActions(s.Actions), fired
}

// ordered returns the rules sorted by priority, with the position in
// the set as tie-breaker.
func (s RuleSet) ordered() []Rule {
	rules := make([]Rule, len(s.Rules))
	copy(rules, s.Rules)

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})

	return rules
}

// dedupeActions drops actions that appear more than once by ID,
// keeping the first occurrence.
func dedupeActions(actions []Action) []Action {
	seen := make(map[string]bool, len(actions))
	deduped := make([]Action, 0, len(actions))

	for _, action := range actions {
		if seen[action.ID.String()] {
			continue
		}

		seen[action.ID.String()] = true
		deduped = append(deduped, action)
	}

	return deduped
}
