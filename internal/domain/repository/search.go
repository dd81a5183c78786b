package repository

import (
	"strings"

	"remindtrack/internal/domain/entity"
)

// TextPredicate is a case-insensitive substring test ORed across a
// reminder's description, recurrence type name and recurrence day.
// The zero value matches everything.
type TextPredicate struct {
	term string
}

// NewTextPredicate builds a predicate for term. Surrounding whitespace is
// ignored; an empty term matches everything.
func NewTextPredicate(term string) TextPredicate {
	return TextPredicate{term: strings.ToLower(strings.TrimSpace(term))}
}

// MatchesAll reports whether the predicate applies no constraint.
func (p TextPredicate) MatchesAll() bool {
	return p.term == ""
}

// Term returns the lower-cased search term.
func (p TextPredicate) Term() string {
	return p.term
}

// LikePattern returns the term as a SQL LIKE pattern, escaping the LIKE
// metacharacters with a backslash.
func (p TextPredicate) LikePattern() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(p.term) + "%"
}

// Matches evaluates the predicate in process.
func (p TextPredicate) Matches(r *entity.Reminder) bool {
	if p.MatchesAll() {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), p.term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.RecurrenceType.String()), p.term) {
		return true
	}
	return r.CustomRecurrenceDay != nil && strings.Contains(strings.ToLower(r.CustomRecurrenceDay.String()), p.term)
}
