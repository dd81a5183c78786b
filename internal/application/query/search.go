package query

import "remindtrack/internal/domain/repository"

// BuildSearchPredicate turns an optional free-text term into the predicate
// shared by every matcher. An empty term matches everything.
func BuildSearchPredicate(term string) repository.TextPredicate {
	return repository.NewTextPredicate(term)
}
