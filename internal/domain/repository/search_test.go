package repository

import (
	"testing"

	"remindtrack/internal/domain/constant"
	"remindtrack/internal/domain/entity"
)

func TestTextPredicateMatches(t *testing.T) {
	t.Parallel()

	monday := constant.Monday
	medication := &entity.Reminder{Description: "Take Medication", RecurrenceType: constant.RecurrenceDaily}
	weekly := &entity.Reminder{Description: "Team sync", RecurrenceType: constant.RecurrenceDayOfWeek, CustomRecurrenceDay: &monday}

	cases := []struct {
		term     string
		reminder *entity.Reminder
		want     bool
	}{
		{"medic", medication, true},
		{"MEDIC", medication, true},
		{"  medic  ", medication, true},
		{"daily", medication, true},
		{"yoga", medication, false},
		{"day_of_the_week", weekly, true},
		{"monday", weekly, true},
		{"mon", weekly, true},
		{"tuesday", weekly, false},
		{"", weekly, true},
	}

	for _, tc := range cases {
		if got := NewTextPredicate(tc.term).Matches(tc.reminder); got != tc.want {
			t.Fatalf("NewTextPredicate(%q).Matches(%q) = %v, want %v", tc.term, tc.reminder.Description, got, tc.want)
		}
	}
}

func TestTextPredicateZeroValueMatchesAll(t *testing.T) {
	t.Parallel()

	var p TextPredicate
	if !p.MatchesAll() {
		t.Fatalf("zero TextPredicate does not match all")
	}
	if !NewTextPredicate("   ").MatchesAll() {
		t.Fatalf("blank term does not match all")
	}
}

func TestTextPredicateLikePatternEscapesWildcards(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"medic":    `%medic%`,
		"100%":     `%100\%%`,
		"a_b":      `%a\_b%`,
		`back\sl`:  `%back\\sl%`,
		"Mixed_Up": `%mixed\_up%`,
	}
	for term, want := range cases {
		if got := NewTextPredicate(term).LikePattern(); got != want {
			t.Fatalf("LikePattern(%q) = %q, want %q", term, got, want)
		}
	}
}
