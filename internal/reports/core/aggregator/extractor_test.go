package aggregator

import (
	"testing"

	"institute-insights-service/internal/reports/core/domain"
)

func TestRegistrationRules_Extract(t *testing.T) {
	rules := NewRegistrationRules(map[string]string{"student_registered": "Student"}, []string{" Teacher ", ""})

	cases := []struct {
		name string
		ev   domain.Event
		want Candidate
		ok   bool
	}{
		{
			name: "explicit type is case insensitive",
			ev:   domain.Event{Type: "Student_Registered", Actor: &domain.Actor{ID: "s1", Role: "student"}},
			want: Candidate{Role: "student", ActorID: "s1", Explicit: true},
			ok:   true,
		},
		{
			name: "inferred role",
			ev:   domain.Event{Type: "LESSON_PUBLISHED", Actor: &domain.Actor{ID: " t1 ", Role: "TEACHER"}},
			want: Candidate{Role: "teacher", ActorID: "t1"},
			ok:   true,
		},
		{
			name: "unknown role",
			ev:   domain.Event{Type: "LESSON_VIEWED", Actor: &domain.Actor{ID: "x", Role: "guest"}},
		},
		{
			name: "no actor",
			ev:   domain.Event{Type: "STUDENT_REGISTERED"},
		},
	}

	for _, tc := range cases {
		got, ok := rules.Extract(tc.ev)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: got (%+v, %v), want (%+v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
