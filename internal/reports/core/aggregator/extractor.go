package aggregator

import (
	"strings"

	"institute-insights-service/internal/reports/core/domain"
)

// Candidate is a possible first registration of an actor in a role.
type Candidate struct {
	Role     string
	ActorID  string
	Explicit bool
}

// RoleExtractor decides whether an event is a registration candidate.
// Returning false means the event does not count; it is not an error.
type RoleExtractor interface {
	Extract(e domain.Event) (Candidate, bool)
}

type RoleExtractorFunc func(e domain.Event) (Candidate, bool)

func (f RoleExtractorFunc) Extract(e domain.Event) (Candidate, bool) {
	return f(e)
}

// RegistrationRules is the two-tier registration policy:
//   - event types listed in explicit map straight to a role;
//   - for inferred roles, any event whose actor holds that role counts,
//     and the aggregator keeps it only when no explicit registration exists.
type RegistrationRules struct {
	explicit map[string]string
	inferred map[string]bool
}

func NewRegistrationRules(explicitTypes map[string]string, inferredRoles []string) *RegistrationRules {
	r := &RegistrationRules{
		explicit: make(map[string]string, len(explicitTypes)),
		inferred: make(map[string]bool, len(inferredRoles)),
	}
	for typ, role := range explicitTypes {
		r.explicit[normalizeType(typ)] = normalizeRole(role)
	}
	for _, role := range inferredRoles {
		if role = normalizeRole(role); role != "" {
			r.inferred[role] = true
		}
	}
	return r
}

// DefaultRules registers students and teachers explicitly and infers teachers
// from their first activity, since teacher accounts are often created without
// a TEACHER_REGISTERED event.
func DefaultRules() *RegistrationRules {
	return NewRegistrationRules(RegistrationEventTypes(), []string{domain.RoleTeacher})
}

// RegistrationEventTypes returns the event types that register an account,
// keyed by type with the registered role as value.
func RegistrationEventTypes() map[string]string {
	return map[string]string{
		"STUDENT_REGISTERED": domain.RoleStudent,
		"TEACHER_REGISTERED": domain.RoleTeacher,
	}
}

func (r *RegistrationRules) Extract(e domain.Event) (Candidate, bool) {
	if e.Actor == nil {
		return Candidate{}, false
	}
	id := strings.TrimSpace(e.Actor.ID)
	if id == "" {
		return Candidate{}, false
	}

	if role, ok := r.explicit[normalizeType(e.Type)]; ok {
		return Candidate{Role: role, ActorID: id, Explicit: true}, true
	}

	// only actor-position appearances count towards inference
	role := normalizeRole(e.Actor.Role)
	if r.inferred[role] {
		return Candidate{Role: role, ActorID: id}, true
	}

	return Candidate{}, false
}

func normalizeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

func normalizeRole(r string) string {
	return strings.ToLower(strings.TrimSpace(r))
}
