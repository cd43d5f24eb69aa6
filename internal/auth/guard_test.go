package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akhmetov-d/presentio/internal/domain"
)

func TestGuard_CanManage(t *testing.T) {
	g := NewGuard()
	p := &domain.Presentation{ID: "p1", FacultyID: "f1"}

	cases := []struct {
		name     string
		identity domain.Identity
		want     bool
	}{
		{"owning faculty", domain.Identity{ID: "f1", Role: domain.RoleFaculty}, true},
		{"admin", domain.Identity{ID: "someone", Role: domain.RoleAdmin}, true},
		{"other faculty", domain.Identity{ID: "f2", Role: domain.RoleFaculty}, false},
		{"student with owner id", domain.Identity{ID: "f1", Role: domain.RoleStudent}, true},
		{"student", domain.Identity{ID: "s1", Role: domain.RoleStudent}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.CanManage(p, tc.identity))
		})
	}
}
