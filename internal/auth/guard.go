package auth

import "github.com/akhmetov-d/presentio/internal/domain"

// Guard is the owner-or-admin capability check gating lifecycle and
// management operations. It is injected wherever the check is needed instead
// of re-implementing the boolean at each call site.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) CanManage(p *domain.Presentation, identity domain.Identity) bool {
	if identity.Role == domain.RoleAdmin {
		return true
	}
	return p.FacultyID == identity.ID
}
