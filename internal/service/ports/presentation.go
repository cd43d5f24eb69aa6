package ports

import (
	"context"

	"github.com/akhmetov-d/presentio/internal/domain"
)

type PresentationRepo interface {
	Create(ctx context.Context, p *domain.Presentation, slots []domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Presentation, error)
	Update(ctx context.Context, p *domain.Presentation) error
	ReplaceSlots(ctx context.Context, presentationID string, slots []domain.Slot) error
	ListByFaculty(ctx context.Context, facultyID string) ([]*domain.PresentationStats, error)
	ListAvailable(ctx context.Context, f domain.AudienceFilter) ([]*domain.PresentationWithSlots, error)
	Delete(ctx context.Context, id string, force bool) error
}
