package ports

import (
	"context"
	"time"

	"github.com/akhmetov-d/presentio/internal/domain"
)

// SlotRepo mutates embedded slots. Book, Start and Complete are atomic
// conditional updates keyed on the expected current status: under contention
// exactly one caller wins and the others get a conflict error.
type SlotRepo interface {
	GetByID(ctx context.Context, presentationID, slotID string) (*domain.Slot, error)
	ListByPresentation(ctx context.Context, presentationID string) ([]*domain.Slot, error)

	Book(ctx context.Context, presentationID, slotID string, rec *domain.BookingRecord) (*domain.Slot, error)
	Start(ctx context.Context, presentationID, slotID string, at time.Time) (*domain.Slot, error)
	Complete(ctx context.Context, presentationID, slotID string, res *domain.GradingResult) (*domain.Slot, error)

	HasBooking(ctx context.Context, presentationID, identityID, email string) (bool, error)
	BookedRosterEmails(ctx context.Context, presentationID string, emails []string) ([]string, error)
	CommittedEmails(ctx context.Context, emails []string) ([]string, error)
	HasCommittedSlots(ctx context.Context, presentationID string) (bool, error)
	ListByMember(ctx context.Context, identityID, email string) ([]*domain.MyBooking, error)
}
