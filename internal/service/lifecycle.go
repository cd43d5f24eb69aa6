package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/grading"
	"github.com/akhmetov-d/presentio/internal/service/ports"
)

type LifecycleService struct {
	repo  ports.PresentationRepo
	slots ports.SlotRepo
	guard ManageGuard
	log   logger.Logger
}

func NewLifecycleService(
	repo ports.PresentationRepo,
	slots ports.SlotRepo,
	guard ManageGuard,
	log logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		repo:  repo,
		slots: slots,
		guard: guard,
		log:   log,
	}
}

// Start moves a booked slot to in-progress. Starting an unbooked slot is
// rejected with ErrSlotNotBooked.
func (s *LifecycleService) Start(ctx context.Context, identity domain.Identity, presentationID, slotID string) (*domain.Slot, error) {
	p, err := s.repo.GetByID(ctx, presentationID)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	if !s.guard.CanManage(p, identity) {
		return nil, domain.ErrForbidden
	}

	slot, err := s.slots.Start(ctx, presentationID, slotID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("start slot: %w", err)
	}

	s.log.Info("slot started",
		logger.String("presentation_id", presentationID),
		logger.String("slot_id", slotID),
		logger.String("started_by", identity.ID),
	)

	return slot, nil
}

// Complete grades a slot and moves it to completed. The total score is
// derived from the presentation's criteria; any client-supplied total is
// ignored.
func (s *LifecycleService) Complete(ctx context.Context, identity domain.Identity, presentationID, slotID string, in domain.CompleteInput) (*domain.Slot, error) {
	p, err := s.repo.GetByID(ctx, presentationID)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	if !s.guard.CanManage(p, identity) {
		return nil, domain.ErrForbidden
	}

	if len(in.Grades) == 0 {
		return nil, fmt.Errorf("%w: grades are required", domain.ErrValidation)
	}
	total, err := grading.WeightedTotal(in.Grades, p.GradingCriteria)
	if err != nil {
		return nil, err
	}
	for member, memberGrades := range in.IndividualGrades {
		if _, err := grading.WeightedTotal(memberGrades, p.GradingCriteria); err != nil {
			return nil, fmt.Errorf("member %s: %w", member, err)
		}
	}

	res := &domain.GradingResult{
		Grades:           in.Grades,
		IndividualGrades: in.IndividualGrades,
		Feedback:         in.Feedback,
		TotalScore:       total,
		CompletedAt:      time.Now().UTC(),
	}

	slot, err := s.slots.Complete(ctx, presentationID, slotID, res)
	if err != nil {
		return nil, fmt.Errorf("complete slot: %w", err)
	}

	s.log.Info("slot completed",
		logger.String("presentation_id", presentationID),
		logger.String("slot_id", slotID),
		logger.String("graded_by", identity.ID),
	)

	return slot, nil
}
