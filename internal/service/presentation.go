package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/grading"
	"github.com/akhmetov-d/presentio/internal/service/ports"
	"github.com/akhmetov-d/presentio/internal/slotgen"
)

// ManageGuard is the owner-or-admin capability predicate.
type ManageGuard interface {
	CanManage(p *domain.Presentation, identity domain.Identity) bool
}

type PresentationService struct {
	repo  ports.PresentationRepo
	slots ports.SlotRepo
	guard ManageGuard
	log   logger.Logger
}

func NewPresentationService(
	repo ports.PresentationRepo,
	slots ports.SlotRepo,
	guard ManageGuard,
	log logger.Logger,
) *PresentationService {
	return &PresentationService{
		repo:  repo,
		slots: slots,
		guard: guard,
		log:   log,
	}
}

func (s *PresentationService) Create(ctx context.Context, identity domain.Identity, input domain.CreatePresentationInput) (*domain.Presentation, error) {
	if identity.Role != domain.RoleFaculty && identity.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if input.RegistrationPeriod.End.Before(input.RegistrationPeriod.Start) {
		return nil, fmt.Errorf("%w: registration period end before start", domain.ErrValidation)
	}
	switch input.ParticipationType {
	case domain.ParticipationIndividual, domain.ParticipationTeam:
	case "":
		input.ParticipationType = domain.ParticipationIndividual
	default:
		return nil, fmt.Errorf("%w: unknown participation type %q", domain.ErrValidation, input.ParticipationType)
	}

	minSize, maxSize := grading.ValidateTeamSizes(input.ParticipationType, input.TeamSizeMin, input.TeamSizeMax)

	criteria := domain.DefaultGradingCriteria
	if input.CustomGradingCriteria && len(input.GradingCriteria) > 0 {
		if err := validateCriteria(input.GradingCriteria); err != nil {
			return nil, err
		}
		criteria = grading.NormalizeCriteria(input.GradingCriteria)
	}

	// Slots are materialized exactly once, here.
	slots, err := slotgen.Generate(input.SlotConfig, input.PresentationPeriod)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Presentation{
		ID:                    uuid.New().String(),
		Title:                 input.Title,
		Description:           input.Description,
		FacultyID:             identity.ID,
		FacultyName:           identity.Name,
		Venue:                 input.Venue,
		RegistrationPeriod:    input.RegistrationPeriod,
		PresentationPeriod:    input.PresentationPeriod,
		ParticipationType:     input.ParticipationType,
		TeamSizeMin:           minSize,
		TeamSizeMax:           maxSize,
		SlotConfig:            input.SlotConfig,
		TargetAudience:        input.TargetAudience,
		GradingCriteria:       criteria,
		CustomGradingCriteria: input.CustomGradingCriteria,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	for i := range slots {
		slots[i].PresentationID = p.ID
	}

	if err := s.repo.Create(ctx, p, slots); err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	s.log.Info("presentation created",
		logger.String("presentation_id", p.ID),
		logger.String("faculty_id", identity.ID),
		logger.Int("slots", len(slots)),
	)

	return p, nil
}

func (s *PresentationService) Update(ctx context.Context, identity domain.Identity, id string, input domain.UpdatePresentationInput) (*domain.Presentation, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	if !s.guard.CanManage(p, identity) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Venue != nil {
		p.Venue = *input.Venue
	}
	if input.RegistrationPeriod != nil {
		p.RegistrationPeriod = *input.RegistrationPeriod
	}
	if input.TargetAudience != nil {
		p.TargetAudience = *input.TargetAudience
	}
	if len(input.GradingCriteria) > 0 {
		if err := validateCriteria(input.GradingCriteria); err != nil {
			return nil, err
		}
		p.GradingCriteria = grading.NormalizeCriteria(input.GradingCriteria)
		p.CustomGradingCriteria = true
	}

	// Recurrence edits regenerate the unissued schedule. Once any slot has
	// been booked the schedule is committed and these fields are frozen.
	regenerate := false
	if input.SlotConfig != nil {
		p.SlotConfig = *input.SlotConfig
		regenerate = true
	}
	if input.PresentationPeriod != nil {
		p.PresentationPeriod = *input.PresentationPeriod
		regenerate = true
	}

	// The new schedule is materialized before anything is persisted, so an
	// invalid config never reaches the stored row.
	var newSlots []domain.Slot
	if regenerate {
		committed, err := s.slots.HasCommittedSlots(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("check committed slots: %w", err)
		}
		if committed {
			return nil, domain.ErrSlotsCommitted
		}

		if newSlots, err = slotgen.Generate(p.SlotConfig, p.PresentationPeriod); err != nil {
			return nil, err
		}
		for i := range newSlots {
			newSlots[i].PresentationID = p.ID
		}
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update presentation: %w", err)
	}

	if regenerate {
		if err := s.repo.ReplaceSlots(ctx, p.ID, newSlots); err != nil {
			return nil, fmt.Errorf("replace slots: %w", err)
		}
		s.log.Info("slots regenerated",
			logger.String("presentation_id", p.ID),
			logger.Int("slots", len(newSlots)),
		)
	}

	return p, nil
}

func validateCriteria(criteria []domain.GradingCriterion) error {
	for _, c := range criteria {
		if c.Name == "" {
			return fmt.Errorf("%w: grading criterion name is required", domain.ErrValidation)
		}
		if c.Weight < 0 {
			return fmt.Errorf("%w: grading criterion weight must not be negative", domain.ErrValidation)
		}
	}
	return nil
}

func (s *PresentationService) Delete(ctx context.Context, identity domain.Identity, id string, force bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get presentation: %w", err)
	}
	if !s.guard.CanManage(p, identity) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id, force); err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}

	s.log.Info("presentation deleted",
		logger.String("presentation_id", id),
		logger.String("deleted_by", identity.ID),
	)

	return nil
}

func (s *PresentationService) ListFaculty(ctx context.Context, identity domain.Identity) ([]*domain.PresentationStats, error) {
	return s.repo.ListByFaculty(ctx, identity.ID)
}

// ListSlots returns every slot of a presentation for the grading view.
// Owner or admin only.
func (s *PresentationService) ListSlots(ctx context.Context, identity domain.Identity, id string) ([]*domain.Slot, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	if !s.guard.CanManage(p, identity) {
		return nil, domain.ErrForbidden
	}

	return s.slots.ListByPresentation(ctx, id)
}
