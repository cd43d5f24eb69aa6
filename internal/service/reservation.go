package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/logger"

	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/service/ports"
)

type ReservationService struct {
	repo     ports.PresentationRepo
	slots    ports.SlotRepo
	validate *validator.Validate
	log      logger.Logger
}

func NewReservationService(
	repo ports.PresentationRepo,
	slots ports.SlotRepo,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		slots:    slots,
		validate: validator.New(),
		log:      log,
	}
}

// ListAvailable returns non-expired presentations with their unbooked slots,
// restricted by audience filters when supplied.
func (s *ReservationService) ListAvailable(ctx context.Context, f domain.AudienceFilter) ([]*domain.PresentationWithSlots, error) {
	return s.repo.ListAvailable(ctx, f)
}

// Book assigns a slot to the caller. The final status flip is an atomic
// conditional update in the repository, so of two concurrent callers exactly
// one wins and the other observes ErrSlotTaken.
func (s *ReservationService) Book(ctx context.Context, identity domain.Identity, presentationID string, in domain.BookingInput) (*domain.Slot, error) {
	if in.SlotID == "" {
		return nil, fmt.Errorf("%w: slot id is required", domain.ErrValidation)
	}

	p, err := s.repo.GetByID(ctx, presentationID)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	slot, err := s.slots.GetByID(ctx, presentationID, in.SlotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.Status != domain.SlotStatusAvailable {
		return nil, domain.ErrSlotTaken
	}

	if !p.RegistrationPeriod.Contains(time.Now()) {
		return nil, domain.ErrRegistrationClosed
	}

	booked, err := s.slots.HasBooking(ctx, presentationID, identity.ID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
	if booked {
		return nil, domain.ErrAlreadyBooked
	}

	roster, err := s.buildRoster(identity, in.TeamMembers)
	if err != nil {
		return nil, err
	}
	if len(roster) < p.TeamSizeMin || len(roster) > p.TeamSizeMax {
		return nil, fmt.Errorf("%w: team size must be between %d and %d",
			domain.ErrValidation, p.TeamSizeMin, p.TeamSizeMax)
	}

	if p.ParticipationType == domain.ParticipationTeam {
		emails := make([]string, len(roster))
		for i, m := range roster {
			emails[i] = m.Email
		}
		taken, err := s.slots.BookedRosterEmails(ctx, presentationID, emails)
		if err != nil {
			return nil, fmt.Errorf("check roster conflicts: %w", err)
		}
		if len(taken) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrMemberAlreadyBooked, strings.Join(taken, ", "))
		}
	}

	rec := &domain.BookingRecord{
		Booker:         domain.Booker{ID: identity.ID, Email: identity.Email, Name: identity.Name},
		BookedAt:       time.Now().UTC(),
		Topic:          in.Topic,
		TeamName:       in.TeamName,
		Description:    in.Description,
		TeamMembers:    roster,
		FileAttachment: in.FileAttachment,
	}

	updated, err := s.slots.Book(ctx, presentationID, in.SlotID, rec)
	if err != nil {
		return nil, fmt.Errorf("book slot: %w", err)
	}

	s.log.Info("slot booked",
		logger.String("presentation_id", presentationID),
		logger.String("slot_id", in.SlotID),
		logger.String("booked_by", identity.ID),
		logger.Int("team_size", len(roster)),
	)

	return updated, nil
}

// buildRoster validates the proposed members and guarantees the booking
// identity is on the roster even when the caller omitted themselves.
func (s *ReservationService) buildRoster(identity domain.Identity, members []domain.TeamMember) ([]domain.TeamMember, error) {
	roster := make([]domain.TeamMember, 0, len(members)+1)

	hasBooker := false
	for _, m := range members {
		m.Email = strings.ToLower(strings.TrimSpace(m.Email))
		if err := s.validate.Var(m.Email, "required,email"); err != nil {
			return nil, fmt.Errorf("%w: invalid team member email %q", domain.ErrValidation, m.Email)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("%w: team member name is required", domain.ErrValidation)
		}
		if m.Email == strings.ToLower(identity.Email) {
			hasBooker = true
			if m.IdentityID == "" {
				m.IdentityID = identity.ID
			}
		}
		roster = append(roster, m)
	}

	if !hasBooker {
		roster = append([]domain.TeamMember{{
			Name:       identity.Name,
			Email:      strings.ToLower(identity.Email),
			IdentityID: identity.ID,
		}}, roster...)
	}

	return roster, nil
}

// CheckTeamBookings reports which of the supplied e-mails already belong to a
// booked roster anywhere in the system. The scan is deliberately global: an
// e-mail is committed system-wide, not per presentation.
func (s *ReservationService) CheckTeamBookings(ctx context.Context, emails []string) (*domain.TeamBookingReport, error) {
	seen := make(map[string]struct{}, len(emails))
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		normalized = append(normalized, e)
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: at least one email is required", domain.ErrValidation)
	}

	booked, err := s.slots.CommittedEmails(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("check committed emails: %w", err)
	}

	return &domain.TeamBookingReport{
		HasBookings:   len(booked) > 0,
		BookedMembers: booked,
	}, nil
}

// MyBookings returns every slot where the identity is the booker or a listed
// team member, across all presentations. The booked-by-me flag matches the
// booker on either identity id or e-mail.
func (s *ReservationService) MyBookings(ctx context.Context, identity domain.Identity) ([]*domain.MyBooking, error) {
	email := strings.ToLower(identity.Email)

	bookings, err := s.slots.ListByMember(ctx, identity.ID, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	for _, b := range bookings {
		if by := b.Slot.BookedBy; by != nil {
			b.BookedByMe = by.ID == identity.ID || strings.EqualFold(by.Email, email)
		}
	}

	return bookings, nil
}
