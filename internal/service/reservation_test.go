package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/service/ports/mocks"
)

func openPresentation(pt domain.ParticipationType, minSize, maxSize int) *domain.Presentation {
	now := time.Now()
	return &domain.Presentation{
		ID:        "p1",
		FacultyID: "f1",
		RegistrationPeriod: domain.Period{
			Start: now.Add(-time.Hour),
			End:   now.Add(time.Hour),
		},
		ParticipationType: pt,
		TeamSizeMin:       minSize,
		TeamSizeMax:       maxSize,
	}
}

func TestReservationService_Book_Success(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Role: domain.RoleStudent, Email: "alice@uni.edu", Name: "Alice"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationIndividual, 1, 1), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(false, nil)

	var rec *domain.BookingRecord
	slots.EXPECT().Book(mock.Anything, "p1", "s1", mock.Anything).
		Run(func(ctx context.Context, presentationID, slotID string, r *domain.BookingRecord) {
			rec = r
		}).
		Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusBooked}, nil)

	slot, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{
		SlotID: "s1",
		Topic:  "Raft visualized",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusBooked, slot.Status)

	// The booker is injected into the roster even when omitted.
	require.NotNil(t, rec)
	require.Len(t, rec.TeamMembers, 1)
	assert.Equal(t, "alice@uni.edu", rec.TeamMembers[0].Email)
	assert.Equal(t, "u1", rec.TeamMembers[0].IdentityID)
	assert.Equal(t, "Raft visualized", rec.Topic)
}

func TestReservationService_Book_SlotIDRequired(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	_, err := svc.Book(context.Background(), domain.Identity{ID: "u1"}, "p1", domain.BookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Book_PresentationNotFound(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPresentationNotFound)

	_, err := svc.Book(context.Background(), domain.Identity{ID: "u1"}, "missing", domain.BookingInput{SlotID: "s1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPresentationNotFound)
}

func TestReservationService_Book_SlotTaken(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationIndividual, 1, 1), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusBooked}, nil)

	_, err := svc.Book(context.Background(), domain.Identity{ID: "u1"}, "p1", domain.BookingInput{SlotID: "s1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Book_RegistrationClosed(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	closed := openPresentation(domain.ParticipationIndividual, 1, 1)
	closed.RegistrationPeriod = domain.Period{
		Start: time.Now().Add(-2 * time.Hour),
		End:   time.Now().Add(-time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(closed, nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)

	_, err := svc.Book(context.Background(), domain.Identity{ID: "u1"}, "p1", domain.BookingInput{SlotID: "s1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestReservationService_Book_AlreadyBooked(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Email: "alice@uni.edu"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationIndividual, 1, 1), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s2").Return(&domain.Slot{ID: "s2", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(true, nil)

	_, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{SlotID: "s2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Book_InvalidMemberEmail(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Email: "alice@uni.edu"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationTeam, 1, 4), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(false, nil)

	_, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{
		SlotID: "s1",
		TeamMembers: []domain.TeamMember{
			{Name: "Bob", Email: "not-an-email"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Book_TeamTooLarge(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Email: "alice@uni.edu", Name: "Alice"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationTeam, 1, 2), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(false, nil)

	// Two listed members plus the injected booker exceeds the max of two.
	_, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{
		SlotID: "s1",
		TeamMembers: []domain.TeamMember{
			{Name: "Bob", Email: "bob@uni.edu"},
			{Name: "Carol", Email: "carol@uni.edu"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Book_MemberAlreadyBooked(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Email: "alice@uni.edu", Name: "Alice"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationTeam, 1, 4), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(false, nil)
	slots.EXPECT().BookedRosterEmails(mock.Anything, "p1", []string{"alice@uni.edu", "bob@uni.edu"}).
		Return([]string{"bob@uni.edu"}, nil)

	_, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{
		SlotID: "s1",
		TeamMembers: []domain.TeamMember{
			{Name: "Bob", Email: "Bob@Uni.edu"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberAlreadyBooked)
	assert.Contains(t, err.Error(), "bob@uni.edu")
}

func TestReservationService_Book_LosesRace(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	student := domain.Identity{ID: "u1", Email: "alice@uni.edu", Name: "Alice"}

	// The pre-check saw the slot available, but another booking won the
	// conditional update in between.
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(openPresentation(domain.ParticipationIndividual, 1, 1), nil)
	slots.EXPECT().GetByID(mock.Anything, "p1", "s1").Return(&domain.Slot{ID: "s1", Status: domain.SlotStatusAvailable}, nil)
	slots.EXPECT().HasBooking(mock.Anything, "p1", "u1", "alice@uni.edu").Return(false, nil)
	slots.EXPECT().Book(mock.Anything, "p1", "s1", mock.Anything).Return(nil, domain.ErrSlotTaken)

	_, err := svc.Book(context.Background(), student, "p1", domain.BookingInput{SlotID: "s1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_CheckTeamBookings_NormalizesAndDedupes(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	slots.EXPECT().CommittedEmails(mock.Anything, []string{"alice@uni.edu", "bob@uni.edu"}).
		Return([]string{"alice@uni.edu"}, nil)

	report, err := svc.CheckTeamBookings(context.Background(), []string{
		" Alice@Uni.edu ", "bob@uni.edu", "alice@uni.edu", "",
	})

	require.NoError(t, err)
	assert.True(t, report.HasBookings)
	assert.Equal(t, []string{"alice@uni.edu"}, report.BookedMembers)
}

func TestReservationService_CheckTeamBookings_NoEmails(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	_, err := svc.CheckTeamBookings(context.Background(), []string{"", "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CheckTeamBookings_NoneBooked(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	slots.EXPECT().CommittedEmails(mock.Anything, []string{"dave@uni.edu"}).Return(nil, nil)

	report, err := svc.CheckTeamBookings(context.Background(), []string{"dave@uni.edu"})

	require.NoError(t, err)
	assert.False(t, report.HasBookings)
	assert.Empty(t, report.BookedMembers)
}

func TestReservationService_MyBookings_LowercasesEmail(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	slots.EXPECT().ListByMember(mock.Anything, "u1", "alice@uni.edu").Return([]*domain.MyBooking{
		{PresentationID: "p1", BookedByMe: true},
	}, nil)

	result, err := svc.MyBookings(context.Background(), domain.Identity{ID: "u1", Email: "Alice@Uni.edu"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestReservationService_MyBookings_FlagsBookerByIDOrEmail(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	slots.EXPECT().ListByMember(mock.Anything, "u-new", "alice@uni.edu").Return([]*domain.MyBooking{
		{PresentationID: "p1", Slot: domain.Slot{BookedBy: &domain.Booker{ID: "u-old", Email: "alice@uni.edu"}}},
		{PresentationID: "p2", Slot: domain.Slot{BookedBy: &domain.Booker{ID: "u-new", Email: "old@uni.edu"}}},
		{PresentationID: "p3", Slot: domain.Slot{BookedBy: &domain.Booker{ID: "other", Email: "bob@uni.edu"}}},
	}, nil)

	result, err := svc.MyBookings(context.Background(), domain.Identity{ID: "u-new", Email: "Alice@Uni.edu"})

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].BookedByMe, "e-mail match")
	assert.True(t, result[1].BookedByMe, "id match")
	assert.False(t, result[2].BookedByMe)
}

func TestReservationService_ListAvailable_RepoError(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, slots, log)

	repo.EXPECT().ListAvailable(mock.Anything, domain.AudienceFilter{}).Return(nil, errors.New("db error"))

	_, err := svc.ListAvailable(context.Background(), domain.AudienceFilter{})

	require.Error(t, err)
}
