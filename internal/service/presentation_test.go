package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/akhmetov-d/presentio/internal/auth"
	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validCreateInput() domain.CreatePresentationInput {
	return domain.CreatePresentationInput{
		Title: "Distributed Systems Defense",
		Venue: "Room 204",
		RegistrationPeriod: domain.Period{
			Start: day(2026, time.March, 1),
			End:   day(2026, time.March, 10),
		},
		PresentationPeriod: domain.Period{
			Start: day(2026, time.March, 15),
			End:   day(2026, time.March, 15),
		},
		ParticipationType: domain.ParticipationIndividual,
		SlotConfig: domain.SlotConfig{
			StartTime:       "09:00",
			EndTime:         "11:00",
			DurationMinutes: 30,
		},
	}
}

func TestPresentationService_Create_Success(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	faculty := domain.Identity{ID: "f1", Role: domain.RoleFaculty, Name: "Dr. Rao"}

	var created []domain.Slot
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, p *domain.Presentation, slots []domain.Slot) {
			created = slots
		}).
		Return(nil)

	p, err := svc.Create(context.Background(), faculty, validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "f1", p.FacultyID)
	assert.Equal(t, "Dr. Rao", p.FacultyName)
	assert.Equal(t, domain.DefaultGradingCriteria, p.GradingCriteria)
	assert.Equal(t, 1, p.TeamSizeMin)
	assert.Equal(t, 1, p.TeamSizeMax)

	// 09:00-11:00 at 30 minutes on a single day.
	require.Len(t, created, 4)
	for _, s := range created {
		assert.Equal(t, p.ID, s.PresentationID)
		assert.Equal(t, domain.SlotStatusAvailable, s.Status)
	}
}

func TestPresentationService_Create_ForbiddenForStudents(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	student := domain.Identity{ID: "s1", Role: domain.RoleStudent}

	_, err := svc.Create(context.Background(), student, validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPresentationService_Create_TitleRequired(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	input := validCreateInput()
	input.Title = ""

	_, err := svc.Create(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPresentationService_Create_InvalidSlotWindow(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	input := validCreateInput()
	input.SlotConfig.StartTime = "not-a-time"

	_, err := svc.Create(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPresentationService_Create_NormalizesCustomCriteria(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	input := validCreateInput()
	input.CustomGradingCriteria = true
	input.GradingCriteria = []domain.GradingCriterion{
		{Name: "Code", Weight: 50},
		{Name: "Report", Weight: 60},
	}

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, input)

	require.NoError(t, err)
	require.Len(t, p.GradingCriteria, 2)
	assert.Equal(t, 45, p.GradingCriteria[0].Weight)
	assert.Equal(t, 55, p.GradingCriteria[1].Weight)
}

func TestPresentationService_Create_TeamDefaultsSizes(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	input := validCreateInput()
	input.ParticipationType = domain.ParticipationTeam
	input.TeamSizeMin = 0
	input.TeamSizeMax = 0

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, input)

	require.NoError(t, err)
	assert.Equal(t, 1, p.TeamSizeMin)
	assert.GreaterOrEqual(t, p.TeamSizeMax, p.TeamSizeMin)
}

func TestPresentationService_Update_Forbidden(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "owner"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)

	title := "New title"
	other := domain.Identity{ID: "other", Role: domain.RoleFaculty}

	_, err := svc.Update(context.Background(), other, "p1", domain.UpdatePresentationInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPresentationService_Update_ScheduleFrozenOnceBooked(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "f1"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	slots.EXPECT().HasCommittedSlots(mock.Anything, "p1").Return(true, nil)

	input := domain.UpdatePresentationInput{
		SlotConfig: &domain.SlotConfig{StartTime: "10:00", EndTime: "12:00", DurationMinutes: 20},
	}

	_, err := svc.Update(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotsCommitted)
}

func TestPresentationService_Update_RegeneratesSlots(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{
		ID:        "p1",
		FacultyID: "f1",
		PresentationPeriod: domain.Period{
			Start: day(2026, time.April, 1),
			End:   day(2026, time.April, 1),
		},
	}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	slots.EXPECT().HasCommittedSlots(mock.Anything, "p1").Return(false, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	var replaced []domain.Slot
	repo.EXPECT().ReplaceSlots(mock.Anything, "p1", mock.Anything).
		Run(func(ctx context.Context, presentationID string, slots []domain.Slot) {
			replaced = slots
		}).
		Return(nil)

	input := domain.UpdatePresentationInput{
		SlotConfig: &domain.SlotConfig{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 30},
	}

	p, err := svc.Update(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1", input)

	require.NoError(t, err)
	assert.Equal(t, "09:00", p.SlotConfig.StartTime)
	require.Len(t, replaced, 2)
	for _, s := range replaced {
		assert.Equal(t, "p1", s.PresentationID)
	}
}

func TestPresentationService_Update_InvalidScheduleRejectedBeforeWrite(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{
		ID:        "p1",
		FacultyID: "f1",
		PresentationPeriod: domain.Period{
			Start: day(2026, time.April, 1),
			End:   day(2026, time.April, 1),
		},
	}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	slots.EXPECT().HasCommittedSlots(mock.Anything, "p1").Return(false, nil)

	input := domain.UpdatePresentationInput{
		SlotConfig: &domain.SlotConfig{StartTime: "25:00", EndTime: "11:00", DurationMinutes: 30},
	}

	_, err := svc.Update(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ReplaceSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestPresentationService_Update_RejectsInvalidCriteria(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "f1"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)

	input := domain.UpdatePresentationInput{
		GradingCriteria: []domain.GradingCriterion{{Name: "Code", Weight: -10}},
	}

	_, err := svc.Update(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPresentationService_Update_PartialFieldsOnly(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "f1", Title: "Old", Venue: "A"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "New"
	p, err := svc.Update(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1",
		domain.UpdatePresentationInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "A", p.Venue)
}

func TestPresentationService_Delete_Forbidden(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "owner"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)

	err := svc.Delete(context.Background(), domain.Identity{ID: "other", Role: domain.RoleFaculty}, "p1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPresentationService_Delete_BlockedByCommittedSlots(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "f1"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "p1", false).Return(domain.ErrSlotsCommitted)

	err := svc.Delete(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotsCommitted)
}

func TestPresentationService_Delete_ForceByAdmin(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "owner"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "p1", true).Return(nil)

	err := svc.Delete(context.Background(), domain.Identity{ID: "a1", Role: domain.RoleAdmin}, "p1", true)

	require.NoError(t, err)
}

func TestPresentationService_ListSlots_Forbidden(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "owner"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)

	_, err := svc.ListSlots(context.Background(), domain.Identity{ID: "s1", Role: domain.RoleStudent}, "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPresentationService_ListSlots_Success(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	existing := &domain.Presentation{ID: "p1", FacultyID: "f1"}
	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	slots.EXPECT().ListByPresentation(mock.Anything, "p1").Return([]*domain.Slot{
		{ID: "s1", Status: domain.SlotStatusBooked},
	}, nil)

	result, err := svc.ListSlots(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty}, "p1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestPresentationService_ListFaculty_RepoError(t *testing.T) {
	repo := mocks.NewMockPresentationRepo(t)
	slots := mocks.NewMockSlotRepo(t)
	log := newTestLogger(t)

	svc := NewPresentationService(repo, slots, auth.NewGuard(), log)

	repo.EXPECT().ListByFaculty(mock.Anything, "f1").Return(nil, errors.New("db error"))

	_, err := svc.ListFaculty(context.Background(), domain.Identity{ID: "f1", Role: domain.RoleFaculty})

	require.Error(t, err)
}
