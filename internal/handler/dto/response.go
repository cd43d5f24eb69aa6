package dto

import (
	"time"

	"github.com/akhmetov-d/presentio/internal/domain"
)

type PresentationResponse struct {
	ID                    string                    `json:"id"`
	Title                 string                    `json:"title"`
	Description           string                    `json:"description"`
	FacultyID             string                    `json:"faculty_id"`
	FacultyName           string                    `json:"faculty_name"`
	Venue                 string                    `json:"venue"`
	RegistrationStart     string                    `json:"registration_start"`
	RegistrationEnd       string                    `json:"registration_end"`
	PresentationStart     string                    `json:"presentation_start"`
	PresentationEnd       string                    `json:"presentation_end"`
	ParticipationType     string                    `json:"participation_type"`
	TeamSizeMin           int                       `json:"team_size_min"`
	TeamSizeMax           int                       `json:"team_size_max"`
	SlotConfig            domain.SlotConfig         `json:"slot_config"`
	TargetAudience        domain.TargetAudience     `json:"target_audience"`
	GradingCriteria       []domain.GradingCriterion `json:"grading_criteria"`
	CustomGradingCriteria bool                      `json:"custom_grading_criteria"`
	CreatedAt             string                    `json:"created_at"`
}

type SlotResponse struct {
	ID               string                        `json:"id"`
	PresentationID   string                        `json:"presentation_id"`
	Time             string                        `json:"time"`
	Status           string                        `json:"status"`
	BookedBy         *domain.Booker                `json:"booked_by,omitempty"`
	BookedAt         *string                       `json:"booked_at,omitempty"`
	TeamName         string                        `json:"team_name,omitempty"`
	Topic            string                        `json:"topic,omitempty"`
	Description      string                        `json:"description,omitempty"`
	TeamMembers      []domain.TeamMember           `json:"team_members,omitempty"`
	FileAttachment   *domain.FileAttachment        `json:"file_attachment,omitempty"`
	StartedAt        *string                       `json:"started_at,omitempty"`
	CompletedAt      *string                       `json:"completed_at,omitempty"`
	Grades           map[string]float64            `json:"grades,omitempty"`
	IndividualGrades map[string]map[string]float64 `json:"individual_grades,omitempty"`
	Feedback         string                        `json:"feedback,omitempty"`
	TotalScore       *float64                      `json:"total_score,omitempty"`
}

type PresentationStatsResponse struct {
	Presentation PresentationResponse `json:"presentation"`
	Stats        domain.SlotStats     `json:"stats"`
}

type AvailablePresentationResponse struct {
	Presentation PresentationResponse `json:"presentation"`
	Slots        []SlotResponse       `json:"slots"`
}

type MyBookingResponse struct {
	PresentationID    string       `json:"presentation_id"`
	PresentationTitle string       `json:"presentation_title"`
	Venue             string       `json:"venue"`
	BookedByMe        bool         `json:"booked_by_me"`
	Slot              SlotResponse `json:"slot"`
}

type TeamBookingReportResponse struct {
	HasBookings   bool     `json:"has_bookings"`
	BookedMembers []string `json:"booked_members"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPresentationResponse(p *domain.Presentation) PresentationResponse {
	return PresentationResponse{
		ID:                    p.ID,
		Title:                 p.Title,
		Description:           p.Description,
		FacultyID:             p.FacultyID,
		FacultyName:           p.FacultyName,
		Venue:                 p.Venue,
		RegistrationStart:     p.RegistrationPeriod.Start.Format(time.RFC3339),
		RegistrationEnd:       p.RegistrationPeriod.End.Format(time.RFC3339),
		PresentationStart:     p.PresentationPeriod.Start.Format(time.RFC3339),
		PresentationEnd:       p.PresentationPeriod.End.Format(time.RFC3339),
		ParticipationType:     string(p.ParticipationType),
		TeamSizeMin:           p.TeamSizeMin,
		TeamSizeMax:           p.TeamSizeMax,
		SlotConfig:            p.SlotConfig,
		TargetAudience:        p.TargetAudience,
		GradingCriteria:       p.GradingCriteria,
		CustomGradingCriteria: p.CustomGradingCriteria,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:               s.ID,
		PresentationID:   s.PresentationID,
		Time:             s.Time.Format(time.RFC3339),
		Status:           string(s.Status),
		BookedBy:         s.BookedBy,
		BookedAt:         formatTimePtr(s.BookedAt),
		TeamName:         s.TeamName,
		Topic:            s.Topic,
		Description:      s.Description,
		TeamMembers:      s.TeamMembers,
		FileAttachment:   s.FileAttachment,
		StartedAt:        formatTimePtr(s.StartedAt),
		CompletedAt:      formatTimePtr(s.CompletedAt),
		Grades:           s.Grades,
		IndividualGrades: s.IndividualGrades,
		Feedback:         s.Feedback,
		TotalScore:       s.TotalScore,
	}
}

func ToPresentationStatsResponse(ps *domain.PresentationStats) PresentationStatsResponse {
	return PresentationStatsResponse{
		Presentation: ToPresentationResponse(&ps.Presentation),
		Stats:        ps.Stats,
	}
}

func ToAvailablePresentationResponse(ps *domain.PresentationWithSlots) AvailablePresentationResponse {
	slots := make([]SlotResponse, 0, len(ps.Slots))
	for i := range ps.Slots {
		slots = append(slots, ToSlotResponse(&ps.Slots[i]))
	}

	return AvailablePresentationResponse{
		Presentation: ToPresentationResponse(&ps.Presentation),
		Slots:        slots,
	}
}

func ToMyBookingResponse(b *domain.MyBooking) MyBookingResponse {
	return MyBookingResponse{
		PresentationID:    b.PresentationID,
		PresentationTitle: b.PresentationTitle,
		Venue:             b.Venue,
		BookedByMe:        b.BookedByMe,
		Slot:              ToSlotResponse(&b.Slot),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
