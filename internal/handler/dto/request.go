package dto

type SlotConfigRequest struct {
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	BufferMinutes   int    `json:"buffer_minutes" binding:"gte=0"`
}

type TargetAudienceRequest struct {
	Years       []int    `json:"years"`
	Schools     []string `json:"schools"`
	Departments []string `json:"departments"`
}

type GradingCriterionRequest struct {
	Name   string `json:"name" binding:"required"`
	Weight int    `json:"weight" binding:"gte=0"`
}

type CreatePresentationRequest struct {
	Title                 string                    `json:"title" binding:"required"`
	Description           string                    `json:"description"`
	Venue                 string                    `json:"venue" binding:"required"`
	RegistrationStart     string                    `json:"registration_start" binding:"required"`
	RegistrationEnd       string                    `json:"registration_end" binding:"required"`
	PresentationStart     string                    `json:"presentation_start" binding:"required"`
	PresentationEnd       string                    `json:"presentation_end" binding:"required"`
	ParticipationType     string                    `json:"participation_type"`
	TeamSizeMin           int                       `json:"team_size_min"`
	TeamSizeMax           int                       `json:"team_size_max"`
	SlotConfig            SlotConfigRequest         `json:"slot_config" binding:"required"`
	TargetAudience        TargetAudienceRequest     `json:"target_audience"`
	GradingCriteria       []GradingCriterionRequest `json:"grading_criteria"`
	CustomGradingCriteria bool                      `json:"custom_grading_criteria"`
}

type UpdatePresentationRequest struct {
	Title             *string                   `json:"title"`
	Description       *string                   `json:"description"`
	Venue             *string                   `json:"venue"`
	RegistrationStart *string                   `json:"registration_start"`
	RegistrationEnd   *string                   `json:"registration_end"`
	PresentationStart *string                   `json:"presentation_start"`
	PresentationEnd   *string                   `json:"presentation_end"`
	SlotConfig        *SlotConfigRequest        `json:"slot_config"`
	TargetAudience    *TargetAudienceRequest    `json:"target_audience"`
	GradingCriteria   []GradingCriterionRequest `json:"grading_criteria"`
}

type TeamMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	RollNumber string `json:"roll_number"`
	IdentityID string `json:"identity_id"`
}

type BookSlotRequest struct {
	SlotID      string              `json:"slot_id" binding:"required"`
	Topic       string              `json:"topic"`
	TeamName    string              `json:"team_name"`
	Description string              `json:"description"`
	TeamMembers []TeamMemberRequest `json:"team_members"`
}

// CheckTeamBookingsRequest carries an optional presentation id for wire
// compatibility; the check itself is system-wide.
type CheckTeamBookingsRequest struct {
	Emails         []string `json:"emails" binding:"required,min=1"`
	PresentationID string   `json:"presentation_id"`
}

type StartSlotRequest struct {
	PresentationID string `json:"presentation_id" binding:"required,uuid"`
}

// CompleteSlotRequest accepts total_score for wire compatibility; the server
// derives the stored total from the grades and ignores the supplied value.
type CompleteSlotRequest struct {
	PresentationID   string                        `json:"presentation_id" binding:"required,uuid"`
	Grades           map[string]float64            `json:"grades" binding:"required"`
	IndividualGrades map[string]map[string]float64 `json:"individual_grades"`
	Feedback         string                        `json:"feedback"`
	TotalScore       *float64                      `json:"total_score"`
}
