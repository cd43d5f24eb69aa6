package domain

import "time"

type ParticipationType string

const (
	ParticipationIndividual ParticipationType = "individual"
	ParticipationTeam       ParticipationType = "team"
)

// Period is a closed [Start, End] time window.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// SlotConfig describes the daily recurrence slots are synthesized from.
// StartTime and EndTime are local times of day in "15:04" form.
type SlotConfig struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	BufferMinutes   int    `json:"buffer_minutes"`
}

type TargetAudience struct {
	Years       []int    `json:"years"`
	Schools     []string `json:"schools"`
	Departments []string `json:"departments"`
}

// Matches reports whether the audience admits the given filters.
// Empty audience lists admit everyone; empty filter fields match anything.
func (a TargetAudience) Matches(f AudienceFilter) bool {
	if f.Year != nil && len(a.Years) > 0 {
		found := false
		for _, y := range a.Years {
			if y == *f.Year {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.School != "" && len(a.Schools) > 0 && !containsString(a.Schools, f.School) {
		return false
	}
	if f.Department != "" && len(a.Departments) > 0 && !containsString(a.Departments, f.Department) {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type AudienceFilter struct {
	Year       *int
	School     string
	Department string
}

type GradingCriterion struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// DefaultGradingCriteria is used when the owner does not supply a custom set.
var DefaultGradingCriteria = []GradingCriterion{
	{Name: "Content", Weight: 40},
	{Name: "Delivery", Weight: 30},
	{Name: "Q&A", Weight: 30},
}

// Presentation is the aggregate root. Its slots are owned exclusively by it
// and have no independent lifecycle.
type Presentation struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description"`
	FacultyID             string             `json:"faculty_id"`
	FacultyName           string             `json:"faculty_name"`
	Venue                 string             `json:"venue"`
	RegistrationPeriod    Period             `json:"registration_period"`
	PresentationPeriod    Period             `json:"presentation_period"`
	ParticipationType     ParticipationType  `json:"participation_type"`
	TeamSizeMin           int                `json:"team_size_min"`
	TeamSizeMax           int                `json:"team_size_max"`
	SlotConfig            SlotConfig         `json:"slot_config"`
	TargetAudience        TargetAudience     `json:"target_audience"`
	GradingCriteria       []GradingCriterion `json:"grading_criteria"`
	CustomGradingCriteria bool               `json:"custom_grading_criteria"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

type SlotStats struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Booked     int `json:"booked"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type PresentationStats struct {
	Presentation Presentation `json:"presentation"`
	Stats        SlotStats    `json:"stats"`
}

type PresentationWithSlots struct {
	Presentation Presentation `json:"presentation"`
	Slots        []Slot       `json:"slots"`
}

type CreatePresentationInput struct {
	Title                 string
	Description           string
	Venue                 string
	RegistrationPeriod    Period
	PresentationPeriod    Period
	ParticipationType     ParticipationType
	TeamSizeMin           int
	TeamSizeMax           int
	SlotConfig            SlotConfig
	TargetAudience        TargetAudience
	GradingCriteria       []GradingCriterion
	CustomGradingCriteria bool
}

// UpdatePresentationInput carries partial updates; nil fields are untouched.
type UpdatePresentationInput struct {
	Title              *string
	Description        *string
	Venue              *string
	RegistrationPeriod *Period
	PresentationPeriod *Period
	SlotConfig         *SlotConfig
	TargetAudience     *TargetAudience
	GradingCriteria    []GradingCriterion
}
