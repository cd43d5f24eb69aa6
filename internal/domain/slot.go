package domain

import "time"

type SlotStatus string

const (
	SlotStatusAvailable  SlotStatus = "available"
	SlotStatusBooked     SlotStatus = "booked"
	SlotStatusInProgress SlotStatus = "in-progress"
	SlotStatusCompleted  SlotStatus = "completed"
)

type TeamMember struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number,omitempty"`
	IdentityID string `json:"identity_id,omitempty"`
}

type FileAttachment struct {
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

type Booker struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Slot is one bookable unit of time embedded in a Presentation.
// Status only ever moves forward: available -> booked -> in-progress -> completed.
type Slot struct {
	ID               string                        `json:"id"`
	PresentationID   string                        `json:"presentation_id"`
	Time             time.Time                     `json:"time"`
	Status           SlotStatus                    `json:"status"`
	BookedBy         *Booker                       `json:"booked_by,omitempty"`
	BookedAt         *time.Time                    `json:"booked_at,omitempty"`
	TeamName         string                        `json:"team_name,omitempty"`
	Topic            string                        `json:"topic,omitempty"`
	Description      string                        `json:"description,omitempty"`
	TeamMembers      []TeamMember                  `json:"team_members,omitempty"`
	FileAttachment   *FileAttachment               `json:"file_attachment,omitempty"`
	StartedAt        *time.Time                    `json:"started_at,omitempty"`
	CompletedAt      *time.Time                    `json:"completed_at,omitempty"`
	Grades           map[string]float64            `json:"grades,omitempty"`
	IndividualGrades map[string]map[string]float64 `json:"individual_grades,omitempty"`
	Feedback         string                        `json:"feedback,omitempty"`
	TotalScore       *float64                      `json:"total_score,omitempty"`
}

type BookingInput struct {
	SlotID         string
	Topic          string
	TeamName       string
	Description    string
	TeamMembers    []TeamMember
	FileAttachment *FileAttachment
}

// BookingRecord is the state written onto a slot when a booking wins.
type BookingRecord struct {
	Booker         Booker
	BookedAt       time.Time
	Topic          string
	TeamName       string
	Description    string
	TeamMembers    []TeamMember
	FileAttachment *FileAttachment
}

type CompleteInput struct {
	Grades           map[string]float64
	IndividualGrades map[string]map[string]float64
	Feedback         string
}

// GradingResult is the state written onto a slot on completion. TotalScore is
// derived server-side from the presentation's criteria, never client-supplied.
type GradingResult struct {
	Grades           map[string]float64
	IndividualGrades map[string]map[string]float64
	Feedback         string
	TotalScore       float64
	CompletedAt      time.Time
}

type MyBooking struct {
	PresentationID    string    `json:"presentation_id"`
	PresentationTitle string    `json:"presentation_title"`
	Venue             string    `json:"venue"`
	Slot              Slot      `json:"slot"`
	BookedByMe        bool      `json:"booked_by_me"`
	Time              time.Time `json:"time"`
}

type TeamBookingReport struct {
	HasBookings   bool     `json:"has_bookings"`
	BookedMembers []string `json:"booked_members"`
}
