package slotgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akhmetov-d/presentio/internal/domain"
)

const timeOfDayLayout = "15:04"

// Generate expands a daily recurrence over a calendar period into available
// slots. Every day in [period.Start, period.End] is walked independently:
// cursor starts at the day's StartTime and advances by duration+buffer while
// the next slot still ends at or before EndTime. Slots never span midnight.
// A day that fits no slot simply yields none.
//
// Slot times are deterministic; slot ids are freshly minted on every call.
func Generate(cfg domain.SlotConfig, period domain.Period) ([]domain.Slot, error) {
	start, err := time.Parse(timeOfDayLayout, cfg.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot start time %q", domain.ErrValidation, cfg.StartTime)
	}
	end, err := time.Parse(timeOfDayLayout, cfg.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot end time %q", domain.ErrValidation, cfg.EndTime)
	}
	if cfg.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", domain.ErrValidation)
	}
	if cfg.BufferMinutes < 0 {
		return nil, fmt.Errorf("%w: slot buffer must not be negative", domain.ErrValidation)
	}
	if period.End.Before(period.Start) {
		return nil, fmt.Errorf("%w: presentation period end before start", domain.ErrValidation)
	}

	duration := time.Duration(cfg.DurationMinutes) * time.Minute
	step := duration + time.Duration(cfg.BufferMinutes)*time.Minute

	loc := period.Start.Location()
	firstDay := atMidnight(period.Start)
	lastDay := atMidnight(period.End)

	var slots []domain.Slot
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		cursor := atTimeOfDay(day, start, loc)
		dayEnd := atTimeOfDay(day, end, loc)

		for !cursor.Add(duration).After(dayEnd) {
			slots = append(slots, domain.Slot{
				ID:     uuid.New().String(),
				Time:   cursor,
				Status: domain.SlotStatusAvailable,
			})
			cursor = cursor.Add(step)
		}
	}

	return slots, nil
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func atTimeOfDay(day time.Time, tod time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, loc)
}
