package domain

import "errors"

var (
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrSlotNotFound         = errors.New("slot not found")
)

var (
	ErrForbidden          = errors.New("not allowed to manage this presentation")
	ErrRegistrationClosed = errors.New("registration period is closed")
)

var (
	ErrSlotTaken           = errors.New("slot is already booked")
	ErrAlreadyBooked       = errors.New("identity already holds a booked slot in this presentation")
	ErrMemberAlreadyBooked = errors.New("team member already belongs to another booked slot")
	ErrSlotNotBooked       = errors.New("slot has not been booked")
	ErrSlotStarted         = errors.New("slot is already in progress")
	ErrSlotCompleted       = errors.New("slot is already completed")
	ErrSlotsCommitted      = errors.New("presentation has committed slots")
)

var (
	ErrValidation = errors.New("validation error")
)
