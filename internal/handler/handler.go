package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/akhmetov-d/presentio/internal/domain"
	"github.com/akhmetov-d/presentio/internal/handler/dto"
	"github.com/akhmetov-d/presentio/internal/middleware"
)

type PresentationSvc interface {
	Create(ctx context.Context, identity domain.Identity, input domain.CreatePresentationInput) (*domain.Presentation, error)
	Update(ctx context.Context, identity domain.Identity, id string, input domain.UpdatePresentationInput) (*domain.Presentation, error)
	Delete(ctx context.Context, identity domain.Identity, id string, force bool) error
	ListFaculty(ctx context.Context, identity domain.Identity) ([]*domain.PresentationStats, error)
	ListSlots(ctx context.Context, identity domain.Identity, id string) ([]*domain.Slot, error)
}

type ReservationSvc interface {
	ListAvailable(ctx context.Context, f domain.AudienceFilter) ([]*domain.PresentationWithSlots, error)
	Book(ctx context.Context, identity domain.Identity, presentationID string, in domain.BookingInput) (*domain.Slot, error)
	CheckTeamBookings(ctx context.Context, emails []string) (*domain.TeamBookingReport, error)
	MyBookings(ctx context.Context, identity domain.Identity) ([]*domain.MyBooking, error)
}

type LifecycleSvc interface {
	Start(ctx context.Context, identity domain.Identity, presentationID, slotID string) (*domain.Slot, error)
	Complete(ctx context.Context, identity domain.Identity, presentationID, slotID string, in domain.CompleteInput) (*domain.Slot, error)
}

type Uploader interface {
	Save(fh *multipart.FileHeader) (*domain.FileAttachment, error)
}

type Handler struct {
	presentations PresentationSvc
	reservations  ReservationSvc
	lifecycle     LifecycleSvc
	uploader      Uploader
}

func NewHandler(
	presentations PresentationSvc,
	reservations ReservationSvc,
	lifecycle LifecycleSvc,
	uploader Uploader,
) *Handler {
	return &Handler{
		presentations: presentations,
		reservations:  reservations,
		lifecycle:     lifecycle,
		uploader:      uploader,
	}
}

// Presentations

func (h *Handler) CreatePresentation(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	var req dto.CreatePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	registration, err := parsePeriod(req.RegistrationStart, req.RegistrationEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration period, expected RFC3339"})
		return
	}
	presentation, err := parsePeriod(req.PresentationStart, req.PresentationEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation period, expected RFC3339"})
		return
	}

	input := domain.CreatePresentationInput{
		Title:              req.Title,
		Description:        req.Description,
		Venue:              req.Venue,
		RegistrationPeriod: registration,
		PresentationPeriod: presentation,
		ParticipationType:  domain.ParticipationType(req.ParticipationType),
		TeamSizeMin:        req.TeamSizeMin,
		TeamSizeMax:        req.TeamSizeMax,
		SlotConfig: domain.SlotConfig{
			StartTime:       req.SlotConfig.StartTime,
			EndTime:         req.SlotConfig.EndTime,
			DurationMinutes: req.SlotConfig.DurationMinutes,
			BufferMinutes:   req.SlotConfig.BufferMinutes,
		},
		TargetAudience: domain.TargetAudience{
			Years:       req.TargetAudience.Years,
			Schools:     req.TargetAudience.Schools,
			Departments: req.TargetAudience.Departments,
		},
		GradingCriteria:       toCriteria(req.GradingCriteria),
		CustomGradingCriteria: req.CustomGradingCriteria,
	}

	p, err := h.presentations.Create(c.Request.Context(), identity, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresentationResponse(p))
}

func (h *Handler) ListAvailable(c *ginext.Context) {
	var filter domain.AudienceFilter
	if y := c.Query("year"); y != "" {
		year, err := parseYear(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
			return
		}
		filter.Year = &year
	}
	filter.School = c.Query("school")
	filter.Department = c.Query("department")

	list, err := h.reservations.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailablePresentationResponse, 0, len(list))
	for _, ps := range list {
		resp = append(resp, dto.ToAvailablePresentationResponse(ps))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListFaculty(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	list, err := h.presentations.ListFaculty(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PresentationStatsResponse, 0, len(list))
	for _, ps := range list {
		resp = append(resp, dto.ToPresentationStatsResponse(ps))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdatePresentation(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation id"})
		return
	}

	var req dto.UpdatePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdatePresentationInput{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
	}
	if req.RegistrationStart != nil && req.RegistrationEnd != nil {
		period, err := parsePeriod(*req.RegistrationStart, *req.RegistrationEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration period, expected RFC3339"})
			return
		}
		input.RegistrationPeriod = &period
	}
	if req.PresentationStart != nil && req.PresentationEnd != nil {
		period, err := parsePeriod(*req.PresentationStart, *req.PresentationEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation period, expected RFC3339"})
			return
		}
		input.PresentationPeriod = &period
	}
	if req.SlotConfig != nil {
		input.SlotConfig = &domain.SlotConfig{
			StartTime:       req.SlotConfig.StartTime,
			EndTime:         req.SlotConfig.EndTime,
			DurationMinutes: req.SlotConfig.DurationMinutes,
			BufferMinutes:   req.SlotConfig.BufferMinutes,
		}
	}
	if req.TargetAudience != nil {
		input.TargetAudience = &domain.TargetAudience{
			Years:       req.TargetAudience.Years,
			Schools:     req.TargetAudience.Schools,
			Departments: req.TargetAudience.Departments,
		}
	}
	input.GradingCriteria = toCriteria(req.GradingCriteria)

	p, err := h.presentations.Update(c.Request.Context(), identity, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPresentationResponse(p))
}

func (h *Handler) DeletePresentation(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation id"})
		return
	}
	force := c.Query("force") == "true"

	if err := h.presentations.Delete(c.Request.Context(), identity, id, force); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListSlots(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation id"})
		return
	}

	slots, err := h.presentations.ListSlots(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookSlot(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	presentationID := c.Param("id")
	if _, err := uuid.Parse(presentationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid presentation id"})
		return
	}

	var input domain.BookingInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in, err := h.bindMultipartBooking(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input = *in
	} else {
		var req dto.BookSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input = domain.BookingInput{
			SlotID:      req.SlotID,
			Topic:       req.Topic,
			TeamName:    req.TeamName,
			Description: req.Description,
			TeamMembers: toMembers(req.TeamMembers),
		}
	}

	slot, err := h.reservations.Book(c.Request.Context(), identity, presentationID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

// bindMultipartBooking reads the booking fields from a multipart form. The
// roster arrives as a JSON array in the team_members field; the file part is
// optional.
func (h *Handler) bindMultipartBooking(c *ginext.Context) (*domain.BookingInput, error) {
	input := &domain.BookingInput{
		SlotID:      c.PostForm("slot_id"),
		Topic:       c.PostForm("topic"),
		TeamName:    c.PostForm("team_name"),
		Description: c.PostForm("description"),
	}

	if raw := c.PostForm("team_members"); raw != "" {
		var members []dto.TeamMemberRequest
		if err := json.Unmarshal([]byte(raw), &members); err != nil {
			return nil, errors.New("invalid team_members: expected a JSON array")
		}
		input.TeamMembers = toMembers(members)
	}

	fh, err := c.FormFile("file")
	if err == nil {
		attachment, err := h.uploader.Save(fh)
		if err != nil {
			return nil, err
		}
		input.FileAttachment = attachment
	}

	return input, nil
}

func (h *Handler) CheckTeamBookings(c *ginext.Context) {
	var req dto.CheckTeamBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reservations.CheckTeamBookings(c.Request.Context(), req.Emails)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeamBookingReportResponse{
		HasBookings:   report.HasBookings,
		BookedMembers: report.BookedMembers,
	})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	bookings, err := h.reservations.MyBookings(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MyBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToMyBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Lifecycle

func (h *Handler) StartSlot(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	slotID := c.Param("slotId")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.StartSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.lifecycle.Start(c.Request.Context(), identity, req.PresentationID, slotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) CompleteSlot(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	slotID := c.Param("slotId")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.CompleteSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CompleteInput{
		Grades:           req.Grades,
		IndividualGrades: req.IndividualGrades,
		Feedback:         req.Feedback,
	}

	slot, err := h.lifecycle.Complete(c.Request.Context(), identity, req.PresentationID, slotID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPresentationNotFound),
		errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrRegistrationClosed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrMemberAlreadyBooked),
		errors.Is(err, domain.ErrSlotNotBooked),
		errors.Is(err, domain.ErrSlotStarted),
		errors.Is(err, domain.ErrSlotCompleted),
		errors.Is(err, domain.ErrSlotsCommitted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parsePeriod(start, end string) (domain.Period, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.Period{}, err
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.Period{}, err
	}
	return domain.Period{Start: s, End: e}, nil
}

func parseYear(s string) (int, error) {
	return strconv.Atoi(s)
}

func toCriteria(reqs []dto.GradingCriterionRequest) []domain.GradingCriterion {
	if len(reqs) == 0 {
		return nil
	}
	criteria := make([]domain.GradingCriterion, len(reqs))
	for i, r := range reqs {
		criteria[i] = domain.GradingCriterion{Name: r.Name, Weight: r.Weight}
	}
	return criteria
}

func toMembers(reqs []dto.TeamMemberRequest) []domain.TeamMember {
	if len(reqs) == 0 {
		return nil
	}
	members := make([]domain.TeamMember, len(reqs))
	for i, r := range reqs {
		members[i] = domain.TeamMember{
			Name:       r.Name,
			Email:      r.Email,
			RollNumber: r.RollNumber,
			IdentityID: r.IdentityID,
		}
	}
	return members
}
