package controllers

import (
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/delivery/http/middleware"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/listview"
)

const bookingPageSize = 20

var bookingMatcher = listview.FieldMatcher(func(b *domain.BookingInquiry) []string {
	return []string{b.Name, b.Email, b.City, b.EventType, b.Status}
})

// BookingRequest is the request body for POST /bookings.
type BookingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EventType     string `json:"event_type"`
	City          string `json:"city"`
	Message       string `json:"message"`
	PreferredDate string `json:"preferred_date"`
}

// Validate implements Validator.
func (b BookingRequest) Validate() []string {
	var errs []string
	if b.Name == "" {
		errs = append(errs, "name is required")
	}
	if b.Email == "" {
		errs = append(errs, "email is required")
	}
	if b.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// BookingStatusRequest is the request body for updating an inquiry's status.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (b BookingStatusRequest) Validate() []string {
	if b.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Submit a booking inquiry
// @Description Stores the inquiry and notifies the configured address. The
// visitor's resolved region is recorded as the city when none is given.
// @Tags bookings
// @Accept json
// @Produce json
// @Param inquiry body BookingRequest true "Inquiry data"
// @Success 201 {object} helpers.APIResponse "data contains the stored inquiry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /bookings [post]
func (c *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	inquiry := &domain.BookingInquiry{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		EventType:     req.EventType,
		City:          req.City,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
	}
	if inquiry.City == "" {
		if region, ok := middleware.RegionFromContext(r.Context()); ok {
			inquiry.City = region
		}
	}
	if err := c.Service.SubmitInquiry(r.Context(), inquiry); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, inquiry)
}

// AdminList godoc
// @Summary List booking inquiries
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/bookings [get]
func (c *BookingController) AdminList(w http.ResponseWriter, r *http.Request) {
	inquiries, err := c.Service.ListInquiries(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(inquiries, bookingPageSize, bookingMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary Update a booking inquiry's status
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inquiryID path string true "Inquiry ID"
// @Param status body BookingStatusRequest true "New status (new, contacted, closed)"
// @Success 200 {object} helpers.APIResponse "data contains the updated inquiry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/bookings/{inquiryID}/status [patch]
func (c *BookingController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req BookingStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	inquiry, err := c.Service.UpdateInquiryStatus(r.Context(), r.PathValue("inquiryID"), req.Status)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inquiry)
}
