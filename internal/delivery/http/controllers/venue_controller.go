package controllers

import (
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/listview"
)

const venuePageSize = 12

var venueMatcher = listview.FieldMatcher(func(v *domain.Venue) []string {
	return []string{v.Name, v.Slug, v.City, v.Country}
})

// VenueRequest is the request body for creating and updating venues.
type VenueRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Capacity *int   `json:"capacity"`
	MapURL   string `json:"map_url"`
}

// Validate implements Validator.
func (v VenueRequest) Validate() []string {
	var errs []string
	if v.Name == "" {
		errs = append(errs, "name is required")
	}
	if v.Capacity != nil && *v.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	return errs
}

func (v VenueRequest) fields() domain.VenueFields {
	return domain.VenueFields{
		Name:     v.Name,
		Slug:     v.Slug,
		City:     v.City,
		Country:  v.Country,
		Address:  v.Address,
		Capacity: v.Capacity,
		MapURL:   v.MapURL,
	}
}

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{Logger: logger, Service: svc}
}

// AdminList godoc
// @Summary List venues for the admin back office
// @Tags admin-venues
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/venues [get]
func (c *VenueController) AdminList(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.ListVenues(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(venues, venuePageSize, venueMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminGet godoc
// @Summary Get a venue
// @Tags admin-venues
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Success 200 {object} helpers.APIResponse "data contains the venue"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/venues/{venueID} [get]
func (c *VenueController) AdminGet(w http.ResponseWriter, r *http.Request) {
	venue, err := c.Service.GetVenueByID(r.Context(), r.PathValue("venueID"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// Create godoc
// @Summary Create a venue
// @Tags admin-venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue body VenueRequest true "Venue data"
// @Success 201 {object} helpers.APIResponse "data contains the created venue"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/venues [post]
func (c *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.CreateVenue(r.Context(), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// Update godoc
// @Summary Update a venue
// @Tags admin-venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Param venue body VenueRequest true "Venue data"
// @Success 200 {object} helpers.APIResponse "data contains the updated venue"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/venues/{venueID} [put]
func (c *VenueController) Update(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.UpdateVenue(r.Context(), r.PathValue("venueID"), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// Delete godoc
// @Summary Delete a venue
// @Tags admin-venues
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/venues/{venueID} [delete]
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteVenue(r.Context(), r.PathValue("venueID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
