package controllers

import (
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/listview"
)

const djPageSize = 16

var djMatcher = listview.FieldMatcher(func(d *domain.DJ) []string {
	return []string{d.Name, d.Slug, d.Title, d.Specialty}
})

// DJRequest is the request body for creating and updating DJs.
type DJRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Specialty string `json:"specialty"`
	Instagram string `json:"instagram"`
	ImageURL  string `json:"image_url"`
	Resident  bool   `json:"resident"`
}

// Validate implements Validator.
func (d DJRequest) Validate() []string {
	var errs []string
	if d.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

func (d DJRequest) fields() domain.DJFields {
	return domain.DJFields{
		Name:      d.Name,
		Slug:      d.Slug,
		Title:     d.Title,
		Specialty: d.Specialty,
		Instagram: d.Instagram,
		ImageURL:  d.ImageURL,
		Resident:  d.Resident,
	}
}

type DJController struct {
	Logger  *slog.Logger
	Service domain.DJService
}

func NewDJController(logger *slog.Logger, svc domain.DJService) *DJController {
	return &DJController{Logger: logger, Service: svc}
}

// ListPublic godoc
// @Summary List DJs for the public site
// @Tags djs
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the DJs"
// @Router /djs [get]
func (c *DJController) ListPublic(w http.ResponseWriter, r *http.Request) {
	djs, err := c.Service.ListDJs(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, djs)
}

// AdminList godoc
// @Summary List DJs for the admin back office
// @Tags admin-djs
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/djs [get]
func (c *DJController) AdminList(w http.ResponseWriter, r *http.Request) {
	djs, err := c.Service.ListDJs(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(djs, djPageSize, djMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminGet godoc
// @Summary Get a DJ
// @Tags admin-djs
// @Produce json
// @Security BearerAuth
// @Param djID path string true "DJ ID"
// @Success 200 {object} helpers.APIResponse "data contains the DJ"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/djs/{djID} [get]
func (c *DJController) AdminGet(w http.ResponseWriter, r *http.Request) {
	dj, err := c.Service.GetDJByID(r.Context(), r.PathValue("djID"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dj)
}

// Create godoc
// @Summary Create a DJ
// @Tags admin-djs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dj body DJRequest true "DJ data"
// @Success 201 {object} helpers.APIResponse "data contains the created DJ"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/djs [post]
func (c *DJController) Create(w http.ResponseWriter, r *http.Request) {
	var req DJRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	dj, err := c.Service.CreateDJ(r.Context(), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, dj)
}

// Update godoc
// @Summary Update a DJ
// @Tags admin-djs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param djID path string true "DJ ID"
// @Param dj body DJRequest true "DJ data"
// @Success 200 {object} helpers.APIResponse "data contains the updated DJ"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/djs/{djID} [put]
func (c *DJController) Update(w http.ResponseWriter, r *http.Request) {
	var req DJRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	dj, err := c.Service.UpdateDJ(r.Context(), r.PathValue("djID"), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dj)
}

// Delete godoc
// @Summary Delete a DJ
// @Tags admin-djs
// @Produce json
// @Security BearerAuth
// @Param djID path string true "DJ ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/djs/{djID} [delete]
func (c *DJController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteDJ(r.Context(), r.PathValue("djID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
