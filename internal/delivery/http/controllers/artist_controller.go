package controllers

import (
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/listview"
)

const artistPageSize = 16

var artistMatcher = listview.FieldMatcher(func(a *domain.Artist) []string {
	return []string{a.Name, a.Slug, a.Instagram}
})

// ArtistRequest is the request body for creating and updating artists.
type ArtistRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"image_url"`
	Instagram string `json:"instagram"`
}

// Validate implements Validator.
func (a ArtistRequest) Validate() []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

func (a ArtistRequest) fields() domain.ArtistFields {
	return domain.ArtistFields{
		Name:      a.Name,
		Slug:      a.Slug,
		Bio:       a.Bio,
		ImageURL:  a.ImageURL,
		Instagram: a.Instagram,
	}
}

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService) *ArtistController {
	return &ArtistController{Logger: logger, Service: svc}
}

// AdminList godoc
// @Summary List artists for the admin back office
// @Tags admin-artists
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/artists [get]
func (c *ArtistController) AdminList(w http.ResponseWriter, r *http.Request) {
	artists, err := c.Service.ListArtists(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(artists, artistPageSize, artistMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminGet godoc
// @Summary Get an artist
// @Tags admin-artists
// @Produce json
// @Security BearerAuth
// @Param artistID path string true "Artist ID"
// @Success 200 {object} helpers.APIResponse "data contains the artist"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/artists/{artistID} [get]
func (c *ArtistController) AdminGet(w http.ResponseWriter, r *http.Request) {
	artist, err := c.Service.GetArtistByID(r.Context(), r.PathValue("artistID"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}

// Create godoc
// @Summary Create an artist
// @Tags admin-artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artist body ArtistRequest true "Artist data"
// @Success 201 {object} helpers.APIResponse "data contains the created artist"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/artists [post]
func (c *ArtistController) Create(w http.ResponseWriter, r *http.Request) {
	var req ArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	artist, err := c.Service.CreateArtist(r.Context(), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, artist)
}

// Update godoc
// @Summary Update an artist
// @Tags admin-artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artistID path string true "Artist ID"
// @Param artist body ArtistRequest true "Artist data"
// @Success 200 {object} helpers.APIResponse "data contains the updated artist"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/artists/{artistID} [put]
func (c *ArtistController) Update(w http.ResponseWriter, r *http.Request) {
	var req ArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	artist, err := c.Service.UpdateArtist(r.Context(), r.PathValue("artistID"), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}

// Delete godoc
// @Summary Delete an artist
// @Tags admin-artists
// @Produce json
// @Security BearerAuth
// @Param artistID path string true "Artist ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/artists/{artistID} [delete]
func (c *ArtistController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteArtist(r.Context(), r.PathValue("artistID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
