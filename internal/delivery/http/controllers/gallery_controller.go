package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/forms"
	"nazaaralive/internal/listview"
)

const (
	galleryPageSize    = 12
	maxUploadFormBytes = 12 << 20
)

var galleryMatcher = listview.FieldMatcher(func(g *domain.Gallery) []string {
	return []string{g.Title, g.Slug}
})

// GalleryRequest is the request body for creating and updating galleries.
type GalleryRequest struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	EventID   *string `json:"event_id"`
	Published bool    `json:"published"`
}

// Validate implements Validator.
func (g GalleryRequest) Validate() []string {
	var errs []string
	if g.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

func (g GalleryRequest) fields() domain.GalleryFields {
	return domain.GalleryFields{
		Title:     g.Title,
		Slug:      g.Slug,
		EventID:   g.EventID,
		Published: g.Published,
	}
}

// GalleryDetail is a gallery with its images in display order.
type GalleryDetail struct {
	Gallery *domain.Gallery        `json:"gallery"`
	Images  []*domain.GalleryImage `json:"images"`
}

type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService) *GalleryController {
	return &GalleryController{Logger: logger, Service: svc}
}

// ListPublished godoc
// @Summary List published galleries
// @Tags galleries
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the galleries"
// @Router /galleries [get]
func (c *GalleryController) ListPublished(w http.ResponseWriter, r *http.Request) {
	galleries, err := c.Service.ListPublishedGalleries(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, galleries)
}

// GetBySlug godoc
// @Summary Get a published gallery by slug
// @Tags galleries
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {object} helpers.APIResponse "data contains the gallery detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /galleries/{slug} [get]
func (c *GalleryController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	gallery, images, err := c.Service.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GalleryDetail{Gallery: gallery, Images: images})
}

// AdminList godoc
// @Summary List galleries for the admin back office
// @Tags admin-galleries
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/galleries [get]
func (c *GalleryController) AdminList(w http.ResponseWriter, r *http.Request) {
	galleries, err := c.Service.ListGalleries(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(galleries, galleryPageSize, galleryMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminGet godoc
// @Summary Get a gallery with its images
// @Tags admin-galleries
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Success 200 {object} helpers.APIResponse "data contains the gallery detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID} [get]
func (c *GalleryController) AdminGet(w http.ResponseWriter, r *http.Request) {
	gallery, images, err := c.Service.GetGalleryByID(r.Context(), r.PathValue("galleryID"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GalleryDetail{Gallery: gallery, Images: images})
}

// Create godoc
// @Summary Create a gallery
// @Tags admin-galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gallery body GalleryRequest true "Gallery data"
// @Success 201 {object} helpers.APIResponse "data contains the created gallery"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/galleries [post]
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	var req GalleryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gallery, err := c.Service.CreateGallery(r.Context(), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, gallery)
}

// Update godoc
// @Summary Update a gallery
// @Tags admin-galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Param gallery body GalleryRequest true "Gallery data"
// @Success 200 {object} helpers.APIResponse "data contains the updated gallery"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID} [put]
func (c *GalleryController) Update(w http.ResponseWriter, r *http.Request) {
	var req GalleryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gallery, err := c.Service.UpdateGallery(r.Context(), r.PathValue("galleryID"), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gallery)
}

// Delete godoc
// @Summary Delete a gallery and its stored images
// @Tags admin-galleries
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID} [delete]
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteGallery(r.Context(), r.PathValue("galleryID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// UploadImage godoc
// @Summary Upload an image into a gallery
// @Description Accepts multipart form data with an "image" file and an
// optional "caption" field. The image lands at the end of the gallery order.
// @Tags admin-galleries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Param image formData file true "Image file (JPEG, PNG or GIF)"
// @Param caption formData string false "Caption"
// @Success 201 {object} helpers.APIResponse "data contains the stored image"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID}/images [post]
func (c *GalleryController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadFormBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read image file")
		return
	}
	image, err := c.Service.UploadImage(r.Context(), r.PathValue("galleryID"), header.Filename, r.FormValue("caption"), data)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, image)
}

// RemoveImage godoc
// @Summary Remove an image from a gallery
// @Description The remaining images close the gap and keep dense order indices.
// @Tags admin-galleries
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID}/images/{imageID} [delete]
func (c *GalleryController) RemoveImage(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.RemoveImage(r.Context(), r.PathValue("galleryID"), r.PathValue("imageID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ReorderImages godoc
// @Summary Reorder a gallery's images
// @Description Accepts the admin form's array-indexed fields (images[0][id],
// images[0][caption], ...). The submitted row order becomes the stored order.
// @Tags admin-galleries
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param galleryID path string true "Gallery ID"
// @Success 200 {object} helpers.APIResponse "data contains the images in new order"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/galleries/{galleryID}/images/order [put]
func (c *GalleryController) ReorderImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form body")
		return
	}
	rows := forms.DecodeIndexed(r.Form, "images")
	order := make([]domain.GalleryImageOrder, 0, len(rows))
	for _, row := range rows {
		order = append(order, domain.GalleryImageOrder{ImageID: row["id"], Caption: row["caption"]})
	}
	images, err := c.Service.ReorderImages(r.Context(), r.PathValue("galleryID"), order)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, images)
}
