package controllers

import (
	"log/slog"
	"net/http"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/delivery/http/middleware"
	"nazaaralive/internal/domain"
)

// SettingsRequest is the request body for updating site settings.
type SettingsRequest struct {
	MarqueeText       string `json:"marquee_text"`
	ContactEmail      string `json:"contact_email"`
	InstagramURL      string `json:"instagram_url"`
	BookingNotifyAddr string `json:"booking_notify_addr"`
	DefaultRegion     string `json:"default_region"`
}

// PublicSettings is the settings payload served to the public site, plus the
// visitor's resolved region.
type PublicSettings struct {
	MarqueeText  string `json:"marquee_text"`
	ContactEmail string `json:"contact_email"`
	InstagramURL string `json:"instagram_url"`
	Region       string `json:"region"`
}

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{Logger: logger, Service: svc}
}

// GetPublic godoc
// @Summary Get public site settings
// @Description Returns the marquee text, contact details and the visitor's
// region. Admin-only fields are not exposed.
// @Tags settings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the public settings"
// @Router /settings [get]
func (c *SettingsController) GetPublic(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.GetSettings(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	region, ok := middleware.RegionFromContext(r.Context())
	if !ok || region == "" {
		region = settings.DefaultRegion
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PublicSettings{
		MarqueeText:  settings.MarqueeText,
		ContactEmail: settings.ContactEmail,
		InstagramURL: settings.InstagramURL,
		Region:       region,
	})
}

// AdminGet godoc
// @Summary Get site settings
// @Tags admin-settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the settings"
// @Router /admin/settings [get]
func (c *SettingsController) AdminGet(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.GetSettings(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// Update godoc
// @Summary Update site settings
// @Tags admin-settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body SettingsRequest true "Settings data"
// @Success 200 {object} helpers.APIResponse "data contains the saved settings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/settings [put]
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	settings, err := c.Service.UpdateSettings(r.Context(), &domain.SiteSettings{
		MarqueeText:       req.MarqueeText,
		ContactEmail:      req.ContactEmail,
		InstagramURL:      req.InstagramURL,
		BookingNotifyAddr: req.BookingNotifyAddr,
		DefaultRegion:     req.DefaultRegion,
	})
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}
