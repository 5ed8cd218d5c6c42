package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"nazaaralive/internal/delivery/http/helpers"
	"nazaaralive/internal/domain"
	"nazaaralive/internal/forms"
	"nazaaralive/internal/listview"
)

const eventPageSize = 12

// clockRegex matches a 24h HH:MM clock value.
var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// eventMatcher drives the admin event list's free-text filter.
var eventMatcher = listview.FieldMatcher(func(e *domain.Event) []string {
	return []string{e.Title, e.Slug, e.Tagline}
})

// EventRequest is the request body for creating and updating events. Start
// and end are submitted as separate calendar date and wall-clock fields, the
// way the admin form captures them; the server combines them into instants.
type EventRequest struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Tagline      string  `json:"tagline"`
	Description  string  `json:"description"`
	StartDate    string  `json:"start_date"`
	StartClock   string  `json:"start_clock"`
	EndDate      string  `json:"end_date"`
	EndClock     string  `json:"end_clock"`
	VenueID      *string `json:"venue_id"`
	HeroImageURL string  `json:"hero_image_url"`
	TicketURL    string  `json:"ticket_url"`
	Published    bool    `json:"published"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "title is required")
	}
	errs = append(errs, validateDateClock("start", e.StartDate, e.StartClock)...)
	errs = append(errs, validateDateClock("end", e.EndDate, e.EndClock)...)
	return errs
}

func validateDateClock(name, date, clock string) []string {
	var errs []string
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			errs = append(errs, name+"_date must be YYYY-MM-DD")
		}
		if clock == "" {
			errs = append(errs, name+"_clock is required when "+name+"_date is set")
		}
	}
	if clock != "" && !clockRegex.MatchString(clock) {
		errs = append(errs, name+"_clock must be HH:MM")
	}
	return errs
}

// combineDateClock turns a YYYY-MM-DD date and HH:MM clock into the stored
// instant string. An empty date yields "".
func combineDateClock(date, clock string) string {
	if date == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return forms.CombineInstant(&d, clock)
}

func (e EventRequest) fields() domain.EventFields {
	return domain.EventFields{
		Title:        e.Title,
		Slug:         e.Slug,
		Tagline:      e.Tagline,
		Description:  e.Description,
		StartTime:    combineDateClock(e.StartDate, e.StartClock),
		EndTime:      combineDateClock(e.EndDate, e.EndClock),
		VenueID:      e.VenueID,
		HeroImageURL: e.HeroImageURL,
		TicketURL:    e.TicketURL,
		Published:    e.Published,
	}
}

// EventDetail is an event with its tour stops and lineup.
type EventDetail struct {
	Event  *domain.Event      `json:"event"`
	Stops  []*domain.TourStop `json:"stops"`
	Lineup []*domain.ArtistRef `json:"lineup"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// ListPublished godoc
// @Summary List published events
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Router /events [get]
func (c *EventController) ListPublished(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListPublishedEvents(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetBySlug godoc
// @Summary Get a published event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug} [get]
func (c *EventController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	event, stops, lineup, err := c.Service.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetail{Event: event, Stops: stops, Lineup: lineup})
}

// AdminList godoc
// @Summary List events for the admin back office
// @Description Filters by q across title, slug and tagline, then paginates.
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter text"
// @Param page query int false "Page number"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Router /admin/events [get]
func (c *EventController) AdminList(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	resp := helpers.NewListResponse(events, eventPageSize, eventMatcher, helpers.ParseListParams(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminGet godoc
// @Summary Get an event with stops and lineup
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [get]
func (c *EventController) AdminGet(w http.ResponseWriter, r *http.Request) {
	event, stops, lineup, err := c.Service.GetEventByID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetail{Event: event, Stops: stops, Lineup: lineup})
}

// Create godoc
// @Summary Create an event
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("eventID"), req.fields())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID")); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ReplaceStops godoc
// @Summary Replace an event's tour stops
// @Description Accepts the admin form's array-indexed fields (stops[0][city],
// stops[0][startDate], ...). Rows are stored in submitted order with dense
// zero-based indices.
// @Tags admin-events
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the stored stops"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID}/stops [put]
func (c *EventController) ReplaceStops(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form body")
		return
	}
	rows := forms.DecodeIndexed(r.Form, "stops")
	inputs := make([]domain.TourStopInput, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, domain.TourStopInput{
			City:      row["city"],
			Country:   row["country"],
			VenueID:   row["venueId"],
			StartTime: combineDateClock(row["startDate"], row["startClock"]),
			EndTime:   combineDateClock(row["endDate"], row["endClock"]),
			TicketURL: row["ticketUrl"],
		})
	}
	stops, err := c.Service.ReplaceStops(r.Context(), r.PathValue("eventID"), inputs)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stops)
}

// ReplaceLineup godoc
// @Summary Replace an event's artist lineup
// @Description Accepts the admin form's array-indexed fields (artists[0][id],
// artists[1][id], ...). Unknown artist ids are dropped; the rest are stored
// in submitted order with dense zero-based indices.
// @Tags admin-events
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the stored lineup"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID}/lineup [put]
func (c *EventController) ReplaceLineup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form body")
		return
	}
	rows := forms.DecodeIndexed(r.Form, "artists")
	inputs := make([]domain.ArtistRefInput, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, domain.ArtistRefInput{ArtistID: row["id"]})
	}
	refs, err := c.Service.ReplaceLineup(r.Context(), r.PathValue("eventID"), inputs)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, refs)
}
