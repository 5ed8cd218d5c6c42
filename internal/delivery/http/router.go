package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"nazaaralive/internal/delivery/http/controllers"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Events   *controllers.EventController
	Venues   *controllers.VenueController
	Artists  *controllers.ArtistController
	DJs      *controllers.DJController
	Gallery  *controllers.GalleryController
	Bookings *controllers.BookingController
	Settings *controllers.SettingsController
}

// NewRouter initializes the HTTP router with all application routes.
// Public routes run behind the region middleware; admin routes require a
// valid bearer token.
func NewRouter(c Controllers,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
	withRegion func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public site
	mux.HandleFunc("GET /events", withRegion(c.Events.ListPublished))
	mux.HandleFunc("GET /events/{slug}", withRegion(c.Events.GetBySlug))
	mux.HandleFunc("GET /galleries", withRegion(c.Gallery.ListPublished))
	mux.HandleFunc("GET /galleries/{slug}", withRegion(c.Gallery.GetBySlug))
	mux.HandleFunc("GET /djs", withRegion(c.DJs.ListPublic))
	mux.HandleFunc("GET /settings", withRegion(c.Settings.GetPublic))
	mux.HandleFunc("POST /bookings", withRegion(c.Bookings.Submit))

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /admin/me", requireAuth(c.Auth.Me))

	// Admin: events
	mux.HandleFunc("GET /admin/events", requireAuth(c.Events.AdminList))
	mux.HandleFunc("POST /admin/events", requireAuth(c.Events.Create))
	mux.HandleFunc("GET /admin/events/{eventID}", requireAuth(c.Events.AdminGet))
	mux.HandleFunc("PUT /admin/events/{eventID}", requireAuth(c.Events.Update))
	mux.HandleFunc("DELETE /admin/events/{eventID}", requireAuth(c.Events.Delete))
	mux.HandleFunc("PUT /admin/events/{eventID}/stops", requireAuth(c.Events.ReplaceStops))
	mux.HandleFunc("PUT /admin/events/{eventID}/lineup", requireAuth(c.Events.ReplaceLineup))

	// Admin: venues
	mux.HandleFunc("GET /admin/venues", requireAuth(c.Venues.AdminList))
	mux.HandleFunc("POST /admin/venues", requireAuth(c.Venues.Create))
	mux.HandleFunc("GET /admin/venues/{venueID}", requireAuth(c.Venues.AdminGet))
	mux.HandleFunc("PUT /admin/venues/{venueID}", requireAuth(c.Venues.Update))
	mux.HandleFunc("DELETE /admin/venues/{venueID}", requireAuth(c.Venues.Delete))

	// Admin: artists
	mux.HandleFunc("GET /admin/artists", requireAuth(c.Artists.AdminList))
	mux.HandleFunc("POST /admin/artists", requireAuth(c.Artists.Create))
	mux.HandleFunc("GET /admin/artists/{artistID}", requireAuth(c.Artists.AdminGet))
	mux.HandleFunc("PUT /admin/artists/{artistID}", requireAuth(c.Artists.Update))
	mux.HandleFunc("DELETE /admin/artists/{artistID}", requireAuth(c.Artists.Delete))

	// Admin: DJs
	mux.HandleFunc("GET /admin/djs", requireAuth(c.DJs.AdminList))
	mux.HandleFunc("POST /admin/djs", requireAuth(c.DJs.Create))
	mux.HandleFunc("GET /admin/djs/{djID}", requireAuth(c.DJs.AdminGet))
	mux.HandleFunc("PUT /admin/djs/{djID}", requireAuth(c.DJs.Update))
	mux.HandleFunc("DELETE /admin/djs/{djID}", requireAuth(c.DJs.Delete))

	// Admin: galleries
	mux.HandleFunc("GET /admin/galleries", requireAuth(c.Gallery.AdminList))
	mux.HandleFunc("POST /admin/galleries", requireAuth(c.Gallery.Create))
	mux.HandleFunc("GET /admin/galleries/{galleryID}", requireAuth(c.Gallery.AdminGet))
	mux.HandleFunc("PUT /admin/galleries/{galleryID}", requireAuth(c.Gallery.Update))
	mux.HandleFunc("DELETE /admin/galleries/{galleryID}", requireAuth(c.Gallery.Delete))
	mux.HandleFunc("POST /admin/galleries/{galleryID}/images", requireAuth(c.Gallery.UploadImage))
	mux.HandleFunc("PUT /admin/galleries/{galleryID}/images/order", requireAuth(c.Gallery.ReorderImages))
	mux.HandleFunc("DELETE /admin/galleries/{galleryID}/images/{imageID}", requireAuth(c.Gallery.RemoveImage))

	// Admin: bookings and settings
	mux.HandleFunc("GET /admin/bookings", requireAuth(c.Bookings.AdminList))
	mux.HandleFunc("PATCH /admin/bookings/{inquiryID}/status", requireAuth(c.Bookings.UpdateStatus))
	mux.HandleFunc("GET /admin/settings", requireAuth(c.Settings.AdminGet))
	mux.HandleFunc("PUT /admin/settings", requireAuth(c.Settings.Update))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
