package forms

// SlugSync keeps a slug field derived from a title field until the editor
// takes the slug over manually. Two states per form session: auto (initial)
// and manual (terminal). There is no path back to auto within a session, so
// a deliberately customized slug is never clobbered by later title edits.
type SlugSync struct {
	title  string
	slug   string
	manual bool
}

// NewSlugSync returns a SlugSync in the auto state with empty fields, as at
// form mount.
func NewSlugSync() *SlugSync {
	return &SlugSync{}
}

// SetTitle records a title change. While in the auto state the slug is
// re-derived from the new title; in the manual state the slug is untouched.
func (s *SlugSync) SetTitle(title string) {
	s.title = title
	if !s.manual {
		s.slug = Slugify(title)
	}
}

// SetSlug records a direct edit of the slug field. An edit that diverges
// from the derived value of the current title switches to manual.
func (s *SlugSync) SetSlug(slug string) {
	s.slug = slug
	if slug != Slugify(s.title) {
		s.manual = true
	}
}

// FocusSlug records the editor focusing the slug field. Focusing a
// non-empty slug is treated as declared intent to edit it, before any
// keystroke.
func (s *SlugSync) FocusSlug() {
	if s.slug != "" {
		s.manual = true
	}
}

// Title returns the current title.
func (s *SlugSync) Title() string { return s.title }

// Slug returns the current slug field value.
func (s *SlugSync) Slug() string { return s.slug }

// Manual reports whether the slug has been taken over manually.
func (s *SlugSync) Manual() bool { return s.manual }
