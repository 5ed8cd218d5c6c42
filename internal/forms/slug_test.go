package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Nazaara Live", want: "nazaara-live"},
		{name: "punctuation dropped", title: "DJ Rishi's Night!!", want: "dj-rishis-night"},
		{name: "runs and underscores collapse", title: "  Multiple   Spaces_here  ", want: "multiple-spaces-here"},
		{name: "existing hyphens kept", title: "sold-out show", want: "sold-out-show"},
		{name: "mixed case", title: "Bollywood NIGHTS 2025", want: "bollywood-nights-2025"},
		{name: "empty", title: "", want: ""},
		{name: "no alphanumeric content", title: "!!! ???", want: ""},
		{name: "non-ascii letters dropped", title: "Caféولیمہ", want: "caf"},
		{name: "edge hyphens stripped", title: "-wrapped-", want: "wrapped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	titles := []string{
		"Nazaara Live",
		"DJ Rishi's Night!!",
		"  Multiple   Spaces_here  ",
		"a--b",
		"",
		"عرس 2025",
	}
	for _, title := range titles {
		once := Slugify(title)
		require.Equal(t, once, Slugify(once), "title %q", title)
	}
}

func TestSlugSync_AutoThenManual(t *testing.T) {
	s := NewSlugSync()

	s.SetTitle("Nazaara Live")
	require.Equal(t, "nazaara-live", s.Slug())
	require.False(t, s.Manual())

	// Direct slug edit diverging from the derived value freezes it.
	s.SetSlug("my-custom-slug")
	require.True(t, s.Manual())

	s.SetTitle("Nazaara Live 2")
	assert.Equal(t, "my-custom-slug", s.Slug(), "title edits must not touch a manual slug")
}

func TestSlugSync_EditMatchingDerivedStaysAuto(t *testing.T) {
	s := NewSlugSync()
	s.SetTitle("Summer Tour")
	// Retyping exactly the derived value is not a takeover.
	s.SetSlug("summer-tour")
	require.False(t, s.Manual())

	s.SetTitle("Winter Tour")
	assert.Equal(t, "winter-tour", s.Slug())
}

func TestSlugSync_FocusNonEmptySlugIsManual(t *testing.T) {
	s := NewSlugSync()
	s.SetTitle("Nazaara Live")

	s.FocusSlug()
	require.True(t, s.Manual())

	s.SetTitle("Renamed")
	assert.Equal(t, "nazaara-live", s.Slug())
}

func TestSlugSync_FocusEmptySlugStaysAuto(t *testing.T) {
	s := NewSlugSync()
	s.FocusSlug()
	require.False(t, s.Manual())

	s.SetTitle("First Title")
	assert.Equal(t, "first-title", s.Slug())
}
