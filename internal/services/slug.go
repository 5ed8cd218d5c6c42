package services

import (
	"context"
	"fmt"

	"nazaaralive/internal/domain"
	"nazaaralive/internal/forms"
)

// slugChecker is the subset of a repository used for slug uniqueness.
type slugChecker interface {
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// resolveSlug derives the final slug for a titled record. An empty slug is
// derived from the title; a supplied slug is normalized as-is. The result is
// checked for uniqueness against repo, excluding excludeID.
func resolveSlug(ctx context.Context, repo slugChecker, title, slug, excludeID string) (string, error) {
	if slug == "" {
		slug = forms.Slugify(title)
	} else {
		slug = forms.Slugify(slug)
	}
	if slug == "" {
		return "", domain.ErrInvalidInput
	}
	exists, err := repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return "", domain.ErrDuplicateSlug
	}
	return slug, nil
}
