package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nazaaralive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGalleryService records the last upload and reorder call.
type fakeGalleryService struct {
	uploadedName    string
	uploadedCaption string
	uploadedData    []byte
	reorder         []domain.GalleryImageOrder
	err             error
}

func (f *fakeGalleryService) CreateGallery(ctx context.Context, fields domain.GalleryFields) (*domain.Gallery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Gallery{ID: "gal-1", Title: fields.Title}, nil
}

func (f *fakeGalleryService) GetGalleryByID(ctx context.Context, id string) (*domain.Gallery, []*domain.GalleryImage, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return &domain.Gallery{ID: id}, []*domain.GalleryImage{}, nil
}

func (f *fakeGalleryService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Gallery, []*domain.GalleryImage, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return &domain.Gallery{Slug: slug, Published: true}, []*domain.GalleryImage{}, nil
}

func (f *fakeGalleryService) ListGalleries(ctx context.Context) ([]*domain.Gallery, error) {
	return []*domain.Gallery{}, f.err
}

func (f *fakeGalleryService) ListPublishedGalleries(ctx context.Context) ([]*domain.Gallery, error) {
	return []*domain.Gallery{}, f.err
}

func (f *fakeGalleryService) UpdateGallery(ctx context.Context, id string, fields domain.GalleryFields) (*domain.Gallery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Gallery{ID: id, Title: fields.Title}, nil
}

func (f *fakeGalleryService) DeleteGallery(ctx context.Context, id string) error { return f.err }

func (f *fakeGalleryService) UploadImage(ctx context.Context, galleryID, filename, caption string, data []byte) (*domain.GalleryImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploadedName = filename
	f.uploadedCaption = caption
	f.uploadedData = data
	return &domain.GalleryImage{ID: "img-1", GalleryID: galleryID, Caption: caption}, nil
}

func (f *fakeGalleryService) RemoveImage(ctx context.Context, galleryID, imageID string) error {
	return f.err
}

func (f *fakeGalleryService) ReorderImages(ctx context.Context, galleryID string, order []domain.GalleryImageOrder) ([]*domain.GalleryImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reorder = order
	return []*domain.GalleryImage{}, nil
}

func TestGalleryController_UploadImage(t *testing.T) {
	svc := &fakeGalleryService{}
	ctrl := NewGalleryController(testLogger(), svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "crowd.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("caption", "front row"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/galleries/gal-1/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetPathValue("galleryID", "gal-1")
	rec := httptest.NewRecorder()
	ctrl.UploadImage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "crowd.jpg", svc.uploadedName)
	assert.Equal(t, "front row", svc.uploadedCaption)
	assert.Equal(t, []byte("jpeg-bytes"), svc.uploadedData)

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("caption", "no file"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/admin/galleries/gal-1/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.SetPathValue("galleryID", "gal-1")
		rec := httptest.NewRecorder()
		ctrl.UploadImage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGalleryController_ReorderImages(t *testing.T) {
	svc := &fakeGalleryService{}
	ctrl := NewGalleryController(testLogger(), svc)

	form := url.Values{}
	form.Set("images[0][id]", "img-3")
	form.Set("images[0][caption]", "closing set")
	form.Set("images[1][id]", "img-1")

	req := httptest.NewRequest(http.MethodPut, "/admin/galleries/gal-1/images/order", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("galleryID", "gal-1")
	rec := httptest.NewRecorder()
	ctrl.ReorderImages(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.reorder, 2)
	assert.Equal(t, "img-3", svc.reorder[0].ImageID)
	assert.Equal(t, "closing set", svc.reorder[0].Caption)
	assert.Equal(t, "img-1", svc.reorder[1].ImageID)
}
