package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
)

type fakePhotos struct {
	photos []photo.Photo
}

func (f *fakePhotos) Ingest([]photo.Upload) (photo.IngestResult, error) {
	return photo.IngestResult{}, nil
}
func (f *fakePhotos) List() []photo.Photo { return f.photos }
func (f *fakePhotos) Delete(string) error { return nil }

type fakeLister struct {
	entries []github.Entry
	err     error
}

func (f *fakeLister) ListDir(context.Context, github.Config, string) ([]github.Entry, error) {
	return f.entries, f.err
}

type fakeConfigRepo struct {
	cfg *github.Config
	err error
}

func (f *fakeConfigRepo) Load() (*github.Config, error) { return f.cfg, f.err }
func (f *fakeConfigRepo) Save(*github.Config) error     { return nil }

func newGalleryService(photos *fakePhotos, lister *fakeLister, cfgRepo *fakeConfigRepo) *Service {
	return NewService(photos, lister, cfgRepo, "public/gallery_images", slog.Default())
}

func TestService_LocalPhotosComeFirst(t *testing.T) {
	photos := &fakePhotos{photos: []photo.Photo{
		{ID: "p1", ImageURL: "data:image/jpeg;base64,xxx", Title: "Моя чашка"},
	}}
	lister := &fakeLister{entries: []github.Entry{
		{Name: "candle.jpg", SHA: "abc"},
	}}
	cfgRepo := &fakeConfigRepo{cfg: &github.Config{Owner: "owner", Repo: "site"}}

	items := newGalleryService(photos, lister, cfgRepo).Items(context.Background())
	require.Len(t, items, 2)

	assert.True(t, items[0].Local)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Моя чашка", items[0].Title)

	assert.False(t, items[1].Local)
	assert.Equal(t, "abc", items[1].ID)
	assert.Equal(t, "./gallery_images/candle.jpg", items[1].ImageURL)
}

func TestService_FallsBackToDefaultsWhenUnconfigured(t *testing.T) {
	cases := []struct {
		name    string
		cfgRepo *fakeConfigRepo
	}{
		{"no stored config", &fakeConfigRepo{err: errors.New("not found")}},
		{"empty owner", &fakeConfigRepo{cfg: &github.Config{Repo: "site"}}},
		{"empty repo", &fakeConfigRepo{cfg: &github.Config{Owner: "owner"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newGalleryService(&fakePhotos{}, &fakeLister{}, tc.cfgRepo)
			assert.Equal(t, Defaults(), svc.Items(context.Background()))
		})
	}
}

func TestService_FallsBackToDefaultsOnListingError(t *testing.T) {
	lister := &fakeLister{err: errors.New("network down")}
	cfgRepo := &fakeConfigRepo{cfg: &github.Config{Owner: "owner", Repo: "site"}}

	items := newGalleryService(&fakePhotos{}, lister, cfgRepo).Items(context.Background())
	assert.Equal(t, Defaults(), items)
}

func TestService_FallsBackToDefaultsWhenListingHasNoImages(t *testing.T) {
	lister := &fakeLister{entries: []github.Entry{
		{Name: "README.md", SHA: "1"},
		{Name: "notes.txt", SHA: "2"},
	}}
	cfgRepo := &fakeConfigRepo{cfg: &github.Config{Owner: "owner", Repo: "site"}}

	items := newGalleryService(&fakePhotos{}, lister, cfgRepo).Items(context.Background())
	assert.Equal(t, Defaults(), items)
}

func TestService_FiltersNonImageFiles(t *testing.T) {
	lister := &fakeLister{entries: []github.Entry{
		{Name: "a.jpg", SHA: "1"},
		{Name: "b.JPEG", SHA: "2"},
		{Name: "c.webp", SHA: "3"},
		{Name: "d.gif", SHA: "4"},
		{Name: "e.png", SHA: "5"},
		{Name: "README.md", SHA: "6"},
		{Name: "f.svg", SHA: "7"},
	}}
	cfgRepo := &fakeConfigRepo{cfg: &github.Config{Owner: "owner", Repo: "site"}}

	items := newGalleryService(&fakePhotos{}, lister, cfgRepo).Items(context.Background())
	require.Len(t, items, 5)
	for _, it := range items {
		assert.NotEqual(t, "6", it.ID)
		assert.NotEqual(t, "7", it.ID)
	}
}

func TestTitleFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"candle.jpg", "candle"},
		{"epoxy-keychain.png", "epoxy keychain"},
		{"gips_figure.webp", "gips figure"},
		{"my-photo_final.jpeg", "my photo final"},
		{"%D1%81%D0%B2%D1%96%D1%87%D0%BA%D0%B0.jpg", "свічка"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, titleFromName(tc.in), tc.in)
	}
}
