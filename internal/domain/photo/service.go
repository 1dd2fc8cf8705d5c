package photo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const (
	// MaxFileBytes — стеля розміру одного файлу (10 MiB).
	MaxFileBytes = 10 * 1024 * 1024

	// MaxPhotos — місткість колекції; найстаріші виселяються.
	MaxPhotos = 10

	// evictOnQuota — скільки найстаріших фото скинути при помилці квоти.
	evictOnQuota = 3
)

// Upload — один сирий файл із батчу завантаження.
type Upload struct {
	Name  string
	Title string
	Data  []byte
}

// FileError — відмова по одному файлу; батч при цьому продовжується.
type FileError struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

func (f FileError) Error() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

type IngestResult struct {
	Accepted []Photo
	Rejected []FileError
}

type Servicer interface {
	Ingest(files []Upload) (IngestResult, error)
	List() []Photo
	Delete(id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "photo_service"),
		now:  time.Now,
	}
}

// Ingest проганяє батч через перевірку розміру, стискання і запис у
// колекцію. Помилка одного файлу не зриває решту батчу; фатальною є
// лише відмова фінального запису.
func (s *Service) Ingest(files []Upload) (IngestResult, error) {
	var res IngestResult

	for _, f := range files {
		entry, err := s.prepare(f)
		if err != nil {
			s.log.Warn("file rejected", "file", f.Name, "error", err)
			res.Rejected = append(res.Rejected, FileError{Name: f.Name, Err: err})
			continue
		}
		res.Accepted = append(res.Accepted, entry)
	}

	if len(res.Accepted) == 0 {
		return res, nil
	}

	if err := s.commit(res.Accepted); err != nil {
		return IngestResult{Rejected: res.Rejected}, err
	}

	s.log.Info("photos ingested",
		"accepted", len(res.Accepted),
		"rejected", len(res.Rejected),
	)

	return res, nil
}

func (s *Service) prepare(f Upload) (Photo, error) {
	if int64(len(f.Data)) > MaxFileBytes {
		return Photo{}, ErrFileTooLarge
	}

	encoded, err := Compress(f.Data)
	if err != nil {
		return Photo{}, err
	}

	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	}

	now := s.now()
	return Photo{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		ImageURL:  encoded,
		Title:     title,
		Timestamp: now,
	}, nil
}

// commit додає нові фото на початок колекції (найновіші першими),
// завчасно обрізає до місткості і перевіряє квоту пробним записом.
// При помилці квоти скидає найстаріші фото і повторює один раз.
func (s *Service) commit(entries []Photo) error {
	existing, err := s.repo.List()
	if err != nil {
		existing = nil
	}

	merged := make([]Photo, 0, len(entries)+len(existing))
	for i := len(entries) - 1; i >= 0; i-- {
		merged = append(merged, entries[i])
	}
	merged = append(merged, existing...)

	if len(merged) > MaxPhotos {
		merged = merged[:MaxPhotos]
	}

	if err := s.repo.Probe(merged); err != nil {
		if !errors.Is(err, ErrStorageFull) {
			return fmt.Errorf("probe photo collection: %w", err)
		}

		drop := evictOnQuota
		if drop > len(merged) {
			drop = len(merged)
		}
		merged = merged[:len(merged)-drop]
		s.log.Warn("storage quota hit, evicting oldest photos", "dropped", drop)

		if err := s.repo.Probe(merged); err != nil {
			return ErrStorageFull
		}
	}

	if err := s.repo.Replace(merged); err != nil {
		if errors.Is(err, ErrStorageFull) {
			return ErrStorageFull
		}
		return fmt.Errorf("save photo collection: %w", err)
	}

	return nil
}

func (s *Service) List() []Photo {
	photos, err := s.repo.List()
	if err != nil {
		s.log.Debug("photo collection unavailable", "error", err)
		return nil
	}
	return photos
}

func (s *Service) Delete(id string) error {
	photos, err := s.repo.List()
	if err != nil {
		return fmt.Errorf("load photo collection: %w", err)
	}

	kept := photos[:0]
	for _, p := range photos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.repo.Replace(kept); err != nil {
		return fmt.Errorf("save photo collection: %w", err)
	}
	return nil
}
