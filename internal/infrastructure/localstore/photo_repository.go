package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
)

const (
	photosKey = "productPhotos_v2"

	// legacyPhotosKey — ключ старої схеми. Читається один раз при
	// ініціалізації і переноситься під поточний ключ; стаціонарний код
	// його більше не торкається.
	legacyPhotosKey = "productPhotos"
)

type PhotoRepository struct {
	store *Store
	log   *slog.Logger
}

func NewPhotoRepository(store *Store, log *slog.Logger) (*PhotoRepository, error) {
	r := &PhotoRepository{
		store: store,
		log:   log.With("component", "photo_repository"),
	}
	if err := r.migrateLegacy(); err != nil {
		return nil, fmt.Errorf("migrate legacy photos: %w", err)
	}
	return r, nil
}

// migrateLegacy переносить колекцію зі старого ключа під поточний.
// Якщо поточний ключ вже заповнений, стара колекція просто видаляється.
func (r *PhotoRepository) migrateLegacy() error {
	raw, err := r.store.Get(legacyPhotosKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	hasCurrent, err := r.store.Has(photosKey)
	if err != nil {
		return err
	}

	if !hasCurrent {
		var photos []photo.Photo
		if err := json.Unmarshal(raw, &photos); err != nil {
			// нечитабельна стара колекція не блокує запуск
			r.log.Warn("legacy photo collection is corrupt, dropping it", "error", err)
			return r.store.Delete(legacyPhotosKey)
		}
		if err := r.Replace(photos); err != nil {
			return err
		}
		r.log.Info("migrated legacy photo collection", "photos", len(photos))
	}

	return r.store.Delete(legacyPhotosKey)
}

func (r *PhotoRepository) List() ([]photo.Photo, error) {
	raw, err := r.store.Get(photosKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var photos []photo.Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("parse photo collection: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) Replace(photos []photo.Photo) error {
	raw, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("serialize photo collection: %w", err)
	}
	return r.mapQuota(r.store.Set(photosKey, raw))
}

func (r *PhotoRepository) Probe(photos []photo.Photo) error {
	raw, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("serialize photo collection: %w", err)
	}
	return r.mapQuota(r.store.Probe(raw))
}

// mapQuota транслює сигнал квоти сховища в помилку домену.
func (r *PhotoRepository) mapQuota(err error) error {
	if errors.Is(err, ErrQuotaExceeded) {
		return fmt.Errorf("%w: %v", photo.ErrStorageFull, err)
	}
	return err
}
