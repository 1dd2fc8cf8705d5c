package localstore

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

const contentKey = "siteContent"

// ContentRepository зберігає весь редагований контент сайту під одним
// ключем, серіалізованим у JSON.
type ContentRepository struct {
	store *Store
	log   *slog.Logger
}

func NewContentRepository(store *Store, log *slog.Logger) *ContentRepository {
	return &ContentRepository{
		store: store,
		log:   log.With("component", "content_repository"),
	}
}

func (r *ContentRepository) Load() (*content.Content, error) {
	raw, err := r.store.Get(contentKey)
	if err != nil {
		return nil, err
	}

	var rec content.Content
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse stored content: %w", err)
	}

	return &rec, nil
}

func (r *ContentRepository) Save(rec *content.Content) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serialize content: %w", err)
	}
	return r.store.Set(contentKey, raw)
}
