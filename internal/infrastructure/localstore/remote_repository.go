package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
)

const githubConfigKey = "githubConfig"

// RemoteConfigRepository зберігає координати і токен дзеркала.
type RemoteConfigRepository struct {
	store *Store
}

func NewRemoteConfigRepository(store *Store) *RemoteConfigRepository {
	return &RemoteConfigRepository{store: store}
}

func (r *RemoteConfigRepository) Load() (*github.Config, error) {
	raw, err := r.store.Get(githubConfigKey)
	if err != nil {
		return nil, err
	}

	var cfg github.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse github config: %w", err)
	}
	return &cfg, nil
}

func (r *RemoteConfigRepository) Save(cfg *github.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize github config: %w", err)
	}
	return r.store.Set(githubConfigKey, raw)
}
