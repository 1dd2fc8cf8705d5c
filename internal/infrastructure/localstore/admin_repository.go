package localstore

import (
	"errors"
)

const adminAuthKey = "adminAuth"

// AdminRepository — персистентний прапорець адмін-сесії.
type AdminRepository struct {
	store *Store
}

func NewAdminRepository(store *Store) *AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) IsSet() (bool, error) {
	raw, err := r.store.Get(adminAuthKey)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return string(raw) == "true", nil
}

func (r *AdminRepository) Set() error {
	return r.store.Set(adminAuthKey, []byte("true"))
}

func (r *AdminRepository) Clear() error {
	return r.store.Delete(adminAuthKey)
}
