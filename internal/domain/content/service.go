package content

import (
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load() Content
	Save(Content) error
	UpdatePartial(Patch) (Content, error)
}

// Service реалізує контракт load-or-default / write-through: читання
// ніколи не падає (деградує до Default), кожна зміна одразу пишеться.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "content_service"),
	}
}

// Load повертає збережений контент, або Default якщо запису немає чи
// він не парситься. Помилок назовні не віддає.
func (s *Service) Load() Content {
	rec, err := s.repo.Load()
	if err != nil {
		s.log.Debug("stored content unavailable, falling back to defaults", "error", err)
		return Default()
	}
	return *rec
}

func (s *Service) Save(rec Content) error {
	if err := validate(&rec); err != nil {
		return err
	}
	if err := s.repo.Save(&rec); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// UpdatePartial зливає патч у поточний запис (поверхнева заміна полів,
// без глибокого злиття колекцій) і одразу зберігає результат.
func (s *Service) UpdatePartial(patch Patch) (Content, error) {
	rec := s.Load()

	if patch.HomeTitle != nil {
		rec.HomeTitle = *patch.HomeTitle
	}
	if patch.HomeDescription != nil {
		rec.HomeDescription = *patch.HomeDescription
	}
	if patch.AboutText != nil {
		rec.AboutText = *patch.AboutText
	}
	if patch.Products != nil {
		rec.Products = *patch.Products
	}
	if patch.Prices != nil {
		rec.Prices = *patch.Prices
	}

	if err := s.Save(rec); err != nil {
		return Content{}, err
	}

	s.log.Info("content updated",
		"products", len(rec.Products),
		"prices", len(rec.Prices),
	)

	return rec, nil
}

func validate(rec *Content) error {
	seen := make(map[string]struct{}, len(rec.Products))
	for _, p := range rec.Products {
		if !p.Category.Valid() {
			return fmt.Errorf("product %q: %w", p.ID, ErrInvalidCategory)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("product %q: %w", p.ID, ErrDuplicateProductID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
