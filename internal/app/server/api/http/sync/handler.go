package sync

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/localstore"
)

// Publisher — частина клієнта дзеркала, потрібна синхронізації.
type Publisher interface {
	Publish(ctx context.Context, cfg github.Config, path, branch string, rec content.Content) (string, error)
}

type Handler struct {
	content    content.Servicer
	photos     photo.Servicer
	publisher  Publisher
	remoteCfg  github.ConfigRepository
	path       string
	branch     string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(
	contentSvc content.Servicer,
	photos photo.Servicer,
	publisher Publisher,
	remoteCfg github.ConfigRepository,
	path, branch string,
	log *slog.Logger,
	middleware huma.Middlewares,
) *Handler {
	return &Handler{
		content:    contentSvc,
		photos:     photos,
		publisher:  publisher,
		remoteCfg:  remoteCfg,
		path:       path,
		branch:     branch,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.publishOp(), h.publish)
}

// publish штовхає локальний контент у віддалене дзеркало. Локальний
// запис до цього моменту вже зберігся незалежно, тому відмова тут
// нічого не втрачає — лише відвідувачі ще не бачать оновлення.
func (h *Handler) publish(ctx context.Context, _ *struct{}) (*publishOutput, error) {
	cfg, err := h.remoteCfg.Load()
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, huma.Error400BadRequest("GitHub не налаштований. Перейдіть до GitHub Config.")
	}
	if err != nil {
		h.log.Error("load github config failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося прочитати конфігурацію")
	}

	// до контенту додається копія локальної колекції фото
	rec := h.content.Load()
	rec.Photos = h.photos.List()

	commit, err := h.publisher.Publish(ctx, *cfg, h.path, h.branch, rec)
	if err != nil {
		return nil, h.syncError(err)
	}

	return &publishOutput{
		Body: publishResponse{
			Status: "Ok",
			Commit: commit,
		},
	}, nil
}

// syncError перетворює відмову дзеркала на повідомлення користувачу;
// локальний стан при цьому лишається авторитетним і незмінним.
func (h *Handler) syncError(err error) error {
	var statusErr *github.StatusError
	switch {
	case errors.Is(err, github.ErrConflict):
		return huma.Error409Conflict("Контент змінено з іншого місця. Оновіть сторінку та повторіть.")
	case errors.As(err, &statusErr):
		return huma.NewError(http.StatusBadGateway,
			fmt.Sprintf("Помилка синхронізації: GitHub API status %d", statusErr.Code))
	default:
		h.log.Error("publish failed", "error", err)
		return huma.NewError(http.StatusBadGateway, "Помилка синхронізації")
	}
}
