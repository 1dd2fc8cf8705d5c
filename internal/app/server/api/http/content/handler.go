package content

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

type Handler struct {
	service    content.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	editMW     huma.Middlewares
}

// NewHandler: middleware — ланцюжок для публічного читання, editMW —
// для операцій редагування (з воротами адмінки).
func NewHandler(service content.Servicer, log *slog.Logger, middleware, editMW huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
		editMW:     editMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.patchOp(), h.patch)
}

func (h *Handler) get(_ context.Context, _ *struct{}) (*getOutput, error) {
	return &getOutput{Body: h.service.Load()}, nil
}

func (h *Handler) patch(_ context.Context, input *patchInput) (*patchOutput, error) {
	rec, err := h.service.UpdatePartial(input.Body)
	if err != nil {
		if errors.Is(err, content.ErrDuplicateProductID) || errors.Is(err, content.ErrInvalidCategory) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("content update failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося зберегти контент")
	}

	return &patchOutput{Body: rec}, nil
}
