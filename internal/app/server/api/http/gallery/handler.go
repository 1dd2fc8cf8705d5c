package gallery

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/gallery"
)

type Handler struct {
	service    gallery.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service gallery.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items := h.service.Items(ctx)
	return &listOutput{
		Body: listResponse{
			Items: items,
			Total: len(items),
		},
	}, nil
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "gallery-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/gallery",
		Summary:     "Об'єднана галерея",
		Description: "Локальні фото власника першими, далі віддалений лістинг або вітринні картки.",
		Tags:        []string{"gallery"},
		Middlewares: h.middleware,
	}
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []gallery.Item `json:"items"`
	Total int            `json:"total"`
}
