package photo

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
)

type Handler struct {
	service    photo.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service photo.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.deleteOp(), h.delete)
}

// upload приймає батч файлів у base64. Помилка одного файлу потрапляє
// в rejected, решта батчу обробляється далі.
func (h *Handler) upload(_ context.Context, input *uploadInput) (*uploadOutput, error) {
	files := make([]photo.Upload, 0, len(input.Body.Files))
	var rejected []rejectedFile

	for _, f := range input.Body.Files {
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			rejected = append(rejected, rejectedFile{
				Name:  f.Name,
				Error: "файл не є коректним base64",
			})
			continue
		}
		files = append(files, photo.Upload{
			Name:  f.Name,
			Title: f.Title,
			Data:  data,
		})
	}

	res, err := h.service.Ingest(files)
	if err != nil {
		if errors.Is(err, photo.ErrStorageFull) {
			return nil, huma.NewError(http.StatusInsufficientStorage,
				"Недостатньо місця. Видаліть старі фото.")
		}
		h.log.Error("photo ingest failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося зберегти фото")
	}

	for _, fe := range res.Rejected {
		rejected = append(rejected, rejectedFile{
			Name:  fe.Name,
			Error: rejectionMessage(fe.Err),
		})
	}

	return &uploadOutput{
		Body: uploadResponse{
			Accepted: res.Accepted,
			Rejected: rejected,
		},
	}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(input.ID); err != nil {
		h.log.Error("photo delete failed", "id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося видалити фото")
	}

	return &deleteOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}

// rejectionMessage — повідомлення користувачу по одному файлу.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, photo.ErrFileTooLarge):
		return "Файл занадто великий (макс 10MB)"
	case errors.Is(err, photo.ErrDecode):
		return "Не вдалося прочитати зображення"
	default:
		return err.Error()
	}
}
