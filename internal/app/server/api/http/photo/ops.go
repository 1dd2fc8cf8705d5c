package photo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-upload",
		Method:      http.MethodPost,
		Path:        "/api/v1/photos",
		Summary:     "Завантажити фото виробів",
		Description: "Кожен файл стискається до 500px по довшій стороні. Колекція тримає не більше 10 фото, найстаріші виселяються.",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/photos/{id}",
		Summary:     "Видалити фото",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}
