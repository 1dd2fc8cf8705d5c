package content

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/content",
		Summary:     "Поточний контент сайту",
		Tags:        []string{"content"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-patch",
		Method:      http.MethodPatch,
		Path:        "/api/v1/content",
		Summary:     "Часткове оновлення контенту",
		Description: "Задані поля замінюють поточні значення цілком; відсутні не змінюються. Запис зберігається одразу.",
		Tags:        []string{"content"},
		Middlewares: h.editMW,
	}
}
