package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) publishOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-publish",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Опублікувати контент у дзеркало",
		Description: "Read-modify-write у GitHub contents API: читається маркер ревізії, потім пишеться нова ревізія. Конфлікт не ретраїться.",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}
