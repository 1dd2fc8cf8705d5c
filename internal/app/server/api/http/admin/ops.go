package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/login",
		Summary:     "Вхід адміністратора",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/logout",
		Summary:     "Вихід адміністратора",
		Tags:        []string{"admin"},
		Middlewares: h.editMW,
	}
}

func (h *Handler) sessionOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/session",
		Summary:     "Стан сесії адміністратора",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getGitHubOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-github-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/github",
		Summary:     "Конфігурація дзеркала",
		Tags:        []string{"admin"},
		Middlewares: h.editMW,
	}
}

func (h *Handler) putGitHubOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-github-put",
		Method:      http.MethodPut,
		Path:        "/api/v1/admin/github",
		Summary:     "Зберегти конфігурацію дзеркала",
		Tags:        []string{"admin"},
		Middlewares: h.editMW,
	}
}
