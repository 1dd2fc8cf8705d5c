package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/admin"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/localstore"
)

type Handler struct {
	service    admin.Servicer
	remoteCfg  github.ConfigRepository
	log        *slog.Logger
	middleware huma.Middlewares
	editMW     huma.Middlewares
}

func NewHandler(service admin.Servicer, remoteCfg github.ConfigRepository, log *slog.Logger, middleware, editMW huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		remoteCfg:  remoteCfg,
		log:        log,
		middleware: middleware,
		editMW:     editMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.sessionOp(), h.session)
	huma.Register(api, h.getGitHubOp(), h.getGitHub)
	huma.Register(api, h.putGitHubOp(), h.putGitHub)
}

func (h *Handler) login(_ context.Context, input *loginInput) (*loginOutput, error) {
	if !h.service.Login(input.Body.Password) {
		return nil, huma.Error401Unauthorized("Неправильний пароль")
	}

	return &loginOutput{
		Body: sessionResponse{IsAdmin: true},
	}, nil
}

func (h *Handler) logout(_ context.Context, _ *struct{}) (*loginOutput, error) {
	if err := h.service.Logout(); err != nil {
		h.log.Error("logout failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося вийти")
	}

	return &loginOutput{
		Body: sessionResponse{IsAdmin: false},
	}, nil
}

func (h *Handler) session(_ context.Context, _ *struct{}) (*loginOutput, error) {
	return &loginOutput{
		Body: sessionResponse{IsAdmin: h.service.IsAuthenticated()},
	}, nil
}

// getGitHub віддає збережену конфігурацію дзеркала. Токен назовні не
// повертається, лише його замаскований хвіст.
func (h *Handler) getGitHub(_ context.Context, _ *struct{}) (*githubOutput, error) {
	cfg, err := h.remoteCfg.Load()
	if errors.Is(err, localstore.ErrNotFound) {
		return &githubOutput{Body: githubResponse{Configured: false}}, nil
	}
	if err != nil {
		h.log.Error("load github config failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося прочитати конфігурацію")
	}

	return &githubOutput{
		Body: githubResponse{
			Configured: true,
			Username:   cfg.Owner,
			Repo:       cfg.Repo,
			Token:      maskToken(cfg.Token),
		},
	}, nil
}

func (h *Handler) putGitHub(_ context.Context, input *githubInput) (*githubOutput, error) {
	cfg := &github.Config{
		Token: input.Body.Token,
		Owner: input.Body.Username,
		Repo:  input.Body.Repo,
	}

	if err := h.remoteCfg.Save(cfg); err != nil {
		h.log.Error("save github config failed", "error", err)
		return nil, huma.Error500InternalServerError("Не вдалося зберегти конфігурацію")
	}

	return &githubOutput{
		Body: githubResponse{
			Configured: true,
			Username:   cfg.Owner,
			Repo:       cfg.Repo,
			Token:      maskToken(cfg.Token),
		},
	}, nil
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
