package auth

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/admin"
)

// Auth пропускає мутації лише коли ворота адмінки відкриті. Перевірка
// йде через admin.Gate, щоб справжню авторизацію можна було підставити
// без зміни хендлерів.
type Auth struct {
	gate admin.Gate
	log  *slog.Logger
}

func New(gate admin.Gate, log *slog.Logger) *Auth {
	return &Auth{
		gate: gate,
		log:  log.With("component", "auth_middleware"),
	}
}

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.gate.CanEdit() {
			a.log.Warn("edit operation rejected",
				"method", ctx.Method(),
				"path", ctx.URL().Path,
			)
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Потрібен вхід адміністратора",
			})
			return
		}

		next(ctx)
	}
}
