package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/middleware/auth"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

type fakeGate struct {
	open bool
}

func (g *fakeGate) CanEdit() bool { return g.open }

type fakeService struct {
	rec     content.Content
	updates int
}

func (s *fakeService) Load() content.Content { return s.rec }

func (s *fakeService) Save(rec content.Content) error {
	s.rec = rec
	return nil
}

func (s *fakeService) UpdatePartial(patch content.Patch) (content.Content, error) {
	s.updates++
	if patch.HomeTitle != nil {
		s.rec.HomeTitle = *patch.HomeTitle
	}
	return s.rec, nil
}

// newTestMux збирає роутер так само, як api.New: публічний ланцюжок
// порожній, редагування йде через ворота адмінки.
func newTestMux(svc content.Servicer, gate *fakeGate) *chi.Mux {
	mux := chi.NewMux()
	api := humachi.New(mux, huma.DefaultConfig("test", "1.0.0"))

	editMW := huma.Middlewares{auth.New(gate, slog.Default()).Middleware()}
	NewHandler(svc, slog.Default(), huma.Middlewares{}, editMW).SetupRoutes(api)

	return mux
}

func TestHandler_GetIsPublic(t *testing.T) {
	svc := &fakeService{rec: content.Default()}
	mux := newTestMux(svc, &fakeGate{open: false})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, svc.rec.HomeTitle, got.HomeTitle)
}

func TestHandler_PatchRejectedWhenGateClosed(t *testing.T) {
	svc := &fakeService{rec: content.Default()}
	mux := newTestMux(svc, &fakeGate{open: false})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/content",
		strings.NewReader(`{"homeTitle":"Нова назва"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Потрібен вхід адміністратора")

	// сервіс не викликався, контент не змінився
	assert.Zero(t, svc.updates)
	assert.Equal(t, content.Default().HomeTitle, svc.rec.HomeTitle)
}

func TestHandler_PatchPassesWhenGateOpen(t *testing.T) {
	svc := &fakeService{rec: content.Default()}
	mux := newTestMux(svc, &fakeGate{open: true})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/content",
		strings.NewReader(`{"homeTitle":"Нова назва"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.updates)

	var got content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Нова назва", got.HomeTitle)
}
