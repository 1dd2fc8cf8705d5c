package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

var testCfg = Config{Token: "ghp_secret", Owner: "owner", Repo: "site"}

func testContent() content.Content {
	rec := content.Default()
	rec.HomeTitle = "Майстерня"
	return rec
}

func TestClient_PublishFirstRevision(t *testing.T) {
	var putBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/site/contents/src/content.json", r.URL.Path)
		assert.Equal(t, "token ghp_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"commit":{"sha":"newsha"}}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	commit, err := c.Publish(context.Background(), testCfg, "src/content.json", "main", testContent())
	require.NoError(t, err)
	assert.Equal(t, "newsha", commit)

	// першої ревізії ще немає, sha в тіло не кладеться
	_, hasSHA := putBody["sha"]
	assert.False(t, hasSHA)
	assert.Equal(t, "main", putBody["branch"])
	assert.True(t, strings.HasPrefix(putBody["message"], "chore: Update site content via admin panel - "))

	raw, err := base64.StdEncoding.DecodeString(putBody["content"])
	require.NoError(t, err)

	var published content.Content
	require.NoError(t, json.Unmarshal(raw, &published))
	assert.Equal(t, "Майстерня", published.HomeTitle)
}

func TestClient_PublishCarriesPriorSHA(t *testing.T) {
	var putBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"sha":"oldsha"}`))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			_, _ = w.Write([]byte(`{"commit":{"sha":"nextsha"}}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	commit, err := c.Publish(context.Background(), testCfg, "src/content.json", "main", testContent())
	require.NoError(t, err)
	assert.Equal(t, "nextsha", commit)
	assert.Equal(t, "oldsha", putBody["sha"])
}

func TestClient_PublishStopsWhenRevisionReadFails(t *testing.T) {
	puts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	_, err := c.Publish(context.Background(), testCfg, "src/content.json", "main", testContent())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Zero(t, puts)
}

func TestClient_PublishConflict(t *testing.T) {
	for _, code := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(`{"sha":"oldsha"}`))
				return
			}
			w.WriteHeader(code)
		}))

		c := NewClient(srv.URL, slog.Default())
		_, err := c.Publish(context.Background(), testCfg, "src/content.json", "main", testContent())
		assert.ErrorIs(t, err, ErrConflict, "status %d", code)

		srv.Close()
	}
}

func TestClient_HeadSHAMissingFileIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	sha, err := c.HeadSHA(context.Background(), testCfg, "src/content.json")
	require.NoError(t, err)
	assert.Empty(t, sha)
}

func TestClient_ListDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/site/contents/public/gallery_images", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(`[{"name":"candle.jpg","sha":"a1"},{"name":"README.md","sha":"b2"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	entries, err := c.ListDir(context.Background(), testCfg, "public/gallery_images")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Name: "candle.jpg", SHA: "a1"}, entries[0])
}

func TestClient_ListDirStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, slog.Default())
	_, err := c.ListDir(context.Background(), testCfg, "public/gallery_images")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
}
