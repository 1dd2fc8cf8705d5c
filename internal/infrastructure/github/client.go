package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
)

// Config — координати і токен віддаленого дзеркала. Зберігається лише в
// локальному сховищі, токен не покидає процес інакше як у заголовку
// Authorization.
type Config struct {
	Token string `json:"token"`
	Owner string `json:"username"`
	Repo  string `json:"repo"`
}

// ConfigRepository — персистентність конфігурації дзеркала.
type ConfigRepository interface {
	Load() (*Config, error)
	Save(*Config) error
}

// StatusError — нетипова відповідь GitHub API з кодом статусу.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api: %s returned status %d", e.Op, e.Code)
}

// ErrConflict — ревізія на віддаленому боці змінилась між читанням і
// записом. Окремий вид помилки, щоб колись додати retry-with-refetch
// без зміни інтерфейсу; зараз конфлікт просто віддається нагору.
var ErrConflict = errors.New("remote revision conflict")

// Entry — опис файлу з лістингу директорії.
type Entry struct {
	Name string `json:"name"`
	SHA  string `json:"sha"`
}

type Client struct {
	client *http.Client
	host   string
	log    *slog.Logger
}

func NewClient(host string, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		host: host,
		log:  log.With("component", "github_client"),
	}
}

// HeadSHA читає маркер поточної ревізії файлу. 404 означає «файлу ще
// немає» і не є помилкою; будь-який інший не-2xx статус — фатальний для
// операції.
func (c *Client) HeadSHA(ctx context.Context, cfg Config, path string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.host, cfg.Owner, cfg.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, cfg)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch revision marker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Op: "get contents", Code: resp.StatusCode}
	}

	var head struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&head); err != nil {
		return "", fmt.Errorf("decode contents response: %w", err)
	}

	return head.SHA, nil
}

// Publish — read-modify-write контенту за фіксованим шляхом. Спочатку
// читається маркер ревізії (404 → без sha), потім PUT нової ревізії з
// base64 від JSON-серіалізації. Конкурентна зміна без retry: конфлікт
// повертається як ErrConflict.
func (c *Client) Publish(ctx context.Context, cfg Config, path, branch string, rec content.Content) (string, error) {
	sha, err := c.HeadSHA(ctx, cfg, path)
	if err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal content: %w", err)
	}

	body := map[string]string{
		"message": fmt.Sprintf("chore: Update site content via admin panel - %s",
			time.Now().Format("02.01.2006 15:04:05")),
		"content": base64.StdEncoding.EncodeToString(raw),
		"branch":  branch,
	}
	if sha != "" {
		body["sha"] = sha
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.host, cfg.Owner, cfg.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, cfg)

	c.log.Debug("publishing content",
		"path", path,
		"branch", branch,
		"prior_sha", sha != "",
		"bytes", len(raw),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("publish content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity {
		return "", fmt.Errorf("%w: status %d", ErrConflict, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Op: "put contents", Code: resp.StatusCode}
	}

	var result struct {
		Commit struct {
			SHA string `json:"sha"`
		} `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode publish response: %w", err)
	}

	c.log.Info("content published", "commit", result.Commit.SHA)
	return result.Commit.SHA, nil
}

// ListDir — лістинг директорії з файлами галереї.
func (c *Client) ListDir(ctx context.Context, cfg Config, dir string) ([]Entry, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?t=%d", c.host, cfg.Owner, cfg.Repo, dir, time.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, cfg)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list gallery dir: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: "list contents", Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read listing response: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode listing response: %w", err)
	}

	return entries, nil
}

func (c *Client) setHeaders(req *http.Request, cfg Config) {
	if cfg.Token != "" {
		req.Header.Set("Authorization", "token "+cfg.Token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")
}
