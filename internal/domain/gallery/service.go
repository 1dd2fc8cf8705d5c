package gallery

import (
	"context"
	"net/url"
	"path"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
)

// imageExtensions — які файли з лістингу вважаються картинками.
var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// RemoteLister — частина клієнта дзеркала, потрібна галереї.
type RemoteLister interface {
	ListDir(ctx context.Context, cfg github.Config, dir string) ([]github.Entry, error)
}

type Servicer interface {
	Items(ctx context.Context) []Item
}

// Service зливає локальні фото власника з віддаленим лістингом;
// будь-яка відмова віддаленого боку деградує до вітринних заглушок.
type Service struct {
	photos  photo.Servicer
	remote  RemoteLister
	cfgRepo github.ConfigRepository
	dir     string
	log     *slog.Logger
}

func NewService(photos photo.Servicer, remote RemoteLister, cfgRepo github.ConfigRepository, dir string, log *slog.Logger) *Service {
	return &Service{
		photos:  photos,
		remote:  remote,
		cfgRepo: cfgRepo,
		dir:     dir,
		log:     log.With("component", "gallery_service"),
	}
}

// Items повертає локальні фото першими, далі — віддалені або заглушки.
func (s *Service) Items(ctx context.Context) []Item {
	items := make([]Item, 0, photo.MaxPhotos)
	for _, p := range s.photos.List() {
		items = append(items, Item{
			ID:       p.ID,
			ImageURL: p.ImageURL,
			Title:    p.Title,
			Local:    true,
		})
	}

	return append(items, s.remoteItems(ctx)...)
}

func (s *Service) remoteItems(ctx context.Context) []Item {
	cfg, err := s.cfgRepo.Load()
	if err != nil || cfg.Owner == "" || cfg.Repo == "" {
		return Defaults()
	}

	entries, err := s.remote.ListDir(ctx, *cfg, s.dir)
	if err != nil {
		s.log.Warn("remote gallery listing failed, using defaults", "error", err)
		return Defaults()
	}

	var items []Item
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		items = append(items, Item{
			ID:       e.SHA,
			ImageURL: "./" + path.Base(s.dir) + "/" + e.Name,
			Title:    titleFromName(e.Name),
		})
	}

	if len(items) == 0 {
		return Defaults()
	}
	return items
}

// titleFromName — «назва з файлу»: прибрати розширення, дефіси та
// підкреслення замінити пробілами.
func titleFromName(name string) string {
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}
