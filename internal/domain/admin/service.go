package admin

import (
	"golang.org/x/exp/slog"
)

// Repository — персистентний прапорець сесії адміністратора.
type Repository interface {
	IsSet() (bool, error)
	Set() error
	Clear() error
}

// Gate — інтерфейс перевірки можливості редагування. HTTP-шар залежить
// лише від нього, щоб колись підставити справжню авторизацію без зміни
// викликів.
type Gate interface {
	CanEdit() bool
}

type Servicer interface {
	Gate
	Login(candidate string) bool
	Logout() error
	IsAuthenticated() bool
}

// Service — ворота адмінки: один прапорець за фіксованою парольною
// фразою. Це не межа безпеки, лише захист від випадкових редагувань.
type Service struct {
	repo     Repository
	password string
	log      *slog.Logger
}

func NewService(repo Repository, password string, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		password: password,
		log:      log.With("component", "admin_gate"),
	}
}

// Login звіряє кандидата з парольною фразою. Збіг вмикає і зберігає
// прапорець; промах не має жодних побічних ефектів.
func (s *Service) Login(candidate string) bool {
	if candidate == "" || candidate != s.password {
		s.log.Info("admin login rejected")
		return false
	}

	if err := s.repo.Set(); err != nil {
		s.log.Error("persist admin flag", "error", err)
		return false
	}

	s.log.Info("admin logged in")
	return true
}

func (s *Service) Logout() error {
	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.log.Info("admin logged out")
	return nil
}

func (s *Service) IsAuthenticated() bool {
	set, err := s.repo.IsSet()
	if err != nil {
		s.log.Debug("admin flag unavailable", "error", err)
		return false
	}
	return set
}

func (s *Service) CanEdit() bool {
	return s.IsAuthenticated()
}
