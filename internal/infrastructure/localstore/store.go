package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

// Store — локальне key/value сховище сайту поверх SQLite. Відіграє роль
// localStorage браузера: один глобальний ресурс з бюджетом розміру,
// перевищення якого повертає ErrQuotaExceeded.
type Store struct {
	db    *sql.DB
	quota int64
	log   *slog.Logger
}

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("local store quota exceeded")
)

// probeKey — одноразовий ключ для перевірки квоти перед реальним записом.
const probeKey = "__quotaProbe__"

func New(path string, quota int64, log *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	s := &Store{
		db:    db,
		quota: quota,
		log:   log.With("component", "localstore"),
	}

	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store tables: %w", err)
	}

	return s, nil
}

func (s *Store) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	return err
}

func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get key %q: %w", key, err)
	}
	return value, nil
}

// Set перезаписує значення ключа. Перед записом перевіряється бюджет:
// сумарний розмір сховища після запису не може перевищити квоту.
func (s *Store) Set(key string, value []byte) error {
	used, err := s.UsedBytes()
	if err != nil {
		return err
	}

	var current int64
	err = s.db.QueryRow("SELECT LENGTH(value) FROM kv WHERE key = ?", key).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("check key %q: %w", key, err)
	}

	// новий ключ займає місце і своїм іменем, як і в UsedBytes
	incoming := int64(len(value))
	if err == sql.ErrNoRows {
		incoming += int64(len(key))
	}

	if used-current+incoming > s.quota {
		s.log.Warn("quota exceeded on write",
			"key", key,
			"used", used,
			"incoming", incoming,
			"quota", s.quota,
		)
		return ErrQuotaExceeded
	}

	if err == sql.ErrNoRows {
		_, err = s.db.Exec(
			"INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
			key, value, time.Now().UTC().Format(time.RFC3339),
		)
	} else {
		_, err = s.db.Exec(
			"UPDATE kv SET value = ?, updated_at = ? WHERE key = ?",
			value, time.Now().UTC().Format(time.RFC3339), key,
		)
	}
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

func (s *Store) Has(key string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM kv WHERE key = ?)", key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check key %q: %w", key, err)
	}
	return exists, nil
}

// Probe — пробний запис кандидата в одноразовий ключ. Якщо квота не
// дозволяє — повертає ErrQuotaExceeded, нічого не змінюючи.
func (s *Store) Probe(value []byte) error {
	if err := s.Set(probeKey, value); err != nil {
		return err
	}
	return s.Delete(probeKey)
}

func (s *Store) UsedBytes() (int64, error) {
	var used int64
	err := s.db.QueryRow("SELECT COALESCE(SUM(LENGTH(value) + LENGTH(key)), 0) FROM kv").Scan(&used)
	if err != nil {
		return 0, fmt.Errorf("measure store size: %w", err)
	}
	return used, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
