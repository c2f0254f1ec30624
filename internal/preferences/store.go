package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"taskBoard/internal/logger"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Preferences - настройки отображения, не доменные данные
type Preferences struct {
	DarkMode bool `yaml:"dark_mode" json:"dark_mode"`
}

type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
	// Update атомарно читает, меняет и сохраняет настройки
	Update(func(*Preferences)) (Preferences, error)
}

// MemoryStore используется, когда путь к файлу не задан
type MemoryStore struct {
	mtx   sync.RWMutex
	prefs Preferences
}

func NewMemoryStore(defaults Preferences) *MemoryStore {
	return &MemoryStore{prefs: defaults}
}

func (s *MemoryStore) Load() (Preferences, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.prefs, nil
}

func (s *MemoryStore) Save(p Preferences) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.prefs = p
	return nil
}

func (s *MemoryStore) Update(mutate func(*Preferences)) (Preferences, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	mutate(&s.prefs)
	return s.prefs, nil
}

// FileStore хранит настройки в YAML-файле.
// flock разделяет процессы, mtx разделяет горутины одного процесса:
// повторный Lock на том же *flock.Flock не блокирует.
type FileStore struct {
	mtx      sync.Mutex
	path     string
	lock     *flock.Flock
	defaults Preferences
}

func NewFileStore(path string, defaults Preferences) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("путь к файлу настроек не задан")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("создание каталога настроек: %w", err)
	}

	return &FileStore{
		path:     path,
		lock:     flock.New(path + ".lock"),
		defaults: defaults,
	}, nil
}

// Load отдаёт значения по умолчанию, если файла ещё нет
func (s *FileStore) Load() (Preferences, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.lock.RLock(); err != nil {
		return s.defaults, fmt.Errorf("блокировка файла настроек: %w", err)
	}
	defer s.lock.Unlock()

	return s.read()
}

func (s *FileStore) Save(p Preferences) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("блокировка файла настроек: %w", err)
	}
	defer s.lock.Unlock()

	return s.write(p)
}

func (s *FileStore) Update(mutate func(*Preferences)) (Preferences, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.lock.Lock(); err != nil {
		return s.defaults, fmt.Errorf("блокировка файла настроек: %w", err)
	}
	defer s.lock.Unlock()

	prefs, err := s.read()
	if err != nil {
		return prefs, err
	}
	mutate(&prefs)

	if err := s.write(prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func (s *FileStore) read() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.defaults, nil
		}
		return s.defaults, fmt.Errorf("чтение файла настроек: %w", err)
	}

	prefs := s.defaults
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return s.defaults, fmt.Errorf("разбор файла настроек: %w", err)
	}
	return prefs, nil
}

// write пишет во временный файл рядом с целевым и подменяет его переименованием
func (s *FileStore) write(p Preferences) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("сериализация настроек: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("создание временного файла настроек: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("запись файла настроек: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("запись файла настроек: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("замена файла настроек: %w", err)
	}

	logger.Info("Preferences: Настройки сохранены",
		zap.String("path", s.path),
		zap.Bool("dark_mode", p.DarkMode))
	return nil
}
