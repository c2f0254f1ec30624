package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"taskBoard/internal/config"
	"taskBoard/internal/handlers"
	"taskBoard/internal/logger"
	"taskBoard/internal/middleware"
	"taskBoard/internal/preferences"
	projectstore "taskBoard/internal/repository/project/inmemory"
	taskstore "taskBoard/internal/repository/task/inmemory"
	"taskBoard/internal/service"
	"taskBoard/internal/worker"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App - корень композиции: владеет хранилищами и передаёт их дальше явно
type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	tasks     *taskstore.TaskStorage
	projects  *projectstore.ProjectStorage
	service   *service.BoardService
	worker    *worker.AgendaWorker
	shutdowns []func() // функции для graceful shutdown
	clock     func() time.Time
}

type Option func(*App)

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.clock = now
	}
}

func New(cfg *config.Config, options ...Option) *App {
	a := &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
		clock:     time.Now,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	prefs, err := a.preferenceStore()
	if err != nil {
		return nil, fmt.Errorf("хранилище настроек: %w", err)
	}

	a.tasks = taskstore.NewTaskStorage()
	a.projects = projectstore.NewProjectStorage()
	a.service = service.NewBoardService(a.tasks, a.projects, prefs, service.WithClock(a.clock))

	if a.config.Seed.Demo {
		if err := a.service.SeedDemo(ctx); err != nil {
			return nil, fmt.Errorf("загрузка демо-данных: %w", err)
		}
	}

	a.router = a.buildRouter()

	var handler http.Handler = a.router
	if a.config.Server.Tracing {
		handler = otelhttp.NewHandler(handler, "task-board")
	}

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      handler,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	if a.config.Worker.Enabled {
		interval := a.config.Worker.AgendaInterval
		a.worker = worker.NewAgendaWorker(a.service, &interval)
	}

	logger.Info("App: Инициализация завершена",
		zap.String("addr", a.server.Addr),
		zap.Bool("demo", a.config.Seed.Demo),
		zap.Bool("worker", a.worker != nil))

	return a, nil
}

func (a *App) preferenceStore() (preferences.Store, error) {
	defaults := preferences.Preferences{DarkMode: a.config.Preferences.DefaultDarkMode}
	if a.config.Preferences.Path == "" {
		return preferences.NewMemoryStore(defaults), nil
	}
	return preferences.NewFileStore(a.config.Preferences.Path, defaults)
}

func (a *App) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "If-None-Match"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", "ETag", "X-Revision"},
		MaxAge:         300,
	}))
	if a.config.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(a.config.Server.RequestTimeout))
	}
	r.Use(middleware.RateLimit(a.config.Server.RateLimit))

	handlers.NewBoardHandler(a.service, handlers.WithClock(a.clock)).Register(r)
	return r
}

// Handler отдаёт собранный роутер (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает сервер и воркер; возвращается после отмены ctx и остановки обоих
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http сервер: %w", err)
		}
		return nil
	})

	if a.worker != nil {
		g.Go(func() error {
			a.worker.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("Server: Остановка сервера...")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("остановка сервера: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.Shutdown()
	return err
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
