package worker

import (
	"context"
	"fmt"
	"taskBoard/internal/logger"
	"taskBoard/internal/view"
	"time"

	"go.uber.org/zap"
)

type SummarySource interface {
	Summary(context.Context) (view.Summary, error)
}

// AgendaWorker периодически пишет в лог сводку дня:
// сколько задач на сегодня, впереди и просрочено
type AgendaWorker struct {
	source   SummarySource
	interval time.Duration
}

func NewAgendaWorker(source SummarySource, interval *time.Duration) *AgendaWorker {
	intervalToSet := 5 * time.Minute
	if interval != nil && *interval > 0 {
		intervalToSet = *interval
	}

	return &AgendaWorker{
		source:   source,
		interval: intervalToSet,
	}
}

func (w *AgendaWorker) Interval() time.Duration {
	return w.interval
}

// Start блокируется до отмены контекста
func (w *AgendaWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.Check(ctx); err != nil {
				logger.Warn("Worker: Ошибка получения сводки", zap.Error(err))
			}
		case <-ctx.Done():
			logger.Info("Worker: Сводка дня останавливается")
			return
		}
	}
}

func (w *AgendaWorker) Check(ctx context.Context) (view.Summary, error) {
	start := time.Now()

	summary, err := w.source.Summary(ctx)
	if err != nil {
		return view.Summary{}, fmt.Errorf("получение сводки: %w", err)
	}

	logger.Info(
		"Worker: Сводка дня",
		zap.Int("total", summary.Total),
		zap.Int("completed", summary.Completed),
		zap.Int("today", summary.Today),
		zap.Int("upcoming", summary.Upcoming),
		zap.Int("overdue", summary.Overdue),
		zap.Duration("ms", time.Since(start)),
	)
	return summary, nil
}
