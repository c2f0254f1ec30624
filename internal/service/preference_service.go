package service

import (
	"context"
	"fmt"
	"taskBoard/internal/logger"
	"taskBoard/internal/preferences"

	"go.uber.org/zap"
)

func (s *BoardService) GetPreferences(ctx context.Context) (preferences.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return preferences.Preferences{}, fmt.Errorf("загрузка настроек: %w", err)
	}

	prefs, err := s.prefs.Load()
	if err != nil {
		logger.Error("Service: Не удалось загрузить настройки", err)
		return prefs, fmt.Errorf("загрузка настроек: %w", err)
	}
	return prefs, nil
}

func (s *BoardService) SetPreferences(ctx context.Context, prefs preferences.Preferences) (preferences.Preferences, error) {
	return s.updatePreferences(ctx, "сохранение настроек", func(p *preferences.Preferences) {
		*p = prefs
	})
}

// ToggleDarkMode переключает тему за одно чтение-запись под блокировкой хранилища
func (s *BoardService) ToggleDarkMode(ctx context.Context) (preferences.Preferences, error) {
	return s.updatePreferences(ctx, "переключение темы", func(p *preferences.Preferences) {
		p.DarkMode = !p.DarkMode
	})
}

func (s *BoardService) updatePreferences(ctx context.Context, operation string, mutate func(*preferences.Preferences)) (preferences.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return preferences.Preferences{}, fmt.Errorf("%s: %w", operation, err)
	}

	prefs, err := s.prefs.Update(mutate)
	if err != nil {
		logger.Error("Service: Не удалось сохранить настройки", err, zap.String("operation", operation))
		return preferences.Preferences{}, fmt.Errorf("%s: %w", operation, err)
	}

	logger.Info("Service: Тема оформления", zap.Bool("dark_mode", prefs.DarkMode))
	return prefs, nil
}
