package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"feedback-app/internal/domain"
	"feedback-app/internal/infra/metrics"
)

// Service реализует сценарии работы с отзывами.
type Service struct {
	repo domain.FeedbackRepo
	log  zerolog.Logger
}

// NewService создаёт новый сервис отзывов.
func NewService(repo domain.FeedbackRepo, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// Create валидирует ввод и сохраняет новый отзыв.
func (s *Service) Create(ctx context.Context, in Input) (domain.Feedback, error) {
	if ok, msgs := Validate(in); !ok {
		return domain.Feedback{}, &ValidationError{Messages: msgs}
	}
	fb, err := s.repo.Create(ctx, strings.TrimSpace(in.User), strings.TrimSpace(in.Comment))
	if err != nil {
		metrics.StorageErrorsTotal.Inc()
		return domain.Feedback{}, fmt.Errorf("создание отзыва: %w", err)
	}
	metrics.FeedbackCreatedTotal.Inc()
	s.log.Debug().Int64("id", fb.ID).Msg("отзыв создан")
	return fb, nil
}

// List возвращает все отзывы, новые первыми.
func (s *Service) List(ctx context.Context) ([]domain.Feedback, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		metrics.StorageErrorsTotal.Inc()
		return nil, fmt.Errorf("чтение отзывов: %w", err)
	}
	return items, nil
}

// Get возвращает отзыв по id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Feedback, error) {
	fb, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrFeedbackNotFound) {
			metrics.StorageErrorsTotal.Inc()
			return domain.Feedback{}, fmt.Errorf("получение отзыва: %w", err)
		}
		return domain.Feedback{}, err
	}
	return fb, nil
}

// Update валидирует ввод и заменяет user/comment существующего отзыва.
// Отметка времени и id остаются нетронутыми.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if ok, msgs := Validate(in); !ok {
		return &ValidationError{Messages: msgs}
	}
	err := s.repo.Update(ctx, id, strings.TrimSpace(in.User), strings.TrimSpace(in.Comment))
	if err != nil {
		if !errors.Is(err, domain.ErrFeedbackNotFound) {
			metrics.StorageErrorsTotal.Inc()
			return fmt.Errorf("обновление отзыва: %w", err)
		}
		return err
	}
	metrics.FeedbackUpdatedTotal.Inc()
	return nil
}

// Delete удаляет отзыв. Повторное удаление возвращает ErrFeedbackNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrFeedbackNotFound) {
			metrics.StorageErrorsTotal.Inc()
			return fmt.Errorf("удаление отзыва: %w", err)
		}
		return err
	}
	metrics.FeedbackDeletedTotal.Inc()
	return nil
}
