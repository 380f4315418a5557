package domain

import (
	"context"
	"errors"
)

// ErrFeedbackNotFound возвращается, когда отзыв с указанным id отсутствует.
var ErrFeedbackNotFound = errors.New("отзыв не найден")

// FeedbackRepo управляет записями отзывов.
type FeedbackRepo interface {
	Create(ctx context.Context, user, comment string) (Feedback, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	GetByID(ctx context.Context, id int64) (Feedback, error)
	Update(ctx context.Context, id int64, user, comment string) error
	Delete(ctx context.Context, id int64) error
}
