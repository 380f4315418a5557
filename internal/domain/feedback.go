package domain

import "time"

// TimestampLayout — формат отметки времени отзыва в хранилище (UTC).
const TimestampLayout = "2006-01-02 15:04:05"

// Feedback представляет отзыв пользователя.
type Feedback struct {
	ID        int64
	User      string
	Comment   string
	CreatedAt time.Time
}

// Stamp возвращает отметку времени в каноничном текстовом виде.
func (f Feedback) Stamp() string {
	return f.CreatedAt.Format(TimestampLayout)
}
