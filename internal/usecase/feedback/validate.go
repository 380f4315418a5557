package feedback

import "strings"

// Input содержит поля формы отзыва до валидации.
type Input struct {
	User    string
	Comment string
}

// ValidationError перечисляет причины отказа валидации.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validate проверяет обязательные поля. Чистая функция без побочных эффектов.
func Validate(in Input) (bool, []string) {
	var errs []string
	if strings.TrimSpace(in.User) == "" {
		errs = append(errs, "User field is required")
	}
	if strings.TrimSpace(in.Comment) == "" {
		errs = append(errs, "Comment field is required")
	}
	return len(errs) == 0, errs
}
