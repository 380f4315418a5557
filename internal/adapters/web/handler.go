package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"feedback-app/internal/domain"
	"feedback-app/internal/usecase/feedback"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Сообщения пользователю, показываются через flash или в форме.
const (
	msgCreated     = "Feedback created successfully!"
	msgUpdated     = "Feedback updated successfully!"
	msgDeleted     = "Feedback deleted successfully!"
	msgNotFound    = "Feedback not found!"
	msgCreateError = "Error creating feedback. Please try again."
	msgUpdateError = "Error updating feedback. Please try again."
	msgDeleteError = "Error deleting feedback. Please try again."
	msgListError   = "Error reading feedback. Please try again."
)

const (
	categorySuccess = "success"
	categoryError   = "error"
)

// Handler обслуживает HTML-интерфейс отзывов.
type Handler struct {
	service *feedback.Service
	flash   *FlashStore
	log     zerolog.Logger
	tmpl    *template.Template
}

// NewHandler создаёт обработчик с шаблонами из встроенной ФС.
func NewHandler(service *feedback.Service, secret string, logger zerolog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		service: service,
		flash:   NewFlashStore(secret),
		log:     logger,
		tmpl:    tmpl,
	}, nil
}

// Routes регистрирует маршруты приложения.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/create_feedback", h.createForm)
	r.Post("/create_feedback", h.create)
	r.Get("/read_feedback", h.list)
	r.Get("/update_feedback/{id}", h.updateForm)
	r.Post("/update_feedback/{id}", h.update)
	r.Get("/delete_feedback/{id}", h.delete)
}

type listPage struct {
	Items []domain.Feedback
	Flash *Flash
}

type formPage struct {
	Title  string
	Action string
	Input  feedback.Input
	Errors []string
	Flash  *Flash
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/read_feedback", http.StatusFound)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page := listPage{Flash: h.flash.Pop(w, r)}
	items, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("не удалось прочитать отзывы")
		page.Flash = &Flash{Category: categoryError, Message: msgListError}
		w.WriteHeader(http.StatusInternalServerError)
		h.render(w, "read.html", page)
		return
	}
	page.Items = items
	h.render(w, "read.html", page)
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "form.html", formPage{
		Title:  "Create Feedback",
		Action: "/create_feedback",
		Flash:  h.flash.Pop(w, r),
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in := formInput(r)
	page := formPage{Title: "Create Feedback", Action: "/create_feedback", Input: in}

	if _, err := h.service.Create(r.Context(), in); err != nil {
		var verr *feedback.ValidationError
		if errors.As(err, &verr) {
			page.Errors = verr.Messages
			w.WriteHeader(http.StatusBadRequest)
			h.render(w, "form.html", page)
			return
		}
		h.log.Error().Err(err).Msg("не удалось создать отзыв")
		page.Flash = &Flash{Category: categoryError, Message: msgCreateError}
		w.WriteHeader(http.StatusInternalServerError)
		h.render(w, "form.html", page)
		return
	}
	h.flash.Set(w, categorySuccess, msgCreated)
	http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	fb, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			h.redirectNotFound(w, r)
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("не удалось получить отзыв")
		h.flash.Set(w, categoryError, msgUpdateError)
		http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
		return
	}
	h.render(w, "form.html", formPage{
		Title:  "Update Feedback",
		Action: "/update_feedback/" + strconv.FormatInt(id, 10),
		Input:  feedback.Input{User: fb.User, Comment: fb.Comment},
		Flash:  h.flash.Pop(w, r),
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	in := formInput(r)
	page := formPage{
		Title:  "Update Feedback",
		Action: "/update_feedback/" + strconv.FormatInt(id, 10),
		Input:  in,
	}

	if err := h.service.Update(r.Context(), id, in); err != nil {
		var verr *feedback.ValidationError
		switch {
		case errors.As(err, &verr):
			page.Errors = verr.Messages
			w.WriteHeader(http.StatusBadRequest)
			h.render(w, "form.html", page)
		case errors.Is(err, domain.ErrFeedbackNotFound):
			h.redirectNotFound(w, r)
		default:
			h.log.Error().Err(err).Int64("id", id).Msg("не удалось обновить отзыв")
			page.Flash = &Flash{Category: categoryError, Message: msgUpdateError}
			w.WriteHeader(http.StatusInternalServerError)
			h.render(w, "form.html", page)
		}
		return
	}
	h.flash.Set(w, categorySuccess, msgUpdated)
	http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			h.redirectNotFound(w, r)
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("не удалось удалить отзыв")
		h.flash.Set(w, categoryError, msgDeleteError)
		http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
		return
	}
	h.flash.Set(w, categorySuccess, msgDeleted)
	http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
}

// parseID извлекает id из маршрута. Некорректный id — то же, что отсутствующий.
func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.redirectNotFound(w, r)
		return 0, false
	}
	return id, true
}

func (h *Handler) redirectNotFound(w http.ResponseWriter, r *http.Request) {
	h.flash.Set(w, categoryError, msgNotFound)
	http.Redirect(w, r, "/read_feedback", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("ошибка рендера шаблона")
	}
}

func formInput(r *http.Request) feedback.Input {
	return feedback.Input{
		User:    r.FormValue("user"),
		Comment: r.FormValue("comment"),
	}
}
