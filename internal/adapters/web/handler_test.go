package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"feedback-app/internal/adapters/repo"
	"feedback-app/internal/infra/db"
	httpinfra "feedback-app/internal/infra/http"
	"feedback-app/internal/infra/metrics"
	"feedback-app/internal/usecase/feedback"
)

func TestMain(m *testing.M) {
	metrics.MustRegister(prometheus.DefaultRegisterer)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) chi.Router {
	t.Helper()
	conn, err := db.Connect(":memory:")
	if err != nil {
		t.Fatalf("не удалось открыть базу: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	service := feedback.NewService(repo.NewSQLite(conn), zerolog.Nop())
	handler, err := NewHandler(service, "test-secret", zerolog.Nop())
	if err != nil {
		t.Fatalf("не удалось собрать обработчики: %v", err)
	}
	srv := httpinfra.NewServer(zerolog.Nop(), ":memory:")
	handler.Routes(srv.Router)
	return srv.Router
}

func get(router chi.Router, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router chi.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndexRedirect(t *testing.T) {
	router := newTestApp(t)

	rec := get(router, "/")
	if rec.Code != http.StatusFound {
		t.Fatalf("ожидали 302, получили %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/read_feedback" {
		t.Fatalf("ожидали редирект на список, получили %q", loc)
	}
}

func TestCreateAndList(t *testing.T) {
	router := newTestApp(t)

	rec := postForm(router, "/create_feedback", url.Values{
		"user":    {"Alice"},
		"comment": {"Great service"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("ожидали 303, получили %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/read_feedback" {
		t.Fatalf("ожидали редирект на список, получили %q", loc)
	}

	list := get(router, "/read_feedback", rec.Result().Cookies()...)
	if list.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", list.Code)
	}
	body := list.Body.String()
	if !strings.Contains(body, "Alice") || !strings.Contains(body, "Great service") {
		t.Fatal("созданный отзыв не виден в списке")
	}
	if !strings.Contains(body, "Feedback created successfully!") {
		t.Fatal("flash-сообщение об успехе не показано")
	}
}

func TestCreateValidationKeepsInput(t *testing.T) {
	router := newTestApp(t)

	rec := postForm(router, "/create_feedback", url.Values{
		"user":    {"   "},
		"comment": {"Valid comment"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("ожидали 400, получили %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "User field is required") {
		t.Fatal("нет сообщения об обязательном поле")
	}
	if !strings.Contains(body, "Valid comment") {
		t.Fatal("введённые значения потеряны при ошибке валидации")
	}
}

func TestUpdateFlow(t *testing.T) {
	router := newTestApp(t)

	postForm(router, "/create_feedback", url.Values{
		"user":    {"Alice"},
		"comment": {"Great service"},
	})

	form := get(router, "/update_feedback/1")
	if form.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", form.Code)
	}
	if !strings.Contains(form.Body.String(), "Great service") {
		t.Fatal("форма не заполнена текущими значениями")
	}

	rec := postForm(router, "/update_feedback/1", url.Values{
		"user":    {"Alice"},
		"comment": {"Even better"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("ожидали 303, получили %d", rec.Code)
	}

	list := get(router, "/read_feedback")
	if !strings.Contains(list.Body.String(), "Even better") {
		t.Fatal("обновление не видно в списке")
	}
}

func TestUpdateMissingRedirects(t *testing.T) {
	router := newTestApp(t)

	rec := get(router, "/update_feedback/999")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("ожидали 303, получили %d", rec.Code)
	}
	list := get(router, "/read_feedback", rec.Result().Cookies()...)
	if !strings.Contains(list.Body.String(), "Feedback not found!") {
		t.Fatal("нет уведомления о ненайденном отзыве")
	}
}

func TestDeleteIsIdempotentForCaller(t *testing.T) {
	router := newTestApp(t)

	postForm(router, "/create_feedback", url.Values{
		"user":    {"Alice"},
		"comment": {"Great service"},
	})

	rec := get(router, "/delete_feedback/1")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("ожидали 303, получили %d", rec.Code)
	}
	list := get(router, "/read_feedback")
	if !strings.Contains(list.Body.String(), "No feedback yet.") {
		t.Fatal("список не пуст после удаления")
	}

	again := get(router, "/delete_feedback/1")
	if again.Code != http.StatusSeeOther {
		t.Fatalf("повторное удаление должно отвечать 303, получили %d", again.Code)
	}
	notice := get(router, "/read_feedback", again.Result().Cookies()...)
	if !strings.Contains(notice.Body.String(), "Feedback not found!") {
		t.Fatal("нет уведомления о ненайденном отзыве")
	}
}

func TestHealth(t *testing.T) {
	router := newTestApp(t)

	rec := get(router, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", rec.Code)
	}
	var payload struct {
		Status   string  `json:"status"`
		Uptime   float64 `json:"uptime_seconds"`
		Database string  `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("ответ /health не JSON: %v", err)
	}
	if payload.Status != "ok" {
		t.Fatalf("ожидали status=ok, получили %q", payload.Status)
	}
	if payload.Uptime < 0 {
		t.Fatalf("uptime отрицательный: %f", payload.Uptime)
	}
	if payload.Database != ":memory:" {
		t.Fatalf("ожидали путь к базе, получили %q", payload.Database)
	}
}

func TestMetricsCountRequests(t *testing.T) {
	router := newTestApp(t)

	get(router, "/read_feedback")

	rec := get(router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", rec.Code)
	}
	want := `http_requests_total{method="GET",path="/read_feedback",status="200"}`
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("в выдаче /metrics нет счётчика %s", want)
	}
}
