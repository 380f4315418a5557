package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const flashCookie = "feedback_flash"

// Flash описывает одноразовое сообщение для пользователя.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FlashStore подписывает и читает flash-cookie. Подпись HMAC-SHA256
// на секретном ключе приложения защищает от подделки на клиенте.
type FlashStore struct {
	secret []byte
}

// NewFlashStore создаёт хранилище flash-сообщений.
func NewFlashStore(secret string) *FlashStore {
	return &FlashStore{secret: []byte(secret)}
}

// Set откладывает сообщение до следующего запроса.
func (f *FlashStore) Set(w http.ResponseWriter, category, message string) {
	payload, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value + "." + f.sign(value),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})
}

// Pop возвращает отложенное сообщение и сразу стирает cookie.
// Возвращает nil, если сообщения нет или подпись не сходится.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true})

	value, sig, ok := strings.Cut(c.Value, ".")
	if !ok || !hmac.Equal([]byte(f.sign(value)), []byte(sig)) {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}

func (f *FlashStore) sign(value string) string {
	mac := hmac.New(sha256.New, f.secret)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
