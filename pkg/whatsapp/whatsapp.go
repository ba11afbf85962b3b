// Package whatsapp — подготовка сообщений организаторам и ссылок wa.me.
package whatsapp

import (
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// Плейсхолдеры шаблонов.
const (
	PlaceholderProduct  = "{produto}"
	PlaceholderCategory = "{categoria}"
	PlaceholderGuest    = "{convidado}"
	PlaceholderMessage  = "{mensagem}"
	PlaceholderDate     = "{data}"
)

// AnonymousGuest — имя гостя в сообщении при анонимной отправке.
const AnonymousGuest = "Anônimo"

// DateLayout — формат {data}.
const DateLayout = "02/01/2006 15:04"

const baseURL = "https://wa.me/"

// Render — подставляет данные события в шаблон; неизвестные плейсхолдеры остаются как есть.
func Render(body string, ev *domain.RegistryEvent, loc *time.Location) string {
	if ev == nil {
		return body
	}
	if loc == nil {
		loc = time.UTC
	}

	guest := strings.TrimSpace(ev.GuestName)
	if ev.IsAnonymous || guest == "" {
		guest = AnonymousGuest
	}
	date := ""
	if !ev.OccurredAt.IsZero() {
		date = ev.OccurredAt.In(loc).Format(DateLayout)
	}

	r := strings.NewReplacer(
		PlaceholderProduct, ev.ProductName,
		PlaceholderCategory, ev.CategoryName,
		PlaceholderGuest, guest,
		PlaceholderMessage, ev.Message,
		PlaceholderDate, date,
	)
	return r.Replace(body)
}

// Digits — только цифры номера телефона.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link — https://wa.me/<digits>?text=<escaped>; пустая строка, если в номере нет цифр.
func Link(phone, text string) string {
	digits := Digits(phone)
	if digits == "" {
		return ""
	}
	// пробел как %20: "+" в тексте wa.me не всегда декодируется
	return baseURL + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
