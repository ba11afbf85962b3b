//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// UniqSuffix — короткий случайный суффикс для id.
func UniqSuffix() string { return randHex(6) }

// MakeCategory — валидная категория с уникальным id.
func MakeCategory(opts ...func(*domain.Category)) domain.Category {
	c := domain.Category{
		ID:        "cat-" + UniqSuffix(),
		Name:      "Cozinha",
		SortOrder: 1,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// MakeProduct — валидный незарезервированный продукт категории categoryID.
func MakeProduct(categoryID string, opts ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		ID:         "prd-" + UniqSuffix(),
		CategoryID: categoryID,
		Name:       "Jogo de panelas",
		ImageURL:   "https://example.com/panelas.jpg",
		StoreURL:   "https://example.com/loja/panelas",
		PriceCents: 34990,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// MakeReservation — резервация продукта productID.
func MakeReservation(productID string, opts ...func(*domain.Reservation)) domain.Reservation {
	r := domain.Reservation{
		ID:              "res-" + UniqSuffix(),
		ProductID:       productID,
		ReservedBy:      "Maria",
		ReservedContact: "+55 11 91234-5678",
		Message:         "Felicidades!",
		CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// MakeSurprise — подарок-сюрприз.
func MakeSurprise(opts ...func(*domain.SurpriseItem)) domain.SurpriseItem {
	s := domain.SurpriseItem{
		ID:        "srp-" + UniqSuffix(),
		Name:      "Cafeteira",
		GivenBy:   "João",
		Message:   "Para o café da manhã",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
