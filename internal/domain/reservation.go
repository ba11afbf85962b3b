package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyReserved — продукт уже зарезервирован другим гостем.
	ErrAlreadyReserved = errors.New("product already reserved")
)

// Reservation — серверная резервация продукта (источник истины).
type Reservation struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ReservedBy      string    `json:"reserved_by,omitempty"`
	ReservedContact string    `json:"reserved_contact,omitempty"`
	IsAnonymous     bool      `json:"is_anonymous"`
	Message         string    `json:"message,omitempty"`
	PhotoDataURI    string    `json:"photo,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SurpriseItem — подарок вне официального каталога.
type SurpriseItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	GivenBy      string    `json:"given_by,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	IsAnonymous  bool      `json:"is_anonymous"`
	Message      string    `json:"message,omitempty"`
	PhotoDataURI string    `json:"photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalReservation — запись локального трекера посетителя.
// Денормализованный снимок продукта на момент резервации; после создания не изменяется.
type LocalReservation struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	CategoryName    string    `json:"categoryName"`
	ReservedBy      string    `json:"reservedBy"`
	ReservedContact string    `json:"reservedContact"`
	IsAnonymous     bool      `json:"isAnonymous"`
	Message         string    `json:"message,omitempty"`
	ImagePreview    string    `json:"imagePreview,omitempty"`
	ReservedAt      time.Time `json:"reservedAt"`
}

// NewLocalReservation — запись без id/времени (их проставляет трекер).
type NewLocalReservation struct {
	ProductID       string
	ProductName     string
	CategoryName    string
	ReservedBy      string
	ReservedContact string
	IsAnonymous     bool
	Message         string
	ImagePreview    string
}
