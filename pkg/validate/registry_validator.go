package validate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
)

// Проверка, что RegistryValidator удовлетворяет интерфейсу RegistryValidator.
var _ ports.RegistryValidator = (*RegistryValidator)(nil)

// ErrInvalidInput — базовая (sentinel error) ошибка валидации.
var ErrInvalidInput = errors.New("input validation failed")

const (
	// MaxMessageLength — максимальная длина записки гостя (в символах).
	MaxMessageLength = 500
	// MaxNameLength — максимальная длина имён и названий.
	MaxNameLength = 120
	// MaxPhotoBytes — максимальный размер фото в виде data URI.
	MaxPhotoBytes = 2 << 20
)

// RegistryValidator — структура для валидации запросов гостей и администратора.
type RegistryValidator struct{}

// NewRegistryValidator — конструктор RegistryValidator.
// Методы возвращают ErrInvalidInput (с обёрнутой причиной) при любой проблеме.
func NewRegistryValidator() *RegistryValidator { return &RegistryValidator{} }

// ValidateReservation — проверяет запрос резервации.
func (v *RegistryValidator) ValidateReservation(_ context.Context, req *domain.ReserveRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidInput)
	}
	if err := v.validateIdentity(req.IsAnonymous, req.ReservedBy, req.ReservedContact, "reserved_by"); err != nil {
		return err
	}
	if err := v.validateMessage(req.Message); err != nil {
		return err
	}
	return v.validatePhoto(req.PhotoDataURI)
}

// ValidateSurprise — проверяет запрос подарка-сюрприза.
func (v *RegistryValidator) ValidateSurprise(_ context.Context, req *domain.SurpriseRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidInput)
	}
	if err := v.validateName(req.Name, "name"); err != nil {
		return err
	}
	if utf8.RuneCountInString(req.Description) > MaxMessageLength {
		return fmt.Errorf("%w: description длиннее %d символов", ErrInvalidInput, MaxMessageLength)
	}
	if err := v.validateIdentity(req.IsAnonymous, req.GivenBy, req.Contact, "given_by"); err != nil {
		return err
	}
	if err := v.validateMessage(req.Message); err != nil {
		return err
	}
	return v.validatePhoto(req.PhotoDataURI)
}

// ValidateProduct — проверяет продукт каталога.
func (v *RegistryValidator) ValidateProduct(_ context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("%w: продукт не может быть nil", ErrInvalidInput)
	}
	if err := v.validateName(product.Name, "name"); err != nil {
		return err
	}
	if strings.TrimSpace(product.CategoryID) == "" {
		return fmt.Errorf("%w: category_id обязателен", ErrInvalidInput)
	}
	if product.PriceCents < 0 {
		return fmt.Errorf("%w: price_cents должен быть неотрицательным", ErrInvalidInput)
	}
	if err := v.validateURL(product.ImageURL, "image_url"); err != nil {
		return err
	}
	return v.validateURL(product.StoreURL, "store_url")
}

// ValidateCategory — проверяет категорию.
func (v *RegistryValidator) ValidateCategory(_ context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("%w: категория не может быть nil", ErrInvalidInput)
	}
	if err := v.validateName(category.Name, "name"); err != nil {
		return err
	}
	if category.SortOrder < 0 {
		return fmt.Errorf("%w: sort_order должен быть неотрицательным", ErrInvalidInput)
	}
	return nil
}

// validateIdentity — при неанонимной отправке имя обязательно.
func (v *RegistryValidator) validateIdentity(anonymous bool, name, contact, field string) error {
	if anonymous {
		return nil
	}
	if err := v.validateName(name, field); err != nil {
		return err
	}
	if utf8.RuneCountInString(contact) > MaxNameLength {
		return fmt.Errorf("%w: контакт длиннее %d символов", ErrInvalidInput, MaxNameLength)
	}
	return nil
}

func (v *RegistryValidator) validateName(name, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: %s обязателен", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: %s длиннее %d символов", ErrInvalidInput, field, MaxNameLength)
	}
	return nil
}

func (v *RegistryValidator) validateMessage(msg string) error {
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return fmt.Errorf("%w: message длиннее %d символов", ErrInvalidInput, MaxMessageLength)
	}
	return nil
}

// validatePhoto — пустое фото допустимо; иначе data:image/*;base64,... не больше MaxPhotoBytes.
func (v *RegistryValidator) validatePhoto(photo string) error {
	if photo == "" {
		return nil
	}
	if len(photo) > MaxPhotoBytes {
		return fmt.Errorf("%w: фото больше %d байт", ErrInvalidInput, MaxPhotoBytes)
	}
	if !strings.HasPrefix(photo, "data:image/") || !strings.Contains(photo, ";base64,") {
		return fmt.Errorf("%w: фото должно быть data:image/*;base64 URI", ErrInvalidInput)
	}
	return nil
}

func (v *RegistryValidator) validateURL(raw, field string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s некорректен", ErrInvalidInput, field)
	}
	return nil
}
