package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

func validReserve() *domain.ReserveRequest {
	return &domain.ReserveRequest{
		ProductID:       "p1",
		ReservedBy:      "Maria",
		ReservedContact: "5521999999999",
		Message:         "Parabéns!",
	}
}

func TestValidateReservation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *domain.ReserveRequest)
		wantErr bool
	}{
		{"ok", func(*domain.ReserveRequest) {}, false},
		{"ok_anonymous_without_name", func(r *domain.ReserveRequest) { r.IsAnonymous = true; r.ReservedBy = "" }, false},
		{"ok_photo", func(r *domain.ReserveRequest) { r.PhotoDataURI = "data:image/jpeg;base64,/9j/4AAQ" }, false},
		{"ok_message_at_limit", func(r *domain.ReserveRequest) { r.Message = strings.Repeat("ã", MaxMessageLength) }, false},
		{"missing_product", func(r *domain.ReserveRequest) { r.ProductID = " " }, true},
		{"missing_name", func(r *domain.ReserveRequest) { r.ReservedBy = "" }, true},
		{"message_too_long", func(r *domain.ReserveRequest) { r.Message = strings.Repeat("a", MaxMessageLength+1) }, true},
		{"photo_not_data_uri", func(r *domain.ReserveRequest) { r.PhotoDataURI = "https://x/y.png" }, true},
		{"photo_not_image", func(r *domain.ReserveRequest) { r.PhotoDataURI = "data:text/plain;base64,AAAA" }, true},
		{"photo_too_big", func(r *domain.ReserveRequest) {
			r.PhotoDataURI = "data:image/png;base64," + strings.Repeat("A", MaxPhotoBytes)
		}, true},
	}

	v := NewRegistryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validReserve()
			tt.mutate(req)
			err := v.ValidateReservation(context.Background(), req)
			if tt.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error must wrap ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestValidateReservation_Nil(t *testing.T) {
	if err := NewRegistryValidator().ValidateReservation(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestValidateSurprise(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	ok := &domain.SurpriseRequest{Name: "Cafeteira", GivenBy: "João"}
	if err := v.ValidateSurprise(ctx, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anon := &domain.SurpriseRequest{Name: "Cafeteira", IsAnonymous: true}
	if err := v.ValidateSurprise(ctx, anon); err != nil {
		t.Fatalf("anonymous surprise must be valid: %v", err)
	}

	noName := &domain.SurpriseRequest{GivenBy: "João"}
	if err := v.ValidateSurprise(ctx, noName); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for missing name, got %v", err)
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		product domain.Product
		wantErr bool
	}{
		{"ok", domain.Product{Name: "Liquidificador", CategoryID: "c1", PriceCents: 19990, StoreURL: "https://loja.example/item"}, false},
		{"missing_name", domain.Product{CategoryID: "c1"}, true},
		{"missing_category", domain.Product{Name: "X"}, true},
		{"negative_price", domain.Product{Name: "X", CategoryID: "c1", PriceCents: -1}, true},
		{"bad_image_url", domain.Product{Name: "X", CategoryID: "c1", ImageURL: "ftp://x"}, true},
	}
	for _, tt := range tests {
		err := v.ValidateProduct(ctx, &tt.product)
		if tt.wantErr != (err != nil) {
			t.Fatalf("%s: wantErr=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	if err := v.ValidateCategory(ctx, &domain.Category{Name: "Cozinha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.ValidateCategory(ctx, &domain.Category{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if err := v.ValidateCategory(ctx, &domain.Category{Name: "X", SortOrder: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for negative sort order, got %v", err)
	}
}
