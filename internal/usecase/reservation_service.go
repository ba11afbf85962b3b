package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

var (
	_ ports.GuestService     = (*ReservationService)(nil)
	_ ports.ReservationAdmin = (*ReservationService)(nil)
)

// LocalRecorder — запись резервации в локальный трекер посетителя.
type LocalRecorder interface {
	Record(ctx context.Context, visitorID string, in domain.NewLocalReservation) (domain.LocalReservation, error)
}

// ReservationService — резервации и подарки-сюрпризы.
type ReservationService struct {
	repo      ports.ReservationRepository
	catalog   ports.CatalogRepository
	cache     QueryCache
	publisher ports.EventPublisher
	local     LocalRecorder
	log       ports.Logger
	validator ports.RegistryValidator
	now       func() time.Time
}

// NewReservationService — DI-конструктор; publisher может быть nil (события не публикуются).
func NewReservationService(
	repo ports.ReservationRepository,
	catalog ports.CatalogRepository,
	cache QueryCache,
	publisher ports.EventPublisher,
	local LocalRecorder,
	log ports.Logger,
	validator ports.RegistryValidator,
) *ReservationService {
	return &ReservationService{
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		publisher: publisher,
		local:     local,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
}

// Reserve — резервирует продукт за гостем.
// Шаги:
//  1. валидация запроса (validate.ErrInvalidInput);
//  2. транзакционное сохранение с блокировкой строки продукта (domain.ErrAlreadyReserved при гонке);
//  3. сброс кэша продуктов и прогресса;
//  4. публикация события (ошибка только логируется);
//  5. запись в локальный трекер посетителя (ошибка → Tracked=false).
func (s *ReservationService) Reserve(ctx context.Context, visitorID string, req *domain.ReserveRequest) (*domain.ReserveResult, error) {
	if err := s.validator.ValidateReservation(ctx, req); err != nil {
		s.countAction("reserve", err)
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		s.countAction("reserve", err)
		return nil, fmt.Errorf("get product %s: %w", req.ProductID, err)
	}
	if product.IsReserved {
		s.countAction("reserve", domain.ErrAlreadyReserved)
		return nil, domain.ErrAlreadyReserved
	}
	categoryName := s.categoryName(ctx, product.CategoryID)

	reservation := domain.Reservation{
		ID:              uuid.NewString(),
		ProductID:       product.ID,
		ReservedBy:      req.ReservedBy,
		ReservedContact: req.ReservedContact,
		IsAnonymous:     req.IsAnonymous,
		Message:         req.Message,
		PhotoDataURI:    req.PhotoDataURI,
		CreatedAt:       s.now().UTC(),
	}
	if reservation.IsAnonymous {
		reservation.ReservedBy, reservation.ReservedContact = "", ""
	}

	if err := s.repo.Reserve(ctx, &reservation); err != nil {
		s.countAction("reserve", err)
		if !errors.Is(err, domain.ErrAlreadyReserved) && !errors.Is(err, domain.ErrNotFound) {
			s.log.Errorf(ctx, "repo.Reserve failed product_id=%s err=%v", product.ID, err)
		}
		return nil, fmt.Errorf("reserve product %s: %w", product.ID, err)
	}
	s.countAction("reserve", nil)
	invalidateReservationKeys(s.cache, product.CategoryID)

	s.publish(ctx, &domain.RegistryEvent{
		Kind:         domain.EventReservation,
		ProductID:    product.ID,
		ProductName:  product.Name,
		CategoryName: categoryName,
		GuestName:    reservation.ReservedBy,
		IsAnonymous:  reservation.IsAnonymous,
		Message:      reservation.Message,
		OccurredAt:   reservation.CreatedAt,
	})

	result := &domain.ReserveResult{Reservation: reservation}
	local, err := s.local.Record(ctx, visitorID, domain.NewLocalReservation{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CategoryName:    categoryName,
		ReservedBy:      req.ReservedBy,
		ReservedContact: req.ReservedContact,
		IsAnonymous:     req.IsAnonymous,
		Message:         req.Message,
		ImagePreview:    req.PhotoDataURI,
	})
	if err != nil {
		// резервация уже состоялась; локальная запись только вспомогательная
		s.log.Warnf(ctx, "local reservation not tracked visitor=%s product_id=%s err=%v", visitorID, product.ID, err)
	}
	result.Local = local
	result.Tracked = err == nil

	s.log.Infof(ctx, "product reserved product_id=%s reservation_id=%s anonymous=%t",
		product.ID, reservation.ID, reservation.IsAnonymous)
	return result, nil
}

// SubmitSurprise — добавляет подарок-сюрприз вне каталога.
func (s *ReservationService) SubmitSurprise(ctx context.Context, req *domain.SurpriseRequest) (*domain.SurpriseItem, error) {
	if err := s.validator.ValidateSurprise(ctx, req); err != nil {
		s.countAction("surprise", err)
		return nil, err
	}

	item := domain.SurpriseItem{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		GivenBy:      req.GivenBy,
		Contact:      req.Contact,
		IsAnonymous:  req.IsAnonymous,
		Message:      req.Message,
		PhotoDataURI: req.PhotoDataURI,
		CreatedAt:    s.now().UTC(),
	}
	if item.IsAnonymous {
		item.GivenBy, item.Contact = "", ""
	}

	if err := s.repo.CreateSurprise(ctx, &item); err != nil {
		s.countAction("surprise", err)
		s.log.Errorf(ctx, "repo.CreateSurprise failed name=%s err=%v", item.Name, err)
		return nil, fmt.Errorf("create surprise: %w", err)
	}
	s.countAction("surprise", nil)
	s.cache.Delete(KeyProgressStats)

	s.publish(ctx, &domain.RegistryEvent{
		Kind:        domain.EventSurprise,
		ProductName: item.Name,
		GuestName:   item.GivenBy,
		IsAnonymous: item.IsAnonymous,
		Message:     item.Message,
		OccurredAt:  item.CreatedAt,
	})
	return &item, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, limit, offset int) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx, limit, offset)
}

// CancelReservation — отменяет резервацию и освобождает продукт.
func (s *ReservationService) CancelReservation(ctx context.Context, id string) error {
	productID, err := s.repo.CancelReservation(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel reservation %s: %w", id, err)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		s.log.Warnf(ctx, "product lookup after cancel failed product_id=%s err=%v (clearing cache)", productID, err)
		s.cache.Clear()
		return nil
	}
	invalidateReservationKeys(s.cache, product.CategoryID)
	s.log.Infof(ctx, "reservation cancelled id=%s product_id=%s", id, productID)
	return nil
}

func (s *ReservationService) ListSurprises(ctx context.Context, limit, offset int) ([]domain.SurpriseItem, error) {
	return s.repo.ListSurprises(ctx, limit, offset)
}

func (s *ReservationService) DeleteSurprise(ctx context.Context, id string) error {
	if err := s.repo.DeleteSurprise(ctx, id); err != nil {
		return fmt.Errorf("delete surprise %s: %w", id, err)
	}
	s.cache.Delete(KeyProgressStats)
	return nil
}

// categoryName — название категории для снимка; пустая строка, если категория недоступна.
func (s *ReservationService) categoryName(ctx context.Context, categoryID string) string {
	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		s.log.Warnf(ctx, "category lookup failed category_id=%s err=%v", categoryID, err)
		return ""
	}
	return category.Name
}

func (s *ReservationService) publish(ctx context.Context, ev *domain.RegistryEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warnf(ctx, "publish %s event failed product=%s err=%v", ev.Kind, ev.ProductName, err)
	}
}

func (s *ReservationService) countAction(action string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, validate.ErrInvalidInput):
		result = "invalid"
	case errors.Is(err, domain.ErrAlreadyReserved):
		result = "conflict"
	default:
		result = "error"
	}
	metrics.RegistryActions.WithLabelValues(action, result).Inc()
}
