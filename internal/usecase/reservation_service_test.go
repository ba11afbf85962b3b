package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/giftlist/internal/cache/memory"
	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/internal/ports/mocks"
	"github.com/Gunvolt24/giftlist/internal/tracker"
	"github.com/Gunvolt24/giftlist/internal/usecase"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

const visitorID = "visitor-1"

type reservationFixture struct {
	repo      *mocks.MockReservationRepository
	catalog   *mocks.MockCatalogRepository
	publisher *mocks.MockEventPublisher
	cache     *cachemem.TTLCache[any]
	visitors  *usecase.VisitorService
	svc       *usecase.ReservationService
}

func newReservationFixture(t *testing.T, storage ports.VisitorStorage) *reservationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	if storage == nil {
		storage = tracker.NewMemoryVisitorStorage()
	}
	f := &reservationFixture{
		repo:      mocks.NewMockReservationRepository(ctrl),
		catalog:   mocks.NewMockCatalogRepository(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		cache:     newQueryCache(),
	}
	trackers := cachemem.NewTTLCache[*tracker.Tracker](time.Minute, cachemem.WithName("visitors_test"))
	f.visitors = usecase.NewVisitorService(storage, trackers, noopLogger{})
	f.svc = usecase.NewReservationService(f.repo, f.catalog, f.cache, f.publisher, f.visitors, noopLogger{}, validate.NewRegistryValidator())
	return f
}

func (f *reservationFixture) expectProduct(p *domain.Product) {
	f.catalog.EXPECT().GetProduct(gomock.Any(), p.ID).Return(p, nil)
	f.catalog.EXPECT().GetCategory(gomock.Any(), p.CategoryID).Return(&domain.Category{ID: p.CategoryID, Name: "Cozinha"}, nil)
}

func TestReserve_Success(t *testing.T) {
	f := newReservationFixture(t, nil)
	product := &domain.Product{ID: "p1", CategoryID: "c1", Name: "Jogo de Panelas"}
	f.expectProduct(product)

	f.cache.Set(usecase.ProductsKey("c1"), []domain.Product{*product})
	f.cache.Set(usecase.ProductsKey(""), []domain.Product{*product})
	f.cache.Set(usecase.KeyProgressStats, domain.ProgressStats{})
	f.cache.Set(usecase.KeyCategories, []domain.Category{})

	f.repo.EXPECT().Reserve(gomock.Any(), gomock.AssignableToTypeOf(&domain.Reservation{})).
		DoAndReturn(func(_ context.Context, r *domain.Reservation) error {
			require.Equal(t, "p1", r.ProductID)
			require.Equal(t, "Maria", r.ReservedBy)
			require.NotEmpty(t, r.ID)
			return nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.RegistryEvent) error {
			require.Equal(t, domain.EventReservation, ev.Kind)
			require.Equal(t, "Jogo de Panelas", ev.ProductName)
			require.Equal(t, "Cozinha", ev.CategoryName)
			require.Equal(t, "Maria", ev.GuestName)
			return nil
		})

	res, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{
		ProductID: "p1", ReservedBy: "Maria", ReservedContact: "21999990000", Message: "Felicidades",
	})
	require.NoError(t, err)
	require.True(t, res.Tracked)
	require.Equal(t, "Jogo de Panelas", res.Local.ProductName)
	require.Equal(t, "Cozinha", res.Local.CategoryName)

	require.False(t, f.cache.Has(usecase.ProductsKey("c1")))
	require.False(t, f.cache.Has(usecase.ProductsKey("")))
	require.False(t, f.cache.Has(usecase.KeyProgressStats))
	require.True(t, f.cache.Has(usecase.KeyCategories))

	local, err := f.visitors.Reservations(context.Background(), visitorID)
	require.NoError(t, err)
	require.Len(t, local, 1)
	require.Equal(t, res.Local.ID, local[0].ID)
}

func TestReserve_AnonymousClearsIdentity(t *testing.T) {
	f := newReservationFixture(t, nil)
	product := &domain.Product{ID: "p1", CategoryID: "c1", Name: "Toalhas"}
	f.expectProduct(product)

	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Reservation) error {
			require.True(t, r.IsAnonymous)
			require.Empty(t, r.ReservedBy)
			require.Empty(t, r.ReservedContact)
			return nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{
		ProductID: "p1", ReservedBy: "Maria", ReservedContact: "21999990000", IsAnonymous: true,
	})
	require.NoError(t, err)
	require.Empty(t, res.Local.ReservedBy)
	require.Empty(t, res.Local.ReservedContact)
}

func TestReserve_InvalidRequest(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.catalog.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "p1"})
	require.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestReserve_AlreadyReservedProduct(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", IsReserved: true}, nil)
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "p1", ReservedBy: "Ana"})
	require.ErrorIs(t, err, domain.ErrAlreadyReserved)
}

func TestReserve_ConflictInTransaction(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.expectProduct(&domain.Product{ID: "p1", CategoryID: "c1", Name: "Toalhas"})
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyReserved)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "p1", ReservedBy: "Ana"})
	require.ErrorIs(t, err, domain.ErrAlreadyReserved)

	local, err := f.visitors.Reservations(context.Background(), visitorID)
	require.NoError(t, err)
	require.Empty(t, local)
}

func TestReserve_ProductNotFound(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.catalog.EXPECT().GetProduct(gomock.Any(), "ghost").Return(nil, domain.ErrNotFound)

	_, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "ghost", ReservedBy: "Ana"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReserve_PublishFailureIsNotFatal(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.expectProduct(&domain.Product{ID: "p1", CategoryID: "c1", Name: "Toalhas"})
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "p1", ReservedBy: "Ana"})
	require.NoError(t, err)
	require.True(t, res.Tracked)
}

func TestReserve_LocalPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueStorage(ctrl)
	kv.EXPECT().GetItem(gomock.Any(), tracker.StorageKey).Return(nil, false, nil)
	kv.EXPECT().SetItem(gomock.Any(), tracker.StorageKey, gomock.Any()).Return(errors.New("quota exceeded"))
	storage := mocks.NewMockVisitorStorage(ctrl)
	storage.EXPECT().ForVisitor(visitorID).Return(kv)

	f := newReservationFixture(t, storage)
	f.expectProduct(&domain.Product{ID: "p1", CategoryID: "c1", Name: "Toalhas"})
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Reserve(context.Background(), visitorID, &domain.ReserveRequest{ProductID: "p1", ReservedBy: "Ana"})
	require.NoError(t, err)
	require.False(t, res.Tracked)
	require.NotEmpty(t, res.Local.ID)
}

func TestSubmitSurprise_PublishesEvent(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.cache.Set(usecase.KeyProgressStats, domain.ProgressStats{})

	f.repo.EXPECT().CreateSurprise(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.RegistryEvent) error {
			require.Equal(t, domain.EventSurprise, ev.Kind)
			require.Equal(t, "Cafeteira", ev.ProductName)
			require.True(t, ev.IsAnonymous)
			require.Empty(t, ev.GuestName)
			return nil
		})

	item, err := f.svc.SubmitSurprise(context.Background(), &domain.SurpriseRequest{
		Name: "Cafeteira", GivenBy: "João", IsAnonymous: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Empty(t, item.GivenBy)
	require.False(t, f.cache.Has(usecase.KeyProgressStats))
}

func TestSubmitSurprise_Invalid(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.repo.EXPECT().CreateSurprise(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.SubmitSurprise(context.Background(), &domain.SurpriseRequest{GivenBy: "João"})
	require.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestCancelReservation_InvalidatesCategory(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.cache.Set(usecase.ProductsKey("c1"), []domain.Product{})
	f.cache.Set(usecase.KeyCategories, []domain.Category{})

	f.repo.EXPECT().CancelReservation(gomock.Any(), "r1").Return("p1", nil)
	f.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", CategoryID: "c1"}, nil)

	require.NoError(t, f.svc.CancelReservation(context.Background(), "r1"))
	require.False(t, f.cache.Has(usecase.ProductsKey("c1")))
	require.True(t, f.cache.Has(usecase.KeyCategories))
}

func TestCancelReservation_NotFound(t *testing.T) {
	f := newReservationFixture(t, nil)
	f.repo.EXPECT().CancelReservation(gomock.Any(), "r1").Return("", domain.ErrNotFound)

	require.ErrorIs(t, f.svc.CancelReservation(context.Background(), "r1"), domain.ErrNotFound)
}
