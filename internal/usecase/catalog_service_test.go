package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports/mocks"
	"github.com/Gunvolt24/giftlist/internal/usecase"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

type catalogFixture struct {
	repo     *mocks.MockCatalogRepository
	settings *mocks.MockSettingsRepository
	svc      *usecase.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &catalogFixture{
		repo:     mocks.NewMockCatalogRepository(ctrl),
		settings: mocks.NewMockSettingsRepository(ctrl),
	}
	f.svc = usecase.NewCatalogService(f.repo, f.settings, newQueryCache(), noopLogger{}, validate.NewRegistryValidator())
	return f
}

func TestListCategories_ServedFromCache(t *testing.T) {
	f := newCatalogFixture(t)
	categories := []domain.Category{{ID: "c1", Name: "Cozinha"}}
	f.repo.EXPECT().ListCategories(gomock.Any()).Return(categories, nil).Times(1)

	for range 3 {
		got, err := f.svc.ListCategories(context.Background())
		require.NoError(t, err)
		require.Equal(t, categories, got)
	}
}

func TestListProducts_KeyPerCategory(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().ListProducts(gomock.Any(), "c1").Return([]domain.Product{{ID: "p1"}}, nil).Times(1)
	f.repo.EXPECT().ListProducts(gomock.Any(), "").Return([]domain.Product{{ID: "p1"}, {ID: "p2"}}, nil).Times(1)

	for range 2 {
		byCategory, err := f.svc.ListProducts(context.Background(), "c1")
		require.NoError(t, err)
		require.Len(t, byCategory, 1)

		all, err := f.svc.ListProducts(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, all, 2)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().GetProduct(gomock.Any(), "nope").Return(nil, domain.ErrNotFound)

	_, err := f.svc.GetProduct(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOverview_CombinesParts(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().ListCategories(gomock.Any()).Return([]domain.Category{{ID: "c1"}}, nil)
	f.repo.EXPECT().ProgressStats(gomock.Any()).Return(domain.NewProgressStats(4, 1, 2), nil)
	f.settings.EXPECT().DeliveryAddress(gomock.Any()).Return(&domain.DeliveryAddress{City: "Niterói"}, nil)

	got, err := f.svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	require.InDelta(t, 25.0, got.Progress.Percent, 0.001)
	require.Equal(t, "Niterói", got.DeliveryAddress.City)
}

func TestOverview_PropagatesError(t *testing.T) {
	f := newCatalogFixture(t)
	boom := errors.New("db down")
	f.repo.EXPECT().ListCategories(gomock.Any()).Return(nil, boom)
	f.repo.EXPECT().ProgressStats(gomock.Any()).Return(domain.ProgressStats{}, nil).AnyTimes()
	f.settings.EXPECT().DeliveryAddress(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.svc.Overview(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestDeliveryAddress_NotSetIsEmpty(t *testing.T) {
	f := newCatalogFixture(t)
	f.settings.EXPECT().DeliveryAddress(gomock.Any()).Return(nil, nil).Times(1)

	for range 2 {
		got, err := f.svc.DeliveryAddress(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.DeliveryAddress{}, got)
	}
}

func TestCreateProduct_InvalidSkipsRepo(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(0)

	err := f.svc.CreateProduct(context.Background(), &domain.Product{CategoryID: "c1"})
	require.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestCreateProduct_RevalidatesKeys(t *testing.T) {
	f := newCatalogFixture(t)
	p := &domain.Product{Name: "Toalhas", CategoryID: "c1", PriceCents: 9900, IsReserved: true}

	gomock.InOrder(
		f.repo.EXPECT().CreateProduct(gomock.Any(), p).Return(nil),
		f.repo.EXPECT().ListProducts(gomock.Any(), "c1").Return([]domain.Product{*p}, nil),
		f.repo.EXPECT().ListProducts(gomock.Any(), "").Return([]domain.Product{*p}, nil),
		f.repo.EXPECT().ProgressStats(gomock.Any()).Return(domain.NewProgressStats(1, 0, 0), nil),
	)

	require.NoError(t, f.svc.CreateProduct(context.Background(), p))
	require.NotEmpty(t, p.ID)
	require.False(t, p.IsReserved)
	require.False(t, p.CreatedAt.IsZero())

	// значения уже в кэше — повторных запросов к repo нет
	_, err := f.svc.ListProducts(context.Background(), "c1")
	require.NoError(t, err)
	_, err = f.svc.Progress(context.Background())
	require.NoError(t, err)
}

func TestCreateProduct_RevalidateFailureIsNotReturned(t *testing.T) {
	f := newCatalogFixture(t)
	p := &domain.Product{Name: "Toalhas", CategoryID: "c1"}

	f.repo.EXPECT().CreateProduct(gomock.Any(), p).Return(nil)
	f.repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(2)
	f.repo.EXPECT().ProgressStats(gomock.Any()).Return(domain.ProgressStats{}, errors.New("db down"))

	require.NoError(t, f.svc.CreateProduct(context.Background(), p))
}

func TestUpdateProduct_CategoryChangeDropsOldKey(t *testing.T) {
	f := newCatalogFixture(t)
	oldList := []domain.Product{{ID: "p1", CategoryID: "old"}}
	f.repo.EXPECT().ListProducts(gomock.Any(), "old").Return(oldList, nil).Times(2)

	_, err := f.svc.ListProducts(context.Background(), "old")
	require.NoError(t, err)

	updated := &domain.Product{ID: "p1", Name: "Toalhas", CategoryID: "new"}
	f.repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", CategoryID: "old"}, nil)
	f.repo.EXPECT().UpdateProduct(gomock.Any(), updated).Return(nil)
	f.repo.EXPECT().ListProducts(gomock.Any(), "new").Return([]domain.Product{*updated}, nil)
	f.repo.EXPECT().ListProducts(gomock.Any(), "").Return([]domain.Product{*updated}, nil)
	f.repo.EXPECT().ProgressStats(gomock.Any()).Return(domain.ProgressStats{}, nil)

	require.NoError(t, f.svc.UpdateProduct(context.Background(), updated))

	// старая категория перечитывается
	_, err = f.svc.ListProducts(context.Background(), "old")
	require.NoError(t, err)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(nil, domain.ErrNotFound)
	f.repo.EXPECT().DeleteProduct(gomock.Any(), gomock.Any()).Times(0)

	require.ErrorIs(t, f.svc.DeleteProduct(context.Background(), "p1"), domain.ErrNotFound)
}

func TestCreateCategory_RevalidatesCategories(t *testing.T) {
	f := newCatalogFixture(t)
	c := &domain.Category{Name: "Banheiro"}
	f.repo.EXPECT().CreateCategory(gomock.Any(), c).Return(nil)
	f.repo.EXPECT().ListCategories(gomock.Any()).Return([]domain.Category{*c}, nil).Times(1)

	require.NoError(t, f.svc.CreateCategory(context.Background(), c))
	got, err := f.svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSetDeliveryAddress_Revalidates(t *testing.T) {
	f := newCatalogFixture(t)
	addr := &domain.DeliveryAddress{Recipient: "Ana", City: "Rio"}
	f.settings.EXPECT().SaveDeliveryAddress(gomock.Any(), addr).Return(nil)
	f.settings.EXPECT().DeliveryAddress(gomock.Any()).Return(addr, nil).Times(1)

	require.NoError(t, f.svc.SetDeliveryAddress(context.Background(), addr))
	got, err := f.svc.DeliveryAddress(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Rio", got.City)
}

func TestInvalidateAll_ForcesRefetch(t *testing.T) {
	f := newCatalogFixture(t)
	f.repo.EXPECT().ListCategories(gomock.Any()).Return(nil, nil).Times(2)

	_, _ = f.svc.ListCategories(context.Background())
	f.svc.InvalidateAll(context.Background())
	_, _ = f.svc.ListCategories(context.Background())
}
