package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports/mocks"
	"github.com/Gunvolt24/giftlist/internal/tracker"
	rest "github.com/Gunvolt24/giftlist/internal/transport/http"
	"github.com/Gunvolt24/giftlist/pkg/httpx"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type fakeReporter struct{ errs []error }

func (f *fakeReporter) CaptureError(_ context.Context, err error, _ map[string]string) {
	f.errs = append(f.errs, err)
}

type env struct {
	catalog       *mocks.MockCatalogReader
	catalogAdmin  *mocks.MockCatalogAdmin
	guests        *mocks.MockGuestService
	reservations  *mocks.MockReservationAdmin
	visitors      *mocks.MockVisitorReservations
	notifications *mocks.MockNotificationAdmin
	reporter      *fakeReporter
	router        *gin.Engine
}

func newEnv(t *testing.T, opts rest.RouterOptions) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	e := &env{
		catalog:       mocks.NewMockCatalogReader(ctrl),
		catalogAdmin:  mocks.NewMockCatalogAdmin(ctrl),
		guests:        mocks.NewMockGuestService(ctrl),
		reservations:  mocks.NewMockReservationAdmin(ctrl),
		visitors:      mocks.NewMockVisitorReservations(ctrl),
		notifications: mocks.NewMockNotificationAdmin(ctrl),
		reporter:      &fakeReporter{},
	}
	h := rest.NewHandler(rest.Services{
		Catalog:       e.catalog,
		CatalogAdmin:  e.catalogAdmin,
		Guests:        e.guests,
		Reservations:  e.reservations,
		Visitors:      e.visitors,
		Notifications: e.notifications,
	}, noopLogger{}, e.reporter)
	e.router = rest.NewRouter(h, opts)
	return e
}

func (e *env) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestOverview_OK(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalog.EXPECT().Overview(gomock.Any()).Return(&domain.Overview{
		Categories: []domain.Category{{ID: "c1", Name: "Cozinha"}},
		Progress:   domain.NewProgressStats(4, 1, 0),
	}, nil)

	w := e.do(http.MethodGet, "/api/overview", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got domain.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Categories, 1)
	require.InDelta(t, 25.0, got.Progress.Percent, 0.001)
}

func TestListProducts_PassesCategory(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalog.EXPECT().ListProducts(gomock.Any(), "c1").Return([]domain.Product{{ID: "p1"}}, nil)

	w := e.do(http.MethodGet, "/api/products?category_id=c1", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalog.EXPECT().GetProduct(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

	w := e.do(http.MethodGet, "/api/products/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, e.reporter.errs)
}

func TestGetProduct_InternalError_Reported(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	boom := errors.New("db down")
	e.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(nil, boom)

	w := e.do(http.MethodGet, "/api/products/p1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	require.Equal(t, []error{boom}, e.reporter.errs)
}

func TestReserve_Created_UsesVisitorHeader(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.guests.EXPECT().Reserve(gomock.Any(), "visitor-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *domain.ReserveRequest) (*domain.ReserveResult, error) {
			require.Equal(t, "p1", req.ProductID)
			require.Equal(t, "Maria", req.ReservedBy)
			return &domain.ReserveResult{
				Reservation: domain.Reservation{ID: "r1", ProductID: "p1"},
				Tracked:     true,
			}, nil
		})

	w := e.do(http.MethodPost, "/api/reservations", `{"product_id":"p1","reserved_by":"Maria"}`,
		httpx.HeaderVisitorID, "visitor-1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got domain.ReserveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "r1", got.Reservation.ID)
	require.True(t, got.Tracked)
}

func TestReserve_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("message too long: %w", validate.ErrInvalidInput), http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"conflict", domain.ErrAlreadyReserved, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, rest.RouterOptions{})
			e.guests.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := e.do(http.MethodPost, "/api/reservations", `{"product_id":"p1"}`)
			require.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestReserve_InvalidJSON_400(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	w := e.do(http.MethodPost, "/api/reservations", `{"product_id":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReserve_RateLimited(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{RateLimiter: httpx.NewRateLimiter(0.001, 1)})
	e.guests.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ReserveResult{}, nil).Times(1)

	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/reservations", `{"product_id":"p1"}`).Code)
	require.Equal(t, http.StatusTooManyRequests, e.do(http.MethodPost, "/api/reservations", `{"product_id":"p1"}`).Code)
}

func TestSubmitSurprise_Created(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.guests.EXPECT().SubmitSurprise(gomock.Any(), gomock.Any()).
		Return(&domain.SurpriseItem{ID: "s1", Name: "Cafeteira"}, nil)

	w := e.do(http.MethodPost, "/api/surprises", `{"name":"Cafeteira","given_by":"João"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestVisitorCookie_SetWhenAbsent(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.visitors.EXPECT().Reservations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, visitorID string) ([]domain.LocalReservation, error) {
			require.NotEmpty(t, visitorID)
			return nil, nil
		})

	w := e.do(http.MethodGet, "/api/me/reservations", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, httpx.CookieVisitorID, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.JSONEq(t, `{"reservations":[],"count":0,"has_reservations":false}`, w.Body.String())
}

func TestMyReservations_FromCookie(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	list := []domain.LocalReservation{{ID: "1700000000000-abc", ProductName: "Panelas"}}
	e.visitors.EXPECT().Reservations(gomock.Any(), "v-cookie").Return(list, nil)

	w := e.do(http.MethodGet, "/api/me/reservations", "", "Cookie", httpx.CookieVisitorID+"=v-cookie")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Result().Cookies())

	var got struct {
		Count           int  `json:"count"`
		HasReservations bool `json:"has_reservations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 1, got.Count)
	require.True(t, got.HasReservations)
}

func TestRemoveMyReservation(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	gomock.InOrder(
		e.visitors.EXPECT().Remove(gomock.Any(), "v1", "r1").Return(true, nil),
		e.visitors.EXPECT().Remove(gomock.Any(), "v1", "r1").Return(false, nil),
	)

	require.Equal(t, http.StatusNoContent, e.do(http.MethodDelete, "/api/me/reservations/r1", "", httpx.HeaderVisitorID, "v1").Code)
	require.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/me/reservations/r1", "", httpx.HeaderVisitorID, "v1").Code)
}

func TestClearMyReservations(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.visitors.EXPECT().Clear(gomock.Any(), "v1").Return(nil)

	w := e.do(http.MethodDelete, "/api/me/reservations", "", httpx.HeaderVisitorID, "v1")
	require.Equal(t, http.StatusNoContent, w.Code)
}

// Трекер изменён в памяти, но не сохранён: клиент получает 200 и persisted=false, не 500.
func TestMyReservations_ChangedButNotPersisted(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	notSaved := fmt.Errorf("%w: quota exceeded", tracker.ErrPersist)
	e.visitors.EXPECT().Remove(gomock.Any(), "v1", "r1").Return(true, notSaved)
	e.visitors.EXPECT().Clear(gomock.Any(), "v1").Return(notSaved)

	w := e.do(http.MethodDelete, "/api/me/reservations/r1", "", httpx.HeaderVisitorID, "v1")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"persisted":false}`, w.Body.String())

	w = e.do(http.MethodDelete, "/api/me/reservations", "", httpx.HeaderVisitorID, "v1")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"persisted":false}`, w.Body.String())

	require.Empty(t, e.reporter.errs)
}

func TestMyReservations_LoadFailureIs500(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.visitors.EXPECT().Reservations(gomock.Any(), "v1").Return(nil, fmt.Errorf("visitor v1: %w", tracker.ErrLoad))

	w := e.do(http.MethodGet, "/api/me/reservations", "", httpx.HeaderVisitorID, "v1")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdmin_ListReservations_Paging(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	gomock.InOrder(
		e.reservations.EXPECT().ListReservations(gomock.Any(), 20, 0).Return(nil, nil),
		e.reservations.EXPECT().ListReservations(gomock.Any(), 3, 7).Return([]domain.Reservation{{ID: "r1"}}, nil),
		e.reservations.EXPECT().ListReservations(gomock.Any(), 100, 0).Return(nil, nil),
	)

	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/reservations", "").Code)
	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/reservations?limit=3&offset=7", "").Code)
	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/reservations?limit=1000&offset=-1", "").Code)
}

func TestAdmin_CancelReservation_NotFound(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.reservations.EXPECT().CancelReservation(gomock.Any(), "r404").Return(domain.ErrNotFound)

	require.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/admin/reservations/r404", "").Code)
}

func TestAdmin_UpdateProduct_UsesPathID(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalogAdmin.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) error {
			require.Equal(t, "p1", p.ID)
			require.Equal(t, "Panelas", p.Name)
			return nil
		})

	w := e.do(http.MethodPut, "/api/admin/products/p1", `{"id":"other","name":"Panelas","category_id":"c1"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdmin_CreateCategory_Invalid(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalogAdmin.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("name is required: %w", validate.ErrInvalidInput))

	w := e.do(http.MethodPost, "/api/admin/categories", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "name is required")
}

func TestAdmin_SaveTemplate_UsesPathKind(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.notifications.EXPECT().SaveTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tmpl *domain.NotificationTemplate) error {
			require.Equal(t, domain.EventReservation, tmpl.Kind)
			return nil
		})

	w := e.do(http.MethodPut, "/api/admin/templates/reservation", `{"body":"Oi {produto}","active":true}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdmin_PreviewTemplate_SampleEvent(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.notifications.EXPECT().Preview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(tmpl *domain.NotificationTemplate, ev *domain.RegistryEvent) string {
			require.Equal(t, domain.EventSurprise, ev.Kind)
			require.NotEmpty(t, ev.ProductName)
			return "preview"
		})

	w := e.do(http.MethodPost, "/api/admin/templates/preview", `{"template":{"kind":"surprise","body":"{produto}"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"text":"preview"}`, w.Body.String())
}

func TestAdmin_ListNotifications_Limit(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	gomock.InOrder(
		e.notifications.EXPECT().ListNotifications(gomock.Any(), 50).Return(nil, nil),
		e.notifications.EXPECT().ListNotifications(gomock.Any(), 500).Return(nil, nil),
	)

	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/notifications", "").Code)
	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/notifications?limit=9999", "").Code)
}

func TestAdmin_ClearCache(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	e.catalogAdmin.EXPECT().InvalidateAll(gomock.Any())

	require.Equal(t, http.StatusNoContent, e.do(http.MethodPost, "/api/admin/cache/clear", "").Code)
}

func TestRequestID_EchoedOrGenerated(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})

	w := e.do(http.MethodGet, "/ping", "", httpx.HeaderRequestID, "req-42")
	require.Equal(t, "req-42", w.Header().Get(httpx.HeaderRequestID))

	w = e.do(http.MethodGet, "/ping", "")
	require.NotEmpty(t, w.Header().Get(httpx.HeaderRequestID))
}

func TestNoRoute_404(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	require.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/no-such-route", "").Code)
}

func TestMethodNotAllowed_405(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	require.Equal(t, http.StatusMethodNotAllowed, e.do(http.MethodPut, "/api/overview", "").Code)
}

func TestPing_200(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	w := e.do(http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}

func TestMetrics_200(t *testing.T) {
	e := newEnv(t, rest.RouterOptions{})
	w := e.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	// Содержимое может меняться — достаточно проверить, что не пусто.
	require.NotZero(t, w.Body.Len())
}
