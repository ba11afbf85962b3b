package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	cachemem "github.com/Gunvolt24/giftlist/internal/cache/memory"
	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/internal/tracker"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

var _ ports.VisitorReservations = (*VisitorService)(nil)

// visitorLoadTimeout — предел загрузки трекера из хранилища.
const visitorLoadTimeout = 5 * time.Second

// VisitorService — локальные трекеры резерваций по посетителям.
// Каждое обращение продлевает TTL трекера в кэше; после простоя дольше TTL
// трекер заново загружается из хранилища посетителя.
// Трекер, который не удалось загрузить, не кэшируется.
type VisitorService struct {
	storage  ports.VisitorStorage
	trackers *cachemem.TTLCache[*tracker.Tracker]
	log      ports.Logger
	opts     []tracker.Option

	mu sync.Mutex // сериализует загрузку трекера при промахе
}

// NewVisitorService — DI-конструктор.
func NewVisitorService(
	storage ports.VisitorStorage,
	trackers *cachemem.TTLCache[*tracker.Tracker],
	log ports.Logger,
	opts ...tracker.Option,
) *VisitorService {
	return &VisitorService{storage: storage, trackers: trackers, log: log, opts: opts}
}

// Reservations — локальные резервации посетителя в порядке добавления.
func (s *VisitorService) Reservations(ctx context.Context, visitorID string) ([]domain.LocalReservation, error) {
	t, err := s.tracker(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return t.List(), nil
}

// Record — добавляет локальную запись; ошибка оборачивает tracker.ErrPersist,
// если запись осталась только в памяти.
func (s *VisitorService) Record(ctx context.Context, visitorID string, in domain.NewLocalReservation) (domain.LocalReservation, error) {
	t, err := s.tracker(ctx, visitorID)
	if err != nil {
		return domain.LocalReservation{}, err
	}
	return t.Add(ctx, in)
}

// Remove — удаляет запись; false, если такой записи нет.
func (s *VisitorService) Remove(ctx context.Context, visitorID, id string) (bool, error) {
	t, err := s.tracker(ctx, visitorID)
	if err != nil {
		return false, err
	}
	return t.Remove(ctx, id)
}

func (s *VisitorService) Clear(ctx context.Context, visitorID string) error {
	t, err := s.tracker(ctx, visitorID)
	if err != nil {
		return err
	}
	return t.Clear(ctx)
}

func (s *VisitorService) tracker(ctx context.Context, visitorID string) (*tracker.Tracker, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return nil, fmt.Errorf("%w: visitor id обязателен", validate.ErrInvalidInput)
	}
	if t, ok := s.trackers.Get(visitorID); ok {
		s.trackers.Set(visitorID, t)
		return t, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.trackers.Get(visitorID); ok {
		s.trackers.Set(visitorID, t)
		return t, nil
	}

	// отмена запроса не должна превращаться в пустой список
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), visitorLoadTimeout)
	defer cancel()

	t, err := tracker.Load(loadCtx, s.storage.ForVisitor(visitorID), s.log, s.opts...)
	if err != nil {
		s.log.Warnf(ctx, "visitor tracker not loaded visitor_id=%s err=%v", visitorID, err)
		return nil, fmt.Errorf("visitor %s: %w", visitorID, err)
	}
	s.trackers.Set(visitorID, t)
	return t, nil
}
