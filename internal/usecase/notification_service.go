package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/pkg/validate"
	"github.com/Gunvolt24/giftlist/pkg/whatsapp"
)

var _ ports.NotificationAdmin = (*NotificationService)(nil)

// ErrInvalidEvent — сообщение не является корректным событием списка; повторять обработку бессмысленно.
var ErrInvalidEvent = errors.New("invalid registry event")

// notificationNamespace — пространство имён UUIDv5 для id уведомлений.
var notificationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("giftlist/notifications"))

const (
	defaultNotificationsLimit = 50
	maxNotificationsLimit     = 500
)

// NotificationService — уведомления организаторов о резервациях и сюрпризах.
type NotificationService struct {
	settings      ports.SettingsRepository
	notifications ports.NotificationRepository
	log           ports.Logger
	loc           *time.Location
	now           func() time.Time
}

// NewNotificationService — DI-конструктор; loc — часовой пояс для {data} (nil → UTC).
func NewNotificationService(
	settings ports.SettingsRepository,
	notifications ports.NotificationRepository,
	log ports.Logger,
	loc *time.Location,
) *NotificationService {
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationService{
		settings:      settings,
		notifications: notifications,
		log:           log,
		loc:           loc,
		now:           time.Now,
	}
}

// HandleEvent — обрабатывает событие из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг (неизвестные поля и лишние данные → ErrInvalidEvent);
//  2. активный шаблон для вида события (нет шаблона → событие пропускается);
//  3. сообщение и ссылка wa.me для каждого организатора с включёнными уведомлениями.
func (s *NotificationService) HandleEvent(ctx context.Context, raw []byte) error {
	ev, err := decodeEvent(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid event err=%v", err)
		return err
	}

	tmpl, err := s.settings.Template(ctx, ev.Kind)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Infof(ctx, "no template for kind=%s, event skipped", ev.Kind)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load template %s: %w", ev.Kind, err)
	}
	if !tmpl.Active {
		s.log.Infof(ctx, "template kind=%s inactive, event skipped", ev.Kind)
		return nil
	}

	hosts, err := s.settings.ListHosts(ctx)
	if err != nil {
		return fmt.Errorf("list hosts: %w", err)
	}

	text := whatsapp.Render(tmpl.Body, ev, s.loc)
	sent := 0
	for _, host := range hosts {
		if !host.NotifyEnabled {
			continue
		}
		link := whatsapp.Link(host.Phone, text)
		if link == "" {
			s.log.Warnf(ctx, "host phone has no digits host_id=%s", host.ID)
			continue
		}
		n := domain.Notification{
			ID:        notificationID(ev, host.ID),
			HostName:  host.Name,
			Phone:     whatsapp.Digits(host.Phone),
			Kind:      ev.Kind,
			Text:      text,
			Link:      link,
			CreatedAt: s.now().UTC(),
		}
		if err := s.notifications.SaveNotification(ctx, &n); err != nil {
			return fmt.Errorf("save notification host_id=%s: %w", host.ID, err)
		}
		sent++
	}

	s.log.Infof(ctx, "event handled kind=%s product=%s notifications=%d", ev.Kind, ev.ProductName, sent)
	return nil
}

func (s *NotificationService) ListHosts(ctx context.Context) ([]domain.Host, error) {
	return s.settings.ListHosts(ctx)
}

// CreateHost — добавляет организатора; телефон хранится только цифрами.
func (s *NotificationService) CreateHost(ctx context.Context, host *domain.Host) error {
	if host == nil || strings.TrimSpace(host.Name) == "" {
		return fmt.Errorf("%w: имя организатора обязательно", validate.ErrInvalidInput)
	}
	phone := whatsapp.Digits(host.Phone)
	if len(phone) < 8 {
		return fmt.Errorf("%w: некорректный телефон", validate.ErrInvalidInput)
	}
	host.Phone = phone
	if host.ID == "" {
		host.ID = uuid.NewString()
	}
	host.CreatedAt = s.now().UTC()

	if err := s.settings.CreateHost(ctx, host); err != nil {
		return fmt.Errorf("create host: %w", err)
	}
	return nil
}

func (s *NotificationService) DeleteHost(ctx context.Context, id string) error {
	if err := s.settings.DeleteHost(ctx, id); err != nil {
		return fmt.Errorf("delete host %s: %w", id, err)
	}
	return nil
}

func (s *NotificationService) ListTemplates(ctx context.Context) ([]domain.NotificationTemplate, error) {
	return s.settings.ListTemplates(ctx)
}

// SaveTemplate — создаёт или заменяет шаблон вида события.
func (s *NotificationService) SaveTemplate(ctx context.Context, template *domain.NotificationTemplate) error {
	if template == nil || !validKind(template.Kind) {
		return fmt.Errorf("%w: kind должен быть %s или %s", validate.ErrInvalidInput, domain.EventReservation, domain.EventSurprise)
	}
	if strings.TrimSpace(template.Body) == "" {
		return fmt.Errorf("%w: текст шаблона обязателен", validate.ErrInvalidInput)
	}
	template.UpdatedAt = s.now().UTC()

	if err := s.settings.SaveTemplate(ctx, template); err != nil {
		return fmt.Errorf("save template %s: %w", template.Kind, err)
	}
	return nil
}

// Preview — текст шаблона для события без сохранения.
func (s *NotificationService) Preview(template *domain.NotificationTemplate, event *domain.RegistryEvent) string {
	if template == nil {
		return ""
	}
	return whatsapp.Render(template.Body, event, s.loc)
}

// ListNotifications — последние уведомления; limit <= 0 → 50, не больше 500.
func (s *NotificationService) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationsLimit
	}
	limit = min(limit, maxNotificationsLimit)
	return s.notifications.ListNotifications(ctx, limit)
}

// notificationID — один и тот же id для пары (событие, организатор):
// повторная обработка события не создаёт дублей.
func notificationID(ev *domain.RegistryEvent, hostID string) string {
	name := strings.Join([]string{
		ev.Kind,
		ev.ProductID,
		ev.ProductName,
		ev.GuestName,
		ev.Message,
		ev.OccurredAt.UTC().Format(time.RFC3339Nano),
		hostID,
	}, "|")
	return uuid.NewSHA1(notificationNamespace, []byte(name)).String()
}

func decodeEvent(raw []byte) (*domain.RegistryEvent, error) {
	var ev domain.RegistryEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidEvent)
	}
	if !validKind(ev.Kind) {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, ev.Kind)
	}
	if strings.TrimSpace(ev.ProductName) == "" {
		return nil, fmt.Errorf("%w: product_name is required", ErrInvalidEvent)
	}
	return &ev, nil
}

func validKind(kind string) bool {
	return kind == domain.EventReservation || kind == domain.EventSurprise
}
