package domain

import "time"

// Виды событий списка подарков.
const (
	EventReservation = "reservation"
	EventSurprise    = "surprise"
)

// Host — организатор, получающий уведомления в WhatsApp.
type Host struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	NotifyEnabled bool      `json:"notify_enabled"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationTemplate — шаблон сообщения для вида события.
type NotificationTemplate struct {
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegistryEvent — событие, публикуемое в Kafka после резервации или сюрприза.
type RegistryEvent struct {
	Kind         string    `json:"kind"`
	ProductID    string    `json:"product_id,omitempty"`
	ProductName  string    `json:"product_name"`
	CategoryName string    `json:"category_name,omitempty"`
	GuestName    string    `json:"guest_name,omitempty"`
	IsAnonymous  bool      `json:"is_anonymous"`
	Message      string    `json:"message,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Notification — подготовленное сообщение хосту со ссылкой wa.me.
type Notification struct {
	ID        string    `json:"id"`
	HostName  string    `json:"host_name"`
	Phone     string    `json:"phone"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
