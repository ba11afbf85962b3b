package domain

import "time"

// Category — категория списка подарков (например, «Cozinha»).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product — позиция каталога, которую гость может зарезервировать.
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	StoreURL    string    `json:"store_url,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	IsReserved  bool      `json:"is_reserved"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeliveryAddress — адрес доставки подарков (одна запись на событие).
type DeliveryAddress struct {
	Recipient  string `json:"recipient"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Notes      string `json:"notes,omitempty"`
}

// ProgressStats — агрегированный прогресс списка.
type ProgressStats struct {
	TotalProducts    int     `json:"total_products"`
	ReservedProducts int     `json:"reserved_products"`
	SurpriseItems    int     `json:"surprise_items"`
	Percent          float64 `json:"percent"`
}

// NewProgressStats — считает процент зарезервированных позиций каталога.
func NewProgressStats(total, reserved, surprises int) ProgressStats {
	stats := ProgressStats{TotalProducts: total, ReservedProducts: reserved, SurpriseItems: surprises}
	if total > 0 {
		stats.Percent = float64(reserved) * 100 / float64(total)
	}
	return stats
}

// Overview — данные главной страницы.
type Overview struct {
	Categories      []Category      `json:"categories"`
	Progress        ProgressStats   `json:"progress"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
}
