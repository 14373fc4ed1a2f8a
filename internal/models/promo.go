package models

import "time"

type Promo struct {
	ID          string    `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Code        string    `db:"code"        json:"code"`
	Discount    string    `db:"discount"    json:"discount"`
	ValidUntil  time.Time `db:"valid_until" json:"valid_until"`
	Partner     string    `db:"partner"     json:"partner"`
	Category    string    `db:"category"    json:"category"`
	ImageURL    *string   `db:"image_url"   json:"image_url,omitempty"`
	WebsiteURL  *string   `db:"website_url" json:"website_url,omitempty"`
	Active      bool      `db:"active"      json:"active"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
	CreatedBy   *string   `db:"created_by"  json:"created_by,omitempty"`

	// DiscountLabel — discount, приведённый к виду "-30%"/"+15%".
	// Вычисляется при отдаче, в БД хранится сырое значение.
	DiscountLabel string `db:"-" json:"discount_label,omitempty"`
}

// swagger:model CreatePromoRequest
type CreatePromoRequest struct {
	Title       string `json:"title"       example:"Скидка в фитнес-клубе"`
	Description string `json:"description" example:"<p>Условия акции</p>"`
	Code        string `json:"code"        example:"PROFKOM30"`
	Discount    string `json:"discount"    example:"30"`
	ValidUntil  string `json:"valid_until" example:"2026-12-31"`
	Partner     string `json:"partner"     example:"FitnessPro"`
	Category    string `json:"category"    example:"Спорт"`
	ImageURL    string `json:"image_url"   example:"https://example.com/promo.png"`
	WebsiteURL  string `json:"website_url" example:"fitnesspro.ru"`
}

// swagger:model UpdatePromoRequest
type UpdatePromoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Code        *string `json:"code,omitempty"`
	Discount    *string `json:"discount,omitempty"`
	ValidUntil  *string `json:"valid_until,omitempty"`
	Partner     *string `json:"partner,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	WebsiteURL  *string `json:"website_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
