package models

import "time"

// Payment records the card charge taken before a self-service booking is
// committed. Reference is our uuid, ProviderPaymentID the gateway's.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference     string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	AppointmentID *uint  `gorm:"index" json:"appointment_id"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3" json:"currency"`

	Provider          string `gorm:"size:30;default:'mercadopago'" json:"provider"`
	ProviderPaymentID string `gorm:"size:64" json:"provider_payment_id"`
	Status            string `gorm:"size:20" json:"status"`
	PayerEmail        string `gorm:"size:100" json:"payer_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
