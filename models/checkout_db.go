package models

import "time"

// CheckoutResourceDB is the audit record persisted for each checkout session
// created with an external provider. The session itself lives entirely on the
// provider's infrastructure; this record backs provider callbacks and
// operational lookups only.
type CheckoutResourceDB struct {
	ID                string    `bson:"_id"`
	Provider          string    `bson:"provider"`
	Mode              string    `bson:"mode"`
	UnitAmount        int64     `bson:"unit_amount,omitempty"`
	Currency          string    `bson:"currency,omitempty"`
	PriceID           string    `bson:"price_id,omitempty"`
	ProductName       string    `bson:"product_name,omitempty"`
	Status            string    `bson:"status"`
	ProviderSessionID string    `bson:"provider_session_id,omitempty"`
	SuccessURL        string    `bson:"success_url,omitempty"`
	CancelURL         string    `bson:"cancel_url,omitempty"`
	CreatedAt         time.Time `bson:"created_at"`
	CompletedAt       time.Time `bson:"completed_at,omitempty"`
}
