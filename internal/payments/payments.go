package payments

import "context"

// Receipt is the confirmation the gateway returns for an approved charge.
type Receipt struct {
	ProviderPaymentID string
	Status            string
}

// Charger is the only thing the booking flow knows about the payment
// gateway: exchange a one-time card token for a charge, or fail.
type Charger interface {
	Charge(
		ctx context.Context,
		token string,
		amount float64,
		payerEmail string,
		description string,
	) (*Receipt, error)
}
