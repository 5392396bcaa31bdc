package payments

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
)

// MercadoPago charges card tokens through the Mercado Pago payments API.
// The account's settlement currency applies; we only record the currency
// label on our side.
type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) Charge(
	ctx context.Context,
	token string,
	amount float64,
	payerEmail string,
	description string,
) (*Receipt, error) {

	res, err := m.client.Create(ctx, payment.Request{
		TransactionAmount: amount,
		Token:             token,
		Description:       description,
		Installments:      1,
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	if res.Status != "approved" {
		return nil, httperr.ErrBusiness(httperr.CodePaymentDeclined)
	}

	return &Receipt{
		ProviderPaymentID: strconv.Itoa(res.ID),
		Status:            res.Status,
	}, nil
}

var _ Charger = (*MercadoPago)(nil)
