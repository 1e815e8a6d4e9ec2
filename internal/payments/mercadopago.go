package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// Charge é o resultado de uma cobrança criada no provedor.
type Charge struct {
	ID        string
	Status    string
	QRCode    string
	QRCodeB64 string
}

// Provider cria cobranças para vendas não pagas em dinheiro.
type Provider interface {
	CreatePixCharge(ctx context.Context, amount float64, description, payerEmail string) (*Charge, error)
}

type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client: payment.NewClient(cfg),
	}, nil
}

func (m *MercadoPago) CreatePixCharge(
	ctx context.Context,
	amount float64,
	description string,
	payerEmail string,
) (*Charge, error) {

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create pix charge: %w", err)
	}

	charge := &Charge{
		ID:     fmt.Sprintf("%d", res.ID),
		Status: res.Status,
	}

	if res.PointOfInteraction.TransactionData.QRCode != "" {
		charge.QRCode = res.PointOfInteraction.TransactionData.QRCode
		charge.QRCodeB64 = res.PointOfInteraction.TransactionData.QRCodeBase64
	}

	return charge, nil
}

// Compile-time check
var _ Provider = (*MercadoPago)(nil)
