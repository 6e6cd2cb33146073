package client

import (
	"context"

	"restro_pos/model"
)

// Payments talks to the remote payment service.
type Payments struct {
	api
}

func NewPayments(baseURL string) *Payments {
	return &Payments{api: newAPI(baseURL)}
}

func (p *Payments) Process(ctx context.Context, instruction model.PaymentInstruction) error {
	return p.do(ctx, "POST", "/api/v1/payment", instruction, nil)
}
