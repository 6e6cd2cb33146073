package model

type SplitPayment struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

// PaymentInstruction is built at checkout time and handed to the payment
// service. It is not retained after the dispatch finishes.
type PaymentInstruction struct {
	OrderID        uint           `json:"orderId"`
	AmountReceived float64        `json:"amountReceived"`
	DiscountAmount float64        `json:"discountAmount"`
	AmountPaid     float64        `json:"amountPaid"`
	ChangeAmount   float64        `json:"changeAmount"`
	IsSplit        bool           `json:"isSplit"`
	SplitPayments  []SplitPayment `json:"splitPayments,omitempty"`
}

type CheckoutInput struct {
	AmountReceived float64        `json:"amountReceived" validate:"gte=0"`
	IsSplit        bool           `json:"isSplit"`
	SplitPayments  []SplitPayment `json:"splitPayments" validate:"omitempty,dive"`
}

// Receipt is what the terminal renders after a successful checkout.
type Receipt struct {
	OrderCode      string     `json:"orderCode"`
	Items          []LineItem `json:"items"`
	SubTotal       float64    `json:"subTotal"`
	DiscountAmount float64    `json:"discountAmount"`
	AmountPaid     float64    `json:"amountPaid"`
	AmountReceived float64    `json:"amountReceived"`
	ChangeAmount   float64    `json:"changeAmount"`
	QRCode         string     `json:"qrCode,omitempty"`
}
