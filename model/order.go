package model

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DineIn"
	OrderTypeTakeOut  OrderType = "TakeOut"
	OrderTypeDelivery OrderType = "Delivery"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusHeld    OrderStatus = "Held"
	OrderStatusPaid    OrderStatus = "Paid"
)

// OrderDraft is the order being composed on the terminal. BoundOrderID is
// set after the first successful create so later dispatches update instead
// of creating a second remote order.
type OrderDraft struct {
	OrderType          OrderType   `json:"orderType"`
	Status             OrderStatus `json:"status"`
	TableID            *uint       `json:"tableId,omitempty"`
	TableName          string      `json:"tableName,omitempty"`
	WaiterName         string      `json:"waiterName,omitempty"`
	CustomerID         *uint       `json:"customerId,omitempty"`
	DriverID           *uint       `json:"driverId,omitempty"`
	DiscountAmount     float64     `json:"discountAmount"`
	DiscountPercentage float64     `json:"discountPercentage"`
	AppliedPromotionID *uint       `json:"appliedPromotionId,omitempty"`
	Cart               Cart        `json:"cart"`
	BoundOrderID       *uint       `json:"boundOrderId,omitempty"`
	ReferenceCode      string      `json:"referenceCode,omitempty"`
}

// Order is the persisted order as the order service returns it.
type Order struct {
	DTO
	PublicCode         string      `json:"publicCode"`
	ReferenceCode      string      `json:"referenceCode"`
	OrderType          OrderType   `json:"orderType"`
	Status             OrderStatus `json:"status"`
	TableID            *uint       `json:"tableId,omitempty"`
	TableName          string      `json:"tableName,omitempty"`
	WaiterName         string      `json:"waiterName,omitempty"`
	CustomerID         *uint       `json:"customerId,omitempty"`
	DriverID           *uint       `json:"driverId,omitempty"`
	Items              []LineItem  `json:"items"`
	SubTotal           float64     `json:"subTotal"`
	DiscountAmount     float64     `json:"discountAmount"`
	DiscountPercentage float64     `json:"discountPercentage"`
	AppliedPromotionID *uint       `json:"appliedPromotionId,omitempty"`
	TotalAmount        float64     `json:"totalAmount"`
	PaidAt             *time.Time  `json:"paidAt,omitempty"`
}

type Orders []Order

type OrderFilter struct {
	Pagination
	Statuses  []OrderStatus `json:"statuses"`
	OrderType *OrderType    `json:"orderType"`
	TableID   *uint         `json:"tableId"`
}

type OrderMetaInput struct {
	TableID    *uint  `json:"tableId"`
	TableName  string `json:"tableName"`
	WaiterName string `json:"waiterName"`
	CustomerID *uint  `json:"customerId"`
	DriverID   *uint  `json:"driverId"`
}

type AddCartItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
}

// SetQuantityInput is not bounds-checked here: the engine owns the
// quantity rule so a rejected edit keeps the prior value.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

type OrderTypeInput struct {
	OrderType OrderType `json:"orderType" validate:"required,oneof=DineIn TakeOut Delivery"`
}

type DiscountInput struct {
	Amount     *float64 `json:"amount" validate:"omitempty,gte=0"`
	Percentage *float64 `json:"percentage" validate:"omitempty,gte=0,lte=100"`
}

type CouponInput struct {
	Code string `json:"code" validate:"required"`
}

type RecallInput struct {
	OrderID uint `json:"orderId" validate:"required"`
}

type CommandInput struct {
	Key string `json:"key" validate:"required"`
}
