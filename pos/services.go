package pos

import (
	"context"

	"restro_pos/model"
)

// Remote collaborator contracts. Implementations live in the client package;
// the engine never sees wire shapes, only these.

type OrderService interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	Update(ctx context.Context, id uint, order model.Order) (model.Order, error)
	Get(ctx context.Context, id uint) (model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) (model.Orders, int64, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentService interface {
	Process(ctx context.Context, instruction model.PaymentInstruction) error
}

type PromotionService interface {
	// FindByCouponCode returns ErrPromotionNotFound for an unknown code.
	FindByCouponCode(ctx context.Context, code string) (model.Promotion, error)
}

type TableStatusService interface {
	SetStatus(ctx context.Context, tableID uint, available bool) error
}

type CatalogService interface {
	Products(ctx context.Context, filter model.CatalogFilter) (model.Products, int64, error)
	Categories(ctx context.Context, filter model.CatalogFilter) (model.Categories, int64, error)
	Tables(ctx context.Context, filter model.CatalogFilter) (model.DiningTables, int64, error)
	Staff(ctx context.Context, filter model.CatalogFilter) (model.Staffs, int64, error)
	Customers(ctx context.Context, filter model.CatalogFilter) (model.Customers, int64, error)
}
