package pos

import (
	"context"
	"log"
	"sync"

	"restro_pos/model"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Engine owns the single order draft being composed on this terminal and
// orchestrates every dispatch against the remote collaborators. All entry
// points are serialized by one mutex; a dispatch additionally sets inFlight
// so an accidental double submit is rejected instead of queued.
type Engine struct {
	mu       sync.Mutex
	inFlight bool

	draft    model.OrderDraft
	selected int // keyboard-selected cart index, -1 when nothing selected

	// claimedTableID is the table claimed by the current editing session.
	// It outlives a failed checkout and is handed over on recall.
	claimedTableID *uint

	orders     OrderService
	payments   PaymentService
	promotions PromotionService
	tables     TableStatusService

	notify func(format string, args ...any)
}

func NewEngine(orders OrderService, payments PaymentService, promotions PromotionService, tables TableStatusService) *Engine {
	e := &Engine{
		orders:     orders,
		payments:   payments,
		promotions: promotions,
		tables:     tables,
		notify:     log.Printf,
	}
	e.resetDraftLocked()
	return e
}

// SetNotifier replaces the best-effort notification sink (default log).
func (e *Engine) SetNotifier(fn func(format string, args ...any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// Draft returns a deep copy of the current draft for rendering.
func (e *Engine) Draft() model.OrderDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() model.OrderDraft {
	out := e.draft
	out.Cart.Items = nil
	copier.Copy(&out.Cart.Items, &e.draft.Cart.Items)
	return out
}

// NewOrder abandons the current edit and starts from a fresh empty draft.
// Any table the session claimed stays as it is; the persisted order that
// claimed it is still open and the reconciler owns stale flags.
func (e *Engine) NewOrder() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetDraftLocked()
}

func (e *Engine) resetDraftLocked() {
	e.draft = model.OrderDraft{Status: model.OrderStatusPending}
	e.selected = -1
	e.claimedTableID = nil
}

// SetOrderType switches the draft's order type and drops attributes that
// belong to the types it is no longer.
func (e *Engine) SetOrderType(t model.OrderType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.OrderType = t
	if t != model.OrderTypeDineIn {
		e.draft.TableID = nil
		e.draft.TableName = ""
		e.draft.WaiterName = ""
	}
	if t != model.OrderTypeDelivery {
		e.draft.DriverID = nil
	}
}

// SetOrderMeta fills table/waiter/customer/driver attributes from the UI.
func (e *Engine) SetOrderMeta(meta model.OrderMetaInput) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if meta.TableID != nil {
		e.draft.TableID = meta.TableID
	}
	if meta.TableName != "" {
		e.draft.TableName = meta.TableName
	}
	if meta.WaiterName != "" {
		e.draft.WaiterName = meta.WaiterName
	}
	if meta.CustomerID != nil {
		e.draft.CustomerID = meta.CustomerID
	}
	if meta.DriverID != nil {
		e.draft.DriverID = meta.DriverID
	}
}

func (e *Engine) beginDispatch() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return ErrDispatchInFlight
	}
	e.inFlight = true
	return nil
}

func (e *Engine) endDispatch() {
	e.mu.Lock()
	e.inFlight = false
	e.mu.Unlock()
}

// Hold persists the draft with status Held and clears the session. A held
// order is not in active service, so any table claim the session carried is
// released.
func (e *Engine) Hold(ctx context.Context) error {
	if err := e.beginDispatch(); err != nil {
		return err
	}
	defer e.endDispatch()

	e.mu.Lock()
	defer e.mu.Unlock()

	if errs := ValidateDraft(&e.draft); len(errs) > 0 {
		return errs
	}

	order := e.buildOrderLocked(model.OrderStatusHeld)
	if _, err := e.createOrUpdateLocked(ctx, order); err != nil {
		return &RemoteError{Op: "hold order", Err: err}
	}

	e.clearSessionLocked(ctx, true)
	return nil
}

// Recall loads a previously held or pending order back into the draft. A
// table claimed by the abandoned edit is released first so one session never
// keeps two tables occupied.
func (e *Engine) Recall(ctx context.Context, orderID uint) error {
	if err := e.beginDispatch(); err != nil {
		return err
	}
	defer e.endDispatch()

	e.mu.Lock()
	defer e.mu.Unlock()

	order, err := e.orders.Get(ctx, orderID)
	if err != nil {
		return &RemoteError{Op: "recall order", Err: err}
	}

	if e.claimedTableID != nil && (order.TableID == nil || *e.claimedTableID != *order.TableID) {
		e.releaseTableLocked(ctx, *e.claimedTableID)
		e.claimedTableID = nil
	}

	draft := model.OrderDraft{
		OrderType:          order.OrderType,
		Status:             order.Status,
		TableID:            order.TableID,
		TableName:          order.TableName,
		WaiterName:         order.WaiterName,
		CustomerID:         order.CustomerID,
		DriverID:           order.DriverID,
		DiscountAmount:     order.DiscountAmount,
		DiscountPercentage: order.DiscountPercentage,
		AppliedPromotionID: order.AppliedPromotionID,
		BoundOrderID:       &order.ID,
		ReferenceCode:      order.ReferenceCode,
	}
	copier.Copy(&draft.Cart.Items, &order.Items)

	e.draft = draft
	e.selected = -1

	if order.OrderType == model.OrderTypeDineIn && order.TableID != nil {
		e.claimTableLocked(ctx, *order.TableID)
	}
	return nil
}

// KOT sends the draft to the kitchen: create or update the remote order as
// Pending, claim the table for dine-in, then end the editing session. A
// follow-up action on the same order requires a fresh recall.
func (e *Engine) KOT(ctx context.Context) error {
	if err := e.beginDispatch(); err != nil {
		return err
	}
	defer e.endDispatch()

	e.mu.Lock()
	defer e.mu.Unlock()

	if errs := ValidateDraft(&e.draft); len(errs) > 0 {
		return errs
	}

	order := e.buildOrderLocked(model.OrderStatusPending)
	persisted, err := e.createOrUpdateLocked(ctx, order)
	if err != nil {
		return &RemoteError{Op: "kitchen ticket", Err: err}
	}
	e.draft.BoundOrderID = &persisted.ID

	if e.draft.OrderType == model.OrderTypeDineIn && e.draft.TableID != nil {
		e.claimTableLocked(ctx, *e.draft.TableID)
	}

	// The table stays occupied for the kitchen; only the session forgets it.
	e.clearSessionLocked(ctx, false)
	return nil
}

// Checkout settles the draft: persist it as Paid, submit the payment keyed
// by the persisted order id, then release the table and reset. Any remote
// failure leaves cart, draft and claim untouched for a retry.
func (e *Engine) Checkout(ctx context.Context, input model.CheckoutInput) (model.Receipt, error) {
	if err := e.beginDispatch(); err != nil {
		return model.Receipt{}, err
	}
	defer e.endDispatch()

	e.mu.Lock()
	defer e.mu.Unlock()

	if errs := ValidateDraft(&e.draft); len(errs) > 0 {
		return model.Receipt{}, errs
	}

	instruction, err := e.buildPaymentLocked(input)
	if err != nil {
		return model.Receipt{}, err
	}

	if e.draft.OrderType == model.OrderTypeDineIn && e.draft.TableID != nil {
		e.claimTableLocked(ctx, *e.draft.TableID)
	}

	order := e.buildOrderLocked(model.OrderStatusPaid)
	persisted, err := e.createOrUpdateLocked(ctx, order)
	if err != nil {
		return model.Receipt{}, &RemoteError{Op: "checkout order", Err: err}
	}
	// Bind before the payment call: a payment retry must update this order,
	// not create a second one.
	e.draft.BoundOrderID = &persisted.ID

	instruction.OrderID = persisted.ID
	if err := e.payments.Process(ctx, instruction); err != nil {
		return model.Receipt{}, &RemoteError{Op: "process payment", Err: err}
	}

	receipt := model.Receipt{
		OrderCode:      persisted.PublicCode,
		SubTotal:       order.SubTotal,
		DiscountAmount: instruction.DiscountAmount,
		AmountPaid:     instruction.AmountPaid,
		AmountReceived: instruction.AmountReceived,
		ChangeAmount:   instruction.ChangeAmount,
	}
	copier.Copy(&receipt.Items, &e.draft.Cart.Items)

	e.clearSessionLocked(ctx, true)
	return receipt, nil
}

// BillList fetches the currently open (pending or held) orders.
func (e *Engine) BillList(ctx context.Context) (model.Orders, int64, error) {
	return e.orders.List(ctx, model.OrderFilter{
		Statuses: []model.OrderStatus{model.OrderStatusPending, model.OrderStatusHeld},
	})
}

func (e *Engine) buildOrderLocked(status model.OrderStatus) model.Order {
	subTotal := e.totalLocked()
	order := model.Order{
		ReferenceCode:      e.draft.ReferenceCode,
		OrderType:          e.draft.OrderType,
		Status:             status,
		TableID:            e.draft.TableID,
		TableName:          e.draft.TableName,
		WaiterName:         e.draft.WaiterName,
		CustomerID:         e.draft.CustomerID,
		DriverID:           e.draft.DriverID,
		SubTotal:           subTotal,
		DiscountAmount:     e.draft.DiscountAmount,
		DiscountPercentage: e.draft.DiscountPercentage,
		AppliedPromotionID: e.draft.AppliedPromotionID,
	}
	order.TotalAmount = subTotal - e.draft.DiscountAmount
	copier.Copy(&order.Items, &e.draft.Cart.Items)
	return order
}

// createOrUpdateLocked is the create/update switch: the first dispatch of a
// draft creates and stamps a reference code, everything after updates.
func (e *Engine) createOrUpdateLocked(ctx context.Context, order model.Order) (model.Order, error) {
	if e.draft.BoundOrderID != nil {
		return e.orders.Update(ctx, *e.draft.BoundOrderID, order)
	}
	if e.draft.ReferenceCode == "" {
		e.draft.ReferenceCode = uuid.NewString()
	}
	order.ReferenceCode = e.draft.ReferenceCode
	return e.orders.Create(ctx, order)
}

// clearSessionLocked ends the editing session. release controls whether the
// claimed table (if any) goes back to Available.
func (e *Engine) clearSessionLocked(ctx context.Context, release bool) {
	if release && e.claimedTableID != nil {
		e.releaseTableLocked(ctx, *e.claimedTableID)
	}
	e.resetDraftLocked()
}
