package pos_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"restro_pos/model"
	"restro_pos/pos"
)

var errRemote = errors.New("remote failure")

type fakeOrders struct {
	mu      sync.Mutex
	nextID  uint
	created []model.Order
	updated []model.Order
	byID    map[uint]model.Order

	failCreate bool
	failUpdate bool
	failGet    bool
	failList   bool

	// blockCreate, when set, makes Create wait until the channel is closed.
	// enteredCreate, when set, is closed once the first Create call arrives.
	blockCreate   chan struct{}
	enteredCreate chan struct{}
	enteredOnce   sync.Once
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{nextID: 100, byID: map[uint]model.Order{}}
}

func (f *fakeOrders) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if f.enteredCreate != nil {
		f.enteredOnce.Do(func() { close(f.enteredCreate) })
	}
	if f.blockCreate != nil {
		<-f.blockCreate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return model.Order{}, errRemote
	}
	f.nextID++
	order.ID = f.nextID
	order.PublicCode = fmt.Sprintf("ORD-%d", f.nextID)
	f.created = append(f.created, order)
	f.byID[order.ID] = order
	return order, nil
}

func (f *fakeOrders) Update(ctx context.Context, id uint, order model.Order) (model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return model.Order{}, errRemote
	}
	order.ID = id
	order.PublicCode = fmt.Sprintf("ORD-%d", id)
	f.updated = append(f.updated, order)
	f.byID[id] = order
	return order, nil
}

func (f *fakeOrders) Get(ctx context.Context, id uint) (model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return model.Order{}, errRemote
	}
	order, ok := f.byID[id]
	if !ok {
		return model.Order{}, errors.New("order not found")
	}
	return order, nil
}

func (f *fakeOrders) List(ctx context.Context, filter model.OrderFilter) (model.Orders, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, 0, errRemote
	}
	var out model.Orders
	for _, o := range f.byID {
		if filter.OrderType != nil && o.OrderType != *filter.OrderType {
			continue
		}
		for _, s := range filter.Statuses {
			if o.Status == s {
				out = append(out, o)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrders) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeOrders) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakePayments struct {
	mu        sync.Mutex
	processed []model.PaymentInstruction
	fail      bool
}

func (f *fakePayments) Process(ctx context.Context, instruction model.PaymentInstruction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errRemote
	}
	f.processed = append(f.processed, instruction)
	return nil
}

type fakePromotions struct {
	byCode map[string]model.Promotion
	calls  int
	fail   bool
}

func (f *fakePromotions) FindByCouponCode(ctx context.Context, code string) (model.Promotion, error) {
	f.calls++
	if f.fail {
		return model.Promotion{}, errRemote
	}
	promo, ok := f.byCode[code]
	if !ok {
		return model.Promotion{}, pos.ErrPromotionNotFound
	}
	return promo, nil
}

type fakeTables struct {
	mu     sync.Mutex
	status map[uint]bool // true = available
	calls  int
	fail   bool
}

func newFakeTables() *fakeTables {
	return &fakeTables{status: map[uint]bool{}}
}

func (f *fakeTables) SetStatus(ctx context.Context, tableID uint, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errRemote
	}
	f.status[tableID] = available
	return nil
}

func (f *fakeTables) available(tableID uint) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.status[tableID]
	return v, ok
}

type fakeCatalog struct {
	mu           sync.Mutex
	products     model.Products
	tables       model.DiningTables
	productCalls int
	fail         bool
}

func (f *fakeCatalog) Products(ctx context.Context, filter model.CatalogFilter) (model.Products, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	if f.fail {
		return nil, 0, errRemote
	}
	return f.products, int64(len(f.products)), nil
}

func (f *fakeCatalog) Categories(ctx context.Context, filter model.CatalogFilter) (model.Categories, int64, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) Tables(ctx context.Context, filter model.CatalogFilter) (model.DiningTables, int64, error) {
	return f.tables, int64(len(f.tables)), nil
}

func (f *fakeCatalog) Staff(ctx context.Context, filter model.CatalogFilter) (model.Staffs, int64, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) Customers(ctx context.Context, filter model.CatalogFilter) (model.Customers, int64, error) {
	return nil, 0, nil
}

// newTestEngine wires an engine to fresh fakes.
func newTestEngine() (*pos.Engine, *fakeOrders, *fakePayments, *fakePromotions, *fakeTables) {
	orders := newFakeOrders()
	payments := &fakePayments{}
	promotions := &fakePromotions{byCode: map[string]model.Promotion{}}
	tables := newFakeTables()
	engine := pos.NewEngine(orders, payments, promotions, tables)
	engine.SetNotifier(func(format string, args ...any) {})
	return engine, orders, payments, promotions, tables
}

func productFixture(id uint, name string, price float64) model.Product {
	p := model.Product{Name: name, Price: price}
	p.ID = id
	return p
}
