package pos

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"restro_pos/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
)

// CatalogCache holds the page of each browsable entity the terminal is
// currently looking at. It is a plain read cache: a page is replaced
// whenever the filter or page changes, nothing else is invariant here.
type CatalogCache struct {
	mu  sync.RWMutex
	svc CatalogService

	products      model.Products
	productFilter model.CatalogFilter
	productTotal  int64

	categories    model.Categories
	categoryTotal int64

	tables     model.DiningTables
	tableTotal int64

	staff      model.Staffs
	staffTotal int64

	customers     model.Customers
	customerTotal int64

	scheduler gocron.Scheduler
}

func NewCatalogCache(svc CatalogService) *CatalogCache {
	return &CatalogCache{svc: svc}
}

// Products returns the page for filter, fetching only when the filter
// differs from the cached one.
func (cc *CatalogCache) Products(ctx context.Context, filter model.CatalogFilter) (model.Products, int64, error) {
	cc.mu.RLock()
	if cc.products != nil && filterEqual(cc.productFilter, filter) {
		rows, total := cc.products, cc.productTotal
		cc.mu.RUnlock()
		return rows, total, nil
	}
	cc.mu.RUnlock()

	rows, total, err := cc.svc.Products(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		if rows[i].Slug == "" {
			rows[i].Slug = slug.Make(rows[i].Name)
		}
	}

	cc.mu.Lock()
	cc.products = rows
	cc.productFilter = filter
	cc.productTotal = total
	cc.mu.Unlock()
	return rows, total, nil
}

// Refresh re-fetches the current product page so cached unit prices track
// catalog drift between page changes.
func (cc *CatalogCache) Refresh(ctx context.Context) {
	cc.mu.RLock()
	filter := cc.productFilter
	stale := cc.products == nil
	cc.mu.RUnlock()
	if stale {
		return
	}

	rows, total, err := cc.svc.Products(ctx, filter)
	if err != nil {
		log.Printf("Error refreshing catalog page: %v", err)
		return
	}
	for i := range rows {
		if rows[i].Slug == "" {
			rows[i].Slug = slug.Make(rows[i].Name)
		}
	}

	cc.mu.Lock()
	cc.products = rows
	cc.productTotal = total
	cc.mu.Unlock()
}

// FindProduct looks a product up in the cached page.
func (cc *CatalogCache) FindProduct(id uint) (model.Product, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	for _, p := range cc.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// FindCustomer looks a customer up in the cached page.
func (cc *CatalogCache) FindCustomer(id uint) (model.Customer, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	for _, cust := range cc.customers {
		if cust.ID == id {
			return cust, true
		}
	}
	return model.Customer{}, false
}

// SearchProducts matches the cached page against a slugified search term.
func (cc *CatalogCache) SearchProducts(term string) model.Products {
	key := slug.Make(term)
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	var out model.Products
	for _, p := range cc.products {
		if strings.Contains(p.Slug, key) {
			out = append(out, p)
		}
	}
	return out
}

func (cc *CatalogCache) Categories(ctx context.Context, filter model.CatalogFilter) (model.Categories, int64, error) {
	rows, total, err := cc.svc.Categories(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cc.mu.Lock()
	cc.categories = rows
	cc.categoryTotal = total
	cc.mu.Unlock()
	return rows, total, nil
}

func (cc *CatalogCache) Tables(ctx context.Context, filter model.CatalogFilter) (model.DiningTables, int64, error) {
	rows, total, err := cc.svc.Tables(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cc.mu.Lock()
	cc.tables = rows
	cc.tableTotal = total
	cc.mu.Unlock()
	return rows, total, nil
}

func (cc *CatalogCache) Staff(ctx context.Context, filter model.CatalogFilter) (model.Staffs, int64, error) {
	rows, total, err := cc.svc.Staff(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cc.mu.Lock()
	cc.staff = rows
	cc.staffTotal = total
	cc.mu.Unlock()
	return rows, total, nil
}

func (cc *CatalogCache) Customers(ctx context.Context, filter model.CatalogFilter) (model.Customers, int64, error) {
	rows, total, err := cc.svc.Customers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cc.mu.Lock()
	cc.customers = rows
	cc.customerTotal = total
	cc.mu.Unlock()
	return rows, total, nil
}

// StartRefreshScheduler refreshes the current product page on an interval.
func (cc *CatalogCache) StartRefreshScheduler(interval time.Duration) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Error creating catalog scheduler: %v", err)
		return
	}

	cc.scheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			cc.Refresh(context.Background())
		}),
	)
	if err != nil {
		log.Printf("Error scheduling catalog refresh: %v", err)
		return
	}

	s.Start()
	log.Printf("Catalog refresh scheduler started (every %s)", interval)
}

func (cc *CatalogCache) StopRefreshScheduler() {
	if cc.scheduler != nil {
		cc.scheduler.Shutdown()
	}
}

func filterEqual(a, b model.CatalogFilter) bool {
	if a.SearchKey != b.SearchKey || a.Role != b.Role {
		return false
	}
	if !uintPtrEqual(a.CategoryID, b.CategoryID) {
		return false
	}
	if !boolPtrEqual(a.Active, b.Active) {
		return false
	}
	return intPtrEqual(a.Limit, b.Limit) && intPtrEqual(a.Page, b.Page)
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
