package pos

import (
	"context"
	"log"

	"restro_pos/model"

	"github.com/robfig/cron/v3"
)

// Table status is best-effort derived state: the order is the source of
// truth and a failed flag update never blocks or rolls back a dispatch. The
// reconciler below corrects drift.

func (e *Engine) claimTableLocked(ctx context.Context, tableID uint) {
	if err := e.tables.SetStatus(ctx, tableID, false); err != nil {
		e.notify("claim table %d failed: %v", tableID, err)
	}
	id := tableID
	e.claimedTableID = &id
}

func (e *Engine) releaseTableLocked(ctx context.Context, tableID uint) {
	if err := e.tables.SetStatus(ctx, tableID, true); err != nil {
		e.notify("release table %d failed: %v", tableID, err)
	}
}

// ClaimedTable exposes the session's claimed table for tests and the UI.
func (e *Engine) ClaimedTable() *uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.claimedTableID == nil {
		return nil
	}
	id := *e.claimedTableID
	return &id
}

var tableReconciler *cron.Cron

// StartTableReconciler periodically re-derives table flags from the open
// dine-in orders: a table is occupied iff a pending order names it.
func StartTableReconciler(orders OrderService, catalog CatalogService, tables TableStatusService) {
	tableReconciler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := tableReconciler.AddFunc("*/5 * * * *", func() {
		ReconcileTables(context.Background(), orders, catalog, tables)
	})
	if err != nil {
		log.Printf("Error starting table reconciler: %v", err)
		return
	}

	tableReconciler.Start()
	log.Println("Table reconciler started (every 5 minutes)")
}

func StopTableReconciler() {
	if tableReconciler != nil {
		tableReconciler.Stop()
	}
}

// ReconcileTables fixes table flags that drifted from the open orders.
func ReconcileTables(ctx context.Context, orders OrderService, catalog CatalogService, tables TableStatusService) {
	dineIn := model.OrderTypeDineIn
	open, _, err := orders.List(ctx, model.OrderFilter{
		Statuses:  []model.OrderStatus{model.OrderStatusPending},
		OrderType: &dineIn,
	})
	if err != nil {
		log.Printf("Error loading open orders for reconcile: %v", err)
		return
	}

	occupied := make(map[uint]bool)
	for _, o := range open {
		if o.TableID != nil {
			occupied[*o.TableID] = true
		}
	}

	all, _, err := catalog.Tables(ctx, model.CatalogFilter{})
	if err != nil {
		log.Printf("Error loading tables for reconcile: %v", err)
		return
	}

	fixed := 0
	for _, t := range all {
		wantAvailable := !occupied[t.ID]
		if t.Available == wantAvailable {
			continue
		}
		if err := tables.SetStatus(ctx, t.ID, wantAvailable); err != nil {
			log.Printf("Error reconciling table %d: %v", t.ID, err)
			continue
		}
		fixed++
	}

	if fixed > 0 {
		log.Printf("Reconciled %d table flags", fixed)
	}
}
