package pos

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"restro_pos/constants"
	"restro_pos/model"

	"github.com/redis/go-redis/v9"
)

// Listener keeps one subscription to the order-update channel. A
// notification only ever triggers a re-fetch of the open bill list; it never
// touches the draft, so a half-typed order can't be clobbered and duplicate
// notifications are harmless.
type Listener struct {
	rdb      *redis.Client
	orders   OrderService
	onUpdate func(model.Orders)

	connected atomic.Bool
	stop      chan struct{}
}

func NewListener(rdb *redis.Client, orders OrderService, onUpdate func(model.Orders)) *Listener {
	return &Listener{
		rdb:      rdb,
		orders:   orders,
		onUpdate: onUpdate,
		stop:     make(chan struct{}),
	}
}

// Connected reports whether the push channel is up, for the terminal's
// passive status indicator.
func (l *Listener) Connected() bool {
	return l.connected.Load()
}

// Start subscribes and keeps re-subscribing until Stop is called.
func (l *Listener) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-l.stop:
				return
			default:
			}

			l.run(ctx)
			l.connected.Store(false)

			select {
			case <-l.stop:
				return
			case <-time.After(5 * time.Second):
			}
		}
	}()
}

func (l *Listener) run(ctx context.Context) {
	pubsub := l.rdb.Subscribe(ctx, constants.OrderUpdateChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		log.Printf("Order update subscribe failed: %v", err)
		return
	}
	l.connected.Store(true)
	log.Println("Order update listener connected")

	channel := pubsub.Channel()
	for {
		select {
		case <-l.stop:
			return
		case msg, ok := <-channel:
			if !ok {
				log.Println("Order update channel closed")
				return
			}
			_ = msg.Payload // payload is only a signal, state is re-fetched
			l.refresh(ctx)
		}
	}
}

func (l *Listener) refresh(ctx context.Context) {
	open, _, err := l.orders.List(ctx, model.OrderFilter{
		Statuses: []model.OrderStatus{model.OrderStatusPending, model.OrderStatusHeld},
	})
	if err != nil {
		log.Printf("Error refreshing bill list: %v", err)
		return
	}
	if l.onUpdate != nil {
		l.onUpdate(open)
	}
}

func (l *Listener) Stop() {
	close(l.stop)
}
