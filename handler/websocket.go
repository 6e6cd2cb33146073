package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"restro_pos/model"

	"github.com/gofiber/contrib/websocket"
)

var (
	billConnections = make(map[*websocket.Conn]bool)
	billMutex       sync.Mutex
)

// OrderWebsocket keeps a terminal attached to the live bill-list feed.
func OrderWebsocket(c *websocket.Conn) {
	billMutex.Lock()
	billConnections[c] = true
	billMutex.Unlock()

	log.Printf("New WS connection for bills. Total connections: %d", len(billConnections))

	defer func() {
		billMutex.Lock()
		delete(billConnections, c)
		billMutex.Unlock()
		c.Close()
	}()

	// Push the current open bills to the freshly connected terminal.
	if bills, _, err := engine.BillList(context.Background()); err == nil {
		c.WriteJSON(bills)
	}

	// Keep the connection open; terminals do not send anything.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastBills fans the refreshed bill list out to every terminal.
// Connections that fail a write are dropped.
func BroadcastBills(bills model.Orders) {
	payload, err := json.Marshal(bills)
	if err != nil {
		log.Printf("Error encoding bill broadcast: %v", err)
		return
	}

	billMutex.Lock()
	for conn := range billConnections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(billConnections, conn)
		}
	}
	billMutex.Unlock()
}
