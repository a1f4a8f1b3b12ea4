package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/openfloor/planboard/models"
)

// Event types
const (
	EventPlanCreate      = "plan_create"
	EventTableCreate     = "table_create"
	EventTableUpdate     = "table_update"
	EventTableDelete     = "table_delete"
	EventPositionsUpdate = "positions_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// LayoutHub holds every connected layout viewer and broadcasts mutations so
// read-only views refresh. The editor itself never consumes this stream; last
// write wins across sessions.
type LayoutHub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var layoutHub = LayoutHub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	layoutHub.mutex.Lock()
	defer layoutHub.mutex.Unlock()
	layoutHub.clients[conn] = struct{}{}
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	layoutHub.mutex.Lock()
	defer layoutHub.mutex.Unlock()
	delete(layoutHub.clients, conn)
	conn.Close()
}

// BroadcastPlanCreate announces a new floor plan.
func BroadcastPlanCreate(plan models.FloorPlan) {
	broadcast(Message{Event: EventPlanCreate, Data: plan})
}

// BroadcastTableCreate announces a new table.
func BroadcastTableCreate(table models.Table) {
	broadcast(Message{Event: EventTableCreate, Data: table})
}

// BroadcastTableUpdate announces a field or status change.
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

// BroadcastTableDelete announces a removed table.
func BroadcastTableDelete(tableID uint) {
	broadcast(Message{Event: EventTableDelete, Data: map[string]interface{}{"table_id": tableID}})
}

// BroadcastPositionsUpdate announces a saved position batch.
func BroadcastPositionsUpdate(planID uint, count int) {
	broadcast(Message{
		Event: EventPositionsUpdate,
		Data:  map[string]interface{}{"plan_id": planID, "count": count},
	})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("hub: marshal broadcast: %v", err)
		return
	}

	layoutHub.mutex.Lock()
	defer layoutHub.mutex.Unlock()
	for conn := range layoutHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("hub: write failed, dropping client: %v", err)
			delete(layoutHub.clients, conn)
			conn.Close()
		}
	}
}
