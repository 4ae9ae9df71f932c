package orderControllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/syedzainalii/noosh-tuft/models"
)

// OrderEvent is what the admin dashboard receives over the live feed.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *models.Order `json:"order"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed fans order events out to connected admin dashboards. Clients that
// fail a write are dropped on the spot.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// GET /api/orders/feed (admin)
func (f *Feed) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()
		log.Println("✅ Order feed client connected")

		// Reads are discarded; the read loop only detects disconnects.
		go func() {
			defer f.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	if _, ok := f.clients[conn]; ok {
		delete(f.clients, conn)
		conn.Close()
	}
	f.mu.Unlock()
}

func (f *Feed) Broadcast(event OrderEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("⚠️ Dropping order feed client: %v", err)
			delete(f.clients, conn)
			conn.Close()
		}
	}
}
