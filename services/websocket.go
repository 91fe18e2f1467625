package services

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Dashboard clients subscribed to appointment lifecycle events.
var (
	dashboardClients = make(map[*DashboardClient]bool)
	clientsMu        sync.Mutex
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for your needs
	},
}

type DashboardClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

type AppointmentEvent struct {
	Type          string `json:"type"`
	AppointmentID string `json:"appointment_id"`
	Specialty     string `json:"specialty"`
	Status        string `json:"status"`
}

// ServeWs upgrades the connection and subscribes it to the event feed.
func ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket upgrade failed: " + err.Error()})
		return
	}
	client := &DashboardClient{id: uuid.NewString(), conn: conn, send: make(chan []byte, 16)}
	registerClient(client)
	log.Info().Str("client", client.id).Int("clients", clientCount()).Msg("dashboard client connected")

	go client.writePump()
	go client.readPump()
}

func registerClient(c *DashboardClient) {
	clientsMu.Lock()
	dashboardClients[c] = true
	clientsMu.Unlock()
}

func unregisterClient(c *DashboardClient) {
	clientsMu.Lock()
	if _, ok := dashboardClients[c]; ok {
		delete(dashboardClients, c)
		close(c.send)
	}
	clientsMu.Unlock()
}

func clientCount() int {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	return len(dashboardClients)
}

// BroadcastAppointmentEvent pushes an event to every connected dashboard.
// Slow clients are skipped rather than blocking the caller.
func BroadcastAppointmentEvent(eventType, appointmentID, specialty, status string) {
	event := AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointmentID,
		Specialty:     specialty,
		Status:        status,
	}
	message, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal appointment event")
		return
	}

	clientsMu.Lock()
	defer clientsMu.Unlock()
	for client := range dashboardClients {
		select {
		case client.send <- message:
		default:
		}
	}
}

func (c *DashboardClient) readPump() {
	defer func() {
		c.conn.Close()
		unregisterClient(c)
		log.Info().Str("client", c.id).Int("clients", clientCount()).Msg("dashboard client disconnected")
	}()
	for {
		// The feed is one-way; reads only detect the close.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *DashboardClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
