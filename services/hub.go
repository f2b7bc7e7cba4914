package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"studybuddy/models"

	"github.com/gorilla/websocket"
	"github.com/lithammer/shortuuid/v4"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

// Hub fans events out to the websocket connections of each user. Users only
// ever receive events about their own records.
type Hub struct {
	clients    map[uint]map[*Client]bool
	broadcast  chan userMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

type Client struct {
	hub    *Hub
	id     string
	userID uint
	socket *websocket.Conn
	send   chan []byte
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type userMessage struct {
	userID uint
	client *Client // nil means every connection of userID
	data   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		broadcast:  make(chan userMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run owns the client registry until ctx is cancelled, then closes every
// connection's send queue.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for userID, set := range h.clients {
				for client := range set {
					close(client.send)
				}
				delete(h.clients, userID)
			}
			h.mutex.Unlock()
			return nil

		case client := <-h.register:
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			h.mutex.Unlock()
			zap.L().Debug("websocket client registered",
				zap.String("client_id", client.id), zap.Uint("user_id", client.userID))

		case client := <-h.unregister:
			h.mutex.Lock()
			h.remove(client)
			h.mutex.Unlock()
			zap.L().Debug("websocket client unregistered",
				zap.String("client_id", client.id), zap.Uint("user_id", client.userID))

		case msg := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients[msg.userID] {
				if msg.client != nil && msg.client != client {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					zap.L().Warn("websocket send buffer full, dropping client",
						zap.String("client_id", client.id), zap.Uint("user_id", client.userID))
					h.remove(client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// remove must be called with the mutex held.
func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

// SendToUser queues an event for every connection of userID. Events sent
// after the hub stopped are dropped.
func (h *Hub) SendToUser(userID uint, messageType string, payload interface{}) {
	h.send(userMessage{userID: userID}, messageType, payload)
}

func (h *Hub) sendToClient(client *Client, messageType string, payload interface{}) {
	h.send(userMessage{userID: client.userID, client: client}, messageType, payload)
}

func (h *Hub) send(msg userMessage, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		zap.L().Error("failed to marshal websocket message", zap.String("type", messageType), zap.Error(err))
		return
	}
	msg.data = data

	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

func (h *Hub) NotifyResult(result *models.TestResult) {
	h.SendToUser(result.UserID, "result_created", result)
}

func (h *Hub) ConnectedClients(userID uint) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}

// RegisterClient attaches an upgraded connection to userID and starts its pumps.
func (h *Hub) RegisterClient(conn *websocket.Conn, userID uint) *Client {
	client := &Client{
		hub:    h,
		id:     shortuuid.New(),
		userID: userID,
		socket: conn,
		send:   make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return nil
	}

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) unregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregisterClient(c)
		c.socket.Close()
	}()

	c.socket.SetReadLimit(maxMessageSize)
	c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Info("websocket read error", zap.String("client_id", c.id), zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			zap.L().Debug("ignoring malformed websocket message", zap.String("client_id", c.id), zap.Error(err))
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.socket.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.socket.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		c.hub.sendToClient(c, "pong", "pong")
	default:
		zap.L().Debug("unknown websocket message type", zap.String("type", msg.Type), zap.String("client_id", c.id))
	}
}
