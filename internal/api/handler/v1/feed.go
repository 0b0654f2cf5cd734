package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/domain"
)

const (
	feedWriteWait  = 10 * time.Second
	feedPongWait   = 60 * time.Second
	feedPingPeriod = feedPongWait * 9 / 10
	feedBacklog    = 256
)

var errFeedClosed = errors.New("change feed is shutting down")

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// FeedHandler streams a notice to every connected client after each successful write
// so they know to refetch. One goroutine, Run, owns the client set.
type FeedHandler struct {
	upgrader   websocket.Upgrader
	clients    map[*feedClient]struct{}
	broadcast  chan []byte
	register   chan *feedClient
	unregister chan *feedClient
	done       chan struct{}
}

func NewFeedHandler(allowedOrigins []string) *FeedHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return &FeedHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
		clients:    make(map[*feedClient]struct{}),
		broadcast:  make(chan []byte, feedBacklog),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is done.
func (h *FeedHandler) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues change for every connected client. It never blocks; when the queue
// is full the notice is dropped.
func (h *FeedHandler) Publish(change domain.Change) {
	message, err := json.Marshal(change)
	if err != nil {
		zap.L().Error("failed to encode change", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("feed backlog full, dropping change", zap.Any("change", change))
	}
}

// HandleFeed godoc
// @Summary      Subscribe to change notices
// @Description  Upgrades to a websocket that receives {entity, action, id} after every successful write.
// @Tags         feed
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      401  {object}  response.Err
// @Router       /feed [get]
func (h *FeedHandler) HandleFeed(ctx *gin.Context) {
	// Registered before the upgrade so every change after the handshake reaches it.
	client := &feedClient{
		send: make(chan []byte, feedBacklog),
	}

	select {
	case h.register <- client:
	case <-ctx.Request.Context().Done():
		return
	case <-h.done:
		response.RenderError(ctx, errFeedClosed)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		h.leave(client)
		return
	}
	client.conn = conn

	go client.writePump()
	go client.readPump(h)
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(feedPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *FeedHandler) leave(client *feedClient) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// readPump only watches for the client going away; the feed is one way.
func (c *feedClient) readPump(h *FeedHandler) {
	defer func() {
		h.leave(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Info("feed client closed", zap.Error(err))
			}
			return
		}
	}
}
