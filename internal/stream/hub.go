// Package stream broadcasts ecosim snapshots to WebSocket clients.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ecosim/internal/sims/ecosim"
)

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("stream hub closed")

const (
	writeWait    = 10 * time.Second
	publishWait  = time.Second
	broadcastCap = 64
)

// Hub fans snapshots out to connected WebSocket clients. All writes to
// client connections happen on the hub goroutine.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
	latest  []byte

	upgrader   websocket.Upgrader
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup

	log ecosim.Logger
}

// NewHub starts a hub. Close must be called to stop it.
func NewHub(log ecosim.Logger) *Hub {
	if log == nil {
		log = ecosim.NewNoOpLogger()
	}
	h := &Hub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan []byte, broadcastCap),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
	h.wg.Add(1)
	go h.run()
	return h
}

// ServeHTTP upgrades the request and subscribes the connection. A client
// that joins mid-run first receives the most recent snapshot.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}
	go h.readLoop(conn)
}

// readLoop discards client messages and unsubscribes the connection once
// the client goes away.
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.NextReader(); err != nil {
			select {
			case h.unregister <- conn:
			case <-h.done:
			}
			return
		}
	}
}

// Publish encodes s and queues it for every client.
func (h *Hub) Publish(ctx context.Context, s ecosim.Snapshot) error {
	select {
	case <-h.done:
		return ErrClosed
	default:
	}
	data, err := ecosim.EncodeSnapshotJSON(s)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.latest = data
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishWait):
		return fmt.Errorf("snapshot queue full")
	}
}

// Latest returns the most recently published snapshot JSON.
func (h *Hub) Latest() ([]byte, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.latest != nil
}

// ClientCount reports the number of subscribed clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			latest := h.latest
			h.mu.Unlock()
			h.log.Debugf("stream client %s connected", conn.RemoteAddr())
			if latest != nil && !h.write(conn, latest) {
				h.drop(conn)
			}

		case conn := <-h.unregister:
			h.drop(conn)

		case data := <-h.broadcast:
			h.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(h.clients))
			for conn := range h.clients {
				conns = append(conns, conn)
			}
			h.mu.RUnlock()

			for _, conn := range conns {
				if !h.write(conn, data) {
					h.drop(conn)
				}
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, data []byte) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.log.Debugf("stream client %s write failed: %v", conn.RemoteAddr(), err)
		return false
	}
	return true
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
		h.log.Debugf("stream client %s disconnected", conn.RemoteAddr())
	}
}

// Close stops the hub and disconnects every client.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		for conn := range h.clients {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			conn.Close()
			delete(h.clients, conn)
		}
		h.mu.Unlock()
	})
	return nil
}
