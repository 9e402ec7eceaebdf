package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

const (
	// closeSlowConsumer is sent when the feed dropped the watcher.
	closeSlowConsumer = "slow consumer"

	// maxIncomingMessage bounds client frames. Clients only answer pings.
	maxIncomingMessage = 512
)

// StreamHandler serves the live order event stream over WebSocket.
type StreamHandler struct {
	feed         ports.OrderFeed
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	writeTimeout time.Duration
}

// NewStreamHandler creates a StreamHandler reading from feed.
func NewStreamHandler(feed ports.OrderFeed, cfg config.StreamConfig) *StreamHandler {
	return &StreamHandler{
		feed:         feed,
		pingInterval: cfg.PingInterval,
		writeTimeout: cfg.WriteTimeout,
	}
}

// StreamEvents handles GET /api/v1/orders/stream. The optional order_id query
// parameter narrows the stream to one order. Each message is a JSON
// dto.OrderStreamEvent.
func (h *StreamHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseOrderFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	// Upgrade writes its own error response on failure.
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if orderID > 0 {
		ctx = logging.Enrich(ctx, logging.OrderID(orderID))
	}
	logger := logging.FromContext(ctx)

	events, err := h.feed.Watch(ctx, orderID)
	if err != nil {
		h.closeWith(conn, websocket.CloseInternalServerErr, "feed unavailable")
		return
	}

	// A peer that stops answering pings is dropped once the read deadline
	// passes. Each pong pushes it back.
	pongWait := h.pingInterval + h.writeTimeout
	conn.SetReadLimit(maxIncomingMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go discardIncoming(conn, cancel)

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() == nil {
					h.closeWith(conn, websocket.ClosePolicyViolation, closeSlowConsumer)
				}
				return
			}
			if err := h.write(conn, dto.ToOrderStreamEvent(ev)); err != nil {
				logger.DebugContext(ctx, "order stream write failed", logging.Err(err))
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(h.writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *StreamHandler) write(conn *websocket.Conn, msg dto.OrderStreamEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func (h *StreamHandler) closeWith(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(h.writeTimeout)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

// discardIncoming reads until the peer goes away or the read deadline passes
// so that control frames are processed, then cancels the stream.
func discardIncoming(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func parseOrderFilter(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("order_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("order_id", "must be a valid integer")
	}
	if id <= 0 {
		return 0, domain.NewValidationError("order_id", domain.MsgPositive)
	}
	return id, nil
}
