package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/flopguide/advice"
	"github.com/lox/flopguide/poker"
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	id        string
	conn      *websocket.Conn
	send      chan *Response
	server    *Server
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	return &Connection{
		id:     id,
		conn:   conn,
		send:   make(chan *Response, 256),
		server: server,
		logger: server.logger.WithPrefix("conn").With("conn", id),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ID returns the connection's unique identifier.
func (c *Connection) ID() string {
	return c.id
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Send queues a response for the client
func (c *Connection) Send(resp *Response) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown
			c.logger.Debug("Attempted to send on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- resp:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		_ = c.Send(c.handleRequest(&req))
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case resp, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(resp); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleRequest turns one request into its response
func (c *Connection) handleRequest(req *Request) *Response {
	c.logger.Debug("Received request", "type", req.Type, "hand", req.Hand)

	switch req.Type {
	case MessageTypeAdvise:
		return c.advise(req.RequestID, req.Hand)
	case MessageTypeRandom:
		return c.advise(req.RequestID, c.server.randomHand())
	default:
		return c.errorResponse(req.RequestID, "unknown_type", "Unknown message type: "+string(req.Type))
	}
}

func (c *Connection) advise(requestID, input string) *Response {
	hand, err := poker.ParseHand(input)
	if err != nil {
		var perr *poker.ParseError
		kind := "invalid_format"
		if errors.As(err, &perr) {
			kind = perr.Kind.String()
		}
		return &Response{
			Type:      MessageTypeInvalid,
			RequestID: requestID,
			Timestamp: c.server.clock.Now(),
			Input:     input,
			Error:     kind,
			Message:   err.Error(),
		}
	}

	bundle := advice.Generate(hand)
	return &Response{
		Type:      MessageTypeAdvice,
		RequestID: requestID,
		Timestamp: c.server.clock.Now(),
		Input:     input,
		Hand:      hand.String(),
		Label:     hand.Label(),
		Category:  string(hand.Category()),
		Bundle:    &bundle,
	}
}

func (c *Connection) errorResponse(requestID, code, message string) *Response {
	return &Response{
		Type:      MessageTypeError,
		RequestID: requestID,
		Timestamp: c.server.clock.Now(),
		Error:     code,
		Message:   message,
	}
}
