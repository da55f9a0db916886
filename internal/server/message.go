package server

import (
	"time"

	"github.com/lox/flopguide/advice"
)

// MessageType names a websocket message
type MessageType string

// Client → Server
const (
	MessageTypeAdvise MessageType = "advise"
	MessageTypeRandom MessageType = "random"
)

// Server → Client
const (
	MessageTypeAdvice  MessageType = "advice"
	MessageTypeInvalid MessageType = "invalid"
	MessageTypeError   MessageType = "error"
)

// Request is sent by the presentation layer, typically on every keystroke.
type Request struct {
	Type      MessageType `json:"type"`
	Hand      string      `json:"hand,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// Response answers exactly one Request.
type Response struct {
	Type      MessageType    `json:"type"`
	RequestID string         `json:"requestId,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Input     string         `json:"input,omitempty"`
	Hand      string         `json:"hand,omitempty"`
	Label     string         `json:"label,omitempty"`
	Category  string         `json:"category,omitempty"`
	Bundle    *advice.Bundle `json:"bundle,omitempty"`
	Error     string         `json:"error,omitempty"`
	Message   string         `json:"message,omitempty"`
}
