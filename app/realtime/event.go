// Package realtime defines the events pushed to connected dashboards and the
// broadcaster that delivers them.
//
// Every event travels as a JSON frame of the form
//
//	{"type": "ORDER_UPDATED", "payload": {...}}
//
// The type string tells clients how to merge the payload into their local
// view (see package client).
package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/damassweet/damas/app/models"
)

// Event type strings. Clients switch on these to pick a merge strategy.
const (
	TypeOrderAdded   = "ORDER_ADDED"
	TypeOrderUpdated = "ORDER_UPDATED"
	TypeUserAdded    = "USER_ADDED"
	TypeUserUpdated  = "USER_UPDATED"
	TypeUserDeleted  = "USER_DELETED"
	TypeStockUpdated = "STOCK_UPDATED"
)

// Event is the closed set of realtime notifications. Constructors below are
// the only way to build one, so an event always carries a valid type and a
// payload matching it.
type Event struct {
	eventType string
	payload   interface{}
}

// OrderAdded announces a newly created order.
func OrderAdded(o models.Order) Event {
	return Event{eventType: TypeOrderAdded, payload: o}
}

// OrderUpdated announces any mutation of an existing order: status change,
// confirmation, assignment, notes, edit.
func OrderUpdated(o models.Order) Event {
	return Event{eventType: TypeOrderUpdated, payload: o}
}

// UserAdded announces a newly created user account.
func UserAdded(u models.User) Event {
	return Event{eventType: TypeUserAdded, payload: u}
}

// UserUpdated announces a changed user account.
func UserUpdated(u models.User) Event {
	return Event{eventType: TypeUserUpdated, payload: u}
}

// UserDeleted announces a removed account. Only the ID travels.
func UserDeleted(id uint) Event {
	return Event{eventType: TypeUserDeleted, payload: map[string]uint{"id": id}}
}

// StockUpdated announces a new stock handout row.
func StockUpdated(s models.StockEntry) Event {
	return Event{eventType: TypeStockUpdated, payload: s}
}

// Type returns the event's wire type string.
func (e Event) Type() string { return e.eventType }

// Payload returns the event's payload value.
func (e Event) Payload() interface{} { return e.payload }

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode serialises the event into its wire frame.
func (e Event) Encode() ([]byte, error) {
	payload, err := json.Marshal(e.payload)
	if err != nil {
		return nil, fmt.Errorf("realtime: marshal %s payload: %w", e.eventType, err)
	}
	return json.Marshal(frame{Type: e.eventType, Payload: payload})
}

// Frame is a decoded wire frame with the payload left raw. Consumers decode
// the payload into the model matching the type.
type Frame struct {
	Type    string
	Payload json.RawMessage
}

// Decode parses a wire frame and checks the type is known. Frames with an
// unknown type are returned with ok=false so consumers can skip them without
// treating the stream as corrupt.
func Decode(data []byte) (Frame, bool, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, false, fmt.Errorf("realtime: decode frame: %w", err)
	}

	switch f.Type {
	case TypeOrderAdded, TypeOrderUpdated,
		TypeUserAdded, TypeUserUpdated, TypeUserDeleted,
		TypeStockUpdated:
		return Frame{Type: f.Type, Payload: f.Payload}, true, nil
	default:
		return Frame{Type: f.Type, Payload: f.Payload}, false, nil
	}
}
