// Package client implements the dashboard's local view of the live data:
// a bulk-fetched snapshot kept current by merging pushed events.
package client

import (
	"encoding/json"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
)

// Feed holds the local order and user lists. Orders stay most-recent-first,
// matching the server's list endpoint. ApplyFrame is a pure merge: the same
// inputs always produce the same lists and no merge ever touches the network.
type Feed struct {
	Orders []models.Order
	Users  []models.User

	// OnStock, when set, receives STOCK_UPDATED payloads. Stock rows are
	// append-only so there is nothing to merge, the view just refreshes.
	OnStock func(models.StockEntry)
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Seed replaces the local lists with a bulk-fetched snapshot.
func (f *Feed) Seed(orders []models.Order, users []models.User) {
	f.Orders = orders
	f.Users = users
}

// ApplyFrame merges one decoded event into the local lists.
//
// ORDER_ADDED prepends unless the id is already present, which makes the
// merge idempotent when the bulk fetch raced the live event. ORDER_UPDATED
// replaces in place, keeping list position; an update for an id the feed
// never saw is dropped, the next full resync picks it up. USER_* follow the
// same pattern over the user list.
func (f *Feed) ApplyFrame(fr realtime.Frame) error {
	switch fr.Type {
	case realtime.TypeOrderAdded:
		var o models.Order
		if err := json.Unmarshal(fr.Payload, &o); err != nil {
			return err
		}
		if !f.hasOrder(o.ID) {
			f.Orders = append([]models.Order{o}, f.Orders...)
		}

	case realtime.TypeOrderUpdated:
		var o models.Order
		if err := json.Unmarshal(fr.Payload, &o); err != nil {
			return err
		}
		for i := range f.Orders {
			if f.Orders[i].ID == o.ID {
				f.Orders[i] = o
				break
			}
		}

	case realtime.TypeUserAdded:
		var u models.User
		if err := json.Unmarshal(fr.Payload, &u); err != nil {
			return err
		}
		if !f.hasUser(u.ID) {
			f.Users = append([]models.User{u}, f.Users...)
		}

	case realtime.TypeUserUpdated:
		var u models.User
		if err := json.Unmarshal(fr.Payload, &u); err != nil {
			return err
		}
		for i := range f.Users {
			if f.Users[i].ID == u.ID {
				f.Users[i] = u
				break
			}
		}

	case realtime.TypeUserDeleted:
		var p struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(fr.Payload, &p); err != nil {
			return err
		}
		for i := range f.Users {
			if f.Users[i].ID == p.ID {
				f.Users = append(f.Users[:i], f.Users[i+1:]...)
				break
			}
		}

	case realtime.TypeStockUpdated:
		var s models.StockEntry
		if err := json.Unmarshal(fr.Payload, &s); err != nil {
			return err
		}
		if f.OnStock != nil {
			f.OnStock(s)
		}
	}

	return nil
}

func (f *Feed) hasOrder(id uint) bool {
	for i := range f.Orders {
		if f.Orders[i].ID == id {
			return true
		}
	}
	return false
}

func (f *Feed) hasUser(id uint) bool {
	for i := range f.Users {
		if f.Users[i].ID == id {
			return true
		}
	}
	return false
}
