package client_test

import (
	"testing"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/client"
)

func frameFor(t *testing.T, e realtime.Event) realtime.Frame {
	t.Helper()

	data, err := e.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	frame, ok, err := realtime.Decode(data)
	if err != nil || !ok {
		t.Fatalf("decode: ok=%v err=%v", ok, err)
	}
	return frame
}

func apply(t *testing.T, f *client.Feed, e realtime.Event) {
	t.Helper()
	if err := f.ApplyFrame(frameFor(t, e)); err != nil {
		t.Fatalf("apply %s: %v", e.Type(), err)
	}
}

func orderIDs(f *client.Feed) []uint {
	ids := make([]uint, len(f.Orders))
	for i, o := range f.Orders {
		ids[i] = o.ID
	}
	return ids
}

func TestOrderAddedPrepends(t *testing.T) {
	f := client.NewFeed()
	f.Seed([]models.Order{{ID: 2}, {ID: 1}}, nil)

	apply(t, f, realtime.OrderAdded(models.Order{ID: 3, ClientName: "Karim B."}))

	ids := orderIDs(f)
	if len(ids) != 3 || ids[0] != 3 {
		t.Errorf("orders = %v, want [3 2 1]", ids)
	}
}

// Receiving ORDER_ADDED for an order the bulk fetch already delivered must
// not create a duplicate row.
func TestOrderAddedIsIdempotent(t *testing.T) {
	f := client.NewFeed()
	f.Seed([]models.Order{{ID: 3, ClientName: "Karim B."}, {ID: 2}}, nil)

	apply(t, f, realtime.OrderAdded(models.Order{ID: 3, ClientName: "Karim B."}))
	apply(t, f, realtime.OrderAdded(models.Order{ID: 3, ClientName: "Karim B."}))

	ids := orderIDs(f)
	if len(ids) != 2 {
		t.Fatalf("orders = %v, want exactly [3 2]", ids)
	}
	if ids[0] != 3 || ids[1] != 2 {
		t.Errorf("order positions changed: %v", ids)
	}
}

// ORDER_UPDATED replaces the matching row in place: same position, same
// length, new content.
func TestOrderUpdatedReplacesInPlace(t *testing.T) {
	f := client.NewFeed()
	f.Seed([]models.Order{
		{ID: 3, Status: models.StatusPending},
		{ID: 2, Status: models.StatusPending},
		{ID: 1, Status: models.StatusPending},
	}, nil)

	apply(t, f, realtime.OrderUpdated(models.Order{ID: 2, Status: models.StatusDelivering}))

	if len(f.Orders) != 3 {
		t.Fatalf("list length changed: %d", len(f.Orders))
	}
	if f.Orders[1].ID != 2 || f.Orders[1].Status != models.StatusDelivering {
		t.Errorf("row 1 = %+v, want id=2 delivering", f.Orders[1])
	}
	if f.Orders[0].Status != models.StatusPending || f.Orders[2].Status != models.StatusPending {
		t.Error("neighbouring rows must be untouched")
	}
}

// An update for an order the feed never saw is dropped; the next full resync
// picks it up.
func TestOrderUpdatedUnknownIDIsDropped(t *testing.T) {
	f := client.NewFeed()
	f.Seed([]models.Order{{ID: 1}}, nil)

	apply(t, f, realtime.OrderUpdated(models.Order{ID: 99, Status: models.StatusDelivered}))

	if len(f.Orders) != 1 || f.Orders[0].ID != 1 {
		t.Errorf("orders = %v, want just [1]", orderIDs(f))
	}
}

func TestUserLifecycleMerge(t *testing.T) {
	f := client.NewFeed()
	f.Seed(nil, []models.User{{ID: 1, Name: "Amina"}})

	apply(t, f, realtime.UserAdded(models.User{ID: 2, Name: "Ali"}))
	if len(f.Users) != 2 || f.Users[0].ID != 2 {
		t.Fatalf("users after add = %+v", f.Users)
	}

	apply(t, f, realtime.UserUpdated(models.User{ID: 1, Name: "Amina K."}))
	if f.Users[1].Name != "Amina K." {
		t.Errorf("update missed: %+v", f.Users[1])
	}

	apply(t, f, realtime.UserDeleted(2))
	if len(f.Users) != 1 || f.Users[0].ID != 1 {
		t.Errorf("users after delete = %+v", f.Users)
	}

	// Deleting an id that is already gone is a no-op.
	apply(t, f, realtime.UserDeleted(2))
	if len(f.Users) != 1 {
		t.Errorf("second delete changed the list: %+v", f.Users)
	}
}

func TestStockUpdatedInvokesCallback(t *testing.T) {
	f := client.NewFeed()

	var got []models.StockEntry
	f.OnStock = func(s models.StockEntry) { got = append(got, s) }

	apply(t, f, realtime.StockUpdated(models.StockEntry{ID: 5, DriverID: 2, QuantitySmall: 3, Date: "2026-08-01"}))

	if len(got) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(got))
	}
	if got[0].ID != 5 || got[0].QuantitySmall != 3 {
		t.Errorf("payload = %+v", got[0])
	}
}

func TestStockUpdatedWithoutCallback(t *testing.T) {
	f := client.NewFeed()
	// Must not panic when no view is listening.
	apply(t, f, realtime.StockUpdated(models.StockEntry{ID: 5}))
}

func TestSeedReplacesState(t *testing.T) {
	f := client.NewFeed()
	f.Seed([]models.Order{{ID: 1}}, []models.User{{ID: 1}})
	f.Seed([]models.Order{{ID: 9}, {ID: 8}}, nil)

	if ids := orderIDs(f); len(ids) != 2 || ids[0] != 9 {
		t.Errorf("orders = %v, want [9 8]", ids)
	}
	if len(f.Users) != 0 {
		t.Errorf("users = %+v, want empty after reseed", f.Users)
	}
}
