package realtime_test

import (
	"encoding/json"
	"testing"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	order := models.Order{ID: 7, ClientName: "Karim B.", Status: models.StatusDelivering}

	data, err := realtime.OrderUpdated(order).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	frame, ok, err := realtime.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ok {
		t.Fatal("expected a known frame type")
	}
	if frame.Type != realtime.TypeOrderUpdated {
		t.Errorf("type = %q, want %q", frame.Type, realtime.TypeOrderUpdated)
	}

	var got models.Order
	if err := json.Unmarshal(frame.Payload, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got.ID != 7 || got.ClientName != "Karim B." {
		t.Errorf("payload round trip lost data: %+v", got)
	}
}

func TestUserDeletedCarriesOnlyID(t *testing.T) {
	data, err := realtime.UserDeleted(12).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	frame, ok, err := realtime.Decode(data)
	if err != nil || !ok {
		t.Fatalf("decode: ok=%v err=%v", ok, err)
	}

	var payload map[string]uint
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(payload) != 1 || payload["id"] != 12 {
		t.Errorf("payload = %v, want only id=12", payload)
	}
}

// Frames with an unknown type are skippable, not errors, so old clients
// survive new event types.
func TestDecodeUnknownType(t *testing.T) {
	frame, ok, err := realtime.Decode([]byte(`{"type":"ORDER_ARCHIVED","payload":{}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ok {
		t.Error("expected ok=false for unknown type")
	}
	if frame.Type != "ORDER_ARCHIVED" {
		t.Errorf("type = %q, want the raw type preserved", frame.Type)
	}
}

func TestDecodeMalformedFrame(t *testing.T) {
	if _, _, err := realtime.Decode([]byte(`{"type":`)); err == nil {
		t.Error("expected an error for truncated JSON")
	}
}

func TestRecorderCapturesOrder(t *testing.T) {
	rec := &realtime.Recorder{}
	rec.Publish(realtime.OrderAdded(models.Order{ID: 1}))
	rec.Publish(realtime.StockUpdated(models.StockEntry{ID: 2}))

	if len(rec.Events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(rec.Events))
	}
	if rec.Events[0].Type() != realtime.TypeOrderAdded || rec.Events[1].Type() != realtime.TypeStockUpdated {
		t.Errorf("events out of order: %v, %v", rec.Events[0].Type(), rec.Events[1].Type())
	}
}
