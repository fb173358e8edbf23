package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-service/internal/model"
)

func TestBroadcastDeliversToClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register(client)
	if hub.ClientCount() != 1 {
		t.Fatalf("client count: %d", hub.ClientCount())
	}

	event := model.LocationEvent{TripID: uuid.New(), CarID: uuid.New(), Latitude: 43.25, Longitude: 76.91}
	hub.Broadcast(event)

	select {
	case payload := <-client.send:
		var got model.LocationEvent
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.TripID != event.TripID || got.Latitude != event.Latitude {
			t.Fatalf("event mismatch: %+v", got)
		}
	default:
		t.Fatalf("expected a queued event")
	}
}

func TestBroadcastDropsSlowClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// a full unbuffered queue marks the client as slow
	slow := &Client{hub: hub, send: make(chan []byte)}
	hub.register(slow)

	hub.Broadcast(model.LocationEvent{TripID: uuid.New()})

	if hub.ClientCount() != 0 {
		t.Fatalf("slow client should have been dropped, count: %d", hub.ClientCount())
	}
}

func TestBroadcastWithNoClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.Broadcast(model.LocationEvent{TripID: uuid.New()})
	if hub.ClientCount() != 0 {
		t.Fatalf("client count: %d", hub.ClientCount())
	}
}
