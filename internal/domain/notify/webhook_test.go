package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maree/internal/domain/demand"
)

func TestWebhookSinkDeliver(t *testing.T) {
	var received webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL)

	report := demand.Report{
		Holiday:     demand.HolidayMeta{Name: "Christmas"},
		Status:      demand.StatusSufficientStock,
		TotalOrders: 2,
		GeneratedAt: time.Now(),
	}

	if err := sink.Deliver(context.Background(), report); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	if received.Report.Holiday.Name != "Christmas" {
		t.Errorf("holiday = %q", received.Report.Holiday.Name)
	}
	if received.Text == "" {
		t.Error("text rendering missing from payload")
	}
}

func TestWebhookSinkNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL)

	if err := sink.Deliver(context.Background(), demand.Report{}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
