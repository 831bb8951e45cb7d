package notify

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"maree/internal/domain/demand"
)

func TestEmailSinkDeliver(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	sink := NewEmailSink(EmailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "reports@maree.local",
		To:   []string{"owner@maree.local"},
	})
	sink.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	report := demand.Report{
		Holiday: demand.HolidayMeta{
			Name:      "Christmas",
			StartDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		},
		Status:      demand.StatusNoOrders,
		GeneratedAt: time.Now(),
	}

	if err := sink.Deliver(context.Background(), report); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotFrom != "reports@maree.local" {
		t.Errorf("from = %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "owner@maree.local" {
		t.Errorf("to = %v", gotTo)
	}

	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: Holiday demand report: Christmas") {
		t.Errorf("subject missing:\n%s", msg)
	}
	if !strings.Contains(msg, "No orders were placed") {
		t.Errorf("body missing:\n%s", msg)
	}
}

func TestEmailSinkRequiresRecipients(t *testing.T) {
	sink := NewEmailSink(EmailConfig{Host: "smtp.example.com", Port: 587})

	err := sink.Deliver(context.Background(), demand.Report{})
	if err == nil {
		t.Fatal("expected error for missing recipients")
	}
}
