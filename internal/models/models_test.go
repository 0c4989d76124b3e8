package models

import (
	"testing"
)

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []Priority{"", "urgent", "LOW"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestInvoiceStatusTransitions(t *testing.T) {
	cases := []struct {
		from InvoiceStatus
		to   InvoiceStatus
		want bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusSent, StatusPaid, true},
		{StatusDraft, StatusPaid, false},
		{StatusSent, StatusDraft, false},
		{StatusPaid, StatusSent, false},
		{StatusPaid, StatusDraft, false},
		{StatusDraft, StatusDraft, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestInvoiceItemsScanValue(t *testing.T) {
	items := InvoiceItems{
		{ID: "a", Description: "Consulting", Quantity: 10, Rate: 100, Amount: 1000},
		{ID: "b", Description: "Support", Quantity: 7, Rate: 100, Amount: 700},
	}

	value, err := items.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned InvoiceItems
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scanned) != 2 {
		t.Fatalf("scanned %d items, want 2", len(scanned))
	}
	if scanned[1].Description != "Support" || scanned[1].Amount != 700 {
		t.Errorf("scanned item = %+v", scanned[1])
	}
}

func TestInvoiceItemsScanString(t *testing.T) {
	var items InvoiceItems
	if err := items.Scan(`[{"id":"x","description":"d","quantity":1,"rate":2,"amount":2}]`); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if len(items) != 1 || items[0].Amount != 2 {
		t.Errorf("items = %+v", items)
	}
}

func TestInvoiceItemsScanNil(t *testing.T) {
	items := InvoiceItems{{ID: "stale"}}
	if err := items.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if items != nil {
		t.Errorf("items = %+v, want nil", items)
	}
}

func TestInvoiceItemsScanUnsupported(t *testing.T) {
	var items InvoiceItems
	if err := items.Scan(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}
