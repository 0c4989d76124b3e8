package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
)

func newInvoiceServiceForTest() (*InvoiceService, *fakeInvoiceRepo) {
	repo := newFakeInvoiceRepo()
	return NewInvoiceService(repo, nil, nil), repo
}

func TestInvoiceCreateComputesTotals(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		TaxRate:    10,
		Items: []InvoiceItemInput{
			{Description: "Consulting", Quantity: 10, Rate: 100},
			{Description: "Support", Quantity: 7, Rate: 100},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if invoice.Subtotal != 1700 {
		t.Errorf("Subtotal = %v, want 1700", invoice.Subtotal)
	}
	if invoice.TaxAmount != 170 {
		t.Errorf("TaxAmount = %v, want 170", invoice.TaxAmount)
	}
	if invoice.Total != 1870 {
		t.Errorf("Total = %v, want 1870", invoice.Total)
	}
	if invoice.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", invoice.Status)
	}
	if !strings.HasPrefix(invoice.InvoiceNumber, "INV-") {
		t.Errorf("InvoiceNumber = %q, want INV- prefix", invoice.InvoiceNumber)
	}
	if invoice.InvoiceDate == "" {
		t.Error("InvoiceDate should default to today")
	}
}

func TestInvoiceCreateCoercesItems(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()

	invoice, err := svc.Create(context.Background(), uuid.New(), InvoiceInput{
		ClientName: "Acme Corp",
		Items: []InvoiceItemInput{
			{Description: "Free-form", Quantity: 0, Rate: -5},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	item := invoice.Items[0]
	if item.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", item.Quantity)
	}
	if item.Rate != 0 {
		t.Errorf("Rate = %v, want 0", item.Rate)
	}
	if item.Amount != 0 {
		t.Errorf("Amount = %v, want 0", item.Amount)
	}
	if item.ID == "" {
		t.Error("item id should be stamped on save")
	}
}

func TestInvoiceCreateValidation(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	_, err := svc.Create(context.Background(), owner, InvoiceInput{
		Items: []InvoiceItemInput{{Description: "x", Quantity: 1, Rate: 1}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("missing client name: err = %v, want ErrValidation", err)
	}

	_, err = svc.Create(context.Background(), owner, InvoiceInput{ClientName: "Acme Corp"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("empty items: err = %v, want ErrValidation", err)
	}
}

func TestInvoiceUpdateRecomputesTotals(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		TaxRate:    10,
		Items:      []InvoiceItemInput{{Description: "Consulting", Quantity: 10, Rate: 100}},
	})
	if err != nil {
		t.Fatal(err)
	}

	items := []InvoiceItemInput{{Description: "Consulting", Quantity: 5, Rate: 100}}
	updated, err := svc.Update(context.Background(), owner, invoice.ID, InvoicePatch{Items: &items})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Subtotal != 500 || updated.TaxAmount != 50 || updated.Total != 550 {
		t.Errorf("totals = %v/%v/%v, want 500/50/550", updated.Subtotal, updated.TaxAmount, updated.Total)
	}
}

func TestInvoiceUpdateRejectsEmptyItems(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		Items:      []InvoiceItemInput{{Description: "x", Quantity: 1, Rate: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	empty := []InvoiceItemInput{}
	if _, err := svc.Update(context.Background(), owner, invoice.ID, InvoicePatch{Items: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestInvoiceStatusLifecycle(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		Items:      []InvoiceItemInput{{Description: "x", Quantity: 1, Rate: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Skipping a step is rejected.
	if _, err := svc.UpdateStatus(context.Background(), owner, invoice.ID, models.StatusPaid); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft -> paid: err = %v, want ErrInvalidTransition", err)
	}

	sent, err := svc.UpdateStatus(context.Background(), owner, invoice.ID, models.StatusSent)
	if err != nil {
		t.Fatal(err)
	}
	if sent.Status != models.StatusSent {
		t.Errorf("Status = %q, want sent", sent.Status)
	}

	paid, err := svc.UpdateStatus(context.Background(), owner, invoice.ID, models.StatusPaid)
	if err != nil {
		t.Fatal(err)
	}
	if paid.Status != models.StatusPaid {
		t.Errorf("Status = %q, want paid", paid.Status)
	}

	// Paid is terminal.
	if _, err := svc.UpdateStatus(context.Background(), owner, invoice.ID, models.StatusSent); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("paid -> sent: err = %v, want ErrInvalidTransition", err)
	}
}

func TestInvoiceStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		Items:      []InvoiceItemInput{{Description: "x", Quantity: 1, Rate: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateStatus(context.Background(), owner, invoice.ID, "archived"); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestInvoiceCreateFailureLeavesSnapshotUntouched(t *testing.T) {
	svc, repo := newInvoiceServiceForTest()
	owner := uuid.New()

	repo.fail = true
	_, err := svc.Create(context.Background(), owner, InvoiceInput{
		ClientName: "Acme Corp",
		Items:      []InvoiceItemInput{{Description: "x", Quantity: 1, Rate: 1}},
	})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if svc.snapshot.Len(owner) != 0 {
		t.Error("snapshot changed on failed create")
	}
}
