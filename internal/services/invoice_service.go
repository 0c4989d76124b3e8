package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/billing"
	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
	"github.com/Anuragkundu/WorkFlowHQ/internal/kafka"
	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
	"github.com/Anuragkundu/WorkFlowHQ/internal/store"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

type InvoiceItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type InvoiceInput struct {
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	ClientAddress string             `json:"client_address"`
	InvoiceDate   string             `json:"invoice_date"`
	DueDate       string             `json:"due_date"`
	TaxRate       float64            `json:"tax_rate"`
	Items         []InvoiceItemInput `json:"items"`
}

type InvoicePatch struct {
	ClientName    *string             `json:"client_name"`
	ClientEmail   *string             `json:"client_email"`
	ClientAddress *string             `json:"client_address"`
	InvoiceDate   *string             `json:"invoice_date"`
	DueDate       *string             `json:"due_date"`
	TaxRate       *float64            `json:"tax_rate"`
	Items         *[]InvoiceItemInput `json:"items"`
}

type InvoiceService struct {
	repo     repositories.InvoiceRepository
	snapshot *store.Snapshot[models.Invoice]
	hooks    activityHooks
}

func NewInvoiceService(repo repositories.InvoiceRepository, producer *kafka.Producer, cache *redis.Service) *InvoiceService {
	return &InvoiceService{
		repo:     repo,
		snapshot: store.New(func(i models.Invoice) uuid.UUID { return i.ID }),
		hooks:    activityHooks{producer: producer, cache: cache},
	}
}

func (s *InvoiceService) Load(ctx context.Context, ownerID uuid.UUID) ([]models.Invoice, error) {
	invoices, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("ownerId", ownerID.String()).Msg("failed to load invoices")
		return nil, err
	}
	s.snapshot.Replace(ownerID, invoices)
	return s.snapshot.List(ownerID), nil
}

// buildItems coerces quantities and rates and derives each line amount.
// Item ids from the client are transient; fresh ones are stamped here.
func buildItems(inputs []InvoiceItemInput) models.InvoiceItems {
	items := make(models.InvoiceItems, 0, len(inputs))
	for _, in := range inputs {
		quantity := billing.CoerceQuantity(in.Quantity)
		rate := billing.CoerceRate(in.Rate)
		items = append(items, models.InvoiceItem{
			ID:          uuid.New().String(),
			Description: in.Description,
			Quantity:    quantity,
			Rate:        rate,
			Amount:      billing.ItemAmount(quantity, rate),
		})
	}
	return items
}

func applyTotals(invoice *models.Invoice) {
	totals := billing.ComputeTotals(invoice.Items, invoice.TaxRate)
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total
}

func (s *InvoiceService) Create(ctx context.Context, ownerID uuid.UUID, input InvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: an invoice needs at least one item", ErrValidation)
	}

	now := time.Now().UTC()
	invoiceDate := input.InvoiceDate
	if invoiceDate == "" {
		invoiceDate = now.Format("2006-01-02")
	}

	invoice := models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: billing.NextInvoiceNumber(now),
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientAddress: input.ClientAddress,
		InvoiceDate:   invoiceDate,
		DueDate:       input.DueDate,
		Items:         buildItems(input.Items),
		TaxRate:       billing.CoerceRate(input.TaxRate),
		Status:        models.StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        ownerID,
	}
	applyTotals(&invoice)

	if err := s.repo.Create(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	s.snapshot.Prepend(ownerID, invoice)
	s.hooks.record(ctx, events.InvoiceCreated, "invoices", invoice.ID, ownerID)
	return &invoice, nil
}

// Update patches the invoice and recomputes every derived figure. Totals
// are never accepted from the client and never left stale.
func (s *InvoiceService) Update(ctx context.Context, ownerID, id uuid.UUID, patch InvoicePatch) (*models.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientName != nil {
		if strings.TrimSpace(*patch.ClientName) == "" {
			return nil, fmt.Errorf("%w: client name is required", ErrValidation)
		}
		invoice.ClientName = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		invoice.ClientEmail = *patch.ClientEmail
	}
	if patch.ClientAddress != nil {
		invoice.ClientAddress = *patch.ClientAddress
	}
	if patch.InvoiceDate != nil {
		invoice.InvoiceDate = *patch.InvoiceDate
	}
	if patch.DueDate != nil {
		invoice.DueDate = *patch.DueDate
	}
	if patch.TaxRate != nil {
		invoice.TaxRate = billing.CoerceRate(*patch.TaxRate)
	}
	if patch.Items != nil {
		if len(*patch.Items) == 0 {
			return nil, fmt.Errorf("%w: an invoice needs at least one item", ErrValidation)
		}
		invoice.Items = buildItems(*patch.Items)
	}
	applyTotals(invoice)
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	s.snapshot.Apply(ownerID, *invoice)
	s.hooks.record(ctx, events.InvoiceUpdated, "invoices", invoice.ID, ownerID)
	return invoice, nil
}

// UpdateStatus advances the invoice through draft -> sent -> paid. Any
// other move is rejected.
func (s *InvoiceService) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, next models.InvoiceStatus) (*models.Invoice, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: status must be draft, sent or paid", ErrValidation)
	}

	invoice, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, invoice.Status, next)
	}

	invoice.Status = next
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	s.snapshot.Apply(ownerID, *invoice)
	s.hooks.record(ctx, events.InvoiceStatusChanged, "invoices", invoice.ID, ownerID)
	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.snapshot.Remove(ownerID, id)
	s.hooks.record(ctx, events.InvoiceDeleted, "invoices", id, ownerID)
	return nil
}
