package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
)

// ItemAmount derives a line amount from quantity and rate. Quantity is
// coerced to at least 1 and rate to at least 0; NaN or infinite input
// collapses to the same minimums.
func ItemAmount(quantity, rate float64) float64 {
	return CoerceQuantity(quantity) * CoerceRate(rate)
}

func CoerceQuantity(quantity float64) float64 {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 1 {
		return 1
	}
	return quantity
}

func CoerceRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0
	}
	return rate
}

type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// ComputeTotals sums the item amounts and applies the tax rate as a
// percentage. No rounding happens here; callers format for display.
func ComputeTotals(items []models.InvoiceItem, taxRatePercent float64) Totals {
	if math.IsNaN(taxRatePercent) || math.IsInf(taxRatePercent, 0) || taxRatePercent < 0 {
		taxRatePercent = 0
	}
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	taxAmount := subtotal * taxRatePercent / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// NextInvoiceNumber generates a save-time invoice number from the clock,
// e.g. INV-1717171717171.
func NextInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
