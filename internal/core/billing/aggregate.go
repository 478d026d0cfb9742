package billing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllowedTaxRates are the tax percentages a line item may carry.
var AllowedTaxRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// Totals are the derived monetary fields of a document.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// IsAllowedTaxRate reports whether rate is one of AllowedTaxRates.
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range AllowedTaxRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}

// ValidateLineItem checks a single item; index is used for the field path.
func ValidateLineItem(index int, item domain.LineItem) error {
	field := func(name string) string {
		return fmt.Sprintf("lineItems[%d].%s", index, name)
	}
	if strings.TrimSpace(item.ProductName) == "" {
		return apperrors.NewFieldError(apperrors.ErrInvalidLineItem, field("productName"), "must not be empty")
	}
	if !item.Quantity.IsPositive() {
		return apperrors.NewFieldError(apperrors.ErrInvalidLineItem, field("quantity"), "must be greater than zero")
	}
	if item.UnitPrice.IsNegative() {
		return apperrors.NewFieldError(apperrors.ErrInvalidLineItem, field("unitPrice"), "must not be negative")
	}
	if !IsAllowedTaxRate(item.TaxRatePercent) {
		return apperrors.NewFieldError(apperrors.ErrInvalidTaxRate, field("taxRatePercent"), "must be one of 0, 5, 12, 18, 28")
	}
	return nil
}

// Aggregate computes subtotal, tax total and grand total of items. All items are
// validated before anything is summed, so an error never comes with partial totals.
func Aggregate(items []domain.LineItem) (Totals, error) {
	for i, item := range items {
		if err := ValidateLineItem(i, item); err != nil {
			return Totals{}, err
		}
	}

	subtotal, taxTotal := decimal.Zero, decimal.Zero
	for _, item := range items {
		net := item.Quantity.Mul(item.UnitPrice)
		subtotal = subtotal.Add(net)
		taxTotal = taxTotal.Add(net.Mul(item.TaxRatePercent).Shift(-2))
	}

	return Totals{
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		GrandTotal: subtotal.Add(taxTotal),
	}, nil
}
