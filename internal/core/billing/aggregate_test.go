package billing

import (
	"testing"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(qty, price, rate string) domain.LineItem {
	return domain.LineItem{ProductName: "Widget", Quantity: dec(qty), UnitPrice: dec(price), TaxRatePercent: dec(rate)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name                  string
		items                 []domain.LineItem
		subtotal, tax, grand string
	}{
		{name: "empty", items: nil, subtotal: "0", tax: "0", grand: "0"},
		{name: "single item", items: []domain.LineItem{item("2", "50", "18")}, subtotal: "100", tax: "18", grand: "118"},
		{name: "mixed rates", items: []domain.LineItem{item("1", "1000", "0"), item("3", "10", "5"), item("1", "200", "28")}, subtotal: "1230", tax: "57.5", grand: "1287.5"},
		{name: "fractional values keep precision", items: []domain.LineItem{item("1.5", "0.15", "12"), item("3", "0.1", "12")}, subtotal: "0.525", tax: "0.063", grand: "0.588"},
		{name: "free item", items: []domain.LineItem{item("4", "0", "18")}, subtotal: "0", tax: "0", grand: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := Aggregate(tt.items)
			require.NoError(t, err)
			assertDecimal(t, tt.subtotal, totals.Subtotal)
			assertDecimal(t, tt.tax, totals.TaxTotal)
			assertDecimal(t, tt.grand, totals.GrandTotal)
			assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TaxTotal)))
			assert.False(t, totals.Subtotal.IsNegative())
		})
	}
}

func TestAggregate_TaxIsExact(t *testing.T) {
	got, err := Aggregate([]domain.LineItem{item("3", "0.123456789012345678", "18")})
	require.NoError(t, err)

	assertDecimal(t, "0.370370367037037034", got.Subtotal)
	assertDecimal(t, "0.06666666606666666612", got.TaxTotal)
	assertDecimal(t, "0.43703703310370370012", got.GrandTotal)
}

func TestAggregate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.LineItem
		want  error
		field string
	}{
		{name: "zero quantity", items: []domain.LineItem{item("0", "10", "18")}, want: apperrors.ErrInvalidLineItem, field: "lineItems[0].quantity"},
		{name: "negative quantity", items: []domain.LineItem{item("1", "10", "18"), item("-1", "10", "18")}, want: apperrors.ErrInvalidLineItem, field: "lineItems[1].quantity"},
		{name: "negative price", items: []domain.LineItem{item("1", "-0.01", "0")}, want: apperrors.ErrInvalidLineItem, field: "lineItems[0].unitPrice"},
		{name: "unknown rate", items: []domain.LineItem{item("1", "10", "15")}, want: apperrors.ErrInvalidTaxRate, field: "lineItems[0].taxRatePercent"},
		{name: "fractional rate", items: []domain.LineItem{item("1", "10", "18.5")}, want: apperrors.ErrInvalidTaxRate, field: "lineItems[0].taxRatePercent"},
		{name: "blank name", items: []domain.LineItem{{ProductName: "  ", Quantity: dec("1"), UnitPrice: dec("1"), TaxRatePercent: dec("0")}}, want: apperrors.ErrInvalidLineItem, field: "lineItems[0].productName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := Aggregate(tt.items)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
			assert.Equal(t, Totals{}, totals)
		})
	}
}

func TestIsAllowedTaxRate(t *testing.T) {
	for _, r := range []string{"0", "5", "12", "18", "28", "18.00"} {
		assert.True(t, IsAllowedTaxRate(dec(r)), r)
	}
	for _, r := range []string{"-5", "1", "100"} {
		assert.False(t, IsAllowedTaxRate(dec(r)), r)
	}
}
