package billing

import (
	"testing"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		paid      string
		flag      bool
		wantPaid  string
		remaining string
		status    domain.PaymentStatus
	}{
		{name: "exactly paid without flag", total: "1000", paid: "1000", wantPaid: "1000", remaining: "0", status: domain.PaymentPaid},
		{name: "partial", total: "1000", paid: "400", wantPaid: "400", remaining: "600", status: domain.PaymentPartial},
		{name: "flag overrides paid amount", total: "1000", paid: "0", flag: true, wantPaid: "1000", remaining: "0", status: domain.PaymentPaid},
		{name: "flag overrides overpayment", total: "1000", paid: "1500", flag: true, wantPaid: "1000", remaining: "0", status: domain.PaymentPaid},
		{name: "pending", total: "1000", paid: "0", wantPaid: "0", remaining: "1000", status: domain.PaymentPending},
		{name: "overpaid clamps remaining", total: "1000", paid: "1200", wantPaid: "1200", remaining: "0", status: domain.PaymentPaid},
		{name: "zero total nothing paid", total: "0", paid: "0", wantPaid: "0", remaining: "0", status: domain.PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reconcile(dec(tt.total), dec(tt.paid), tt.flag)
			assertDecimal(t, tt.wantPaid, s.PaidAmount)
			assertDecimal(t, tt.remaining, s.RemainingAmount)
			assert.Equal(t, tt.status, s.Status)
		})
	}
}

func TestPrepare_RecomputesDerivedFields(t *testing.T) {
	doc := domain.TransactionDocument{
		LineItems:       []domain.LineItem{item("2", "50", "18")},
		PaidAmount:      dec("18"),
		Subtotal:        dec("999"),
		GrandTotal:      dec("999"),
		RemainingAmount: dec("999"),
		PaymentStatus:   domain.PaymentPaid,
	}

	require.NoError(t, Prepare(&doc))
	assertDecimal(t, "100", doc.Subtotal)
	assertDecimal(t, "18", doc.TaxTotal)
	assertDecimal(t, "118", doc.GrandTotal)
	assertDecimal(t, "100", doc.RemainingAmount)
	assert.Equal(t, domain.PaymentPartial, doc.PaymentStatus)
}

func TestPrepare_EmptyDocumentIsPending(t *testing.T) {
	var doc domain.TransactionDocument
	require.NoError(t, Prepare(&doc))
	assert.True(t, doc.GrandTotal.IsZero())
	assert.True(t, doc.RemainingAmount.IsZero())
	assert.Equal(t, domain.PaymentPending, doc.PaymentStatus)
}

func TestPrepare_Rejects(t *testing.T) {
	doc := domain.TransactionDocument{PaidAmount: dec("-1")}
	err := Prepare(&doc)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPayment)
	assert.Equal(t, "paidAmount", apperrors.FieldOf(err))

	doc = domain.TransactionDocument{LineItems: []domain.LineItem{item("1", "10", "7")}, GrandTotal: dec("5")}
	err = Prepare(&doc)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaxRate)
	assertDecimal(t, "5", doc.GrandTotal)
}

func TestRecordPayment(t *testing.T) {
	doc := domain.TransactionDocument{LineItems: []domain.LineItem{item("1", "1000", "0")}}
	require.NoError(t, Prepare(&doc))
	at := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	doc, err := RecordPayment(doc, dec("300"), at)
	require.NoError(t, err)
	doc, err = RecordPayment(doc, dec("300"), at)
	require.NoError(t, err)
	assertDecimal(t, "600", doc.PaidAmount)
	assertDecimal(t, "400", doc.RemainingAmount)
	assert.Equal(t, domain.PaymentPartial, doc.PaymentStatus)

	doc, err = RecordPayment(doc, dec("400"), at.Add(time.Hour))
	require.NoError(t, err)
	assertDecimal(t, "1000", doc.PaidAmount)
	assertDecimal(t, "0", doc.RemainingAmount)
	assert.Equal(t, domain.PaymentPaid, doc.PaymentStatus)
	require.NotNil(t, doc.LastPaymentDate)
	assert.Equal(t, at.Add(time.Hour), *doc.LastPaymentDate)
}

func TestRecordPayment_RejectsNonPositive(t *testing.T) {
	doc := domain.TransactionDocument{GrandTotal: dec("100"), PaidAmount: dec("10")}
	for _, amt := range []decimal.Decimal{decimal.Zero, dec("-5")} {
		got, err := RecordPayment(doc, amt, time.Now())
		assert.ErrorIs(t, err, apperrors.ErrInvalidPayment)
		assertDecimal(t, "10", got.PaidAmount)
		assert.Nil(t, got.LastPaymentDate)
	}
}
