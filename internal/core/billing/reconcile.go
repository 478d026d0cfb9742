package billing

import (
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Settlement holds the payment fields derived by Reconcile.
type Settlement struct {
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	Status          domain.PaymentStatus
}

// Reconcile derives the payment state of a document. A fully-paid flag forces the
// paid amount to the grand total.
func Reconcile(grandTotal, paidAmount decimal.Decimal, fullyPaid bool) Settlement {
	if fullyPaid {
		return Settlement{
			PaidAmount:      grandTotal,
			RemainingAmount: decimal.Zero,
			Status:          domain.PaymentPaid,
		}
	}

	remaining := grandTotal.Sub(paidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := domain.PaymentPartial
	switch {
	case !paidAmount.IsPositive():
		status = domain.PaymentPending
	case paidAmount.GreaterThanOrEqual(grandTotal):
		status = domain.PaymentPaid
	}

	return Settlement{
		PaidAmount:      paidAmount,
		RemainingAmount: remaining,
		Status:          status,
	}
}

// Prepare recomputes every derived field of doc from its line items and payment
// inputs. It must run before each write of a document.
func Prepare(doc *domain.TransactionDocument) error {
	if doc.PaidAmount.IsNegative() {
		return apperrors.NewFieldError(apperrors.ErrInvalidPayment, "paidAmount", "must not be negative")
	}

	totals, err := Aggregate(doc.LineItems)
	if err != nil {
		return err
	}
	doc.Subtotal = totals.Subtotal
	doc.TaxTotal = totals.TaxTotal
	doc.GrandTotal = totals.GrandTotal

	applySettlement(doc, Reconcile(doc.GrandTotal, doc.PaidAmount, doc.IsMarkedFullyPaid))
	return nil
}

// RecordPayment adds increment to the document's paid amount and reconciles it.
// The paid amount can only grow.
func RecordPayment(doc domain.TransactionDocument, increment decimal.Decimal, at time.Time) (domain.TransactionDocument, error) {
	if !increment.IsPositive() {
		return doc, apperrors.NewFieldError(apperrors.ErrInvalidPayment, "amount", "must be greater than zero")
	}

	doc.PaidAmount = doc.PaidAmount.Add(increment)
	doc.LastPaymentDate = &at
	applySettlement(&doc, Reconcile(doc.GrandTotal, doc.PaidAmount, doc.IsMarkedFullyPaid))
	return doc, nil
}

func applySettlement(doc *domain.TransactionDocument, s Settlement) {
	doc.PaidAmount = s.PaidAmount
	doc.RemainingAmount = s.RemainingAmount
	doc.PaymentStatus = s.Status
}
