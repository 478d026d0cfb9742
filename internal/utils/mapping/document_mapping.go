package mapping

import (
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/models"
)

// ToModelDocument converts a domain TransactionDocument to a model Document
func ToModelDocument(d domain.TransactionDocument) models.Document {
	items := make([]models.LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = models.LineItem{
			ProductName:    li.ProductName,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
		}
	}
	return models.Document{
		DocumentID:        d.DocumentID,
		UserID:            d.UserID,
		Kind:              string(d.Kind),
		NumberPrefix:      d.NumberPrefix,
		NumberSuffix:      d.NumberSuffix,
		DocumentNumber:    d.DocumentNumber,
		CounterpartyName:  d.CounterpartyName,
		CounterpartyEmail: nullableString(d.CounterpartyEmail),
		IssueDate:         d.IssueDate,
		DueDate:           d.DueDate,
		LineItems:         items,
		Subtotal:          d.Subtotal,
		TaxTotal:          d.TaxTotal,
		GrandTotal:        d.GrandTotal,
		PaymentMode:       string(d.PaymentMode),
		PaidAmount:        d.PaidAmount,
		IsMarkedFullyPaid: d.IsMarkedFullyPaid,
		PaymentStatus:     string(d.PaymentStatus),
		RemainingAmount:   d.RemainingAmount,
		LastPaymentDate:   d.LastPaymentDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain TransactionDocument
func ToDomainDocument(m models.Document) domain.TransactionDocument {
	items := make([]domain.LineItem, len(m.LineItems))
	for i, li := range m.LineItems {
		items[i] = domain.LineItem{
			ProductName:    li.ProductName,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
		}
	}
	return domain.TransactionDocument{
		DocumentID:        m.DocumentID,
		UserID:            m.UserID,
		Kind:              domain.DocumentKind(m.Kind),
		NumberPrefix:      m.NumberPrefix,
		NumberSuffix:      m.NumberSuffix,
		DocumentNumber:    m.DocumentNumber,
		CounterpartyName:  m.CounterpartyName,
		CounterpartyEmail: derefString(m.CounterpartyEmail),
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		LineItems:         items,
		Subtotal:          m.Subtotal,
		TaxTotal:          m.TaxTotal,
		GrandTotal:        m.GrandTotal,
		PaymentMode:       domain.PaymentMode(m.PaymentMode),
		PaidAmount:        m.PaidAmount,
		IsMarkedFullyPaid: m.IsMarkedFullyPaid,
		PaymentStatus:     domain.PaymentStatus(m.PaymentStatus),
		RemainingAmount:   m.RemainingAmount,
		LastPaymentDate:   m.LastPaymentDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to domain documents
func ToDomainDocumentSlice(ms []models.Document) []domain.TransactionDocument {
	ds := make([]domain.TransactionDocument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
