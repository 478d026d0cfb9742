package dto

import (
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one item row of a document draft. Its values are validated by the
// billing engine so errors can name the offending item.
type LineItemRequest struct {
	ProductName    string          `json:"productName" example:"Widget"`
	Quantity       decimal.Decimal `json:"quantity" swaggertype:"string" example:"2"`
	UnitPrice      decimal.Decimal `json:"unitPrice" swaggertype:"string" example:"50.00"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent" swaggertype:"string" example:"18"`
}

// CreateDocumentRequest is the draft of a new sales invoice or purchase order.
// Totals and payment status are always derived, so they are not accepted here.
type CreateDocumentRequest struct {
	NumberPrefix      string             `json:"numberPrefix" example:"INV"`
	NumberSuffix      string             `json:"numberSuffix" example:"2024"`
	CounterpartyName  string             `json:"counterpartyName" binding:"required"`
	CounterpartyEmail string             `json:"counterpartyEmail" binding:"omitempty,email"`
	IssueDate         time.Time          `json:"issueDate" binding:"required"`
	DueDate           *time.Time         `json:"dueDate"`
	LineItems         []LineItemRequest  `json:"lineItems"`
	PaymentMode       domain.PaymentMode `json:"paymentMode" binding:"omitempty,paymentmode"`
	PaidAmount        decimal.Decimal    `json:"paidAmount" swaggertype:"string"`
	IsMarkedFullyPaid bool               `json:"isMarkedFullyPaid"`
}

// UpdateDocumentRequest replaces the editable fields of a document. The numbering fields
// are optional and, when present, must match the stored values. An omitted paid amount
// keeps the stored one.
type UpdateDocumentRequest struct {
	NumberPrefix      *string            `json:"numberPrefix"`
	NumberSuffix      *string            `json:"numberSuffix"`
	DocumentNumber    *string            `json:"documentNumber"`
	CounterpartyName  string             `json:"counterpartyName" binding:"required"`
	CounterpartyEmail string             `json:"counterpartyEmail" binding:"omitempty,email"`
	IssueDate         time.Time          `json:"issueDate" binding:"required"`
	DueDate           *time.Time         `json:"dueDate"`
	LineItems         []LineItemRequest  `json:"lineItems"`
	PaymentMode       domain.PaymentMode `json:"paymentMode" binding:"omitempty,paymentmode"`
	PaidAmount        *decimal.Decimal   `json:"paidAmount" swaggertype:"string"`
	IsMarkedFullyPaid bool               `json:"isMarkedFullyPaid"`
}

// RecordPaymentRequest adds a payment to a document.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"300"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=pending partial paid"`
	Range     string     `form:"range"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// NextNumberParams defines query parameters for previewing the next document number.
type NextNumberParams struct {
	Prefix string `form:"prefix"`
	Suffix string `form:"suffix"`
}

// NextNumberResponse carries a previewed document number.
type NextNumberResponse struct {
	DocumentNumber string `json:"documentNumber"`
}

type LineItemResponse struct {
	ProductName    string          `json:"productName"`
	Quantity       decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice      decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent" swaggertype:"string"`
}

type DocumentResponse struct {
	DocumentID        string             `json:"documentID"`
	Kind              string             `json:"kind"`
	NumberPrefix      string             `json:"numberPrefix"`
	NumberSuffix      string             `json:"numberSuffix"`
	DocumentNumber    string             `json:"documentNumber"`
	CounterpartyName  string             `json:"counterpartyName"`
	CounterpartyEmail string             `json:"counterpartyEmail,omitempty"`
	IssueDate         time.Time          `json:"issueDate"`
	DueDate           *time.Time         `json:"dueDate,omitempty"`
	LineItems         []LineItemResponse `json:"lineItems"`
	Subtotal          decimal.Decimal    `json:"subtotal" swaggertype:"string"`
	TaxTotal          decimal.Decimal    `json:"taxTotal" swaggertype:"string"`
	GrandTotal        decimal.Decimal    `json:"grandTotal" swaggertype:"string"`
	PaymentMode       string             `json:"paymentMode"`
	PaidAmount        decimal.Decimal    `json:"paidAmount" swaggertype:"string"`
	IsMarkedFullyPaid bool               `json:"isMarkedFullyPaid"`
	PaymentStatus     string             `json:"paymentStatus"`
	RemainingAmount   decimal.Decimal    `json:"remainingAmount" swaggertype:"string"`
	LastPaymentDate   *time.Time         `json:"lastPaymentDate,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToLineItems converts request rows into domain line items.
func ToLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, it := range items {
		out[i] = domain.LineItem{
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TaxRatePercent: it.TaxRatePercent,
		}
	}
	return out
}

// ToDocumentResponse converts a domain document into its API shape.
func ToDocumentResponse(d *domain.TransactionDocument) DocumentResponse {
	items := make([]LineItemResponse, len(d.LineItems))
	for i, it := range d.LineItems {
		items[i] = LineItemResponse{
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TaxRatePercent: it.TaxRatePercent,
		}
	}
	return DocumentResponse{
		DocumentID:        d.DocumentID,
		Kind:              string(d.Kind),
		NumberPrefix:      d.NumberPrefix,
		NumberSuffix:      d.NumberSuffix,
		DocumentNumber:    d.DocumentNumber,
		CounterpartyName:  d.CounterpartyName,
		CounterpartyEmail: d.CounterpartyEmail,
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
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.LastUpdatedAt,
	}
}

// ToListDocumentsResponse converts a page of documents.
func ToListDocumentsResponse(docs []domain.TransactionDocument, nextToken *string) ListDocumentsResponse {
	resp := make([]DocumentResponse, len(docs))
	for i := range docs {
		resp[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: resp, NextToken: nextToken}
}
