package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind names the per-user collection a transaction document lives in.
type DocumentKind string

const (
	KindSale     DocumentKind = "sales"
	KindPurchase DocumentKind = "purchases"
)

// Valid reports whether k is a known document collection.
func (k DocumentKind) Valid() bool {
	return k == KindSale || k == KindPurchase
}

// PaymentMode is how a document is settled.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCard PaymentMode = "card"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeBank PaymentMode = "bank"
)

// PaymentModes lists every accepted payment mode.
var PaymentModes = []PaymentMode{PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeBank}

// Valid reports whether m is one of PaymentModes.
func (m PaymentMode) Valid() bool {
	for _, pm := range PaymentModes {
		if m == pm {
			return true
		}
	}
	return false
}

// PaymentStatus is derived from the grand total and the paid amount.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPartial || s == PaymentPaid
}

// LineItem is one priced row of an invoice or purchase order.
type LineItem struct {
	ProductName    string          `json:"productName"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

// TransactionDocument is the shared shape of sales invoices and purchase orders.
// Subtotal, TaxTotal, GrandTotal, PaymentStatus and RemainingAmount are derived and
// recomputed before every write.
type TransactionDocument struct {
	DocumentID string       `json:"documentID"`
	UserID     string       `json:"userID"`
	Kind       DocumentKind `json:"kind"`

	NumberPrefix   string `json:"numberPrefix"`
	NumberSuffix   string `json:"numberSuffix"`
	DocumentNumber string `json:"documentNumber"`

	CounterpartyName  string     `json:"counterpartyName"`
	CounterpartyEmail string     `json:"counterpartyEmail,omitempty"`
	IssueDate         time.Time  `json:"issueDate"`
	DueDate           *time.Time `json:"dueDate,omitempty"`

	LineItems  []LineItem      `json:"lineItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"taxTotal"`
	GrandTotal decimal.Decimal `json:"grandTotal"`

	PaymentMode       PaymentMode     `json:"paymentMode"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	IsMarkedFullyPaid bool            `json:"isMarkedFullyPaid"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	LastPaymentDate   *time.Time      `json:"lastPaymentDate,omitempty"`

	AuditFields
}

// DocumentFilter narrows a document listing.
type DocumentFilter struct {
	Search    string
	Status    PaymentStatus
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}
