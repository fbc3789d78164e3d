package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Purchase represents a purchase in the service layer.
type Purchase struct {
	ID                uuid.UUID
	PurchasedAt       time.Time
	Total             decimal.Decimal
	LoanID            string
	HasGoodsReceipt   bool
	GoodsReceiptTotal decimal.Decimal
	CreatedAt         time.Time
	Items             []Item
}

// Item is one purchased line item in the service layer.
type Item struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// DayGroup is all purchases of one local calendar day, newest purchase first.
// Date is midnight of that day in the history timezone.
type DayGroup struct {
	Date      time.Time
	Purchases []Purchase
}

// PurchaseRecord is the input for recording a purchase.
type PurchaseRecord struct {
	ID          uuid.UUID
	PurchasedAt time.Time // defaults to now if zero
	Total       decimal.Decimal
	LoanID      string
	Items       []Item
}
