package purchase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no purchase exists for the requested ID.
var ErrNotFound = errors.New("purchase not found")

// Purchase represents a recorded purchase with its line items.
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

// Item is one purchased line item.
type Item struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// PurchaseUpsert is the input for recording or replacing a purchase.
// Goods-receipt fields are never set through an upsert.
type PurchaseUpsert struct {
	ID          uuid.UUID
	PurchasedAt time.Time // defaults to now if zero
	Total       decimal.Decimal
	LoanID      string
	Items       []Item
}

// IPurchaseTable defines the read-side interface for purchase storage.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IPurchaseTable --output mock_IPurchaseTable.go
type IPurchaseTable interface {
	List(ctx context.Context) ([]*Purchase, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
}

// IPurchaseWriter defines the transactional write-side interface operator
// actions run against.
//
//go:generate mockery --name IPurchaseWriter --output mock_IPurchaseWriter.go
type IPurchaseWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Purchase, error)
	Insert(ctx context.Context, create *PurchaseUpsert) error
	Update(ctx context.Context, update *PurchaseUpsert) error
	ReplaceItems(ctx context.Context, id uuid.UUID, items []Item) error
	SetGoodsReceipt(ctx context.Context, id uuid.UUID, confirmedTotal decimal.Decimal) error
}

// purchaseRow is the scan target for the purchases table.
type purchaseRow struct {
	ID                uuid.UUID           `db:"id"`
	PurchasedAt       time.Time           `db:"purchased_at"`
	Total             decimal.Decimal     `db:"total"`
	LoanID            sql.NullString      `db:"loan_id"`
	HasGoodsReceipt   bool                `db:"has_goods_receipt"`
	GoodsReceiptTotal decimal.NullDecimal `db:"goods_receipt_total"`
	CreatedAt         time.Time           `db:"created_at"`
}

// itemRow is the scan target for the purchase_items table.
type itemRow struct {
	PurchaseID uuid.UUID       `db:"purchase_id"`
	Position   int             `db:"position"`
	Name       string          `db:"name"`
	Quantity   int             `db:"quantity"`
	Price      decimal.Decimal `db:"price"`
}

func rowToPurchase(row purchaseRow) *Purchase {
	p := &Purchase{
		ID:              row.ID,
		PurchasedAt:     row.PurchasedAt,
		Total:           row.Total,
		HasGoodsReceipt: row.HasGoodsReceipt,
		CreatedAt:       row.CreatedAt,
	}
	if row.LoanID.Valid {
		p.LoanID = row.LoanID.String
	}
	if row.GoodsReceiptTotal.Valid {
		p.GoodsReceiptTotal = row.GoodsReceiptTotal.Decimal
	}
	return p
}
