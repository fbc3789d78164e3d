package purchase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the purchase row for the rest of the transaction.
// Items are not loaded.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	query := psql.Select(
		sm.Columns(purchaseColumns...),
		sm.From("purchases"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[purchaseRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rowToPurchase(row), nil
}

// Insert creates a new purchase row. Items go through ReplaceItems.
func (w *Writer) Insert(ctx context.Context, create *PurchaseUpsert) error {
	_, err := bob.Exec(ctx, w.tx, insertQuery(create))
	return err
}

func insertQuery(create *PurchaseUpsert) bob.BaseQuery[*dialect.InsertQuery] {
	purchasedAt := create.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	return psql.Insert(
		im.Into("purchases",
			"id", "purchased_at", "total", "loan_id",
			"has_goods_receipt", "goods_receipt_total",
		),
		im.Values(psql.Arg(
			create.ID, purchasedAt, create.Total, nullableLoanID(create.LoanID),
			false, nil,
		)),
	)
}

// Update rewrites the mutable purchase fields. Goods-receipt state is
// deliberately untouched: it only changes via SetGoodsReceipt.
func (w *Writer) Update(ctx context.Context, update *PurchaseUpsert) error {
	_, err := bob.Exec(ctx, w.tx, updateQuery(update))
	return err
}

func updateQuery(update *PurchaseUpsert) bob.BaseQuery[*dialect.UpdateQuery] {
	purchasedAt := update.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	return psql.Update(
		um.Table("purchases"),
		um.SetCol("purchased_at").ToArg(purchasedAt),
		um.SetCol("total").ToArg(update.Total),
		um.SetCol("loan_id").ToArg(nullableLoanID(update.LoanID)),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
	)
}

// ReplaceItems swaps the purchase's line items wholesale.
func (w *Writer) ReplaceItems(ctx context.Context, id uuid.UUID, items []Item) error {
	deleteQuery := psql.Delete(
		dm.From("purchase_items"),
		dm.Where(psql.Quote("purchase_id").EQ(psql.Arg(id))),
	)
	if _, err := bob.Exec(ctx, w.tx, deleteQuery); err != nil {
		return err
	}

	for position, item := range items {
		insertQuery := psql.Insert(
			im.Into("purchase_items", "purchase_id", "position", "name", "quantity", "price"),
			im.Values(psql.Arg(id, position, item.Name, item.Quantity, item.Price)),
		)
		if _, err := bob.Exec(ctx, w.tx, insertQuery); err != nil {
			return err
		}
	}
	return nil
}

// SetGoodsReceipt marks the purchase received and records the confirmed total.
func (w *Writer) SetGoodsReceipt(ctx context.Context, id uuid.UUID, confirmedTotal decimal.Decimal) error {
	query := psql.Update(
		um.Table("purchases"),
		um.SetCol("has_goods_receipt").ToArg(true),
		um.SetCol("goods_receipt_total").ToArg(confirmedTotal),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func nullableLoanID(loanID string) interface{} {
	if loanID == "" {
		return nil
	}
	return loanID
}
