package purchase

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var purchaseColumns = []any{
	"id", "purchased_at", "total", "loan_id",
	"has_goods_receipt", "goods_receipt_total", "created_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every purchase with its items, newest first.
func (r *Reader) List(ctx context.Context) ([]*Purchase, error) {
	query := psql.Select(
		sm.Columns(purchaseColumns...),
		sm.From("purchases"),
		sm.OrderBy("purchased_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[purchaseRow]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	itemQuery := psql.Select(
		sm.Columns("purchase_id", "position", "name", "quantity", "price"),
		sm.From("purchase_items"),
		sm.OrderBy("purchase_id").Asc(),
		sm.OrderBy("position").Asc(),
	)
	itemRows, err := bob.All(ctx, r.exec, itemQuery, scan.StructMapper[itemRow]())
	if err != nil {
		return nil, err
	}

	itemsByPurchase := make(map[uuid.UUID][]Item, len(rows))
	for _, item := range itemRows {
		itemsByPurchase[item.PurchaseID] = append(itemsByPurchase[item.PurchaseID], Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	result := make([]*Purchase, len(rows))
	for i, row := range rows {
		result[i] = rowToPurchase(row)
		result[i].Items = itemsByPurchase[row.ID]
	}
	return result, nil
}

// FindByID retrieves one purchase with its items.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	query := psql.Select(
		sm.Columns(purchaseColumns...),
		sm.From("purchases"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[purchaseRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result := rowToPurchase(row)
	result.Items, err = r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Reader) itemsFor(ctx context.Context, id uuid.UUID) ([]Item, error) {
	query := psql.Select(
		sm.Columns("purchase_id", "position", "name", "quantity", "price"),
		sm.From("purchase_items"),
		sm.Where(psql.Quote("purchase_id").EQ(psql.Arg(id))),
		sm.OrderBy("position").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[itemRow]())
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = Item{
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		}
	}
	return items, nil
}
