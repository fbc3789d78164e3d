package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/history-server/internal/storage"
	"github.com/carson-networks/history-server/internal/storage/purchase"
)

// RecordPurchase upserts a purchase and replaces its line items. An existing
// goods receipt survives the rewrite.
type RecordPurchase struct {
	Purchase purchase.PurchaseUpsert

	IAction
}

func (r *RecordPurchase) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Purchase.FindByIDForUpdate(ctx, r.Purchase.ID)
	switch {
	case errors.Is(err, purchase.ErrNotFound):
		if err := writer.Purchase.Insert(ctx, &r.Purchase); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := writer.Purchase.Update(ctx, &r.Purchase); err != nil {
			return err
		}
	}

	return writer.Purchase.ReplaceItems(ctx, r.Purchase.ID, r.Purchase.Items)
}
