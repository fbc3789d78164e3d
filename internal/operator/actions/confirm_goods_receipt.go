package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/history-server/internal/storage"
	"github.com/carson-networks/history-server/internal/storage/purchase"
)

// ErrReceiptAlreadyConfirmed is returned when the purchase already carries a
// goods receipt. Confirmation never overwrites an earlier one.
var ErrReceiptAlreadyConfirmed = errors.New("goods receipt already confirmed")

// ConfirmGoodsReceipt marks a purchase as received. The row is locked for the
// duration of the write, the receipt flag is raised, and the confirmed total
// is copied from the stored purchase total.
type ConfirmGoodsReceipt struct {
	PurchaseID uuid.UUID

	IAction
}

func (c *ConfirmGoodsReceipt) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Purchase.FindByIDForUpdate(ctx, c.PurchaseID)
	if err != nil {
		return err
	}

	confirmedTotal, err := goodsReceiptTotal(row)
	if err != nil {
		return err
	}

	return writer.Purchase.SetGoodsReceipt(ctx, c.PurchaseID, confirmedTotal)
}

// goodsReceiptTotal decides the total recorded on confirmation: always the
// purchase's stored total, and only if no receipt exists yet.
func goodsReceiptTotal(row *purchase.Purchase) (decimal.Decimal, error) {
	if row.HasGoodsReceipt {
		return decimal.Decimal{}, ErrReceiptAlreadyConfirmed
	}
	return row.Total, nil
}
