package purchase

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUpdateQuery_LeavesGoodsReceiptColumnsAlone(t *testing.T) {
	update := &PurchaseUpsert{
		ID:     uuid.Must(uuid.NewV4()),
		Total:  decimal.RequireFromString("50000"),
		LoanID: "LN-42",
	}

	queryStr, _, err := updateQuery(update).Build(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, queryStr, "purchased_at")
	assert.Contains(t, queryStr, "total")
	assert.Contains(t, queryStr, "loan_id")
	assert.NotContains(t, queryStr, "has_goods_receipt")
	assert.NotContains(t, queryStr, "goods_receipt_total")
}

func TestInsertQuery_StartsWithReceiptPending(t *testing.T) {
	create := &PurchaseUpsert{
		ID:    uuid.Must(uuid.NewV4()),
		Total: decimal.RequireFromString("50000"),
	}

	queryStr, args, err := insertQuery(create).Build(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, queryStr, "has_goods_receipt")
	assert.Contains(t, queryStr, "goods_receipt_total")
	assert.Contains(t, args, false, "new rows have no goods receipt")
}

func TestNullableLoanID(t *testing.T) {
	assert.Nil(t, nullableLoanID(""))
	assert.Equal(t, "LN-42", nullableLoanID("LN-42"))
}
