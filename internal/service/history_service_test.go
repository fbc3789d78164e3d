package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/history-server/internal/operator/actions"
	"github.com/carson-networks/history-server/internal/storage"
	"github.com/carson-networks/history-server/internal/storage/purchase"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestService(t *testing.T) (*HistoryService, *purchase.MockIPurchaseTable, *mockActionProcessor) {
	t.Helper()
	mockTable := purchase.NewMockIPurchaseTable(t)
	store := &storage.Storage{Purchases: mockTable}
	processor := new(mockActionProcessor)
	svc := NewHistoryService(store, processor, 0, time.UTC)
	return svc, mockTable, processor
}

func makeStoragePurchase(purchasedAt time.Time) *purchase.Purchase {
	return &purchase.Purchase{
		ID:          uuid.Must(uuid.NewV4()),
		PurchasedAt: purchasedAt,
		Total:       decimal.RequireFromString("50000"),
		CreatedAt:   purchasedAt,
		Items: []purchase.Item{
			{Name: "Rice", Quantity: 2, Price: decimal.RequireFromString("25000")},
		},
	}
}

// -- ListHistory tests --

func TestListHistory_NoResults(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything).Return(nil, nil)

	groups, err := svc.ListHistory(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestListHistory_GroupsNewestDayFirst(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	older := makeStoragePurchase(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	newer := makeStoragePurchase(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	mockTable.EXPECT().List(mock.Anything).Return([]*purchase.Purchase{newer, older}, nil)

	groups, err := svc.ListHistory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "2024-01-02", groups[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-01", groups[1].Date.Format("2006-01-02"))
	assert.Len(t, groups[0].Purchases, 1)
	assert.Equal(t, newer.ID, groups[0].Purchases[0].ID)
	assert.Len(t, groups[1].Purchases, 1)
	assert.Equal(t, older.ID, groups[1].Purchases[0].ID)
}

func TestListHistory_EveryPurchaseInExactlyOneGroup(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	rows := []*purchase.Purchase{
		makeStoragePurchase(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)),
		makeStoragePurchase(time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC)),
		makeStoragePurchase(time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)),
		makeStoragePurchase(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)),
	}
	mockTable.EXPECT().List(mock.Anything).Return(rows, nil)

	groups, err := svc.ListHistory(context.Background())
	assert.NoError(t, err)

	seen := make(map[uuid.UUID]int)
	total := 0
	for _, group := range groups {
		for _, p := range group.Purchases {
			seen[p.ID]++
			total++
		}
	}
	assert.Equal(t, len(rows), total)
	for _, row := range rows {
		assert.Equal(t, 1, seen[row.ID])
	}

	// group keys strictly descending
	for i := 1; i < len(groups); i++ {
		assert.True(t, groups[i-1].Date.After(groups[i].Date))
	}
}

func TestListHistory_PurchasesWithinDayNewestFirst(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	morning := makeStoragePurchase(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC))
	evening := makeStoragePurchase(time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC))
	mockTable.EXPECT().List(mock.Anything).Return([]*purchase.Purchase{morning, evening}, nil)

	groups, err := svc.ListHistory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, evening.ID, groups[0].Purchases[0].ID)
	assert.Equal(t, morning.ID, groups[0].Purchases[1].ID)
}

func TestListHistory_BucketsInConfiguredTimezone(t *testing.T) {
	mockTable := purchase.NewMockIPurchaseTable(t)
	store := &storage.Storage{Purchases: mockTable}
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)
	svc := NewHistoryService(store, new(mockActionProcessor), 0, jakarta)

	// 23:30 UTC on Jan 1 is already Jan 2 in UTC+7.
	row := makeStoragePurchase(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC))
	mockTable.EXPECT().List(mock.Anything).Return([]*purchase.Purchase{row}, nil)

	groups, err := svc.ListHistory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "2024-01-02", groups[0].Date.Format("2006-01-02"))
}

func TestListHistory_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))

	groups, err := svc.ListHistory(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, groups)
}

// -- GetPurchase tests --

func TestGetPurchase_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	row := makeStoragePurchase(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	row.LoanID = "LN-77"
	mockTable.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	result, err := svc.GetPurchase(context.Background(), row.ID)

	assert.NoError(t, err)
	assert.Equal(t, row.ID, result.ID)
	assert.Equal(t, "LN-77", result.LoanID)
	assert.True(t, result.Total.Equal(row.Total))
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "Rice", result.Items[0].Name)
	assert.Equal(t, 2, result.Items[0].Quantity)
}

func TestGetPurchase_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, purchase.ErrNotFound)

	result, err := svc.GetPurchase(context.Background(), id)

	assert.ErrorIs(t, err, purchase.ErrNotFound)
	assert.Nil(t, result)
}

// -- ConfirmGoodsReceipt tests --

func TestConfirmGoodsReceipt_Success(t *testing.T) {
	svc, mockTable, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	total := decimal.RequireFromString("50000")

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		confirm, ok := a.(*actions.ConfirmGoodsReceipt)
		return ok && confirm.PurchaseID == id
	})).Return(nil)

	confirmed := &purchase.Purchase{
		ID:                id,
		PurchasedAt:       time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		Total:             total,
		HasGoodsReceipt:   true,
		GoodsReceiptTotal: total,
	}
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(confirmed, nil)

	result, err := svc.ConfirmGoodsReceipt(context.Background(), id)

	assert.NoError(t, err)
	assert.True(t, result.HasGoodsReceipt)
	assert.True(t, result.GoodsReceiptTotal.Equal(total), "confirmed total copied from original total")
	processor.AssertExpectations(t)
}

func TestConfirmGoodsReceipt_AlreadyConfirmed(t *testing.T) {
	svc, _, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	processor.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrReceiptAlreadyConfirmed)

	result, err := svc.ConfirmGoodsReceipt(context.Background(), id)

	assert.ErrorIs(t, err, actions.ErrReceiptAlreadyConfirmed)
	assert.Nil(t, result)
}

func TestConfirmGoodsReceipt_NotFound(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(purchase.ErrNotFound)

	result, err := svc.ConfirmGoodsReceipt(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, purchase.ErrNotFound)
	assert.Nil(t, result)
}

func TestConfirmGoodsReceipt_CancelledDuringSettle(t *testing.T) {
	mockTable := purchase.NewMockIPurchaseTable(t)
	store := &storage.Storage{Purchases: mockTable}
	processor := new(mockActionProcessor)
	svc := NewHistoryService(store, processor, time.Second, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.ConfirmGoodsReceipt(ctx, uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	processor.AssertNotCalled(t, "Process")
}

// -- RecordPurchase tests --

func TestRecordPurchase_GeneratesID(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		record, ok := a.(*actions.RecordPurchase)
		return ok && !record.Purchase.ID.IsNil()
	})).Return(nil)

	id, err := svc.RecordPurchase(context.Background(), PurchaseRecord{
		Total: decimal.RequireFromString("12000"),
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	processor.AssertExpectations(t)
}

func TestRecordPurchase_KeepsProvidedIDAndItems(t *testing.T) {
	svc, _, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		record, ok := a.(*actions.RecordPurchase)
		return ok &&
			record.Purchase.ID == id &&
			record.Purchase.LoanID == "LN-9" &&
			len(record.Purchase.Items) == 1 &&
			record.Purchase.Items[0].Name == "Sugar" &&
			record.Purchase.Items[0].Quantity == 3
	})).Return(nil)

	gotID, err := svc.RecordPurchase(context.Background(), PurchaseRecord{
		ID:     id,
		Total:  decimal.RequireFromString("30000"),
		LoanID: "LN-9",
		Items: []Item{
			{Name: "Sugar", Quantity: 3, Price: decimal.RequireFromString("10000")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
	processor.AssertExpectations(t)
}

func TestRecordPurchase_OperatorError(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue closed"))

	id, err := svc.RecordPurchase(context.Background(), PurchaseRecord{
		Total: decimal.RequireFromString("100"),
	})

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}
