package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/history-server/internal/operator/actions"
	"github.com/carson-networks/history-server/internal/storage"
	"github.com/carson-networks/history-server/internal/storage/purchase"
)

// HistoryService handles the purchase-history read path and the goods-receipt
// confirmation flow.
type HistoryService struct {
	storage     *storage.Storage
	operator    actionProcessor
	settleDelay time.Duration
	location    *time.Location
}

// NewHistoryService creates a new HistoryService. settleDelay is waited out
// before a confirmation is enqueued; loc is the timezone purchases are
// bucketed into calendar days with.
func NewHistoryService(store *storage.Storage, op actionProcessor, settleDelay time.Duration, loc *time.Location) *HistoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &HistoryService{
		storage:     store,
		operator:    op,
		settleDelay: settleDelay,
		location:    loc,
	}
}

// ListHistory returns every purchase grouped by local calendar day, days
// ordered newest first and purchases within a day ordered newest first.
func (s *HistoryService) ListHistory(ctx context.Context) ([]DayGroup, error) {
	rows, err := s.storage.Purchases.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Purchase, len(rows))
	for i, row := range rows {
		converted[i] = purchaseFromStorage(row)
	}

	return groupByDay(converted, s.location), nil
}

// GetPurchase retrieves one purchase by ID.
func (s *HistoryService) GetPurchase(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	row, err := s.storage.Purchases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := purchaseFromStorage(row)
	return &converted, nil
}

// ConfirmGoodsReceipt waits out the settle delay, then marks the purchase as
// received through the operator and returns the updated purchase. The
// confirmed total is copied from the stored total, never taken from the
// caller. Returns purchase.ErrNotFound for unknown IDs and
// actions.ErrReceiptAlreadyConfirmed when a receipt already exists.
func (s *HistoryService) ConfirmGoodsReceipt(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	if err := s.settle(ctx); err != nil {
		return nil, err
	}

	action := &actions.ConfirmGoodsReceipt{PurchaseID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.GetPurchase(ctx, id)
}

// RecordPurchase upserts a purchase through the operator.
func (s *HistoryService) RecordPurchase(ctx context.Context, record PurchaseRecord) (uuid.UUID, error) {
	id := record.ID
	if id.IsNil() {
		var err error
		id, err = uuid.NewV4()
		if err != nil {
			return uuid.Nil, err
		}
	}

	items := make([]purchase.Item, len(record.Items))
	for i, item := range record.Items {
		items[i] = purchase.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	action := &actions.RecordPurchase{
		Purchase: purchase.PurchaseUpsert{
			ID:          id,
			PurchasedAt: record.PurchasedAt,
			Total:       record.Total,
			LoanID:      record.LoanID,
			Items:       items,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// settle blocks for the configured settle delay, aborting early if the
// request is cancelled. The wait happens before any transaction opens so no
// lock is held while sleeping.
func (s *HistoryService) settle(ctx context.Context) error {
	if s.settleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.settleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// groupByDay buckets purchases by their calendar day in loc. Every purchase
// lands in exactly one bucket. Days come out strictly descending, purchases
// within a day descending by purchase time.
func groupByDay(purchases []Purchase, loc *time.Location) []DayGroup {
	buckets := make(map[time.Time][]Purchase)
	for _, p := range purchases {
		local := p.PurchasedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		buckets[day] = append(buckets[day], p)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for day, dayPurchases := range buckets {
		sort.SliceStable(dayPurchases, func(i, j int) bool {
			return dayPurchases[i].PurchasedAt.After(dayPurchases[j].PurchasedAt)
		})
		groups = append(groups, DayGroup{Date: day, Purchases: dayPurchases})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})

	return groups
}

func purchaseFromStorage(row *purchase.Purchase) Purchase {
	items := make([]Item, len(row.Items))
	for i, item := range row.Items {
		items[i] = Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return Purchase{
		ID:                row.ID,
		PurchasedAt:       row.PurchasedAt,
		Total:             row.Total,
		LoanID:            row.LoanID,
		HasGoodsReceipt:   row.HasGoodsReceipt,
		GoodsReceiptTotal: row.GoodsReceiptTotal,
		CreatedAt:         row.CreatedAt,
		Items:             items,
	}
}
