package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/history-server/internal/storage/purchase"
)

type Writer struct {
	tx       bob.Tx
	Purchase purchase.IPurchaseWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:       tx,
		Purchase: purchase.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
