package service

import (
	"context"
	"time"

	"github.com/carson-networks/history-server/internal/operator/actions"
	"github.com/carson-networks/history-server/internal/storage"
)

// actionProcessor runs a mutation through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	History *HistoryService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op actionProcessor, settleDelay time.Duration, loc *time.Location) *Service {
	return &Service{
		History: NewHistoryService(store, op, settleDelay, loc),
	}
}
