package purchase

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/operator/actions"
	"github.com/carson-networks/history-server/internal/service"
	storagepurchase "github.com/carson-networks/history-server/internal/storage/purchase"
)

// ConfirmReceiptInput is the Huma input for confirming a goods receipt.
type ConfirmReceiptInput struct {
	PurchaseID string `path:"purchaseID" format:"uuid" doc:"Purchase UUID"`
}

// ConfirmReceiptOutput is the Huma output for confirming a goods receipt.
type ConfirmReceiptOutput struct {
	Body Purchase
}

// receiptConfirmer is the interface for confirming goods receipts.
type receiptConfirmer interface {
	ConfirmGoodsReceipt(ctx context.Context, id uuid.UUID) (*service.Purchase, error)
}

// ConfirmReceiptHandler handles POST /v1/purchase/{purchaseID}/receipt.
type ConfirmReceiptHandler struct {
	HistoryService receiptConfirmer
}

// NewConfirmReceiptHandler creates a new ConfirmReceiptHandler.
func NewConfirmReceiptHandler(svc receiptConfirmer) *ConfirmReceiptHandler {
	return &ConfirmReceiptHandler{HistoryService: svc}
}

// Register registers the confirm receipt endpoint with the Huma API.
func (h *ConfirmReceiptHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "confirm-goods-receipt",
		Method:      http.MethodPost,
		Path:        "/v1/purchase/{purchaseID}/receipt",
		Summary:     "Confirm goods receipt",
		Description: "Marks the purchase as received after the settle delay and records the confirmed total from the stored purchase total.",
		Tags:        []string{"Purchases"},
	}, h.handle)
}

func (h *ConfirmReceiptHandler) handle(ctx context.Context, input *ConfirmReceiptInput) (*ConfirmReceiptOutput, error) {
	id, err := uuid.FromString(input.PurchaseID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid purchaseID", err)
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("purchaseID", id.String())
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("confirmReceiptMs")
	}
	row, err := h.HistoryService.ConfirmGoodsReceipt(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, storagepurchase.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "purchase not found")
		case errors.Is(err, actions.ErrReceiptAlreadyConfirmed):
			return nil, huma.NewError(http.StatusConflict, "goods receipt already confirmed")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to confirm goods receipt", err)
		}
	}

	return &ConfirmReceiptOutput{Body: toAPIPurchase(row)}, nil
}
