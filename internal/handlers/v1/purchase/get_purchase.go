package purchase

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/service"
	storagepurchase "github.com/carson-networks/history-server/internal/storage/purchase"
)

// GetPurchaseInput is the Huma input for fetching one purchase.
type GetPurchaseInput struct {
	PurchaseID string `path:"purchaseID" format:"uuid" doc:"Purchase UUID"`
}

// GetPurchaseOutput is the Huma output for fetching one purchase.
type GetPurchaseOutput struct {
	Body Purchase
}

// purchaseGetter is the interface for fetching one purchase.
type purchaseGetter interface {
	GetPurchase(ctx context.Context, id uuid.UUID) (*service.Purchase, error)
}

// GetPurchaseHandler handles GET /v1/purchase/{purchaseID}.
type GetPurchaseHandler struct {
	HistoryService purchaseGetter
}

// NewGetPurchaseHandler creates a new GetPurchaseHandler.
func NewGetPurchaseHandler(svc purchaseGetter) *GetPurchaseHandler {
	return &GetPurchaseHandler{HistoryService: svc}
}

// Register registers the get purchase endpoint with the Huma API.
func (h *GetPurchaseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-purchase",
		Method:      http.MethodGet,
		Path:        "/v1/purchase/{purchaseID}",
		Summary:     "Get purchase",
		Description: "Returns one purchase with its line items and goods-receipt state.",
		Tags:        []string{"Purchases"},
	}, h.handle)
}

func (h *GetPurchaseHandler) handle(ctx context.Context, input *GetPurchaseInput) (*GetPurchaseOutput, error) {
	id, err := uuid.FromString(input.PurchaseID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid purchaseID", err)
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("purchaseID", id.String())
	}

	row, err := h.HistoryService.GetPurchase(ctx, id)
	if err != nil {
		if errors.Is(err, storagepurchase.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "purchase not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get purchase", err)
	}

	return &GetPurchaseOutput{Body: toAPIPurchase(row)}, nil
}
