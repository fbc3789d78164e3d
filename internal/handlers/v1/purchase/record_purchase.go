package purchase

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/service"
)

// RecordPurchaseBody is the request body for recording a purchase.
type RecordPurchaseBody struct {
	ID          string           `json:"id,omitempty" format:"uuid" doc:"Purchase UUID; generated when omitted, replaces the existing purchase when present"`
	PurchasedAt string           `json:"purchasedAt,omitempty" format:"date-time" doc:"RFC3339 purchase time, defaults to now"`
	Total       string           `json:"total" required:"true" doc:"Decimal total"`
	LoanID      string           `json:"loanID,omitempty" doc:"Loan identifier when purchase is loan-financed"`
	Items       []RecordItemBody `json:"items,omitempty" doc:"Line items"`
}

// RecordItemBody is one line item in a record request.
type RecordItemBody struct {
	Name     string `json:"name" minLength:"1" doc:"Item name"`
	Quantity int    `json:"quantity" minimum:"1" doc:"Quantity"`
	Price    string `json:"price" required:"true" doc:"Decimal unit price"`
}

// RecordPurchaseInput is the Huma input for recording a purchase.
type RecordPurchaseInput struct {
	Body RecordPurchaseBody
}

// RecordPurchaseResponse is the response body for recording a purchase.
type RecordPurchaseResponse struct {
	ID string `json:"id" doc:"Recorded purchase UUID"`
}

// RecordPurchaseOutput is the Huma output for recording a purchase.
type RecordPurchaseOutput struct {
	Status int
	Body   RecordPurchaseResponse
}

// purchaseRecorder is the interface for recording purchases.
type purchaseRecorder interface {
	RecordPurchase(ctx context.Context, record service.PurchaseRecord) (uuid.UUID, error)
}

// RecordPurchaseHandler handles POST /v1/purchase.
type RecordPurchaseHandler struct {
	HistoryService purchaseRecorder
}

// NewRecordPurchaseHandler creates a new RecordPurchaseHandler.
func NewRecordPurchaseHandler(svc purchaseRecorder) *RecordPurchaseHandler {
	return &RecordPurchaseHandler{HistoryService: svc}
}

// Register registers the record purchase endpoint with the Huma API.
func (h *RecordPurchaseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "record-purchase",
		Method:      http.MethodPost,
		Path:        "/v1/purchase",
		Summary:     "Record purchase",
		Description: "Records a new purchase or replaces an existing one. Goods-receipt state is never changed through this endpoint.",
		Tags:        []string{"Purchases"},
	}, h.handle)
}

func parseRecordPurchaseInput(input *RecordPurchaseInput) (service.PurchaseRecord, error) {
	record := service.PurchaseRecord{
		LoanID: input.Body.LoanID,
	}

	if input.Body.ID != "" {
		id, err := uuid.FromString(input.Body.ID)
		if err != nil {
			return service.PurchaseRecord{}, huma.NewError(http.StatusBadRequest, "invalid id", err)
		}
		record.ID = id
	}

	total, err := decimal.NewFromString(input.Body.Total)
	if err != nil {
		return service.PurchaseRecord{}, huma.NewError(http.StatusBadRequest, "invalid total", err)
	}
	record.Total = total

	if input.Body.PurchasedAt != "" {
		purchasedAt, err := time.Parse(time.RFC3339, input.Body.PurchasedAt)
		if err != nil {
			return service.PurchaseRecord{}, huma.NewError(http.StatusBadRequest, "invalid purchasedAt", err)
		}
		record.PurchasedAt = purchasedAt
	}

	record.Items = make([]service.Item, len(input.Body.Items))
	for i, item := range input.Body.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return service.PurchaseRecord{}, huma.NewError(http.StatusBadRequest, "invalid item price", err)
		}
		record.Items[i] = service.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    price,
		}
	}

	return record, nil
}

func (h *RecordPurchaseHandler) handle(ctx context.Context, input *RecordPurchaseInput) (*RecordPurchaseOutput, error) {
	logData := logging.GetLogData(ctx)

	record, err := parseRecordPurchaseInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("recordPurchaseMs")
	}
	id, err := h.HistoryService.RecordPurchase(ctx, record)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record purchase", err)
	}

	if logData != nil {
		logData.AddData("purchaseID", id.String())
	}

	return &RecordPurchaseOutput{
		Status: http.StatusCreated,
		Body:   RecordPurchaseResponse{ID: id.String()},
	}, nil
}
