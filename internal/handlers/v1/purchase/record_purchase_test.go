package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/history-server/internal/service"
)

// mockPurchaseRecorder is a mock for purchaseRecorder.
type mockPurchaseRecorder struct {
	mock.Mock
}

func (m *mockPurchaseRecorder) RecordPurchase(ctx context.Context, record service.PurchaseRecord) (uuid.UUID, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newRecordTestAPI(t *testing.T, svc purchaseRecorder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRecordPurchaseHandler(svc).Register(api)
	return api
}

// -- parseRecordPurchaseInput unit tests --

func TestParseRecordPurchaseInput_ValidInput(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	purchasedAt := "2024-01-02T09:00:00Z"

	input := &RecordPurchaseInput{
		Body: RecordPurchaseBody{
			ID:          id.String(),
			PurchasedAt: purchasedAt,
			Total:       "50000",
			LoanID:      "LN-42",
			Items: []RecordItemBody{
				{Name: "Rice", Quantity: 2, Price: "25000"},
			},
		},
	}

	record, err := parseRecordPurchaseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.True(t, record.Total.Equal(decimal.RequireFromString("50000")))
	assert.Equal(t, "LN-42", record.LoanID)
	expectedDate, _ := time.Parse(time.RFC3339, purchasedAt)
	assert.True(t, record.PurchasedAt.Equal(expectedDate))
	assert.Len(t, record.Items, 1)
	assert.Equal(t, "Rice", record.Items[0].Name)
	assert.Equal(t, 2, record.Items[0].Quantity)
	assert.True(t, record.Items[0].Price.Equal(decimal.RequireFromString("25000")))
}

func TestParseRecordPurchaseInput_Defaults(t *testing.T) {
	input := &RecordPurchaseInput{
		Body: RecordPurchaseBody{
			Total: "100",
		},
	}

	record, err := parseRecordPurchaseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, record.ID, "service generates the ID")
	assert.True(t, record.PurchasedAt.IsZero(), "storage defaults the purchase time")
	assert.Empty(t, record.Items)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_RecordPurchase_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockPurchaseRecorder)
	mockSvc.On("RecordPurchase", mock.Anything, mock.MatchedBy(func(record service.PurchaseRecord) bool {
		return record.Total.Equal(decimal.RequireFromString("50000")) &&
			len(record.Items) == 1 &&
			record.Items[0].Name == "Rice"
	})).Return(id, nil)

	resp := newRecordTestAPI(t, mockSvc).Post("/v1/purchase", RecordPurchaseBody{
		Total: "50000",
		Items: []RecordItemBody{
			{Name: "Rice", Quantity: 2, Price: "25000"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body RecordPurchaseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RecordPurchase_MissingTotal(t *testing.T) {
	mockSvc := new(mockPurchaseRecorder)

	// Huma schema validation rejects the request before the handler runs.
	resp := newRecordTestAPI(t, mockSvc).Post("/v1/purchase", map[string]interface{}{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "RecordPurchase")
}

func TestHTTP_RecordPurchase_InvalidTotal(t *testing.T) {
	mockSvc := new(mockPurchaseRecorder)

	// Total is a plain string with no Huma format tag, so parseRecordPurchaseInput
	// handles validation and returns 400.
	resp := newRecordTestAPI(t, mockSvc).Post("/v1/purchase", RecordPurchaseBody{
		Total: "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "RecordPurchase")
}

func TestHTTP_RecordPurchase_InvalidItemPrice(t *testing.T) {
	mockSvc := new(mockPurchaseRecorder)

	resp := newRecordTestAPI(t, mockSvc).Post("/v1/purchase", RecordPurchaseBody{
		Total: "100",
		Items: []RecordItemBody{
			{Name: "Rice", Quantity: 1, Price: "not-a-decimal"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "RecordPurchase")
}

func TestHTTP_RecordPurchase_ServiceError(t *testing.T) {
	mockSvc := new(mockPurchaseRecorder)
	mockSvc.On("RecordPurchase", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newRecordTestAPI(t, mockSvc).Post("/v1/purchase", RecordPurchaseBody{
		Total: "100",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
