package history

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/history-server/internal/i18n"
	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/service"
)

// ListHistoryInput is the Huma input for listing the purchase history.
type ListHistoryInput struct {
	AcceptLanguage string `header:"Accept-Language" doc:"Locale for rendered labels"`
}

// ListHistoryResponseBody is the response body for listing the history.
type ListHistoryResponseBody struct {
	Days []Day `json:"days" doc:"Date sections, newest day first"`
}

// ListHistoryOutput is the Huma output for listing the history.
type ListHistoryOutput struct {
	Body ListHistoryResponseBody
}

// historyLister is the interface for reading the grouped history.
type historyLister interface {
	ListHistory(ctx context.Context) ([]service.DayGroup, error)
}

// ListHistoryHandler handles GET /v1/history.
type ListHistoryHandler struct {
	HistoryService historyLister
	Translator     *i18n.Translator
}

// NewListHistoryHandler creates a new ListHistoryHandler.
func NewListHistoryHandler(svc historyLister, translator *i18n.Translator) *ListHistoryHandler {
	return &ListHistoryHandler{HistoryService: svc, Translator: translator}
}

// Register registers the list history endpoint with the Huma API.
func (h *ListHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-history",
		Method:      http.MethodGet,
		Path:        "/v1/history",
		Summary:     "List purchase history",
		Description: "Returns all purchases grouped by calendar day, newest day first, with display labels rendered for the request locale.",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *ListHistoryHandler) handle(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	logData := logging.GetLogData(ctx)
	tag := h.Translator.Locale(input.AcceptLanguage)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listHistoryMs")
	}
	groups, err := h.HistoryService.ListHistory(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list history", err)
	}

	if logData != nil {
		logData.AddData("dayCount", len(groups))
	}

	now := time.Now()
	resp := ListHistoryResponseBody{
		Days: make([]Day, len(groups)),
	}
	for i, group := range groups {
		resp.Days[i] = renderDay(h.Translator, tag, group, now)
	}

	return &ListHistoryOutput{Body: resp}, nil
}
