package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// HumaMiddleware attaches a fresh LogData to every request context and emits
// the collected fields once the operation completes.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		logData.Log().Info("Handler.Complete")
	}
}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
