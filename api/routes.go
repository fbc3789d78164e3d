package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/history-server/internal/handlers/v1/history"
	"github.com/carson-networks/history-server/internal/handlers/v1/purchase"
	"github.com/carson-networks/history-server/internal/handlers/v1/status"
	"github.com/carson-networks/history-server/internal/i18n"
	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/service"
)

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Service    *service.Service
	Translator *i18n.Translator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("history-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	history.NewListHistoryHandler(r.Service.History, r.Translator).Register(humaAPI)
	purchase.NewGetPurchaseHandler(r.Service.History).Register(humaAPI)
	purchase.NewConfirmReceiptHandler(r.Service.History).Register(humaAPI)
	purchase.NewRecordPurchaseHandler(r.Service.History).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
