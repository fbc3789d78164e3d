package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/history-server/api"
	"github.com/carson-networks/history-server/internal/config"
	"github.com/carson-networks/history-server/internal/i18n"
	"github.com/carson-networks/history-server/internal/logging"
	"github.com/carson-networks/history-server/internal/operator"
	"github.com/carson-networks/history-server/internal/service"
	"github.com/carson-networks/history-server/internal/storage"
)

func main() {
	envConfig, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(envConfig.Log.Level)
	logger.Info("history-server starting")

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.Receipt.Workers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(
		dbStorage,
		delegator,
		envConfig.Receipt.SettleDuration(),
		envConfig.Location(),
	)

	translator := i18n.New(envConfig.History.DefaultLocale)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:     logger,
			Port:       envConfig.Server.Port,
			Service:    svc,
			Translator: translator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
