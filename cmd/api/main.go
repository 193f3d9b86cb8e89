package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ads-analyzer-api/internal/api"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/analyzing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	completionsClient := openaiclient.NewClient(cfg)

	analyzer := analyzing.NewService(cfg, metaClient, completionsClient)

	server, err := api.New(cfg, analyzer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
