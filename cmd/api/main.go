package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-comparison-api/infrastructure/datasource"
	"github.com/vfg2006/sales-comparison-api/infrastructure/export"
	"github.com/vfg2006/sales-comparison-api/internal/api"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/scheduler"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/session"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A conexão só é aberta quando o data warehouse é a fonte configurada
	var queryer postgres.Queryer
	if cfg.DataSource.Kind == config.DataSourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		queryer = pgConn
	}

	loader, err := datasource.NewLoader(cfg, queryer)
	if err != nil && !errors.Is(err, datasource.ErrNoSource) {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de dados")
	}
	if loader == nil {
		logrus.Info("Nenhuma fonte remota configurada, os dados chegarão apenas por upload")
	}

	comparer := comparing.NewService(cfg)

	cache := datasource.NewDatasetCache(loader, comparer)
	if loader != nil {
		if err := cache.Refresh(ctx); err != nil {
			logrus.WithError(err).Warn("Falha na carga inicial do conjunto de dados, as sessões começarão vazias")
		}
	}

	manager := session.NewService(comparer, cache, export.NewExporter())

	datasetRefreshService := scheduler.NewDatasetRefreshService(cache, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do conjunto de dados")
	}

	sessionSweepService := scheduler.NewSessionSweepService(manager, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	}

	server, err := api.New(cfg, manager, cache, datasetRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o data warehouse
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
