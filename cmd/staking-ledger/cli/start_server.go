package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stakeforge-io/staking-ledger/internal/api"
	"github.com/stakeforge-io/staking-ledger/internal/config"
	"github.com/stakeforge-io/staking-ledger/internal/db"
	dbmodel "github.com/stakeforge-io/staking-ledger/internal/db/model"
	"github.com/stakeforge-io/staking-ledger/internal/observability/metrics"
	"github.com/stakeforge-io/staking-ledger/internal/observability/tracing"
	"github.com/stakeforge-io/staking-ledger/internal/queue"
	"github.com/stakeforge-io/staking-ledger/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize event publisher")
	}
	defer queueManager.Shutdown()

	service := services.NewService(cfg, dbClient, queueManager)
	service.RunPollers(ctx)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	server := api.New(&cfg.Server, service)
	return server.Start()
}
