package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/poolswap-network/poolswap-core/internal/config"
	"github.com/poolswap-network/poolswap-core/internal/core/application"
	"github.com/poolswap-network/poolswap-core/internal/core/domain"
	dbbadger "github.com/poolswap-network/poolswap-core/internal/infrastructure/storage/db/badger"
	"github.com/poolswap-network/poolswap-core/internal/infrastructure/storage/db/inmemory"
	"github.com/poolswap-network/poolswap-core/pkg/stats"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "poolswap CLI"
	app.Usage = "Command line interface for managing and pricing liquidity pools"
	app.Commands = append(
		app.Commands,
		&createpool,
		&initpool,
		&listpools,
		&previewswap,
		&spotprice,
		&deposit,
		&withdraw,
	)

	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.GetBool(config.EnableProfilerKey) {
		interval := time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
		stats.EnableMemoryStatistics(ctx, interval, "stats")
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// getService builds the pool service on the configured storage backend. The
// returned cleanup must be deferred by the caller.
func getService() (application.PoolService, func(), error) {
	var repo domain.PoolRepository
	cleanup := func() {}

	switch config.GetString(config.DbTypeKey) {
	case "inmemory":
		repo = inmemory.NewPoolRepositoryImpl()
	default:
		datadir, err := config.GetDatadir()
		if err != nil {
			return nil, nil, err
		}
		db, err := dbbadger.NewDbManager(
			filepath.Join(datadir, config.DbLocation), nil,
		)
		if err != nil {
			return nil, nil, err
		}
		repo = dbbadger.NewPoolRepositoryImpl(db)
		cleanup = func() { db.Close() }
	}

	return application.NewPoolService(repo), cleanup, nil
}

func printRespJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response")
		return
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[poolswap] %v\n", err)
	os.Exit(1)
}
