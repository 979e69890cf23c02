package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/concursos/internal/api"
	"github.com/ougirez/concursos/internal/pkg/config"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
	"github.com/ougirez/concursos/internal/pkg/store"
	"github.com/ougirez/concursos/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetBool(constants.ViperLogDevelopmentKey)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := xpgx.Connect(ctx, xpgx.Options{
		URL:      viper.GetString(constants.ViperDatabaseURLKey),
		MaxConns: viper.GetInt32(constants.ViperDatabaseMaxConnsKey),
		Retries:  viper.GetUint64(constants.ViperConnectRetriesKey),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool), api.Options{
		CORSOrigins: viper.GetStringSlice(constants.ViperCORSOriginsKey),
		RowLimit:    viper.GetUint64(constants.ViperExplorerRowLimitKey),
		PageSize:    viper.GetInt(constants.ViperExplorerPageSizeKey),
		TopN:        viper.GetUint64(constants.ViperTopOrgaosKey),
		AnoAtual:    viper.GetInt(constants.ViperCurrentYearKey),
		Debug:       viper.GetBool(constants.ViperLogDevelopmentKey),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperHTTPAddrKey)
	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "listening on %s", addr)
		errCh <- svc.Serve(addr)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Fatal(ctx, err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(constants.ViperShutdownTimeoutKey))
	defer cancel()

	if err = svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %v", err)
	}
	logger.Info(shutdownCtx, "server stopped")
}
