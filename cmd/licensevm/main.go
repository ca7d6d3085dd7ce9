// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "licensevm" runs the license ledger as a standalone JSON-RPC server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/licensevm/cmd/licensevm/version"
	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/service"
	"github.com/ava-labs/licensevm/types"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
}

var rootCmd = &cobra.Command{
	Use:        "licensevm",
	Short:      "License ledger server",
	SuggestFor: []string{"licensevm"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.AddCommand(
		version.NewCommand(),
	)

	registerFlags(rootCmd.Flags())
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "optional config file read before flags and env")
	flags.Uint("http-port", 9876, "port the JSON-RPC handler listens on")
	flags.String("db-dir", ".licensevm", "directory for the persistent ledger database")
	flags.Bool("ephemeral", false, "keep the ledger in memory, for development")
	flags.String("admin", "", "administrator address, required on first start")
	flags.String("metadata-base-url", "", "override the metadata URL prefix")
	flags.Bool("operator-transfer", true, "allow per-owner operators to transfer")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "licensevm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	viper.SetEnvPrefix("licensevm")
	viper.AutomaticEnv()
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()

	var db database.Database
	if viper.GetBool("ephemeral") {
		db = memdb.New()
	} else {
		ldb, err := leveldb.New(
			filepath.Join(viper.GetString("db-dir"), "db"),
			nil,
			logging.NoLog{},
			"licensevm_db",
			registry,
		)
		if err != nil {
			return err
		}
		db = ldb
	}
	defer func() { _ = db.Close() }()

	genesis := contract.DefaultGenesis()
	if base := viper.GetString("metadata-base-url"); base != "" {
		genesis.MetadataBaseURL = base
	}
	genesis.OperatorTransfer = viper.GetBool("operator-transfer")

	c := contract.New(db, genesis, event.Sink{})
	if _, err := c.Administrator(); err != nil {
		if !errors.Is(err, contract.ErrNotInitialized) {
			return err
		}
		adminRaw := viper.GetString("admin")
		if adminRaw == "" {
			return errors.New("--admin is required on first start")
		}
		admin, err := types.ParseAddress(adminRaw)
		if err != nil {
			return err
		}
		if err := c.Init(admin); err != nil {
			return err
		}
		log.Info("ledger initialized", "administrator", admin)
	}

	handler, err := service.NewHandler(c)
	if err != nil {
		return err
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "licensevm",
		Name:      "http_requests_total",
		Help:      "JSON-RPC requests served, by status code.",
	}, []string{"code"})
	registry.MustRegister(requests)

	mux := http.NewServeMux()
	mux.Handle(service.PublicEndpoint, promhttp.InstrumentHandlerCounter(requests, handler))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetUint("http-port")),
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		log.Info("serving", "addr", srv.Addr, "endpoint", service.PublicEndpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigc:
			log.Info("shutting down", "signal", sig)
		case <-gctx.Done():
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return g.Wait()
}
