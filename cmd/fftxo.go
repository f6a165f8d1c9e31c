// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/api"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence/leveldb"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence/postgres"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain/walletrpc"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swapapi"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/transaction"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "fftxo",
	Short: "Hyperledger FireFly Transaction Orchestrator",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(configCommand())
	rootCmd.AddCommand(quoteCommand())
	rootCmd.AddCommand(ClientCommand())
	rootCmd.AddCommand(MigrateCommand(initConfig))
}

func Execute() error {
	return rootCmd.Execute()
}

// initConfig resets the configuration to its defaults, then reads the config file. The
// context returned has logging set up from the config, even when reading it failed.
func initConfig() (context.Context, context.CancelFunc, error) {
	tmconfig.Reset()
	err := config.ReadConfig("fftxo", cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "fftxo"))

	config.SetupLogging(ctx)

	if err != nil {
		cancelCtx()
		return nil, nil, i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return ctx, cancelCtx, nil
}

type orchestrators struct {
	wallet       *walletrpc.Client
	persistence  persistence.Persistence
	transactions transaction.Orchestrator
	swap         swap.Orchestrator
	server       api.Server
}

// close waits for in-flight work, which exits as the context passed to newOrchestrators is cancelled
func (o *orchestrators) close(ctx context.Context) {
	if o.transactions != nil {
		o.transactions.Close()
	}
	if o.swap != nil {
		o.swap.Close()
	}
	if o.persistence != nil {
		o.persistence.Close(ctx)
	}
	if o.wallet != nil {
		o.wallet.Close()
	}
}

func newOrchestrators(ctx context.Context) (*orchestrators, error) {
	built := &orchestrators{}
	err := built.init(ctx)
	if err != nil {
		built.close(ctx)
		return nil, err
	}
	return built, nil
}

func (o *orchestrators) init(ctx context.Context) (err error) {
	if o.wallet, err = walletrpc.New(ctx, tmconfig.WalletConfig); err != nil {
		return err
	}
	quoteAPI, err := swapapi.New(ctx, tmconfig.QuoteAPIConfig)
	if err != nil {
		return err
	}
	if o.persistence, err = newPersistence(ctx); err != nil {
		return err
	}

	mm := metrics.NewMetricsManager(ctx)
	store := lifecycle.NewStore(ctx, swap.InitialStatus())
	o.transactions = transaction.NewOrchestrator(ctx, o.wallet, store, o.persistence, mm)
	if o.swap, err = swap.NewOrchestrator(ctx, quoteAPI, o.wallet, store, mm); err != nil {
		return err
	}
	o.server, err = api.NewServer(ctx, store, o.transactions, o.swap, mm)
	return err
}

// newPersistence returns nil when no LevelDB path is configured, in which case only
// recent submissions are kept in memory
func newPersistence(ctx context.Context) (persistence.Persistence, error) {
	persistenceType := config.GetString(tmconfig.PersistenceType)
	switch persistenceType {
	case "leveldb":
		if config.GetString(tmconfig.PersistenceLevelDBPath) == "" {
			return nil, nil
		}
		return leveldb.NewLevelDBPersistence(ctx)
	case "postgres":
		return postgres.NewPostgresPersistence(ctx, tmconfig.PostgresSection)
	default:
		return nil, i18n.NewError(ctx, tmmsgs.MsgUnknownPersistenceType, persistenceType)
	}
}

func run() error {
	ctx, cancelCtx, err := initConfig()
	if err != nil {
		return err
	}
	defer cancelCtx()

	// Setup signal handling to cancel the context, which shuts down the API Server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	o, err := newOrchestrators(ctx)
	if err != nil {
		return err
	}
	if err = o.server.Start(); err != nil {
		return err
	}
	sig := <-sigs
	log.L(ctx).Infof("Shutting down due to %s", sig.String())
	cancelCtx()
	err = o.server.WaitStop()
	o.close(ctx)
	return err
}
