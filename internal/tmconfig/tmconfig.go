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

package tmconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence/postgres"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// APIDefaultRequestTimeout is the timeout applied to API requests that do not set their own
	APIDefaultRequestTimeout = ffc("api.defaultRequestTimeout")
	// APIMaxRequestTimeout is the maximum timeout an API request can ask for
	APIMaxRequestTimeout = ffc("api.maxRequestTimeout")
	// TransactionsChainID is the chain the wallet must be on before contract calls are submitted (0 = any)
	TransactionsChainID = ffc("transactions.chainId")
	// TransactionsBatchPollInterval is how often the settlement of a batch is polled
	TransactionsBatchPollInterval = ffc("transactions.batchPollInterval")
	// TransactionsReceiptWorkers bounds the parallel receipt waits of a sequential submission
	TransactionsReceiptWorkers = ffc("transactions.receiptWorkers")
	// TransactionsRetryInitDelay is the initial delay retrying transient wallet failures
	TransactionsRetryInitDelay = ffc("transactions.retry.initialDelay")
	// TransactionsRetryMaxDelay is the maximum delay retrying transient wallet failures
	TransactionsRetryMaxDelay = ffc("transactions.retry.maxDelay")
	// TransactionsRetryFactor is the backoff factor retrying transient wallet failures
	TransactionsRetryFactor = ffc("transactions.retry.factor")

	// SwapMaxSlippage is the initial max slippage of a swap lifecycle
	SwapMaxSlippage = ffc("swap.maxSlippage")
	// SwapUseAggregator is passed through to the quote API on every request
	SwapUseAggregator = ffc("swap.useAggregator")
	// SwapValuationDestinationDelay delays the destination side USD valuation after a quote
	SwapValuationDestinationDelay = ffc("swap.valuation.destinationDelay")
	// SwapValuationSourceDelay delays the source side USD valuation after a quote
	SwapValuationSourceDelay = ffc("swap.valuation.sourceDelay")
	// SwapValuationCacheSize is the size of the USD valuation cache
	SwapValuationCacheSize = ffc("swap.valuation.cacheSize")
	// SwapValuationCacheTTL is the lifetime of a cached USD valuation
	SwapValuationCacheTTL = ffc("swap.valuation.cacheTTL")
	// SwapValuationReferenceAddress is the USD reference token address
	SwapValuationReferenceAddress = ffc("swap.valuation.referenceToken.address")
	// SwapValuationReferenceChainID is the USD reference token chain
	SwapValuationReferenceChainID = ffc("swap.valuation.referenceToken.chainId")
	// SwapValuationReferenceDecimals is the USD reference token decimals
	SwapValuationReferenceDecimals = ffc("swap.valuation.referenceToken.decimals")
	// SwapValuationReferenceSymbol is the USD reference token symbol
	SwapValuationReferenceSymbol = ffc("swap.valuation.referenceToken.symbol")

	// LifecycleHistoryMaxCount caps the number of status transitions retained
	LifecycleHistoryMaxCount = ffc("lifecycle.history.maxCount")

	// MetricsEnabled turns on the prometheus registry
	MetricsEnabled = ffc("metrics.enabled")

	// PersistenceType selects where submission records are kept: leveldb or postgres
	PersistenceType = ffc("persistence.type")
	// PersistenceLevelDBPath is the directory for submission records
	PersistenceLevelDBPath = ffc("persistence.leveldb.path")
	// PersistenceLevelDBMaxHandles is the maximum number of cached file handles LevelDB should keep open
	PersistenceLevelDBMaxHandles = ffc("persistence.leveldb.maxHandles")
	// PersistenceLevelDBSyncWrites is whether to synchronously perform writes to the storage
	PersistenceLevelDBSyncWrites = ffc("persistence.leveldb.syncWrites")
)

const (
	QuoteAPIRateLimit = "rateLimit"
	QuoteAPIRateBurst = "rateBurst"

	WalletURL = "url"
)

var APIConfig config.Section

var CorsConfig config.Section

var QuoteAPIConfig config.Section

var WalletConfig config.Section

var PostgresSection config.Section

func setDefaults() {
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(TransactionsChainID), 0)
	viper.SetDefault(string(TransactionsBatchPollInterval), "1s")
	viper.SetDefault(string(TransactionsReceiptWorkers), 10)
	viper.SetDefault(string(TransactionsRetryInitDelay), "250ms")
	viper.SetDefault(string(TransactionsRetryMaxDelay), "30s")
	viper.SetDefault(string(TransactionsRetryFactor), 2.0)
	viper.SetDefault(string(SwapMaxSlippage), 3)
	viper.SetDefault(string(SwapUseAggregator), false)
	viper.SetDefault(string(SwapValuationDestinationDelay), "1500ms")
	viper.SetDefault(string(SwapValuationSourceDelay), "3s")
	viper.SetDefault(string(SwapValuationCacheSize), 100)
	viper.SetDefault(string(SwapValuationCacheTTL), "1m")
	viper.SetDefault(string(SwapValuationReferenceAddress), "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	viper.SetDefault(string(SwapValuationReferenceChainID), 8453)
	viper.SetDefault(string(SwapValuationReferenceDecimals), 6)
	viper.SetDefault(string(SwapValuationReferenceSymbol), "USDC")
	viper.SetDefault(string(LifecycleHistoryMaxCount), 50)
	viper.SetDefault(string(MetricsEnabled), false)
	viper.SetDefault(string(PersistenceType), "leveldb")
	viper.SetDefault(string(PersistenceLevelDBPath), "")
	viper.SetDefault(string(PersistenceLevelDBMaxHandles), 100)
	viper.SetDefault(string(PersistenceLevelDBSyncWrites), false)
}

func Reset() {
	config.RootConfigReset(setDefaults)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5108)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	QuoteAPIConfig = config.RootSection("quoteapi")
	ffresty.InitConfig(QuoteAPIConfig)
	QuoteAPIConfig.AddKnownKey(QuoteAPIRateLimit, 5.0)
	QuoteAPIConfig.AddKnownKey(QuoteAPIRateBurst, 1)

	WalletConfig = config.RootSection("wallet")
	WalletConfig.AddKnownKey(WalletURL)

	PostgresSection = config.RootSection("persistence.postgres")
	postgres.InitConfig(PostgresSection)
}
