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

package tmmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigAPIDefaultRequestTimeout = ffc("config.api.defaultRequestTimeout", "Default server-side request timeout for API calls", i18n.TimeDurationType)
	ConfigAPIMaxRequestTimeout     = ffc("config.api.maxRequestTimeout", "Maximum server-side request timeout a caller can request with a Request-Timeout header", i18n.TimeDurationType)

	ConfigTransactionsChainID           = ffc("config.transactions.chainId", "The chain the wallet must be switched to before submitting contract calls. Zero disables chain switching", i18n.IntType)
	ConfigTransactionsBatchPollInterval = ffc("config.transactions.batchPollInterval", "Interval at which the status of a batched submission is polled from the wallet", i18n.TimeDurationType)
	ConfigTransactionsReceiptWorkers    = ffc("config.transactions.receiptWorkers", "Number of workers to use to wait in parallel for receipts of individually submitted calls", i18n.IntType)
	ConfigTransactionsRetryInitDelay    = ffc("config.transactions.retry.initialDelay", "Initial retry delay for transient failures polling batch status and receipts", i18n.TimeDurationType)
	ConfigTransactionsRetryMaxDelay     = ffc("config.transactions.retry.maxDelay", "Maximum delay between retries for transient failures polling batch status and receipts", i18n.TimeDurationType)
	ConfigTransactionsRetryFactor       = ffc("config.transactions.retry.factor", "Factor to increase the delay by, between each retry", i18n.FloatType)

	ConfigSwapMaxSlippage                = ffc("config.swap.maxSlippage", "The maximum slippage percentage passed to the quote API", i18n.FloatType)
	ConfigSwapUseAggregator              = ffc("config.swap.useAggregator", "Whether the quote API should route through its aggregator", i18n.BooleanType)
	ConfigSwapValuationDestinationDelay  = ffc("config.swap.valuation.destinationDelay", "Delay after a successful quote before fetching the USD valuation of the destination amount", i18n.TimeDurationType)
	ConfigSwapValuationSourceDelay       = ffc("config.swap.valuation.sourceDelay", "Delay after a successful quote before fetching the USD valuation of the source amount", i18n.TimeDurationType)
	ConfigSwapValuationCacheSize         = ffc("config.swap.valuation.cacheSize", "The maximum number of USD valuations to keep in the cache", i18n.IntType)
	ConfigSwapValuationCacheTTL          = ffc("config.swap.valuation.cacheTTL", "How long a cached USD valuation remains valid", i18n.TimeDurationType)
	ConfigSwapValuationReferenceAddress  = ffc("config.swap.valuation.referenceToken.address", "Contract address of the USD reference token", i18n.StringType)
	ConfigSwapValuationReferenceChainID  = ffc("config.swap.valuation.referenceToken.chainId", "Chain ID of the USD reference token", i18n.IntType)
	ConfigSwapValuationReferenceDecimals = ffc("config.swap.valuation.referenceToken.decimals", "Decimals of the USD reference token", i18n.IntType)
	ConfigSwapValuationReferenceSymbol   = ffc("config.swap.valuation.referenceToken.symbol", "Symbol of the USD reference token", i18n.StringType)

	ConfigQuoteAPIRateLimit = ffc("config.quoteapi.rateLimit", "Maximum sustained requests per second sent to the quote API", i18n.FloatType)
	ConfigQuoteAPIRateBurst = ffc("config.quoteapi.rateBurst", "Maximum burst of requests sent to the quote API", i18n.IntType)

	ConfigWalletURL = ffc("config.wallet.url", "JSON/RPC URL of the wallet that signs and submits contract calls", i18n.StringType)

	ConfigLifecycleHistoryMaxCount = ffc("config.lifecycle.history.maxCount", "The number of historical lifecycle status transitions to retain", i18n.IntType)

	ConfigMetricsEnabled = ffc("config.metrics.enabled", "Enables the metrics server", i18n.BooleanType)

	ConfigPersistenceType              = ffc("config.persistence.type", "The type of persistence to use for submission records: leveldb or postgres", i18n.StringType)
	ConfigPersistenceLevelDBPath       = ffc("config.persistence.leveldb.path", "The path for the LevelDB persistence directory. Empty keeps only recent submissions in memory", i18n.StringType)
	ConfigPersistenceLevelDBMaxHandles = ffc("config.persistence.leveldb.maxHandles", "The maximum number of cached file handles LevelDB should keep open", i18n.IntType)
	ConfigPersistenceLevelDBSyncWrites = ffc("config.persistence.leveldb.syncWrites", "Whether to synchronously perform writes to the storage", i18n.BooleanType)
)
