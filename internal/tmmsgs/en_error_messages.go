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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgConfigParamNotSet           = ffe("FF21018", "Configuration parameter '%s' must be set")
	MsgInvalidRequestErr           = ffe("FF21022", "Invalid '%s' request: %s", http.StatusBadRequest)
	MsgPersistenceMarshalFailed    = ffe("FF21053", "JSON serialization failed while writing to persistence")
	MsgPersistenceUnmarshalFailed  = ffe("FF21054", "JSON parsing failed while reading from persistence")
	MsgPersistenceReadFailed       = ffe("FF21055", "Failed to read key '%s' from persistence")
	MsgPersistenceWriteFailed      = ffe("FF21056", "Failed to write key '%s' to persistence")
	MsgPersistenceDeleteFailed     = ffe("FF21057", "Failed to delete key '%s' from persistence")
	MsgPersistenceInitFailed       = ffe("FF21058", "Failed to initialize persistence at path '%s'")
	MsgLevelDBPathMissing          = ffe("FF21050", "Path must be supplied for LevelDB persistence")
	MsgInvalidLimit                = ffe("FF21044", "Invalid limit string '%s': %s", http.StatusBadRequest)
	MsgShuttingDown                = ffe("FF21083", "Orchestrator shutdown initiated", 500)
	MsgNoCallsSupplied             = ffe("FF21100", "At least one contract call must be supplied", http.StatusBadRequest)
	MsgCallMissingTarget           = ffe("FF21101", "Contract call %d is missing a target address", http.StatusBadRequest)
	MsgWalletRPCFailed             = ffe("FF21102", "Wallet RPC '%s' failed: %s")
	MsgWalletURLMissing            = ffe("FF21103", "A wallet URL must be configured")
	MsgWalletNoAccounts            = ffe("FF21104", "Wallet has no connected accounts")
	MsgSwitchChainFailed           = ffe("FF21105", "Failed to switch wallet to chain %d: %s")
	MsgBatchStatusFailed           = ffe("FF21106", "Batch %s failed with status %s")
	MsgReceiptWaitFailed           = ffe("FF21107", "Failed waiting for receipt of transaction %s: %s")
	MsgQuoteAPIFailed              = ffe("FF21108", "Quote API request '%s' failed: %s")
	MsgQuoteAPIStatus              = ffe("FF21109", "Quote API request '%s' failed with status %d: %s")
	MsgQuoteAPIInvalidContentType  = ffe("FF21110", "Quote API request '%s' returned invalid response content type: %s")
	MsgInvalidAmount               = ffe("FF21111", "Invalid token amount '%s'", http.StatusBadRequest)
	MsgInvalidExchangeSide         = ffe("FF21112", "Invalid exchange side '%s'. Must be 'from' or 'to'", http.StatusBadRequest)
	MsgSwapMissingFields           = ffe("FF21113", "A connected address, both tokens and a 'from' amount are required to submit a swap", http.StatusBadRequest)
	MsgSubmissionNotFound          = ffe("FF21114", "Submission '%s' not found", http.StatusNotFound)
	MsgReceiptReverted             = ffe("FF21115", "Transaction %s reverted")
	MsgStatusSubscriptionOverflow  = ffe("FF21116", "Status subscriber could not keep up, dropped %d events")
	MsgInvalidReferenceToken       = ffe("FF21117", "Invalid valuation reference token configuration: %s")
	MsgAPIServerStartFailed        = ffe("FF21118", "Failed to start API server: %s")
	MsgWebSocketUpgradeFailed      = ffe("FF21119", "WebSocket upgrade failed: %s")
	MsgUnsupportedWalletCapability = ffe("FF21120", "Wallet reported batch %s with unknown status '%s'")
	MsgUnknownStatusName           = ffe("FF21121", "Unknown lifecycle status '%s'", http.StatusBadRequest)
	MsgInvalidStatusData           = ffe("FF21122", "Invalid data for lifecycle status '%s'", http.StatusBadRequest)
	MsgUnknownPersistenceType      = ffe("FF21123", "Unknown persistence type '%s'")
	MsgPersistenceInitFail         = ffe("FF21124", "Failed to initialize '%s' persistence: %s")
)
