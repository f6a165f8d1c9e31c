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

package apitypes

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Token describes one side of an exchange. The native coin of a chain has an empty address.
type Token struct {
	Address  string `json:"address"`
	ChainID  int64  `json:"chainId"`
	Decimals int32  `json:"decimals"`
	Image    string `json:"image,omitempty"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

// Key identifies the token across chains, case insensitive on the address
func (t *Token) Key() string {
	return fmt.Sprintf("%d/%s", t.ChainID, strings.ToLower(t.Address))
}

// ExchangeSide is one of the two sides of an exchange
type ExchangeSide string

const (
	ExchangeSideFrom ExchangeSide = "from"
	ExchangeSideTo   ExchangeSide = "to"
)

func (s ExchangeSide) Opposite() ExchangeSide {
	if s == ExchangeSideFrom {
		return ExchangeSideTo
	}
	return ExchangeSideFrom
}

// QuoteRequest asks for the amount received for a given amount of the source token
type QuoteRequest struct {
	Amount          string       `json:"amount"`
	AmountReference ExchangeSide `json:"amountReference,omitempty"`
	From            *Token       `json:"from"`
	To              *Token       `json:"to"`
	MaxSlippage     string       `json:"maxSlippage,omitempty"`
	UseAggregator   bool         `json:"useAggregator"`
}

// Quote is a computed exchange-rate result. Amounts are integer strings in token base units.
type Quote struct {
	AmountReference ExchangeSide `json:"amountReference"`
	From            *Token       `json:"from"`
	FromAmount      string       `json:"fromAmount"`
	FromAmountUSD   string       `json:"fromAmountUSD"`
	HighPriceImpact bool         `json:"highPriceImpact"`
	PriceImpact     string       `json:"priceImpact"`
	Slippage        string       `json:"slippage"`
	To              *Token       `json:"to"`
	ToAmount        string       `json:"toAmount"`
	ToAmountUSD     string       `json:"toAmountUSD"`
	Warning         *SwapWarning `json:"warning,omitempty"`
}

type SwapWarning struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// SwapError is the structured error result of the quote and build endpoints.
// It is a result value, not a Go error.
type SwapError struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BuildSwapRequest asks for the transactions needed to perform a swap
type BuildSwapRequest struct {
	QuoteRequest
	FromAddress common.Address `json:"fromAddress"`
}

// SwapTransactionCall is a transaction returned by the build endpoint, ready for submission
type SwapTransactionCall struct {
	ChainID int64          `json:"chainId"`
	Data    hexutil.Bytes  `json:"data"`
	Gas     *hexutil.Big   `json:"gas,omitempty"`
	To      common.Address `json:"to"`
	Value   *hexutil.Big   `json:"value,omitempty"`
}

func (stc *SwapTransactionCall) Call() *Call {
	to := stc.To
	return &Call{
		To:    &to,
		Data:  stc.Data,
		Value: stc.Value,
	}
}

type SwapFee struct {
	BaseAsset  *Token `json:"baseAsset"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// SwapTransaction is the built swap, with an optional approval that must be mined first
type SwapTransaction struct {
	ApproveTransaction *SwapTransactionCall `json:"approveTransaction,omitempty"`
	Fee                *SwapFee             `json:"fee,omitempty"`
	Quote              *Quote               `json:"quote"`
	Transaction        *SwapTransactionCall `json:"transaction"`
	Warning            *SwapWarning         `json:"warning,omitempty"`
}
