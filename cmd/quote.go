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

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swapapi"
	"github.com/spf13/cobra"
)

type quoteFlags struct {
	url           string
	chainID       int64
	fromAddress   string
	fromDecimals  int32
	fromSymbol    string
	toAddress     string
	toDecimals    int32
	toSymbol      string
	maxSlippage   string
	useAggregator bool
}

// quoteResult is the quote, with the integer amounts rendered in decimal units of each token
type quoteResult struct {
	*apitypes.Quote
	FromAmountFormatted string `json:"fromAmountFormatted"`
	ToAmountFormatted   string `json:"toAmountFormatted"`
}

func quoteCommand() *cobra.Command {
	var qf quoteFlags
	quoteCmd := &cobra.Command{
		Use:   "quote <amount>",
		Short: "Fetch a single quote from the configured quote API",
		Long: `Fetch a quote for an amount of the source token, entered in decimal units.

Example:
  fftxo quote 1.5 -f fftxo.yaml --chain-id 8453 --from-decimals 18 --from-symbol ETH \
    --to-address 0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913 --to-decimals 6 --to-symbol USDC`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, cancelCtx, err := initConfig()
			if err != nil {
				return err
			}
			defer cancelCtx()
			result, err := runQuote(ctx, &qf, args[0])
			if err != nil {
				return err
			}
			printJSON(result)
			return nil
		},
	}
	quoteCmd.Flags().StringVarP(&qf.url, "url", "", "", "Override the URL of the quote API")
	quoteCmd.Flags().Int64VarP(&qf.chainID, "chain-id", "", 8453, "The chain of both tokens")
	quoteCmd.Flags().StringVarP(&qf.fromAddress, "from-address", "", "", "The source token address, empty for the native coin")
	quoteCmd.Flags().Int32VarP(&qf.fromDecimals, "from-decimals", "", 18, "The source token decimals")
	quoteCmd.Flags().StringVarP(&qf.fromSymbol, "from-symbol", "", "", "The source token symbol")
	quoteCmd.Flags().StringVarP(&qf.toAddress, "to-address", "", "", "The destination token address, empty for the native coin")
	quoteCmd.Flags().Int32VarP(&qf.toDecimals, "to-decimals", "", 18, "The destination token decimals")
	quoteCmd.Flags().StringVarP(&qf.toSymbol, "to-symbol", "", "", "The destination token symbol")
	quoteCmd.Flags().StringVarP(&qf.maxSlippage, "max-slippage", "", "", "The max slippage percentage, defaulting to swap.maxSlippage")
	quoteCmd.Flags().BoolVarP(&qf.useAggregator, "use-aggregator", "", false, "Quote through the aggregator")
	return quoteCmd
}

func runQuote(ctx context.Context, qf *quoteFlags, amount string) (*quoteResult, error) {
	if qf.url != "" {
		tmconfig.QuoteAPIConfig.Set(ffresty.HTTPConfigURL, qf.url)
	}
	api, err := swapapi.New(ctx, tmconfig.QuoteAPIConfig)
	if err != nil {
		return nil, err
	}
	maxSlippage := qf.maxSlippage
	if maxSlippage == "" {
		maxSlippage = config.GetString(tmconfig.SwapMaxSlippage)
	}
	quote, swapErr, err := api.GetQuote(ctx, &apitypes.QuoteRequest{
		Amount:          amount,
		AmountReference: apitypes.ExchangeSideFrom,
		From:            &apitypes.Token{Address: qf.fromAddress, ChainID: qf.chainID, Decimals: qf.fromDecimals, Symbol: qf.fromSymbol},
		To:              &apitypes.Token{Address: qf.toAddress, ChainID: qf.chainID, Decimals: qf.toDecimals, Symbol: qf.toSymbol},
		MaxSlippage:     maxSlippage,
		UseAggregator:   qf.useAggregator || config.GetBool(tmconfig.SwapUseAggregator),
	})
	if err != nil {
		return nil, err
	}
	if swapErr != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIFailed, "quote", fmt.Sprintf("%s: %s", swapErr.Code, swapErr.Error))
	}
	result := &quoteResult{Quote: quote}
	if result.FromAmountFormatted, err = swap.FormatTokenAmount(ctx, quote.FromAmount, qf.fromDecimals); err != nil {
		return nil, err
	}
	if result.ToAmountFormatted, err = swap.FormatTokenAmount(ctx, quote.ToAmount, qf.toDecimals); err != nil {
		return nil, err
	}
	return result, nil
}
