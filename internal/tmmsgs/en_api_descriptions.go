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

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointGetStatus          = ffm("api.endpoints.get.status", "Get the current lifecycle status")
	APIEndpointPostStatus         = ffm("api.endpoints.post.status", "Merge an update into the lifecycle status")
	APIEndpointGetStatusHistory   = ffm("api.endpoints.get.status.history", "Get the recent lifecycle status transitions, with a summary of each status")
	APIEndpointPostTransactions   = ffm("api.endpoints.post.transactions", "Submit one or more contract calls. The outcome is reported through the lifecycle status")
	APIEndpointGetSubmission      = ffm("api.endpoints.get.submission", "Get the record of a submission")
	APIEndpointPostSwapAmount     = ffm("api.endpoints.post.swap.amount", "Change the amount of one side of the exchange, and quote the other side")
	APIEndpointPostSwapToggle     = ffm("api.endpoints.post.swap.toggle", "Swap the tokens and amounts of the two sides of the exchange")
	APIEndpointPostSwapSubmit     = ffm("api.endpoints.post.swap.submit", "Submit the exchange for the current amounts. The outcome is reported through the lifecycle status")
	APIEndpointGetSwapSides       = ffm("api.endpoints.get.swap.sides", "Get both sides of the exchange")
	APIEndpointGetSubmissions     = ffm("api.endpoints.get.submissions", "List submissions, newest first")
	APIParamSubmissionID          = ffm("api.params.submissionId", "Submission ID")
	APIParamLimit                 = ffm("api.params.limit", "Maximum number of entries to return")
	APIParamAfter                 = ffm("api.params.after", "Return entries after this ID - for pagination (non-inclusive)")
	APISwapAmountSide             = ffm("api.swap.amount.side", "The side of the exchange that was edited: 'from' or 'to'")
	APISwapAmountAmount           = ffm("api.swap.amount.amount", "The amount entered, as a decimal amount of the token")
	APISwapAmountSourceToken      = ffm("api.swap.amount.sourceToken", "The token of the edited side, when it changes")
	APISwapAmountDestinationToken = ffm("api.swap.amount.destinationToken", "The token of the other side, when it changes")
)
