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

// SubmitCallsRequest is the input to submit a set of contract calls
type SubmitCallsRequest struct {
	Calls        []*Call       `ffstruct:"submitCalls" json:"calls"`
	Capabilities *Capabilities `ffstruct:"submitCalls" json:"capabilities,omitempty"`
}

// SwapAmountRequest is the input when the amount or tokens of one side of an exchange change.
// Tokens that are not supplied keep their current value.
type SwapAmountRequest struct {
	Side             ExchangeSide `ffstruct:"swapAmount" json:"side"`
	Amount           string       `ffstruct:"swapAmount" json:"amount"`
	SourceToken      *Token       `ffstruct:"swapAmount" json:"sourceToken,omitempty"`
	DestinationToken *Token       `ffstruct:"swapAmount" json:"destinationToken,omitempty"`
}
