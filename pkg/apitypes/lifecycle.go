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
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
)

// LifecycleStatusName is the discriminator of the lifecycle status
type LifecycleStatusName string

const (
	// StatusInit is the initial state of an exchange, before any amount has been entered
	StatusInit LifecycleStatusName = "init"
	// StatusAmountChange is entered each time either side of an exchange changes
	StatusAmountChange LifecycleStatusName = "amountChange"
	// StatusTransactionPending indicates a submission has started and is awaiting the wallet
	StatusTransactionPending LifecycleStatusName = "transactionPending"
	// StatusTransactionApproved indicates a token approval required by a swap has been mined
	StatusTransactionApproved LifecycleStatusName = "transactionApproved"
	// StatusTransactionLegacyExecuted indicates calls were submitted one at a time, and lists the hashes in call order
	StatusTransactionLegacyExecuted LifecycleStatusName = "transactionLegacyExecuted"
	// StatusSuccess indicates every submitted call has settled
	StatusSuccess LifecycleStatusName = "success"
	// StatusError indicates the last operation failed
	StatusError LifecycleStatusName = "error"
)

// Data fields only ever set by the error variant. These never survive a transition.
const (
	StatusDataCode    = "code"
	StatusDataError   = "error"
	StatusDataMessage = "message"
)

// StatusData is implemented by the payload of every lifecycle status variant
type StatusData interface {
	StatusName() LifecycleStatusName
}

type InitData struct {
	IsMissingRequiredField bool    `json:"isMissingRequiredField"`
	MaxSlippage            float64 `json:"maxSlippage"`
}

type AmountChangeData struct {
	AmountFrom             string `json:"amountFrom"`
	AmountTo               string `json:"amountTo"`
	TokenFrom              *Token `json:"tokenFrom"`
	TokenTo                *Token `json:"tokenTo"`
	IsMissingRequiredField bool   `json:"isMissingRequiredField"`
}

type TransactionPendingData struct{}

type TransactionApprovedData struct {
	TransactionHash common.Hash `json:"transactionHash"`
	TransactionType string      `json:"transactionType"`
}

type TransactionLegacyExecutedData struct {
	TransactionHashList []common.Hash `json:"transactionHashList"`
}

type SuccessData struct {
	TransactionReceipts []*types.Receipt `json:"transactionReceipts"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (*InitData) StatusName() LifecycleStatusName         { return StatusInit }
func (*AmountChangeData) StatusName() LifecycleStatusName { return StatusAmountChange }
func (*TransactionPendingData) StatusName() LifecycleStatusName {
	return StatusTransactionPending
}
func (*TransactionApprovedData) StatusName() LifecycleStatusName {
	return StatusTransactionApproved
}
func (*TransactionLegacyExecutedData) StatusName() LifecycleStatusName {
	return StatusTransactionLegacyExecuted
}
func (*SuccessData) StatusName() LifecycleStatusName { return StatusSuccess }
func (*ErrorData) StatusName() LifecycleStatusName   { return StatusError }

// LifecycleStatusUpdate is a single variant to merge into the current lifecycle status.
// Every field of the variant payload overwrites the accumulated field of the same name.
type LifecycleStatusUpdate struct {
	Data StatusData
}

func NewStatusUpdate(data StatusData) *LifecycleStatusUpdate {
	return &LifecycleStatusUpdate{Data: data}
}

func (u *LifecycleStatusUpdate) StatusName() LifecycleStatusName {
	return u.Data.StatusName()
}

// Fields flattens the variant payload into JSON-named fields
func (u *LifecycleStatusUpdate) Fields() fftypes.JSONObject {
	return statusFields(u.Data)
}

// LifecycleStatus is the single authoritative state of a submission or exchange.
//
// StatusData holds every field accumulated across the lifecycle (for example maxSlippage
// set on init survives into amountChange). Use Variant() for a typed view of the
// payload of the active variant.
type LifecycleStatus struct {
	StatusName LifecycleStatusName `json:"statusName"`
	StatusData fftypes.JSONObject  `json:"statusData"`
}

func newStatusData(name LifecycleStatusName) (StatusData, bool) {
	switch name {
	case StatusInit:
		return &InitData{}, true
	case StatusAmountChange:
		return &AmountChangeData{}, true
	case StatusTransactionPending:
		return &TransactionPendingData{}, true
	case StatusTransactionApproved:
		return &TransactionApprovedData{}, true
	case StatusTransactionLegacyExecuted:
		return &TransactionLegacyExecutedData{}, true
	case StatusSuccess:
		return &SuccessData{}, true
	case StatusError:
		return &ErrorData{}, true
	default:
		return nil, false
	}
}

// Variant decodes the accumulated status data into the payload type of the active variant
func (s *LifecycleStatus) Variant() (StatusData, error) {
	data, ok := newStatusData(s.StatusName)
	if !ok {
		return nil, nil
	}
	if err := s.decode(data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *LifecycleStatus) decode(into interface{}) error {
	b, err := json.Marshal(s.StatusData)
	if err == nil {
		err = json.Unmarshal(b, into)
	}
	return err
}

// Copy returns a snapshot that shares no mutable state with the original
func (s *LifecycleStatus) Copy() *LifecycleStatus {
	c := &LifecycleStatus{
		StatusName: s.StatusName,
		StatusData: make(fftypes.JSONObject, len(s.StatusData)),
	}
	for k, v := range s.StatusData {
		c.StatusData[k] = v
	}
	return c
}

func (s *LifecycleStatus) ErrorData() *ErrorData {
	if s.StatusName != StatusError {
		return nil
	}
	var ed ErrorData
	_ = s.decode(&ed)
	return &ed
}

func (s *LifecycleStatus) SuccessData() *SuccessData {
	if s.StatusName != StatusSuccess {
		return nil
	}
	var sd SuccessData
	_ = s.decode(&sd)
	return &sd
}

// Receipts returns the receipts carried by a success status, without a JSON round trip
func (s *LifecycleStatus) Receipts() []*types.Receipt {
	receipts, _ := s.StatusData["transactionReceipts"].([]*types.Receipt)
	return receipts
}

func (s *LifecycleStatus) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}

// StatusUpdateInput is the external form of a LifecycleStatusUpdate
type StatusUpdateInput struct {
	StatusName LifecycleStatusName `json:"statusName"`
	StatusData fftypes.JSONObject  `json:"statusData"`
}

// ParseStatusUpdate builds a typed update from its external form. Fields of the variant
// that are not supplied are set to their zero value.
func ParseStatusUpdate(ctx context.Context, input *StatusUpdateInput) (*LifecycleStatusUpdate, error) {
	data, ok := newStatusData(input.StatusName)
	if !ok {
		return nil, i18n.NewError(ctx, tmmsgs.MsgUnknownStatusName, input.StatusName)
	}
	b, err := json.Marshal(input.StatusData)
	if err == nil {
		err = json.Unmarshal(b, data)
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgInvalidStatusData, input.StatusName)
	}
	return NewStatusUpdate(data), nil
}
