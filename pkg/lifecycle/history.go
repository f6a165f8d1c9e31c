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

package lifecycle

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

type HistoryEntry struct {
	Time    *fftypes.FFTime              `json:"time"`
	Status  apitypes.LifecycleStatusName `json:"statusName"`
	Updates int                          `json:"updates"`
	Code    string                       `json:"code,omitempty"`
}

type HistorySummaryEntry struct {
	FirstOccurrence *fftypes.FFTime              `json:"firstOccurrence"`
	Status          apitypes.LifecycleStatusName `json:"statusName"`
	Count           int                          `json:"count"`
}

// History is the external form of the recorded transitions
type History struct {
	Entries []*HistoryEntry        `json:"entries"`
	Summary []*HistorySummaryEntry `json:"summary"`
}

// history records the transitions between lifecycle statuses.
//
// Repeated updates within the same status (for example each keystroke of an amount
// change) increment the update count of the current entry rather than adding a new one.
// The list of entries is capped, with the oldest trimmed first. A separate summary keeps
// a count of every status ever entered, so early statuses are still recorded after
// they have been trimmed from the detailed list.
type history struct {
	maxCount int
	entries  []*HistoryEntry
	summary  []*HistorySummaryEntry
}

func (h *history) record(ctx context.Context, status *apitypes.LifecycleStatus) {
	var code string
	if ed := status.ErrorData(); ed != nil {
		code = ed.Code
	}

	// An error is always a new entry, as each is a distinct failure
	if len(h.entries) > 0 && status.StatusName != apitypes.StatusError {
		current := h.entries[len(h.entries)-1]
		if current.Status == status.StatusName {
			current.Updates++
			return
		}
	}
	log.L(ctx).Debugf("Lifecycle transition to %s", status.StatusName)

	h.entries = append(h.entries, &HistoryEntry{
		Time:    fftypes.Now(),
		Status:  status.StatusName,
		Updates: 1,
		Code:    code,
	})
	if h.maxCount > 0 && len(h.entries) > h.maxCount {
		h.entries = h.entries[1:]
	}

	for _, s := range h.summary {
		if s.Status == status.StatusName {
			s.Count++
			return
		}
	}
	h.summary = append(h.summary, &HistorySummaryEntry{
		FirstOccurrence: fftypes.Now(),
		Status:          status.StatusName,
		Count:           1,
	})
}

func (h *history) snapshot() ([]*HistoryEntry, []*HistorySummaryEntry) {
	entries := make([]*HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		ec := *e
		entries[i] = &ec
	}
	summary := make([]*HistorySummaryEntry, len(h.summary))
	for i, s := range h.summary {
		sc := *s
		summary[i] = &sc
	}
	return entries, summary
}
