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
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

// Listener is notified of every status merged into a Store.
//
// Notifications are delivered one at a time, in the order the updates were merged.
// A listener may call Update on the store it is registered with; the resulting
// notification is delivered after the current one completes.
//
// Update delivers on the calling goroutine when no other goroutine is dispatching.
// Otherwise the notification is queued for the goroutine already dispatching, and
// Update returns before listeners have seen it.
type Listener interface {
	OnStatus(ctx context.Context, status *apitypes.LifecycleStatus)
	OnError(ctx context.Context, errData *apitypes.ErrorData)
	OnSuccess(ctx context.Context, receipts []*types.Receipt)
}

// ListenerFuncs adapts optional callbacks to the Listener interface
type ListenerFuncs struct {
	Status  func(ctx context.Context, status *apitypes.LifecycleStatus)
	Error   func(ctx context.Context, errData *apitypes.ErrorData)
	Success func(ctx context.Context, receipts []*types.Receipt)
}

func (lf *ListenerFuncs) OnStatus(ctx context.Context, status *apitypes.LifecycleStatus) {
	if lf.Status != nil {
		lf.Status(ctx, status)
	}
}

func (lf *ListenerFuncs) OnError(ctx context.Context, errData *apitypes.ErrorData) {
	if lf.Error != nil {
		lf.Error(ctx, errData)
	}
}

func (lf *ListenerFuncs) OnSuccess(ctx context.Context, receipts []*types.Receipt) {
	if lf.Success != nil {
		lf.Success(ctx, receipts)
	}
}

type Store interface {
	// Current returns a snapshot of the lifecycle status
	Current() *apitypes.LifecycleStatus
	// Update merges a single variant into the lifecycle status, and notifies listeners.
	// The merge is visible to Current on return, even when delivery is left to a concurrent Update.
	Update(ctx context.Context, update *apitypes.LifecycleStatusUpdate)
	// AddListener registers a listener, returning a function to remove it
	AddListener(l Listener) (remove func())
	// Subscribe streams every status merged after the call, until the context is cancelled
	Subscribe(ctx context.Context) <-chan *apitypes.LifecycleStatus
	// History returns the recorded status transitions, and a summary of every status entered
	History() ([]*HistoryEntry, []*HistorySummaryEntry)
}

type listenerEntry struct {
	id       int
	listener Listener
}

type store struct {
	mux            sync.Mutex
	status         *apitypes.LifecycleStatus
	history        history
	listeners      []*listenerEntry
	nextListenerID int
	pending        []*apitypes.LifecycleStatus
	dispatching    bool
}

func NewStore(ctx context.Context, initial *apitypes.LifecycleStatusUpdate) Store {
	s := &store{
		status: &apitypes.LifecycleStatus{
			StatusName: initial.StatusName(),
			StatusData: initial.Fields(),
		},
		history: history{
			maxCount: config.GetInt(tmconfig.LifecycleHistoryMaxCount),
		},
	}
	s.history.record(ctx, s.status)
	return s
}

// Merge applies an update to a status, returning a new status.
//
// Fields accumulated from earlier variants are kept, unless the previous status was an
// error in which case the error fields are dropped. Every field of the update then
// overwrites the accumulated field of the same name.
func Merge(prev *apitypes.LifecycleStatus, update *apitypes.LifecycleStatusUpdate) *apitypes.LifecycleStatus {
	merged := &apitypes.LifecycleStatus{
		StatusName: update.StatusName(),
	}
	if prev != nil {
		merged.StatusData = prev.Copy().StatusData
		if prev.StatusName == apitypes.StatusError {
			delete(merged.StatusData, apitypes.StatusDataCode)
			delete(merged.StatusData, apitypes.StatusDataError)
			delete(merged.StatusData, apitypes.StatusDataMessage)
		}
	} else {
		merged.StatusData = fftypes.JSONObject{}
	}
	for k, v := range update.Fields() {
		merged.StatusData[k] = v
	}
	return merged
}

func (s *store) Current() *apitypes.LifecycleStatus {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.status.Copy()
}

func (s *store) Update(ctx context.Context, update *apitypes.LifecycleStatusUpdate) {
	s.mux.Lock()
	s.status = Merge(s.status, update)
	s.history.record(ctx, s.status)
	s.pending = append(s.pending, s.status.Copy())
	if s.dispatching {
		// The goroutine already dispatching delivers this notification in order
		s.mux.Unlock()
		return
	}
	s.dispatching = true
	s.mux.Unlock()

	s.dispatchPending(ctx)
}

func (s *store) dispatchPending(ctx context.Context) {
	for {
		s.mux.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.mux.Unlock()
			return
		}
		status := s.pending[0]
		s.pending = s.pending[1:]
		listeners := make([]*listenerEntry, len(s.listeners))
		copy(listeners, s.listeners)
		s.mux.Unlock()

		log.L(ctx).Tracef("Dispatching lifecycle status %s to %d listeners", status.StatusName, len(listeners))
		for _, le := range listeners {
			s.notify(ctx, le.listener, status)
		}
	}
}

func (s *store) notify(ctx context.Context, l Listener, status *apitypes.LifecycleStatus) {
	l.OnStatus(ctx, status.Copy())
	switch status.StatusName {
	case apitypes.StatusError:
		l.OnError(ctx, status.ErrorData())
	case apitypes.StatusSuccess:
		receipts := status.Receipts()
		if receipts == nil {
			if sd := status.SuccessData(); sd != nil {
				receipts = sd.TransactionReceipts
			}
		}
		l.OnSuccess(ctx, receipts)
	}
}

func (s *store) AddListener(l Listener) func() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.nextListenerID++
	id := s.nextListenerID
	s.listeners = append(s.listeners, &listenerEntry{id: id, listener: l})
	return func() {
		s.mux.Lock()
		defer s.mux.Unlock()
		for i, le := range s.listeners {
			if le.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

type subscription struct {
	mux     sync.Mutex
	ch      chan *apitypes.LifecycleStatus
	closed  bool
	dropped int
}

func (sub *subscription) deliver(ctx context.Context, status *apitypes.LifecycleStatus) {
	sub.mux.Lock()
	defer sub.mux.Unlock()
	if sub.closed {
		return
	}
	select {
	case sub.ch <- status:
	default:
		sub.dropped++
		log.L(ctx).Warn(i18n.NewError(ctx, tmmsgs.MsgStatusSubscriptionOverflow, sub.dropped))
	}
}

func (sub *subscription) close() {
	sub.mux.Lock()
	defer sub.mux.Unlock()
	sub.closed = true
	close(sub.ch)
}

func (s *store) Subscribe(ctx context.Context) <-chan *apitypes.LifecycleStatus {
	sub := &subscription{
		ch: make(chan *apitypes.LifecycleStatus, 100),
	}
	remove := s.AddListener(&ListenerFuncs{
		Status: sub.deliver,
	})
	go func() {
		<-ctx.Done()
		remove()
		sub.close()
	}()
	return sub.ch
}

func (s *store) History() ([]*HistoryEntry, []*HistorySummaryEntry) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.history.snapshot()
}
