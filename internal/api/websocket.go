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

package api

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
)

// wsHandler streams the lifecycle status to the client, starting with the current status
// and followed by every merged update. Messages from the client are ignored.
func (s *server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L(s.ctx).Errorf("%s", i18n.NewError(r.Context(), tmmsgs.MsgWebSocketUpgradeFailed, err))
		return
	}
	s.wsConnections.Add(1)
	go s.statusStream(conn)
}

func (s *server) statusStream(conn *websocket.Conn) {
	defer s.wsConnections.Done()
	ctx, cancelCtx := context.WithCancel(log.WithLogField(s.ctx, "wsc", fftypes.NewUUID().String()))
	defer cancelCtx()
	defer conn.Close()

	// Subscribe before reading the current status, so no update can fall between the two
	statuses := s.store.Subscribe(ctx)
	log.L(ctx).Infof("Connected")

	go func() {
		defer cancelCtx()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				log.L(ctx).Debugf("Read ended: %s", err)
				return
			}
		}
	}()

	if err := conn.WriteJSON(s.store.Current()); err != nil {
		log.L(ctx).Errorf("Write failed: %s", err)
		return
	}
	for {
		select {
		case status, ok := <-statuses:
			if !ok {
				return
			}
			if err := conn.WriteJSON(status); err != nil {
				log.L(ctx).Errorf("Write failed: %s", err)
				return
			}
		case <-ctx.Done():
			log.L(ctx).Infof("Disconnected")
			return
		}
	}
}
