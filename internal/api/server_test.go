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
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/mocks/swapmocks"
	"github.com/hyperledger/firefly-transaction-orchestrator/mocks/transactionmocks"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
	"github.com/stretchr/testify/assert"
)

type testServer struct {
	url   string
	s     *server
	store lifecycle.Store
	txo   *transactionmocks.Orchestrator
	swo   *swapmocks.Orchestrator
}

func newTestServer(t *testing.T, metricsEnabled bool) (*testServer, func()) {
	tmconfig.Reset()
	metrics.Clear()
	config.Set(tmconfig.MetricsEnabled, metricsEnabled)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	port := strings.Split(ln.Addr().String(), ":")[1]
	ln.Close()
	tmconfig.APIConfig.Set(httpserver.HTTPConfPort, port)
	tmconfig.APIConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")

	ctx, cancelCtx := context.WithCancel(context.Background())
	ts := &testServer{
		url:   fmt.Sprintf("http://127.0.0.1:%s", port),
		store: lifecycle.NewStore(ctx, swap.InitialStatus()),
		txo:   transactionmocks.NewOrchestrator(t),
		swo:   swapmocks.NewOrchestrator(t),
	}
	s, err := NewServer(ctx, ts.store, ts.txo, ts.swo, metrics.NewMetricsManager(ctx))
	assert.NoError(t, err)
	ts.s = s.(*server)
	err = s.Start()
	assert.NoError(t, err)

	return ts, func() {
		cancelCtx()
		_ = s.WaitStop()
	}
}

func TestNewServerBadAddress(t *testing.T) {
	tmconfig.Reset()
	tmconfig.APIConfig.Set(httpserver.HTTPConfAddress, ":::::")
	ctx := context.Background()
	_, err := NewServer(ctx, lifecycle.NewStore(ctx, swap.InitialStatus()), &transactionmocks.Orchestrator{}, &swapmocks.Orchestrator{}, metrics.NewMetricsManager(ctx))
	assert.Regexp(t, "FF21118", err)
}

func TestWaitStopNotStarted(t *testing.T) {
	s := &server{}
	assert.NoError(t, s.WaitStop())
}

func TestGetStatus(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	var status apitypes.LifecycleStatus
	res, err := resty.New().R().
		SetResult(&status).
		Get(ts.url + "/status")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.StatusInit, status.StatusName)
	assert.Equal(t, true, status.StatusData["isMissingRequiredField"])
	assert.Equal(t, float64(3), status.StatusData["maxSlippage"])
}

func TestPostStatusMergesAndRecordsHistory(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	var status apitypes.LifecycleStatus
	res, err := resty.New().R().
		SetBody(&apitypes.StatusUpdateInput{
			StatusName: apitypes.StatusAmountChange,
			StatusData: fftypes.JSONObject{"amountFrom": "1.5"},
		}).
		SetResult(&status).
		Post(ts.url + "/status")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.StatusAmountChange, status.StatusName)
	assert.Equal(t, "1.5", status.StatusData["amountFrom"])
	// accumulated from init
	assert.Equal(t, float64(3), status.StatusData["maxSlippage"])

	var history lifecycle.History
	res, err = resty.New().R().
		SetResult(&history).
		Get(ts.url + "/status/history")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Len(t, history.Entries, 2)
	assert.Equal(t, apitypes.StatusInit, history.Entries[0].Status)
	assert.Equal(t, apitypes.StatusAmountChange, history.Entries[1].Status)
	assert.Len(t, history.Summary, 2)
}

func TestPostStatusUnknownName(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	var errRes fftypes.RESTError
	res, err := resty.New().R().
		SetBody(&apitypes.StatusUpdateInput{StatusName: "unknown"}).
		SetError(&errRes).
		Post(ts.url + "/status")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "FF21121", errRes.Error)
	assert.Equal(t, apitypes.StatusInit, ts.store.Current().StatusName)
}

func TestNotFound(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	res, err := resty.New().R().Get(ts.url + "/not/a/route")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
}

func TestSwaggerEndpoints(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	res, err := resty.New().R().Get(ts.url + "/api/spec.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Contains(t, string(res.Body()), "/swap/amount")

	res, err = resty.New().R().Get(ts.url + "/api/spec.json")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Contains(t, string(res.Body()), "/submissions/{submissionId}")

	res, err = resty.New().R().Get(ts.url + "/api")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Contains(t, string(res.Body()), "/api/spec.yaml")
}

func TestMetricsEndpoint(t *testing.T) {
	ts, done := newTestServer(t, true)
	defer done()

	res, err := resty.New().R().Get(ts.url + "/metrics")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestMetricsEndpointDisabled(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	res, err := resty.New().R().Get(ts.url + "/metrics")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
}

func TestWebSocketStatusStream(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	conn, _, err := websocket.DefaultDialer.Dial(strings.Replace(ts.url, "http", "ws", 1)+"/ws", nil)
	assert.NoError(t, err)
	defer conn.Close()

	var status apitypes.LifecycleStatus
	err = conn.ReadJSON(&status)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusInit, status.StatusName)

	ts.store.Update(context.Background(), apitypes.NewStatusUpdate(&apitypes.TransactionPendingData{}))

	err = conn.ReadJSON(&status)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusTransactionPending, status.StatusName)
}

func TestWebSocketClientDisconnect(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	conn, _, err := websocket.DefaultDialer.Dial(strings.Replace(ts.url, "http", "ws", 1)+"/ws", nil)
	assert.NoError(t, err)

	var status apitypes.LifecycleStatus
	err = conn.ReadJSON(&status)
	assert.NoError(t, err)
	conn.Close()

	// The stream exits once the read of the closed connection fails
	ts.s.wsConnections.Wait()
}

func TestWebSocketUpgradeFailure(t *testing.T) {
	ts, done := newTestServer(t, false)
	defer done()

	res, err := resty.New().R().Get(ts.url + "/ws")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
}
