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
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/transaction"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the lifecycle status and both orchestrators over HTTP, with a websocket
// stream of status changes
type Server interface {
	Start() error
	// WaitStop blocks until the server has stopped, after the context passed to NewServer is cancelled
	WaitStop() error
}

type server struct {
	ctx          context.Context
	store        lifecycle.Store
	transactions transaction.Orchestrator
	swap         swap.Orchestrator
	metrics      metrics.Metrics

	apiServer     httpserver.HTTPServer
	apiServerDone chan error
	started       bool
	upgrader      *websocket.Upgrader
	wsConnections sync.WaitGroup
}

func NewServer(ctx context.Context, store lifecycle.Store, txo transaction.Orchestrator, swo swap.Orchestrator, mm metrics.Metrics) (Server, error) {
	s := &server{
		ctx:           ctx,
		store:         store,
		transactions:  txo,
		swap:          swo,
		metrics:       mm,
		apiServerDone: make(chan error),
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	var err error
	s.apiServer, err = httpserver.NewHTTPServer(ctx, "api", s.router(), s.apiServerDone, tmconfig.APIConfig, tmconfig.CorsConfig)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgAPIServerStartFailed, err)
	}
	return s, nil
}

func (s *server) router() *mux.Router {
	mux := mux.NewRouter()
	if s.metrics.IsMetricsEnabled() {
		mux.Use(metrics.GetAPIServerInstrumentation().Middleware)
	}
	hf := ffapi.HandlerFactory{
		DefaultRequestTimeout: config.GetDuration(tmconfig.APIDefaultRequestTimeout),
		MaxTimeout:            config.GetDuration(tmconfig.APIMaxRequestTimeout),
	}
	routes := s.routes()
	for _, r := range routes {
		mux.Path(r.Path).Methods(r.Method).Handler(hf.RouteHandler(r))
	}
	mux.Path("/api").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		url := req.URL.String() + "/spec.yaml"
		handler := hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {
			res.Header().Add("Content-Type", "text/html")
			_, _ = res.Write(ffapi.SwaggerUIHTML(url))
			return 200, nil
		})
		handler(res, req)
	}))
	mux.Path("/api/spec.yaml").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		u := req.URL
		u.Path = ""
		swaggerGen := ffapi.NewSwaggerGen(&ffapi.SwaggerGenOptions{
			BaseURL: u.String(),
		})
		doc := swaggerGen.Generate(req.Context(), routes)
		res.Header().Add("Content-Type", "application/x-yaml")
		b, _ := yaml.Marshal(&doc)
		_, _ = res.Write(b)
	}))
	mux.Path("/api/spec.json").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		u := req.URL
		u.Path = ""
		swaggerGen := ffapi.NewSwaggerGen(&ffapi.SwaggerGenOptions{
			BaseURL: u.String(),
		})
		doc := swaggerGen.Generate(req.Context(), routes)
		res.Header().Add("Content-Type", "application/json")
		b, _ := json.Marshal(&doc)
		_, _ = res.Write(b)
	}))
	if s.metrics.IsMetricsEnabled() {
		mux.Path("/metrics").Methods(http.MethodGet).Handler(promhttp.InstrumentMetricHandler(
			metrics.Registry(), promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}),
		))
	}

	mux.HandleFunc("/ws", s.wsHandler)

	mux.NotFoundHandler = hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
	})
	return mux
}

func (s *server) Start() error {
	s.started = true
	go s.apiServer.ServeHTTP(s.ctx)
	return nil
}

func (s *server) WaitStop() (err error) {
	if s.started {
		err = <-s.apiServerDone
		s.started = false
	}
	s.wsConnections.Wait()
	return err
}
