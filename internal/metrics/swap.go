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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var QuoteRequestsTotal *prometheus.CounterVec
var QuoteRequestDurationSeconds *prometheus.HistogramVec
var ValuationFetchesTotal *prometheus.CounterVec

var MetricsQuoteRequestsTotal = "ff_txo_quote_requests_total"
var MetricsQuoteRequestDurationSeconds = "ff_txo_quote_request_duration_seconds"
var MetricsValuationFetchesTotal = "ff_txo_valuation_fetches_total"

func InitSwapMetrics() {
	QuoteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsQuoteRequestsTotal,
		Help: "Number of quote requests grouped by outcome",
	}, []string{metricsLabelOutcome})

	QuoteRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: MetricsQuoteRequestDurationSeconds,
		Help: "Time of quote requests grouped by outcome",
	}, []string{metricsLabelOutcome})

	ValuationFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsValuationFetchesTotal,
		Help: "Number of USD valuation fetches grouped by outcome",
	}, []string{metricsLabelOutcome})
}

func RegisterSwapMetrics() {
	registry.MustRegister(QuoteRequestsTotal)
	registry.MustRegister(QuoteRequestDurationSeconds)
	registry.MustRegister(ValuationFetchesTotal)
}
