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

var SubmissionsTotal *prometheus.CounterVec
var SubmissionErrorsTotal *prometheus.CounterVec
var ReceiptWaitsTotal *prometheus.CounterVec
var ReceiptWaitDurationSeconds *prometheus.HistogramVec

var MetricsSubmissionsTotal = "ff_txo_submissions_total"
var MetricsSubmissionErrorsTotal = "ff_txo_submission_errors_total"
var MetricsReceiptWaitsTotal = "ff_txo_receipt_waits_total"
var MetricsReceiptWaitDurationSeconds = "ff_txo_receipt_wait_duration_seconds"

func InitSubmissionMetrics() {
	SubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsSubmissionsTotal,
		Help: "Number of submissions grouped by the path used to submit the calls",
	}, []string{metricsLabelPath})

	SubmissionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsSubmissionErrorsTotal,
		Help: "Number of submission failures grouped by classification",
	}, []string{metricsLabelClassification})

	ReceiptWaitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsReceiptWaitsTotal,
		Help: "Number of receipt waits grouped by outcome",
	}, []string{metricsLabelOutcome})

	ReceiptWaitDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: MetricsReceiptWaitDurationSeconds,
		Help: "Time waiting for a receipt grouped by outcome",
	}, []string{metricsLabelOutcome})
}

func RegisterSubmissionMetrics() {
	registry.MustRegister(SubmissionsTotal)
	registry.MustRegister(SubmissionErrorsTotal)
	registry.MustRegister(ReceiptWaitsTotal)
	registry.MustRegister(ReceiptWaitDurationSeconds)
}
