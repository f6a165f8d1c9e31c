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
	"context"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsLabelPath = "path"
const metricsLabelClassification = "classification"
const metricsLabelOutcome = "outcome"

// Classifications of submission failures
const (
	ClassificationUserRejected       = "user_rejected"
	ClassificationMethodNotSupported = "method_not_supported"
	ClassificationGeneric            = "generic"
	ClassificationProvider           = "provider"
)

// Outcomes of receipt waits, quotes and valuations
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeError   = "error"
	OutcomeStale   = "stale"
)

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(tmconfig.MetricsEnabled),
	}
	if mm.metricsEnabled {
		_ = Registry()
	}
	return mm
}

type Metrics interface {
	IsMetricsEnabled() bool
	SubmissionMetrics
	SwapMetrics
}

type SubmissionMetrics interface {
	RecordSubmission(ctx context.Context, path string)
	RecordSubmissionError(ctx context.Context, classification string)
	RecordReceiptWait(ctx context.Context, outcome string, durationInSeconds float64)
}

type SwapMetrics interface {
	RecordQuoteRequest(ctx context.Context, outcome string, durationInSeconds float64)
	RecordValuationFetch(ctx context.Context, outcome string)
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) RecordSubmission(ctx context.Context, path string) {
	if mm.metricsEnabled {
		log.L(ctx).Tracef("Recording submission on path %s", path)
		SubmissionsTotal.With(prometheus.Labels{metricsLabelPath: path}).Inc()
	}
}

func (mm *metricsManager) RecordSubmissionError(ctx context.Context, classification string) {
	if mm.metricsEnabled {
		SubmissionErrorsTotal.With(prometheus.Labels{metricsLabelClassification: classification}).Inc()
	}
}

func (mm *metricsManager) RecordReceiptWait(ctx context.Context, outcome string, durationInSeconds float64) {
	if mm.metricsEnabled {
		ReceiptWaitsTotal.With(prometheus.Labels{metricsLabelOutcome: outcome}).Inc()
		ReceiptWaitDurationSeconds.With(prometheus.Labels{metricsLabelOutcome: outcome}).Observe(durationInSeconds)
	}
}

func (mm *metricsManager) RecordQuoteRequest(ctx context.Context, outcome string, durationInSeconds float64) {
	if mm.metricsEnabled {
		QuoteRequestsTotal.With(prometheus.Labels{metricsLabelOutcome: outcome}).Inc()
		QuoteRequestDurationSeconds.With(prometheus.Labels{metricsLabelOutcome: outcome}).Observe(durationInSeconds)
	}
}

func (mm *metricsManager) RecordValuationFetch(ctx context.Context, outcome string) {
	if mm.metricsEnabled {
		ValuationFetchesTotal.With(prometheus.Labels{metricsLabelOutcome: outcome}).Inc()
	}
}
