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

package swap

import (
	"context"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/shopspring/decimal"
)

// FormatTokenAmount renders an integer count of the smallest unit of a token as a decimal
// amount of the token
func FormatTokenAmount(ctx context.Context, amount string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", i18n.NewError(ctx, tmmsgs.MsgInvalidAmount, amount)
	}
	return d.Shift(-decimals).String(), nil
}

// isEmptyAmount is true for input that cannot be quoted, including partially typed
// input such as "." and "0.0"
func isEmptyAmount(amount string) bool {
	a := strings.TrimSpace(amount)
	if a == "" || a == "." {
		return true
	}
	if strings.HasPrefix(a, ".") {
		a = "0" + a
	}
	a = strings.TrimSuffix(a, ".")
	d, err := decimal.NewFromString(a)
	return err != nil || d.Sign() <= 0
}
