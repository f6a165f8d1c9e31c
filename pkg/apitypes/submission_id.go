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
	"crypto/rand"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	ulid "github.com/oklog/ulid/v2"
)

var submissionEntropy = &ulid.LockedMonotonicReader{
	MonotonicReader: &ulid.MonotonicEntropy{
		Reader: rand.Reader,
	},
}

// NewSubmissionID allocates a ULID in UUID form, so IDs sort in submission order
// both as LevelDB keys and as UUID column values.
func NewSubmissionID() *fftypes.UUID {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), submissionEntropy)
	return (*fftypes.UUID)(&u)
}

// SubmissionIDTime is the millisecond time encoded in a submission ID
func SubmissionIDTime(id *fftypes.UUID) *fftypes.FFTime {
	if id == nil {
		return nil
	}
	t := fftypes.FFTime(ulid.Time(ulid.ULID(*id).Time()))
	return &t
}
