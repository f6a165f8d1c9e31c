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

package chain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// MethodNotSupportedErrorSubstring is reported by wallets that cannot batch calls
	MethodNotSupportedErrorSubstring = "this request method is not supported"

	// UserRejectedRequestError is the name wallets give to a request the user declined
	UserRejectedRequestError = "UserRejectedRequestError"

	// UserRejectedMessage is the only message shown when the user declines a request
	UserRejectedMessage = "Request denied."

	// GenericErrorMessage is shown for every failure that is not classified
	GenericErrorMessage = "Something went wrong. Please try again."
)

// EIP-1193 provider error codes, and the JSON-RPC code for an unknown method
const (
	ErrorCodeUserRejected        = 4001
	ErrorCodeUnsupportedMethod   = 4200
	ErrorCodeJSONRPCNoSuchMethod = -32601
)

// NamedError is implemented by errors that carry the name of their cause
type NamedError interface {
	error
	ErrorName() string
}

// RejectedError is returned by wallet implementations when the user declines a request
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "User rejected the request."
	}
	return e.Message
}

func (e *RejectedError) ErrorName() string { return UserRejectedRequestError }

func (e *RejectedError) ErrorCode() int { return ErrorCodeUserRejected }

func errorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// IsUserRejected is true when the user declined the request in their wallet.
// The whole chain of wrapped errors is checked.
func IsUserRejected(err error) bool {
	if err == nil {
		return false
	}
	var named NamedError
	if errors.As(err, &named) && named.ErrorName() == UserRejectedRequestError {
		return true
	}
	if code, ok := errorCode(err); ok && code == ErrorCodeUserRejected {
		return true
	}
	return false
}

// IsMethodNotSupported is true when the wallet cannot perform the requested method,
// which for a batch submission means calls must be submitted one by one
func IsMethodNotSupported(err error) bool {
	if err == nil {
		return false
	}
	if strings.Contains(strings.ToLower(err.Error()), MethodNotSupportedErrorSubstring) {
		return true
	}
	if code, ok := errorCode(err); ok {
		return code == ErrorCodeJSONRPCNoSuchMethod || code == ErrorCodeUnsupportedMethod
	}
	return false
}

// ErrorMessage is the user facing message for a failure
func ErrorMessage(err error) string {
	if IsUserRejected(err) {
		return UserRejectedMessage
	}
	return GenericErrorMessage
}
