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
	"reflect"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// statusFields flattens a status payload into its JSON-named fields.
//
// Every exported field is written, zero values included, so each update replaces the
// accumulated value of every field its variant declares. A variant only leaves the
// fields of other variants untouched.
func statusFields(data StatusData) fftypes.JSONObject {
	fields := fftypes.JSONObject{}
	if data == nil {
		return fields
	}
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return fields
		}
		val = val.Elem()
	}
	varType := val.Type()
	for i := 0; i < varType.NumField(); i++ {
		fType := varType.Field(i)
		if !fType.IsExported() {
			continue
		}
		fieldName := fType.Name
		if tag := strings.Split(fType.Tag.Get("json"), ",")[0]; tag == "-" {
			continue
		} else if tag != "" {
			fieldName = tag
		}
		fields[fieldName] = val.Field(i).Interface()
	}
	return fields
}
