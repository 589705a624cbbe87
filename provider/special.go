/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package provider

import (
	"io"
	"reflect"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// UUID returns a provider of random version 4 UUIDs. It serves uuid.UUID,
// [16]byte-shaped types and string kinds (canonical form). Random bytes
// come from src, or from crypto/rand when src is nil.
func UUID(src io.Reader) apis.ValueProvider {
	return apis.ProviderFunc(func(t reflect.Type) (any, error) {
		if err := check.NotNil(t, "t"); err != nil {
			return nil, err
		}
		var (
			id  uuid.UUID
			err error
		)
		if src != nil {
			id, err = uuid.NewRandomFromReader(src)
		} else {
			id, err = uuid.NewRandom()
		}
		if err != nil {
			return nil, err
		}

		switch {
		case t.Kind() == reflect.String:
			return reflect.ValueOf(id.String()).Convert(t).Interface(), nil
		case reflect.TypeOf(id).ConvertibleTo(t):
			return reflect.ValueOf(id).Convert(t).Interface(), nil
		default:
			return nil, unsupported("uuid", t)
		}
	})
}

// Time returns a provider that always yields ts for time.Time fields.
func Time(ts time.Time) apis.ValueProvider {
	return apis.ProviderFunc(func(t reflect.Type) (any, error) {
		if err := check.NotNil(t, "t"); err != nil {
			return nil, err
		}
		if t != reflect.TypeFor[time.Time]() {
			return nil, unsupported("time", t)
		}
		return ts, nil
	})
}
