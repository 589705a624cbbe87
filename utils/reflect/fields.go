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

package reflect

import (
	"reflect"
	"sync"

	"dirpx.dev/blueprint/apis"
)

// FieldInfo is a blueprint field plus its index in the owning struct.
type FieldInfo struct {
	apis.Field
	// Index is the field index for reflect.Value.Field.
	Index int
}

// fieldCache caches enumerated fields per struct type.
var fieldCache sync.Map // key: reflect.Type, val: []FieldInfo

// Fields enumerates the mutable fields of struct type t in declaration order.
// Unexported fields, and embedded structs of unexported type, are skipped
// because reflection cannot assign them. The result is shared; callers must
// not modify it.
func Fields(t reflect.Type) []FieldInfo {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if v, ok := fieldCache.Load(t); ok {
		return v.([]FieldInfo)
	}

	out := make([]FieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		out = append(out, FieldInfo{
			Field: apis.Field{
				Name:     sf.Name,
				Type:     sf.Type,
				Owner:    t,
				Terminal: IsTerminal(sf.Type),
			},
			Index: i,
		})
	}

	v, _ := fieldCache.LoadOrStore(t, out)
	return v.([]FieldInfo)
}
