// flex_list.go
//
// Campus amenity ratings and discovery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of amenitydb.
// amenitydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// amenitydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with amenitydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"bytes"

	"github.com/goccy/go-json"
)

// FlexList accepts either one JSON value or an array of them, so a client may
// send `"tag_ids": 3` as well as `"tag_ids": [3, 4]`.
type FlexList[T any] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}

	if data[0] != '[' {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*f = FlexList[T]{item}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*f = items
	return nil
}

// Slice converts FlexList[T] back to []T.
func (f FlexList[T]) Slice() []T {
	return []T(f)
}

// IDList is a list of row identifiers given as numbers, numeric strings or a
// single bare id. Request validation rejects non-positive entries.
type IDList FlexList[FlexInt64]

// UnmarshalJSON implements the json.Unmarshaler interface.
func (l *IDList) UnmarshalJSON(data []byte) error {
	return (*FlexList[FlexInt64])(l).UnmarshalJSON(data)
}

// IDs returns the identifiers in request order. A nil list yields an empty slice.
func (l IDList) IDs() []uint64 {
	ids := make([]uint64, 0, len(l))
	for _, v := range l {
		ids = append(ids, v.ID())
	}
	return ids
}
