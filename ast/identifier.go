/*
 * Veridian - The contract-verified programming language
 *
 * Copyright Veridian Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"encoding/json"
	"strings"

	"github.com/veridian-lang/veridian/common"
)

// Identifier

type Identifier struct {
	Identifier string
	Pos        Position `json:"-"`
}

func NewIdentifier(memoryGauge common.MemoryGauge, identifier string, pos Position) Identifier {
	common.UseMemory(memoryGauge, common.IdentifierMemoryUsage)
	return Identifier{
		Identifier: identifier,
		Pos:        pos,
	}
}

func (i Identifier) String() string {
	return i.Identifier
}

func (i Identifier) StartPosition() Position {
	return i.Pos
}

func (i Identifier) EndPosition() Position {
	length := len(i.Identifier)
	return i.Pos.Shifted(length - 1)
}

func (i Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Identifier string
		Range
	}{
		Identifier: i.Identifier,
		Range:      NewRangeFromPositioned(i),
	})
}

// QualifiedName is a dot-separated path of identifiers,
// e.g. the target of a module alias declaration.
type QualifiedName []Identifier

func (n QualifiedName) String() string {
	var sb strings.Builder
	for i, segment := range n {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Identifier)
	}
	return sb.String()
}

// Prepended returns a copy of the qualified name
// with the given segment prepended as the new root.
func (n QualifiedName) Prepended(segment Identifier) QualifiedName {
	result := make(QualifiedName, 0, len(n)+1)
	result = append(result, segment)
	result = append(result, n...)
	return result
}
