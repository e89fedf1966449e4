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

// ReservedAttributePrefix marks attributes that are synthesized
// during resolution. They are artifacts of a previous resolution pass
// and must not survive into a non-resolved clone.
const ReservedAttributePrefix = "_"

// AutoContractsAttributeName is the class-level marker implying
// an implicit Valid() invariant predicate and Repr ownership-frame field.
const AutoContractsAttributeName = "autocontracts"

// Attribute

type Attribute struct {
	Identifier Identifier
	Arguments  []Expression
	Range
}

func NewAttribute(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	arguments []Expression,
	attributeRange Range,
) *Attribute {
	common.UseMemory(memoryGauge, common.AttributeMemoryUsage)

	return &Attribute{
		Identifier: identifier,
		Arguments:  arguments,
		Range:      attributeRange,
	}
}

// IsReserved returns true if the attribute was synthesized by a resolution pass.
func (a *Attribute) IsReserved() bool {
	return strings.HasPrefix(a.Identifier.Identifier, ReservedAttributePrefix)
}

func (a *Attribute) MarshalJSON() ([]byte, error) {
	type Alias Attribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Attribute",
		Alias: (*Alias)(a),
	})
}

// Attributes is the ordered attribute list of a declaration, outermost first.
type Attributes []*Attribute

// Find returns the first attribute with the given name, if any.
func (a Attributes) Find(name string) *Attribute {
	for _, attribute := range a {
		if attribute.Identifier.Identifier == name {
			return attribute
		}
	}
	return nil
}

// Without returns the attributes with every attribute
// of the given name removed. Order is preserved.
func (a Attributes) Without(name string) Attributes {
	var result Attributes
	for _, attribute := range a {
		if attribute.Identifier.Identifier == name {
			continue
		}
		result = append(result, attribute)
	}
	return result
}

// WithoutReserved returns the attributes with every reserved-prefix
// attribute removed. Order is preserved.
func (a Attributes) WithoutReserved() Attributes {
	var result Attributes
	for _, attribute := range a {
		if attribute.IsReserved() {
			continue
		}
		result = append(result, attribute)
	}
	return result
}
