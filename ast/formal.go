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

	"github.com/turbolent/prettier"

	"github.com/veridian-lang/veridian/common"
)

// Formal is a formal parameter, output parameter, local variable,
// or bound variable. Expressions referencing the same variable
// share the same Formal object; the cloning framework preserves
// that sharing.
type Formal struct {
	Identifier     Identifier
	TypeAnnotation Type
	Ghost          bool
	DefaultValue   Expression

	// modifiers

	IsOld    bool
	InParam  bool
	NameOnly bool
	Older    bool

	// ResolvedType is the type inferred during resolution,
	// if the declared type was omitted. Only set on resolved trees.
	ResolvedType Type `json:"-"`
}

var _ HasPosition = &Formal{}

func NewFormal(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	ty Type,
	ghost bool,
	defaultValue Expression,
) *Formal {
	common.UseMemory(memoryGauge, common.FormalMemoryUsage)

	return &Formal{
		Identifier:     identifier,
		TypeAnnotation: ty,
		Ghost:          ghost,
		DefaultValue:   defaultValue,
	}
}

func (f *Formal) StartPosition() Position {
	return f.Identifier.StartPosition()
}

func (f *Formal) EndPosition() Position {
	if f.DefaultValue != nil {
		return f.DefaultValue.EndPosition()
	}
	if f.TypeAnnotation != nil {
		return f.TypeAnnotation.EndPosition()
	}
	return f.Identifier.EndPosition()
}

func (f *Formal) Doc() prettier.Doc {
	doc := prettier.Concat{}
	if f.Ghost {
		doc = append(doc, prettier.Text("ghost "))
	}
	doc = append(doc, prettier.Text(f.Identifier.Identifier))
	if f.TypeAnnotation != nil {
		doc = append(doc,
			prettier.Text(": "),
			f.TypeAnnotation.Doc(),
		)
	}
	return doc
}

func (f *Formal) String() string {
	return Prettier(f)
}

func (f *Formal) MarshalJSON() ([]byte, error) {
	type Alias Formal
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "Formal",
		Range: NewRangeFromPositioned(f),
		Alias: (*Alias)(f),
	})
}

// TypeParameter

type TypeParameter struct {
	Identifier Identifier
}

func NewTypeParameter(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
) *TypeParameter {
	common.UseMemory(memoryGauge, common.TypeParameterMemoryUsage)

	return &TypeParameter{
		Identifier: identifier,
	}
}

func (p *TypeParameter) StartPosition() Position {
	return p.Identifier.StartPosition()
}

func (p *TypeParameter) EndPosition() Position {
	return p.Identifier.EndPosition()
}

func (p *TypeParameter) MarshalJSON() ([]byte, error) {
	type Alias TypeParameter
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TypeParameter",
		Alias: (*Alias)(p),
	})
}
