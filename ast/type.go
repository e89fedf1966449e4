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

type Type interface {
	HasPosition
	isType()
	Doc() prettier.Doc
	String() string
}

// NominalType represents a named type, e.g. a class, trait, datatype,
// type parameter, or built-in type, optionally qualified and
// optionally instantiated with type arguments.
type NominalType struct {
	Qualifier     QualifiedName
	Identifier    Identifier
	TypeArguments []Type
}

var _ Type = &NominalType{}

func NewNominalType(
	memoryGauge common.MemoryGauge,
	qualifier QualifiedName,
	identifier Identifier,
	typeArguments []Type,
) *NominalType {
	common.UseMemory(memoryGauge, common.NominalTypeMemoryUsage)

	return &NominalType{
		Qualifier:     qualifier,
		Identifier:    identifier,
		TypeArguments: typeArguments,
	}
}

func (*NominalType) isType() {}

func (t *NominalType) StartPosition() Position {
	if len(t.Qualifier) > 0 {
		return t.Qualifier[0].StartPosition()
	}
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	if len(t.TypeArguments) > 0 {
		return t.TypeArguments[len(t.TypeArguments)-1].EndPosition()
	}
	return t.Identifier.EndPosition()
}

func (t *NominalType) Doc() prettier.Doc {
	var doc prettier.Concat
	for _, segment := range t.Qualifier {
		doc = append(doc,
			prettier.Text(segment.Identifier),
			prettier.Text("."),
		)
	}
	doc = append(doc, prettier.Text(t.Identifier.Identifier))
	if len(t.TypeArguments) > 0 {
		doc = append(doc, typeArgumentsDoc(t.TypeArguments))
	}
	return doc
}

func (t *NominalType) String() string {
	return Prettier(t)
}

func (t *NominalType) MarshalJSON() ([]byte, error) {
	type Alias NominalType
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NominalType",
		Range: NewRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

func typeArgumentsDoc(typeArguments []Type) prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("<"),
	}
	for i, typeArgument := range typeArguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, typeArgument.Doc())
	}
	return append(doc, prettier.Text(">"))
}

// TupleType

type TupleType struct {
	Types []Type
	Range
}

var _ Type = &TupleType{}

func NewTupleType(
	memoryGauge common.MemoryGauge,
	types []Type,
	typeRange Range,
) *TupleType {
	common.UseMemory(memoryGauge, common.TupleTypeMemoryUsage)

	return &TupleType{
		Types: types,
		Range: typeRange,
	}
}

func (*TupleType) isType() {}

func (t *TupleType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, ty := range t.Types {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, ty.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (t *TupleType) String() string {
	return Prettier(t)
}

func (t *TupleType) MarshalJSON() ([]byte, error) {
	type Alias TupleType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TupleType",
		Alias: (*Alias)(t),
	})
}

// FunctionType

type FunctionType struct {
	ParameterTypes []Type
	ReturnType     Type
	Range
}

var _ Type = &FunctionType{}

func NewFunctionType(
	memoryGauge common.MemoryGauge,
	parameterTypes []Type,
	returnType Type,
	typeRange Range,
) *FunctionType {
	common.UseMemory(memoryGauge, common.FunctionTypeMemoryUsage)

	return &FunctionType{
		ParameterTypes: parameterTypes,
		ReturnType:     returnType,
		Range:          typeRange,
	}
}

func (*FunctionType) isType() {}

func (t *FunctionType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, parameterType := range t.ParameterTypes {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, parameterType.Doc())
	}
	return append(doc,
		prettier.Text(") -> "),
		t.ReturnType.Doc(),
	)
}

func (t *FunctionType) String() string {
	return Prettier(t)
}

func (t *FunctionType) MarshalJSON() ([]byte, error) {
	type Alias FunctionType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "FunctionType",
		Alias: (*Alias)(t),
	})
}

// SequenceType

type SequenceType struct {
	ElementType Type
	Range
}

var _ Type = &SequenceType{}

func NewSequenceType(
	memoryGauge common.MemoryGauge,
	elementType Type,
	typeRange Range,
) *SequenceType {
	common.UseMemory(memoryGauge, common.SequenceTypeMemoryUsage)

	return &SequenceType{
		ElementType: elementType,
		Range:       typeRange,
	}
}

func (*SequenceType) isType() {}

func (t *SequenceType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("seq<"),
		t.ElementType.Doc(),
		prettier.Text(">"),
	}
}

func (t *SequenceType) String() string {
	return Prettier(t)
}

func (t *SequenceType) MarshalJSON() ([]byte, error) {
	type Alias SequenceType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "SequenceType",
		Alias: (*Alias)(t),
	})
}

// MapType

type MapType struct {
	KeyType   Type
	ValueType Type
	Range
}

var _ Type = &MapType{}

func NewMapType(
	memoryGauge common.MemoryGauge,
	keyType Type,
	valueType Type,
	typeRange Range,
) *MapType {
	common.UseMemory(memoryGauge, common.MapTypeMemoryUsage)

	return &MapType{
		KeyType:   keyType,
		ValueType: valueType,
		Range:     typeRange,
	}
}

func (*MapType) isType() {}

func (t *MapType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("map<"),
		t.KeyType.Doc(),
		prettier.Text(", "),
		t.ValueType.Doc(),
		prettier.Text(">"),
	}
}

func (t *MapType) String() string {
	return Prettier(t)
}

func (t *MapType) MarshalJSON() ([]byte, error) {
	type Alias MapType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "MapType",
		Alias: (*Alias)(t),
	})
}
