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

	"github.com/veridian-lang/veridian/common"
)

type Member interface {
	Element
	isMember()
	MemberIdentifier() *Identifier
	MemberKind() common.DeclarationKind
	MemberAttributes() Attributes
}

// FieldDeclaration

type FieldDeclaration struct {
	Identifier     Identifier
	TypeAnnotation Type
	Ghost          bool
	Attributes     Attributes
	Range
}

var _ Element = &FieldDeclaration{}
var _ Member = &FieldDeclaration{}

func NewFieldDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeAnnotation Type,
	ghost bool,
	attributes Attributes,
	declarationRange Range,
) *FieldDeclaration {
	common.UseMemory(memoryGauge, common.FieldDeclarationMemoryUsage)

	return &FieldDeclaration{
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Ghost:          ghost,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*FieldDeclaration) isMember() {}

func (*FieldDeclaration) ElementType() ElementType {
	return ElementTypeFieldDeclaration
}

func (*FieldDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *FieldDeclaration) MemberIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FieldDeclaration) MemberKind() common.DeclarationKind {
	return common.DeclarationKindField
}

func (d *FieldDeclaration) MemberAttributes() Attributes {
	return d.Attributes
}

func (d *FieldDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FieldDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FieldDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// ConstantFieldDeclaration

type ConstantFieldDeclaration struct {
	Identifier     Identifier
	TypeAnnotation Type
	Value          Expression
	Ghost          bool
	Static         bool
	Attributes     Attributes
	Range
}

var _ Element = &ConstantFieldDeclaration{}
var _ Member = &ConstantFieldDeclaration{}

func NewConstantFieldDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeAnnotation Type,
	value Expression,
	ghost bool,
	static bool,
	attributes Attributes,
	declarationRange Range,
) *ConstantFieldDeclaration {
	common.UseMemory(memoryGauge, common.ConstantFieldDeclarationMemoryUsage)

	return &ConstantFieldDeclaration{
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Value:          value,
		Ghost:          ghost,
		Static:         static,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*ConstantFieldDeclaration) isMember() {}

func (*ConstantFieldDeclaration) ElementType() ElementType {
	return ElementTypeConstantFieldDeclaration
}

func (d *ConstantFieldDeclaration) Walk(walkChild func(Element)) {
	if d.Value != nil {
		walkChild(d.Value)
	}
}

func (d *ConstantFieldDeclaration) MemberIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ConstantFieldDeclaration) MemberKind() common.DeclarationKind {
	return common.DeclarationKindConstantField
}

func (d *ConstantFieldDeclaration) MemberAttributes() Attributes {
	return d.Attributes
}

func (d *ConstantFieldDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ConstantFieldDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ConstantFieldDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// SpecialFieldDeclaration is a field with language-defined meaning,
// e.g. the implicit Repr ownership frame of an auto-contracts class.
type SpecialFieldDeclaration struct {
	Kind             common.DeclarationKind
	FieldDeclaration *FieldDeclaration
}

var _ Element = &SpecialFieldDeclaration{}
var _ Member = &SpecialFieldDeclaration{}

func NewSpecialFieldDeclaration(
	memoryGauge common.MemoryGauge,
	kind common.DeclarationKind,
	fieldDeclaration *FieldDeclaration,
) *SpecialFieldDeclaration {
	common.UseMemory(memoryGauge, common.SpecialFieldDeclarationMemoryUsage)

	return &SpecialFieldDeclaration{
		Kind:             kind,
		FieldDeclaration: fieldDeclaration,
	}
}

func (*SpecialFieldDeclaration) isMember() {}

func (*SpecialFieldDeclaration) ElementType() ElementType {
	return ElementTypeSpecialFieldDeclaration
}

func (d *SpecialFieldDeclaration) Walk(walkChild func(Element)) {
	d.FieldDeclaration.Walk(walkChild)
}

func (d *SpecialFieldDeclaration) StartPosition() Position {
	return d.FieldDeclaration.StartPosition()
}

func (d *SpecialFieldDeclaration) EndPosition() Position {
	return d.FieldDeclaration.EndPosition()
}

func (d *SpecialFieldDeclaration) MemberIdentifier() *Identifier {
	return d.FieldDeclaration.MemberIdentifier()
}

func (d *SpecialFieldDeclaration) MemberKind() common.DeclarationKind {
	return d.Kind
}

func (d *SpecialFieldDeclaration) MemberAttributes() Attributes {
	return d.FieldDeclaration.MemberAttributes()
}

func (d *SpecialFieldDeclaration) MarshalJSON() ([]byte, error) {
	type Alias SpecialFieldDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "SpecialFieldDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// FunctionDeclaration is a function or predicate.
// Functions have expression bodies and no side effects.
type FunctionDeclaration struct {
	Identifier     Identifier
	IsPredicate    bool
	TypeParameters []*TypeParameter
	Formals        []*Formal
	Result         *Formal
	Specification  *Specification
	Body           Expression
	Ghost          bool
	Static         bool
	Attributes     Attributes
	Range
}

var _ Element = &FunctionDeclaration{}
var _ Member = &FunctionDeclaration{}

func NewFunctionDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	isPredicate bool,
	typeParameters []*TypeParameter,
	formals []*Formal,
	result *Formal,
	specification *Specification,
	body Expression,
	ghost bool,
	static bool,
	attributes Attributes,
	declarationRange Range,
) *FunctionDeclaration {
	common.UseMemory(memoryGauge, common.FunctionDeclarationMemoryUsage)

	return &FunctionDeclaration{
		Identifier:     identifier,
		IsPredicate:    isPredicate,
		TypeParameters: typeParameters,
		Formals:        formals,
		Result:         result,
		Specification:  specification,
		Body:           body,
		Ghost:          ghost,
		Static:         static,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*FunctionDeclaration) isMember() {}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *FunctionDeclaration) MemberIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) MemberKind() common.DeclarationKind {
	if d.IsPredicate {
		return common.DeclarationKindPredicate
	}
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) MemberAttributes() Attributes {
	return d.Attributes
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// MethodDeclaration is a method, constructor, or lemma-family member.
type MethodDeclaration struct {
	Identifier     Identifier
	Kind           common.DeclarationKind
	TypeParameters []*TypeParameter
	Formals        []*Formal
	Outs           []*Formal
	Specification  *Specification
	Body           *BlockStatement
	Ghost          bool
	Static         bool
	Attributes     Attributes
	Range
}

var _ Element = &MethodDeclaration{}
var _ Member = &MethodDeclaration{}

func NewMethodDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	kind common.DeclarationKind,
	typeParameters []*TypeParameter,
	formals []*Formal,
	outs []*Formal,
	specification *Specification,
	body *BlockStatement,
	ghost bool,
	static bool,
	attributes Attributes,
	declarationRange Range,
) *MethodDeclaration {
	common.UseMemory(memoryGauge, common.MethodDeclarationMemoryUsage)

	return &MethodDeclaration{
		Identifier:     identifier,
		Kind:           kind,
		TypeParameters: typeParameters,
		Formals:        formals,
		Outs:           outs,
		Specification:  specification,
		Body:           body,
		Ghost:          ghost,
		Static:         static,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*MethodDeclaration) isMember() {}

func (*MethodDeclaration) ElementType() ElementType {
	return ElementTypeMethodDeclaration
}

func (d *MethodDeclaration) Walk(walkChild func(Element)) {
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *MethodDeclaration) MemberIdentifier() *Identifier {
	return &d.Identifier
}

func (d *MethodDeclaration) MemberKind() common.DeclarationKind {
	return d.Kind
}

func (d *MethodDeclaration) MemberAttributes() Attributes {
	return d.Attributes
}

// IsLemma returns true for every lemma-family method.
func (d *MethodDeclaration) IsLemma() bool {
	return d.Kind.IsLemma()
}

func (d *MethodDeclaration) MarshalJSON() ([]byte, error) {
	type Alias MethodDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MethodDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
