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

// ClassDeclaration

type ClassDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	ParentTraits   []*NominalType
	Members        []Member
	Attributes     Attributes
	Range
}

var _ Element = &ClassDeclaration{}
var _ Declaration = &ClassDeclaration{}

func NewClassDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	parentTraits []*NominalType,
	members []Member,
	attributes Attributes,
	declarationRange Range,
) *ClassDeclaration {
	common.UseMemory(memoryGauge, common.ClassDeclarationMemoryUsage)

	return &ClassDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		ParentTraits:   parentTraits,
		Members:        members,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*ClassDeclaration) isDeclaration() {}

func (*ClassDeclaration) ElementType() ElementType {
	return ElementTypeClassDeclaration
}

func (d *ClassDeclaration) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

func (d *ClassDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ClassDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindClass
}

func (d *ClassDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *ClassDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ClassDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ClassDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// TraitDeclaration

type TraitDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	ParentTraits   []*NominalType
	Members        []Member
	Attributes     Attributes
	Range
}

var _ Element = &TraitDeclaration{}
var _ Declaration = &TraitDeclaration{}

func NewTraitDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	parentTraits []*NominalType,
	members []Member,
	attributes Attributes,
	declarationRange Range,
) *TraitDeclaration {
	common.UseMemory(memoryGauge, common.TraitDeclarationMemoryUsage)

	return &TraitDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		ParentTraits:   parentTraits,
		Members:        members,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*TraitDeclaration) isDeclaration() {}

func (*TraitDeclaration) ElementType() ElementType {
	return ElementTypeTraitDeclaration
}

func (d *TraitDeclaration) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

func (d *TraitDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *TraitDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTrait
}

func (d *TraitDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *TraitDeclaration) MarshalJSON() ([]byte, error) {
	type Alias TraitDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "TraitDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// IteratorDeclaration

type IteratorDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	Formals        []*Formal
	Outs           []*Formal
	Specification  *Specification
	Body           *BlockStatement
	Attributes     Attributes
	Range
}

var _ Element = &IteratorDeclaration{}
var _ Declaration = &IteratorDeclaration{}

func NewIteratorDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	formals []*Formal,
	outs []*Formal,
	specification *Specification,
	body *BlockStatement,
	attributes Attributes,
	declarationRange Range,
) *IteratorDeclaration {
	common.UseMemory(memoryGauge, common.IteratorDeclarationMemoryUsage)

	return &IteratorDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		Formals:        formals,
		Outs:           outs,
		Specification:  specification,
		Body:           body,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*IteratorDeclaration) isDeclaration() {}

func (*IteratorDeclaration) ElementType() ElementType {
	return ElementTypeIteratorDeclaration
}

func (d *IteratorDeclaration) Walk(walkChild func(Element)) {
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *IteratorDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *IteratorDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindIterator
}

func (d *IteratorDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *IteratorDeclaration) MarshalJSON() ([]byte, error) {
	type Alias IteratorDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IteratorDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
