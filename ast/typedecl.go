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

// AbstractTypeDeclaration is an opaque type, e.g. `type T`.
// It may carry members but reveals no representation.
type AbstractTypeDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	ParentTraits   []*NominalType
	Members        []Member
	Attributes     Attributes
	Range
}

var _ Element = &AbstractTypeDeclaration{}
var _ Declaration = &AbstractTypeDeclaration{}

func NewAbstractTypeDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	parentTraits []*NominalType,
	members []Member,
	attributes Attributes,
	declarationRange Range,
) *AbstractTypeDeclaration {
	common.UseMemory(memoryGauge, common.AbstractTypeDeclarationMemoryUsage)

	return &AbstractTypeDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		ParentTraits:   parentTraits,
		Members:        members,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*AbstractTypeDeclaration) isDeclaration() {}

func (*AbstractTypeDeclaration) ElementType() ElementType {
	return ElementTypeAbstractTypeDeclaration
}

func (d *AbstractTypeDeclaration) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

func (d *AbstractTypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *AbstractTypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindAbstractType
}

func (d *AbstractTypeDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *AbstractTypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias AbstractTypeDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AbstractTypeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// SubsetTypeDeclaration is a constrained view of a base type,
// e.g. `type Nat = x: Int | x >= 0`.
type SubsetTypeDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	Variable       *Formal
	Constraint     Expression
	Witness        Expression
	Attributes     Attributes
	Range
}

var _ Element = &SubsetTypeDeclaration{}
var _ Declaration = &SubsetTypeDeclaration{}

func NewSubsetTypeDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	variable *Formal,
	constraint Expression,
	witness Expression,
	attributes Attributes,
	declarationRange Range,
) *SubsetTypeDeclaration {
	common.UseMemory(memoryGauge, common.SubsetTypeDeclarationMemoryUsage)

	return &SubsetTypeDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		Variable:       variable,
		Constraint:     constraint,
		Witness:        witness,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*SubsetTypeDeclaration) isDeclaration() {}

func (*SubsetTypeDeclaration) ElementType() ElementType {
	return ElementTypeSubsetTypeDeclaration
}

func (d *SubsetTypeDeclaration) Walk(walkChild func(Element)) {
	if d.Constraint != nil {
		walkChild(d.Constraint)
	}
	if d.Witness != nil {
		walkChild(d.Witness)
	}
}

func (d *SubsetTypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *SubsetTypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindSubsetType
}

func (d *SubsetTypeDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *SubsetTypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias SubsetTypeDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "SubsetTypeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// TypeSynonymDeclaration is a transparent name for an existing type.
type TypeSynonymDeclaration struct {
	Identifier     Identifier
	TypeParameters []*TypeParameter
	Target         Type
	Attributes     Attributes
	Range
}

var _ Element = &TypeSynonymDeclaration{}
var _ Declaration = &TypeSynonymDeclaration{}

func NewTypeSynonymDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	typeParameters []*TypeParameter,
	target Type,
	attributes Attributes,
	declarationRange Range,
) *TypeSynonymDeclaration {
	common.UseMemory(memoryGauge, common.TypeSynonymDeclarationMemoryUsage)

	return &TypeSynonymDeclaration{
		Identifier:     identifier,
		TypeParameters: typeParameters,
		Target:         target,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*TypeSynonymDeclaration) isDeclaration() {}

func (*TypeSynonymDeclaration) ElementType() ElementType {
	return ElementTypeTypeSynonymDeclaration
}

func (*TypeSynonymDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *TypeSynonymDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *TypeSynonymDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeSynonym
}

func (d *TypeSynonymDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *TypeSynonymDeclaration) MarshalJSON() ([]byte, error) {
	type Alias TypeSynonymDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "TypeSynonymDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// NewtypeDeclaration is a distinct type derived from a base type,
// optionally constrained, e.g. `newtype Byte = x: Int | 0 <= x < 256`.
type NewtypeDeclaration struct {
	Identifier Identifier
	BaseType   Type
	Variable   *Formal
	Constraint Expression
	Witness    Expression
	Members    []Member
	Attributes Attributes
	Range
}

var _ Element = &NewtypeDeclaration{}
var _ Declaration = &NewtypeDeclaration{}

func NewNewtypeDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	baseType Type,
	variable *Formal,
	constraint Expression,
	witness Expression,
	members []Member,
	attributes Attributes,
	declarationRange Range,
) *NewtypeDeclaration {
	common.UseMemory(memoryGauge, common.NewtypeDeclarationMemoryUsage)

	return &NewtypeDeclaration{
		Identifier: identifier,
		BaseType:   baseType,
		Variable:   variable,
		Constraint: constraint,
		Witness:    witness,
		Members:    members,
		Attributes: attributes,
		Range:      declarationRange,
	}
}

func (*NewtypeDeclaration) isDeclaration() {}

func (*NewtypeDeclaration) ElementType() ElementType {
	return ElementTypeNewtypeDeclaration
}

func (d *NewtypeDeclaration) Walk(walkChild func(Element)) {
	if d.Constraint != nil {
		walkChild(d.Constraint)
	}
	if d.Witness != nil {
		walkChild(d.Witness)
	}
	for _, member := range d.Members {
		walkChild(member)
	}
}

func (d *NewtypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *NewtypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindNewtype
}

func (d *NewtypeDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *NewtypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias NewtypeDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NewtypeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// DatatypeCase is a single constructor of an inductive
// or co-inductive datatype.
type DatatypeCase struct {
	Identifier Identifier
	Formals    []*Formal
	Attributes Attributes
	Range
}

func NewDatatypeCase(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	formals []*Formal,
	attributes Attributes,
	caseRange Range,
) *DatatypeCase {
	common.UseMemory(memoryGauge, common.DatatypeCaseMemoryUsage)

	return &DatatypeCase{
		Identifier: identifier,
		Formals:    formals,
		Attributes: attributes,
		Range:      caseRange,
	}
}

func (c *DatatypeCase) MarshalJSON() ([]byte, error) {
	type Alias DatatypeCase
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "DatatypeCase",
		Alias: (*Alias)(c),
	})
}

// DatatypeDeclaration is an inductive or co-inductive datatype.
type DatatypeDeclaration struct {
	Identifier     Identifier
	IsCoDatatype   bool
	TypeParameters []*TypeParameter
	Cases          []*DatatypeCase
	ParentTraits   []*NominalType
	Members        []Member
	Attributes     Attributes
	Range
}

var _ Element = &DatatypeDeclaration{}
var _ Declaration = &DatatypeDeclaration{}

func NewDatatypeDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	isCoDatatype bool,
	typeParameters []*TypeParameter,
	cases []*DatatypeCase,
	parentTraits []*NominalType,
	members []Member,
	attributes Attributes,
	declarationRange Range,
) *DatatypeDeclaration {
	common.UseMemory(memoryGauge, common.DatatypeDeclarationMemoryUsage)

	return &DatatypeDeclaration{
		Identifier:     identifier,
		IsCoDatatype:   isCoDatatype,
		TypeParameters: typeParameters,
		Cases:          cases,
		ParentTraits:   parentTraits,
		Members:        members,
		Attributes:     attributes,
		Range:          declarationRange,
	}
}

func (*DatatypeDeclaration) isDeclaration() {}

func (*DatatypeDeclaration) ElementType() ElementType {
	return ElementTypeDatatypeDeclaration
}

func (d *DatatypeDeclaration) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

func (d *DatatypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *DatatypeDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsCoDatatype {
		return common.DeclarationKindCoDatatype
	}
	return common.DeclarationKindDatatype
}

func (d *DatatypeDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *DatatypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias DatatypeDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "DatatypeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// TupleTypeDeclaration is the built-in declaration backing tuple types
// of a particular arity.
type TupleTypeDeclaration struct {
	Identifier        Identifier
	Arity             int
	ArgumentGhostness []bool
	Attributes        Attributes
	Range
}

var _ Element = &TupleTypeDeclaration{}
var _ Declaration = &TupleTypeDeclaration{}

func NewTupleTypeDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	arity int,
	argumentGhostness []bool,
	attributes Attributes,
	declarationRange Range,
) *TupleTypeDeclaration {
	common.UseMemory(memoryGauge, common.TupleTypeDeclarationMemoryUsage)

	return &TupleTypeDeclaration{
		Identifier:        identifier,
		Arity:             arity,
		ArgumentGhostness: argumentGhostness,
		Attributes:        attributes,
		Range:             declarationRange,
	}
}

func (*TupleTypeDeclaration) isDeclaration() {}

func (*TupleTypeDeclaration) ElementType() ElementType {
	return ElementTypeTupleTypeDeclaration
}

func (*TupleTypeDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *TupleTypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *TupleTypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTupleType
}

func (d *TupleTypeDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *TupleTypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias TupleTypeDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "TupleTypeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
