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
	"fmt"
	"math/big"

	"github.com/veridian-lang/veridian/common"
)

// A Decoder decodes the JSON encoding produced by the MarshalJSON
// implementations of the AST elements back into elements.
//
// The decoding is lossy in the same way the encoding is:
// resolved-only information, e.g. identifier bindings and break targets,
// is not part of the JSON encoding and is absent from decoded trees.
type Decoder struct {
	gauge common.MemoryGauge
}

func NewDecoder(gauge common.MemoryGauge) *Decoder {
	return &Decoder{
		gauge: gauge,
	}
}

// DecodeProgram decodes a JSON-encoded program.
func DecodeProgram(gauge common.MemoryGauge, data []byte) (*Program, error) {
	decoder := NewDecoder(gauge)
	return decoder.DecodeProgram(data)
}

func (d *Decoder) DecodeProgram(data []byte) (*Program, error) {
	var envelope struct {
		Type         string
		Declarations []json.RawMessage
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Type != "Program" {
		return nil, fmt.Errorf("invalid program type: %s", envelope.Type)
	}
	declarations, err := d.decodeDeclarations(envelope.Declarations)
	if err != nil {
		return nil, err
	}
	return NewProgram(d.gauge, declarations), nil
}

type elementEnvelope struct {
	Type string
}

func elementTypeTag(raw json.RawMessage) (string, error) {
	var envelope elementEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", err
	}
	if envelope.Type == "" {
		return "", fmt.Errorf("missing element type")
	}
	return envelope.Type, nil
}

// Common parts

type positionedJSON struct {
	StartPos Position
	EndPos   Position
}

func (j positionedJSON) decodedRange() Range {
	return Range{
		StartPos: j.StartPos,
		EndPos:   j.EndPos,
	}
}

type identifierJSON struct {
	Identifier string
	StartPos   Position
}

func (d *Decoder) decodeIdentifier(j identifierJSON) Identifier {
	return NewIdentifier(d.gauge, j.Identifier, j.StartPos)
}

func (d *Decoder) decodeIdentifiers(js []identifierJSON) []Identifier {
	if js == nil {
		return nil
	}
	result := make([]Identifier, len(js))
	for i, j := range js {
		result[i] = d.decodeIdentifier(j)
	}
	return result
}

func (d *Decoder) decodeOptionalIdentifier(j *identifierJSON) *Identifier {
	if j == nil {
		return nil
	}
	identifier := d.decodeIdentifier(*j)
	return &identifier
}

type typeParameterJSON struct {
	Identifier identifierJSON
}

func (d *Decoder) decodeQualifiedName(js []identifierJSON) QualifiedName {
	if js == nil {
		return nil
	}
	result := make(QualifiedName, len(js))
	for i, j := range js {
		result[i] = d.decodeIdentifier(j)
	}
	return result
}

// Declarations

func (d *Decoder) DecodeDeclaration(raw json.RawMessage) (Declaration, error) {
	tag, err := elementTypeTag(raw)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "ModuleDeclaration":
		return d.decodeModuleDeclaration(raw)
	case "ModuleAliasDeclaration":
		return d.decodeModuleAliasDeclaration(raw)
	case "AbstractModuleDeclaration":
		return d.decodeAbstractModuleDeclaration(raw)
	case "ModuleExportDeclaration":
		return d.decodeModuleExportDeclaration(raw)
	case "ClassDeclaration":
		return d.decodeClassDeclaration(raw)
	case "TraitDeclaration":
		return d.decodeTraitDeclaration(raw)
	case "IteratorDeclaration":
		return d.decodeIteratorDeclaration(raw)
	case "AbstractTypeDeclaration":
		return d.decodeAbstractTypeDeclaration(raw)
	case "SubsetTypeDeclaration":
		return d.decodeSubsetTypeDeclaration(raw)
	case "TypeSynonymDeclaration":
		return d.decodeTypeSynonymDeclaration(raw)
	case "NewtypeDeclaration":
		return d.decodeNewtypeDeclaration(raw)
	case "DatatypeDeclaration":
		return d.decodeDatatypeDeclaration(raw)
	case "TupleTypeDeclaration":
		return d.decodeTupleTypeDeclaration(raw)
	}

	return nil, fmt.Errorf("unsupported declaration type: %s", tag)
}

func (d *Decoder) decodeDeclarations(raws []json.RawMessage) ([]Declaration, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]Declaration, len(raws))
	for i, raw := range raws {
		declaration, err := d.DecodeDeclaration(raw)
		if err != nil {
			return nil, err
		}
		result[i] = declaration
	}
	return result, nil
}

func (d *Decoder) decodeModuleDeclaration(raw json.RawMessage) (*ModuleDeclaration, error) {
	var j struct {
		Identifier   identifierJSON
		Declarations []json.RawMessage
		Attributes   []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	declarations, err := d.decodeDeclarations(j.Declarations)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewModuleDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		declarations,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeModuleAliasDeclaration(raw json.RawMessage) (*ModuleAliasDeclaration, error) {
	var j struct {
		Identifier identifierJSON
		Target     []identifierJSON
		Opened     bool
		Attributes []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewModuleAliasDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeQualifiedName(j.Target),
		j.Opened,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeAbstractModuleDeclaration(raw json.RawMessage) (*AbstractModuleDeclaration, error) {
	var j struct {
		Identifier identifierJSON
		Target     []identifierJSON
		Opened     bool
		Attributes []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewAbstractModuleDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeQualifiedName(j.Target),
		j.Opened,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeModuleExportDeclaration(raw json.RawMessage) (*ModuleExportDeclaration, error) {
	var j struct {
		Identifier identifierJSON
		Provides   []identifierJSON
		Reveals    []identifierJSON
		Extends    []identifierJSON
		Attributes []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewModuleExportDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeIdentifiers(j.Provides),
		d.decodeIdentifiers(j.Reveals),
		d.decodeIdentifiers(j.Extends),
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeClassDeclaration(raw json.RawMessage) (*ClassDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		ParentTraits   []json.RawMessage
		Members        []json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	parentTraits, err := d.decodeNominalTypes(j.ParentTraits)
	if err != nil {
		return nil, err
	}
	members, err := d.decodeMembers(j.Members)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewClassDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		parentTraits,
		members,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeTraitDeclaration(raw json.RawMessage) (*TraitDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		ParentTraits   []json.RawMessage
		Members        []json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	parentTraits, err := d.decodeNominalTypes(j.ParentTraits)
	if err != nil {
		return nil, err
	}
	members, err := d.decodeMembers(j.Members)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewTraitDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		parentTraits,
		members,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeIteratorDeclaration(raw json.RawMessage) (*IteratorDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		Formals        []json.RawMessage
		Outs           []json.RawMessage
		Specification  *json.RawMessage
		Body           *json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	formals, err := d.decodeFormals(j.Formals)
	if err != nil {
		return nil, err
	}
	outs, err := d.decodeFormals(j.Outs)
	if err != nil {
		return nil, err
	}
	specification, err := d.decodeSpecification(j.Specification)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeOptionalBlockStatement(j.Body)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewIteratorDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		formals,
		outs,
		specification,
		body,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeAbstractTypeDeclaration(raw json.RawMessage) (*AbstractTypeDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		ParentTraits   []json.RawMessage
		Members        []json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	parentTraits, err := d.decodeNominalTypes(j.ParentTraits)
	if err != nil {
		return nil, err
	}
	members, err := d.decodeMembers(j.Members)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewAbstractTypeDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		parentTraits,
		members,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeSubsetTypeDeclaration(raw json.RawMessage) (*SubsetTypeDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		Variable       *json.RawMessage
		Constraint     *json.RawMessage
		Witness        *json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	variable, err := d.decodeOptionalFormal(j.Variable)
	if err != nil {
		return nil, err
	}
	constraint, err := d.decodeOptionalExpression(j.Constraint)
	if err != nil {
		return nil, err
	}
	witness, err := d.decodeOptionalExpression(j.Witness)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewSubsetTypeDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		variable,
		constraint,
		witness,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeTypeSynonymDeclaration(raw json.RawMessage) (*TypeSynonymDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeParameters []typeParameterJSON
		Target         *json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	target, err := d.decodeOptionalType(j.Target)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewTypeSynonymDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		d.decodeTypeParameters(j.TypeParameters),
		target,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeNewtypeDeclaration(raw json.RawMessage) (*NewtypeDeclaration, error) {
	var j struct {
		Identifier identifierJSON
		BaseType   *json.RawMessage
		Variable   *json.RawMessage
		Constraint *json.RawMessage
		Witness    *json.RawMessage
		Members    []json.RawMessage
		Attributes []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	baseType, err := d.decodeOptionalType(j.BaseType)
	if err != nil {
		return nil, err
	}
	variable, err := d.decodeOptionalFormal(j.Variable)
	if err != nil {
		return nil, err
	}
	constraint, err := d.decodeOptionalExpression(j.Constraint)
	if err != nil {
		return nil, err
	}
	witness, err := d.decodeOptionalExpression(j.Witness)
	if err != nil {
		return nil, err
	}
	members, err := d.decodeMembers(j.Members)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewNewtypeDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		baseType,
		variable,
		constraint,
		witness,
		members,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeDatatypeDeclaration(raw json.RawMessage) (*DatatypeDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		IsCoDatatype   bool
		TypeParameters []typeParameterJSON
		Cases          []json.RawMessage
		ParentTraits   []json.RawMessage
		Members        []json.RawMessage
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	var cases []*DatatypeCase
	if j.Cases != nil {
		cases = make([]*DatatypeCase, len(j.Cases))
		for i, rawCase := range j.Cases {
			datatypeCase, err := d.decodeDatatypeCase(rawCase)
			if err != nil {
				return nil, err
			}
			cases[i] = datatypeCase
		}
	}
	parentTraits, err := d.decodeNominalTypes(j.ParentTraits)
	if err != nil {
		return nil, err
	}
	members, err := d.decodeMembers(j.Members)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewDatatypeDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		j.IsCoDatatype,
		d.decodeTypeParameters(j.TypeParameters),
		cases,
		parentTraits,
		members,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeDatatypeCase(raw json.RawMessage) (*DatatypeCase, error) {
	var j struct {
		Identifier identifierJSON
		Formals    []json.RawMessage
		Attributes []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	formals, err := d.decodeFormals(j.Formals)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewDatatypeCase(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		formals,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeTupleTypeDeclaration(raw json.RawMessage) (*TupleTypeDeclaration, error) {
	var j struct {
		Identifier        identifierJSON
		Arity             int
		ArgumentGhostness []bool
		Attributes        []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewTupleTypeDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		j.Arity,
		j.ArgumentGhostness,
		attributes,
		j.decodedRange(),
	), nil
}

// Members

func (d *Decoder) DecodeMember(raw json.RawMessage) (Member, error) {
	tag, err := elementTypeTag(raw)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "FieldDeclaration":
		return d.decodeFieldDeclaration(raw)
	case "ConstantFieldDeclaration":
		return d.decodeConstantFieldDeclaration(raw)
	case "SpecialFieldDeclaration":
		return d.decodeSpecialFieldDeclaration(raw)
	case "FunctionDeclaration":
		return d.decodeFunctionDeclaration(raw)
	case "MethodDeclaration":
		return d.decodeMethodDeclaration(raw)
	}

	return nil, fmt.Errorf("unsupported member type: %s", tag)
}

func (d *Decoder) decodeMembers(raws []json.RawMessage) ([]Member, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]Member, len(raws))
	for i, raw := range raws {
		member, err := d.DecodeMember(raw)
		if err != nil {
			return nil, err
		}
		result[i] = member
	}
	return result, nil
}

func (d *Decoder) decodeFieldDeclaration(raw json.RawMessage) (*FieldDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeAnnotation *json.RawMessage
		Ghost          bool
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	typeAnnotation, err := d.decodeOptionalType(j.TypeAnnotation)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFieldDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		typeAnnotation,
		j.Ghost,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeConstantFieldDeclaration(raw json.RawMessage) (*ConstantFieldDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		TypeAnnotation *json.RawMessage
		Value          *json.RawMessage
		Ghost          bool
		Static         bool
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	typeAnnotation, err := d.decodeOptionalType(j.TypeAnnotation)
	if err != nil {
		return nil, err
	}
	value, err := d.decodeOptionalExpression(j.Value)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewConstantFieldDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		typeAnnotation,
		value,
		j.Ghost,
		j.Static,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeSpecialFieldDeclaration(raw json.RawMessage) (*SpecialFieldDeclaration, error) {
	var j struct {
		Kind             common.DeclarationKind
		FieldDeclaration json.RawMessage
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	fieldDeclaration, err := d.decodeFieldDeclaration(j.FieldDeclaration)
	if err != nil {
		return nil, err
	}
	return NewSpecialFieldDeclaration(
		d.gauge,
		j.Kind,
		fieldDeclaration,
	), nil
}

func (d *Decoder) decodeFunctionDeclaration(raw json.RawMessage) (*FunctionDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		IsPredicate    bool
		TypeParameters []typeParameterJSON
		Formals        []json.RawMessage
		Result         *json.RawMessage
		Specification  *json.RawMessage
		Body           *json.RawMessage
		Ghost          bool
		Static         bool
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	formals, err := d.decodeFormals(j.Formals)
	if err != nil {
		return nil, err
	}
	result, err := d.decodeOptionalFormal(j.Result)
	if err != nil {
		return nil, err
	}
	specification, err := d.decodeSpecification(j.Specification)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeOptionalExpression(j.Body)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewFunctionDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		j.IsPredicate,
		d.decodeTypeParameters(j.TypeParameters),
		formals,
		result,
		specification,
		body,
		j.Ghost,
		j.Static,
		attributes,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeMethodDeclaration(raw json.RawMessage) (*MethodDeclaration, error) {
	var j struct {
		Identifier     identifierJSON
		Kind           common.DeclarationKind
		TypeParameters []typeParameterJSON
		Formals        []json.RawMessage
		Outs           []json.RawMessage
		Specification  *json.RawMessage
		Body           *json.RawMessage
		Ghost          bool
		Static         bool
		Attributes     []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	formals, err := d.decodeFormals(j.Formals)
	if err != nil {
		return nil, err
	}
	outs, err := d.decodeFormals(j.Outs)
	if err != nil {
		return nil, err
	}
	specification, err := d.decodeSpecification(j.Specification)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeOptionalBlockStatement(j.Body)
	if err != nil {
		return nil, err
	}
	attributes, err := d.decodeAttributes(j.Attributes)
	if err != nil {
		return nil, err
	}
	return NewMethodDeclaration(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		j.Kind,
		d.decodeTypeParameters(j.TypeParameters),
		formals,
		outs,
		specification,
		body,
		j.Ghost,
		j.Static,
		attributes,
		j.decodedRange(),
	), nil
}

// Statements

func (d *Decoder) DecodeStatement(raw json.RawMessage) (Statement, error) {
	tag, err := elementTypeTag(raw)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "BlockStatement":
		return d.decodeBlockStatement(raw)
	case "ReturnStatement":
		return d.decodeReturnStatement(raw)
	case "BreakStatement":
		return d.decodeBreakStatement(raw)
	case "ContinueStatement":
		return d.decodeContinueStatement(raw)
	case "IfStatement":
		return d.decodeIfStatement(raw)
	case "WhileStatement":
		return d.decodeWhileStatement(raw)
	case "MatchStatement":
		return d.decodeMatchStatement(raw)
	case "AssignmentStatement":
		return d.decodeAssignmentStatement(raw)
	case "VariableDeclarationStatement":
		return d.decodeVariableDeclarationStatement(raw)
	case "AssertStatement":
		return d.decodeAssertStatement(raw)
	case "AssumeStatement":
		return d.decodeAssumeStatement(raw)
	case "PrintStatement":
		return d.decodePrintStatement(raw)
	case "ExpressionStatement":
		return d.decodeExpressionStatement(raw)
	}

	return nil, fmt.Errorf("unsupported statement type: %s", tag)
}

func (d *Decoder) decodeStatements(raws []json.RawMessage) ([]Statement, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]Statement, len(raws))
	for i, raw := range raws {
		statement, err := d.DecodeStatement(raw)
		if err != nil {
			return nil, err
		}
		result[i] = statement
	}
	return result, nil
}

func (d *Decoder) decodeOptionalStatement(raw *json.RawMessage) (Statement, error) {
	if raw == nil {
		return nil, nil
	}
	return d.DecodeStatement(*raw)
}

func (d *Decoder) decodeOptionalBlockStatement(raw *json.RawMessage) (*BlockStatement, error) {
	if raw == nil {
		return nil, nil
	}
	return d.decodeBlockStatement(*raw)
}

func (d *Decoder) decodeBlockStatement(raw json.RawMessage) (*BlockStatement, error) {
	var j struct {
		Statements []json.RawMessage
		Ghost      bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	statements, err := d.decodeStatements(j.Statements)
	if err != nil {
		return nil, err
	}
	return NewBlockStatement(
		d.gauge,
		statements,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeReturnStatement(raw json.RawMessage) (*ReturnStatement, error) {
	var j struct {
		Values []json.RawMessage
		Ghost  bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	values, err := d.decodeExpressions(j.Values)
	if err != nil {
		return nil, err
	}
	return NewReturnStatement(
		d.gauge,
		values,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeBreakStatement(raw json.RawMessage) (*BreakStatement, error) {
	var j struct {
		Ghost bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewBreakStatement(
		d.gauge,
		nil,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeContinueStatement(raw json.RawMessage) (*ContinueStatement, error) {
	var j struct {
		Ghost bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewContinueStatement(
		d.gauge,
		nil,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeIfStatement(raw json.RawMessage) (*IfStatement, error) {
	var j struct {
		Test  *json.RawMessage
		Then  *json.RawMessage
		Else  *json.RawMessage
		Ghost bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	test, err := d.decodeOptionalExpression(j.Test)
	if err != nil {
		return nil, err
	}
	thenBlock, err := d.decodeOptionalBlockStatement(j.Then)
	if err != nil {
		return nil, err
	}
	elseStatement, err := d.decodeOptionalStatement(j.Else)
	if err != nil {
		return nil, err
	}
	return NewIfStatement(
		d.gauge,
		test,
		thenBlock,
		elseStatement,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeWhileStatement(raw json.RawMessage) (*WhileStatement, error) {
	var j struct {
		Test       *json.RawMessage
		Invariants []json.RawMessage
		Decreases  []json.RawMessage
		Body       *json.RawMessage
		Ghost      bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	test, err := d.decodeOptionalExpression(j.Test)
	if err != nil {
		return nil, err
	}
	invariants, err := d.decodeSpecClauses(j.Invariants)
	if err != nil {
		return nil, err
	}
	decreases, err := d.decodeExpressions(j.Decreases)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeOptionalBlockStatement(j.Body)
	if err != nil {
		return nil, err
	}
	return NewWhileStatement(
		d.gauge,
		test,
		invariants,
		decreases,
		body,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeMatchStatement(raw json.RawMessage) (*MatchStatement, error) {
	var j struct {
		Source *json.RawMessage
		Cases  []json.RawMessage
		Ghost  bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, err := d.decodeOptionalExpression(j.Source)
	if err != nil {
		return nil, err
	}
	var cases []*MatchCase
	if j.Cases != nil {
		cases = make([]*MatchCase, len(j.Cases))
		for i, rawCase := range j.Cases {
			matchCase, err := d.decodeMatchCase(rawCase)
			if err != nil {
				return nil, err
			}
			cases[i] = matchCase
		}
	}
	return NewMatchStatement(
		d.gauge,
		source,
		cases,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeMatchCase(raw json.RawMessage) (*MatchCase, error) {
	var j struct {
		Pattern *json.RawMessage
		Body    *json.RawMessage
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	pattern, err := d.decodeOptionalCasePattern(j.Pattern)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeOptionalBlockStatement(j.Body)
	if err != nil {
		return nil, err
	}
	return NewMatchCase(
		d.gauge,
		pattern,
		body,
	), nil
}

func (d *Decoder) decodeOptionalCasePattern(raw *json.RawMessage) (*CasePattern, error) {
	if raw == nil {
		return nil, nil
	}
	var j struct {
		Identifier *identifierJSON
		Arguments  []json.RawMessage
		Var        *json.RawMessage
	}
	if err := json.Unmarshal(*raw, &j); err != nil {
		return nil, err
	}
	var arguments []*CasePattern
	if j.Arguments != nil {
		arguments = make([]*CasePattern, len(j.Arguments))
		for i, rawArgument := range j.Arguments {
			rawArgument := rawArgument
			argument, err := d.decodeOptionalCasePattern(&rawArgument)
			if err != nil {
				return nil, err
			}
			arguments[i] = argument
		}
	}
	variable, err := d.decodeOptionalFormal(j.Var)
	if err != nil {
		return nil, err
	}
	return NewCasePattern(
		d.gauge,
		d.decodeOptionalIdentifier(j.Identifier),
		arguments,
		variable,
	), nil
}

func (d *Decoder) decodeAssignmentStatement(raw json.RawMessage) (*AssignmentStatement, error) {
	var j struct {
		Targets []json.RawMessage
		Values  []json.RawMessage
		Ghost   bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	targets, err := d.decodeExpressions(j.Targets)
	if err != nil {
		return nil, err
	}
	values, err := d.decodeExpressions(j.Values)
	if err != nil {
		return nil, err
	}
	return NewAssignmentStatement(
		d.gauge,
		targets,
		values,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeVariableDeclarationStatement(raw json.RawMessage) (*VariableDeclarationStatement, error) {
	var j struct {
		Variables []json.RawMessage
		Values    []json.RawMessage
		Ghost     bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	variables, err := d.decodeFormals(j.Variables)
	if err != nil {
		return nil, err
	}
	values, err := d.decodeExpressions(j.Values)
	if err != nil {
		return nil, err
	}
	return NewVariableDeclarationStatement(
		d.gauge,
		variables,
		values,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeAssertStatement(raw json.RawMessage) (*AssertStatement, error) {
	var j struct {
		Test  *json.RawMessage
		Label *identifierJSON
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	test, err := d.decodeOptionalExpression(j.Test)
	if err != nil {
		return nil, err
	}
	return NewAssertStatement(
		d.gauge,
		test,
		d.decodeOptionalIdentifier(j.Label),
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeAssumeStatement(raw json.RawMessage) (*AssumeStatement, error) {
	var j struct {
		Test *json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	test, err := d.decodeOptionalExpression(j.Test)
	if err != nil {
		return nil, err
	}
	return NewAssumeStatement(
		d.gauge,
		test,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodePrintStatement(raw json.RawMessage) (*PrintStatement, error) {
	var j struct {
		Arguments []json.RawMessage
		Ghost     bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	arguments, err := d.decodeExpressions(j.Arguments)
	if err != nil {
		return nil, err
	}
	return NewPrintStatement(
		d.gauge,
		arguments,
		j.Ghost,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeExpressionStatement(raw json.RawMessage) (*ExpressionStatement, error) {
	var j struct {
		Expression *json.RawMessage
		Ghost      bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	expression, err := d.decodeOptionalExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewExpressionStatement(
		d.gauge,
		expression,
		j.Ghost,
		j.decodedRange(),
	), nil
}

// Expressions

func (d *Decoder) DecodeExpression(raw json.RawMessage) (Expression, error) {
	tag, err := elementTypeTag(raw)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "IdentifierExpression":
		return d.decodeIdentifierExpression(raw)
	case "SelfExpression":
		return d.decodeSelfExpression(raw)
	case "MemberExpression":
		return d.decodeMemberExpression(raw)
	case "InvocationExpression":
		return d.decodeInvocationExpression(raw)
	case "IndexExpression":
		return d.decodeIndexExpression(raw)
	case "BinaryExpression":
		return d.decodeBinaryExpression(raw)
	case "UnaryExpression":
		return d.decodeUnaryExpression(raw)
	case "IntegerExpression":
		return d.decodeIntegerExpression(raw)
	case "BoolExpression":
		return d.decodeBoolExpression(raw)
	case "StringExpression":
		return d.decodeStringExpression(raw)
	case "NilExpression":
		return d.decodeNilExpression(raw)
	case "ConditionalExpression":
		return d.decodeConditionalExpression(raw)
	case "OldExpression":
		return d.decodeOldExpression(raw)
	case "FreshExpression":
		return d.decodeFreshExpression(raw)
	case "QuantifierExpression":
		return d.decodeQuantifierExpression(raw)
	case "SequenceExpression":
		return d.decodeSequenceExpression(raw)
	}

	return nil, fmt.Errorf("unsupported expression type: %s", tag)
}

func (d *Decoder) decodeExpressions(raws []json.RawMessage) ([]Expression, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]Expression, len(raws))
	for i, raw := range raws {
		expression, err := d.DecodeExpression(raw)
		if err != nil {
			return nil, err
		}
		result[i] = expression
	}
	return result, nil
}

func (d *Decoder) decodeOptionalExpression(raw *json.RawMessage) (Expression, error) {
	if raw == nil {
		return nil, nil
	}
	return d.DecodeExpression(*raw)
}

func (d *Decoder) decodeIdentifierExpression(raw json.RawMessage) (*IdentifierExpression, error) {
	var j struct {
		Identifier identifierJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewIdentifierExpression(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
	), nil
}

func (d *Decoder) decodeSelfExpression(raw json.RawMessage) (*SelfExpression, error) {
	var j positionedJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewSelfExpression(d.gauge, j.StartPos), nil
}

func (d *Decoder) decodeMemberExpression(raw json.RawMessage) (*MemberExpression, error) {
	var j struct {
		Expression json.RawMessage
		Identifier identifierJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	expression, err := d.DecodeExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewMemberExpression(
		d.gauge,
		expression,
		d.decodeIdentifier(j.Identifier),
	), nil
}

func (d *Decoder) decodeInvocationExpression(raw json.RawMessage) (*InvocationExpression, error) {
	var j struct {
		InvokedExpression json.RawMessage
		TypeArguments     []json.RawMessage
		Arguments         []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	invokedExpression, err := d.DecodeExpression(j.InvokedExpression)
	if err != nil {
		return nil, err
	}
	typeArguments, err := d.decodeTypes(j.TypeArguments)
	if err != nil {
		return nil, err
	}
	arguments, err := d.decodeExpressions(j.Arguments)
	if err != nil {
		return nil, err
	}
	return NewInvocationExpression(
		d.gauge,
		invokedExpression,
		typeArguments,
		arguments,
		j.EndPos,
	), nil
}

func (d *Decoder) decodeIndexExpression(raw json.RawMessage) (*IndexExpression, error) {
	var j struct {
		TargetExpression   json.RawMessage
		IndexingExpression json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	target, err := d.DecodeExpression(j.TargetExpression)
	if err != nil {
		return nil, err
	}
	index, err := d.DecodeExpression(j.IndexingExpression)
	if err != nil {
		return nil, err
	}
	return NewIndexExpression(
		d.gauge,
		target,
		index,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeBinaryExpression(raw json.RawMessage) (*BinaryExpression, error) {
	var j struct {
		Operation Operation
		Left      json.RawMessage
		Right     json.RawMessage
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	left, err := d.DecodeExpression(j.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.DecodeExpression(j.Right)
	if err != nil {
		return nil, err
	}
	return NewBinaryExpression(
		d.gauge,
		j.Operation,
		left,
		right,
	), nil
}

func (d *Decoder) decodeUnaryExpression(raw json.RawMessage) (*UnaryExpression, error) {
	var j struct {
		Operation  Operation
		Expression json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	expression, err := d.DecodeExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewUnaryExpression(
		d.gauge,
		j.Operation,
		expression,
		j.StartPos,
	), nil
}

func (d *Decoder) decodeIntegerExpression(raw json.RawMessage) (*IntegerExpression, error) {
	var j struct {
		Value string
		Base  int
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	value, ok := new(big.Int).SetString(j.Value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer value: %s", j.Value)
	}
	return NewIntegerExpression(
		d.gauge,
		value,
		j.Base,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeBoolExpression(raw json.RawMessage) (*BoolExpression, error) {
	var j struct {
		Value bool
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewBoolExpression(
		d.gauge,
		j.Value,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeStringExpression(raw json.RawMessage) (*StringExpression, error) {
	var j struct {
		Value string
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewStringExpression(
		d.gauge,
		j.Value,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeNilExpression(raw json.RawMessage) (*NilExpression, error) {
	var j positionedJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return NewNilExpression(d.gauge, j.StartPos), nil
}

func (d *Decoder) decodeConditionalExpression(raw json.RawMessage) (*ConditionalExpression, error) {
	var j struct {
		Test json.RawMessage
		Then json.RawMessage
		Else json.RawMessage
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	test, err := d.DecodeExpression(j.Test)
	if err != nil {
		return nil, err
	}
	then, err := d.DecodeExpression(j.Then)
	if err != nil {
		return nil, err
	}
	elseExpression, err := d.DecodeExpression(j.Else)
	if err != nil {
		return nil, err
	}
	return NewConditionalExpression(
		d.gauge,
		test,
		then,
		elseExpression,
	), nil
}

func (d *Decoder) decodeOldExpression(raw json.RawMessage) (*OldExpression, error) {
	var j struct {
		Expression json.RawMessage
		Label      *identifierJSON
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	expression, err := d.DecodeExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewOldExpression(
		d.gauge,
		expression,
		d.decodeOptionalIdentifier(j.Label),
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeFreshExpression(raw json.RawMessage) (*FreshExpression, error) {
	var j struct {
		Expression json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	expression, err := d.DecodeExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewFreshExpression(
		d.gauge,
		expression,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeQuantifierExpression(raw json.RawMessage) (*QuantifierExpression, error) {
	var j struct {
		IsForall       bool
		BoundVariables []json.RawMessage
		Condition      *json.RawMessage
		Expression     json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	boundVariables, err := d.decodeFormals(j.BoundVariables)
	if err != nil {
		return nil, err
	}
	condition, err := d.decodeOptionalExpression(j.Condition)
	if err != nil {
		return nil, err
	}
	expression, err := d.DecodeExpression(j.Expression)
	if err != nil {
		return nil, err
	}
	return NewQuantifierExpression(
		d.gauge,
		j.IsForall,
		boundVariables,
		condition,
		expression,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeSequenceExpression(raw json.RawMessage) (*SequenceExpression, error) {
	var j struct {
		Values []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	values, err := d.decodeExpressions(j.Values)
	if err != nil {
		return nil, err
	}
	return NewSequenceExpression(
		d.gauge,
		values,
		j.decodedRange(),
	), nil
}

// Types

func (d *Decoder) DecodeType(raw json.RawMessage) (Type, error) {
	tag, err := elementTypeTag(raw)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "NominalType":
		return d.decodeNominalType(raw)
	case "TupleType":
		return d.decodeTupleType(raw)
	case "FunctionType":
		return d.decodeFunctionType(raw)
	case "SequenceType":
		return d.decodeSequenceType(raw)
	case "MapType":
		return d.decodeMapType(raw)
	}

	return nil, fmt.Errorf("unsupported type: %s", tag)
}

func (d *Decoder) decodeTypes(raws []json.RawMessage) ([]Type, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]Type, len(raws))
	for i, raw := range raws {
		ty, err := d.DecodeType(raw)
		if err != nil {
			return nil, err
		}
		result[i] = ty
	}
	return result, nil
}

func (d *Decoder) decodeOptionalType(raw *json.RawMessage) (Type, error) {
	if raw == nil {
		return nil, nil
	}
	return d.DecodeType(*raw)
}

func (d *Decoder) decodeNominalType(raw json.RawMessage) (*NominalType, error) {
	var j struct {
		Qualifier     []identifierJSON
		Identifier    identifierJSON
		TypeArguments []json.RawMessage
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	typeArguments, err := d.decodeTypes(j.TypeArguments)
	if err != nil {
		return nil, err
	}
	return NewNominalType(
		d.gauge,
		d.decodeQualifiedName(j.Qualifier),
		d.decodeIdentifier(j.Identifier),
		typeArguments,
	), nil
}

func (d *Decoder) decodeNominalTypes(raws []json.RawMessage) ([]*NominalType, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]*NominalType, len(raws))
	for i, raw := range raws {
		ty, err := d.decodeNominalType(raw)
		if err != nil {
			return nil, err
		}
		result[i] = ty
	}
	return result, nil
}

func (d *Decoder) decodeTupleType(raw json.RawMessage) (*TupleType, error) {
	var j struct {
		Types []json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	types, err := d.decodeTypes(j.Types)
	if err != nil {
		return nil, err
	}
	return NewTupleType(
		d.gauge,
		types,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeFunctionType(raw json.RawMessage) (*FunctionType, error) {
	var j struct {
		ParameterTypes []json.RawMessage
		ReturnType     *json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	parameterTypes, err := d.decodeTypes(j.ParameterTypes)
	if err != nil {
		return nil, err
	}
	returnType, err := d.decodeOptionalType(j.ReturnType)
	if err != nil {
		return nil, err
	}
	return NewFunctionType(
		d.gauge,
		parameterTypes,
		returnType,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeSequenceType(raw json.RawMessage) (*SequenceType, error) {
	var j struct {
		ElementType json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	elementType, err := d.DecodeType(j.ElementType)
	if err != nil {
		return nil, err
	}
	return NewSequenceType(
		d.gauge,
		elementType,
		j.decodedRange(),
	), nil
}

func (d *Decoder) decodeMapType(raw json.RawMessage) (*MapType, error) {
	var j struct {
		KeyType   json.RawMessage
		ValueType json.RawMessage
		positionedJSON
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	keyType, err := d.DecodeType(j.KeyType)
	if err != nil {
		return nil, err
	}
	valueType, err := d.DecodeType(j.ValueType)
	if err != nil {
		return nil, err
	}
	return NewMapType(
		d.gauge,
		keyType,
		valueType,
		j.decodedRange(),
	), nil
}

// Formals, specifications, attributes

func (d *Decoder) decodeFormal(raw json.RawMessage) (*Formal, error) {
	var j struct {
		Identifier     identifierJSON
		TypeAnnotation *json.RawMessage
		Ghost          bool
		DefaultValue   *json.RawMessage
		IsOld          bool
		InParam        bool
		NameOnly       bool
		Older          bool
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	ty, err := d.decodeOptionalType(j.TypeAnnotation)
	if err != nil {
		return nil, err
	}
	defaultValue, err := d.decodeOptionalExpression(j.DefaultValue)
	if err != nil {
		return nil, err
	}
	formal := NewFormal(
		d.gauge,
		d.decodeIdentifier(j.Identifier),
		ty,
		j.Ghost,
		defaultValue,
	)
	formal.IsOld = j.IsOld
	formal.InParam = j.InParam
	formal.NameOnly = j.NameOnly
	formal.Older = j.Older
	return formal, nil
}

func (d *Decoder) decodeFormals(raws []json.RawMessage) ([]*Formal, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]*Formal, len(raws))
	for i, raw := range raws {
		formal, err := d.decodeFormal(raw)
		if err != nil {
			return nil, err
		}
		result[i] = formal
	}
	return result, nil
}

func (d *Decoder) decodeOptionalFormal(raw *json.RawMessage) (*Formal, error) {
	if raw == nil {
		return nil, nil
	}
	return d.decodeFormal(*raw)
}

func (d *Decoder) decodeTypeParameters(js []typeParameterJSON) []*TypeParameter {
	if js == nil {
		return nil
	}
	result := make([]*TypeParameter, len(js))
	for i, j := range js {
		result[i] = NewTypeParameter(
			d.gauge,
			d.decodeIdentifier(j.Identifier),
		)
	}
	return result
}

func (d *Decoder) decodeSpecification(raw *json.RawMessage) (*Specification, error) {
	if raw == nil {
		return nil, nil
	}
	var j struct {
		Requires  []json.RawMessage
		Ensures   []json.RawMessage
		Reads     []json.RawMessage
		Modifies  []json.RawMessage
		Decreases []json.RawMessage
	}
	if err := json.Unmarshal(*raw, &j); err != nil {
		return nil, err
	}
	requires, err := d.decodeSpecClauses(j.Requires)
	if err != nil {
		return nil, err
	}
	ensures, err := d.decodeSpecClauses(j.Ensures)
	if err != nil {
		return nil, err
	}
	reads, err := d.decodeFrameExpressions(j.Reads)
	if err != nil {
		return nil, err
	}
	modifies, err := d.decodeFrameExpressions(j.Modifies)
	if err != nil {
		return nil, err
	}
	decreases, err := d.decodeExpressions(j.Decreases)
	if err != nil {
		return nil, err
	}
	return NewSpecification(
		d.gauge,
		requires,
		ensures,
		reads,
		modifies,
		decreases,
	), nil
}

func (d *Decoder) decodeSpecClauses(raws []json.RawMessage) ([]*SpecClause, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]*SpecClause, len(raws))
	for i, raw := range raws {
		var j struct {
			Expression json.RawMessage
			Injected   bool
		}
		if err := json.Unmarshal(raw, &j); err != nil {
			return nil, err
		}
		expression, err := d.DecodeExpression(j.Expression)
		if err != nil {
			return nil, err
		}
		result[i] = NewSpecClause(
			d.gauge,
			expression,
			j.Injected,
		)
	}
	return result, nil
}

func (d *Decoder) decodeFrameExpressions(raws []json.RawMessage) ([]*FrameExpression, error) {
	if raws == nil {
		return nil, nil
	}
	result := make([]*FrameExpression, len(raws))
	for i, raw := range raws {
		var j struct {
			Expression json.RawMessage
			FieldName  string
		}
		if err := json.Unmarshal(raw, &j); err != nil {
			return nil, err
		}
		expression, err := d.DecodeExpression(j.Expression)
		if err != nil {
			return nil, err
		}
		result[i] = NewFrameExpression(
			d.gauge,
			expression,
			j.FieldName,
		)
	}
	return result, nil
}

func (d *Decoder) decodeAttributes(raws []json.RawMessage) (Attributes, error) {
	if raws == nil {
		return nil, nil
	}
	result := make(Attributes, len(raws))
	for i, raw := range raws {
		var j struct {
			Identifier identifierJSON
			Arguments  []json.RawMessage
			positionedJSON
		}
		if err := json.Unmarshal(raw, &j); err != nil {
			return nil, err
		}
		arguments, err := d.decodeExpressions(j.Arguments)
		if err != nil {
			return nil, err
		}
		result[i] = NewAttribute(
			d.gauge,
			d.decodeIdentifier(j.Identifier),
			arguments,
			j.decodedRange(),
		)
	}
	return result, nil
}
