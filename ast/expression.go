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
	"math/big"
	"strconv"

	"github.com/turbolent/prettier"

	"github.com/veridian-lang/veridian/common"
)

type Expression interface {
	Element
	isExpression()
	Doc() prettier.Doc
	String() string
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
	// Formal is the resolved binding of the identifier,
	// if it names a formal parameter or local variable.
	Formal *Formal `json:"-"`
}

var _ Element = &IdentifierExpression{}
var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
) *IdentifierExpression {
	common.UseMemory(memoryGauge, common.IdentifierExpressionMemoryUsage)

	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) String() string {
	return Prettier(e)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// SelfExpression

type SelfExpression struct {
	Pos Position `json:"-"`
}

var _ Element = &SelfExpression{}
var _ Expression = &SelfExpression{}

func NewSelfExpression(
	memoryGauge common.MemoryGauge,
	pos Position,
) *SelfExpression {
	common.UseMemory(memoryGauge, common.SelfExpressionMemoryUsage)

	return &SelfExpression{
		Pos: pos,
	}
}

func (*SelfExpression) isExpression() {}

func (*SelfExpression) ElementType() ElementType {
	return ElementTypeSelfExpression
}

func (*SelfExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *SelfExpression) StartPosition() Position {
	return e.Pos
}

func (e *SelfExpression) EndPosition() Position {
	return e.Pos.Shifted(len(SelfKeyword) - 1)
}

const SelfKeyword = "this"

const selfExpressionDoc = prettier.Text(SelfKeyword)

func (*SelfExpression) Doc() prettier.Doc {
	return selfExpressionDoc
}

func (e *SelfExpression) String() string {
	return Prettier(e)
}

func (e *SelfExpression) MarshalJSON() ([]byte, error) {
	type Alias SelfExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "SelfExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Element = &MemberExpression{}
var _ Expression = &MemberExpression{}

func NewMemberExpression(
	memoryGauge common.MemoryGauge,
	expression Expression,
	identifier Identifier,
) *MemberExpression {
	common.UseMemory(memoryGauge, common.MemberExpressionMemoryUsage)

	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
	}
}

func (*MemberExpression) isExpression() {}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("."),
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MemberExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	TypeArguments     []Type
	Arguments         []Expression
	EndPos            Position `json:"-"`
}

var _ Element = &InvocationExpression{}
var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	memoryGauge common.MemoryGauge,
	invokedExpression Expression,
	typeArguments []Type,
	arguments []Expression,
	endPos Position,
) *InvocationExpression {
	common.UseMemory(memoryGauge, common.InvocationExpressionMemoryUsage)

	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		TypeArguments:     typeArguments,
		Arguments:         arguments,
		EndPos:            endPos,
	}
}

func (*InvocationExpression) isExpression() {}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	for _, argument := range e.Arguments {
		walkChild(argument)
	}
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) Doc() prettier.Doc {
	result := prettier.Concat{
		e.InvokedExpression.Doc(),
		prettier.Text("("),
	}
	for i, argument := range e.Arguments {
		if i > 0 {
			result = append(result, prettier.Text(", "))
		}
		result = append(result, argument.Doc())
	}
	return append(result, prettier.Text(")"))
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "InvocationExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IndexExpression

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	Range
}

var _ Element = &IndexExpression{}
var _ Expression = &IndexExpression{}

func NewIndexExpression(
	memoryGauge common.MemoryGauge,
	target Expression,
	index Expression,
	exprRange Range,
) *IndexExpression {
	common.UseMemory(memoryGauge, common.IndexExpressionMemoryUsage)

	return &IndexExpression{
		TargetExpression:   target,
		IndexingExpression: index,
		Range:              exprRange,
	}
}

func (*IndexExpression) isExpression() {}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkChild(e.TargetExpression)
	walkChild(e.IndexingExpression)
}

func (e *IndexExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.TargetExpression.Doc(),
		prettier.Text("["),
		e.IndexingExpression.Doc(),
		prettier.Text("]"),
	}
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IndexExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Element = &BinaryExpression{}
var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	memoryGauge common.MemoryGauge,
	operation Operation,
	left Expression,
	right Expression,
) *BinaryExpression {
	common.UseMemory(memoryGauge, common.BinaryExpressionMemoryUsage)

	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func (*BinaryExpression) isExpression() {}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			e.Left.Doc(),
			prettier.Space,
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			e.Right.Doc(),
		},
	}
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BinaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Element = &UnaryExpression{}
var _ Expression = &UnaryExpression{}

func NewUnaryExpression(
	memoryGauge common.MemoryGauge,
	operation Operation,
	expression Expression,
	startPos Position,
) *UnaryExpression {
	common.UseMemory(memoryGauge, common.UnaryExpressionMemoryUsage)

	return &UnaryExpression{
		Operation:  operation,
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*UnaryExpression) isExpression() {}

func (*UnaryExpression) ElementType() ElementType {
	return ElementTypeUnaryExpression
}

func (e *UnaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		e.Expression.Doc(),
	}
}

func (e *UnaryExpression) String() string {
	return Prettier(e)
}

func (e *UnaryExpression) MarshalJSON() ([]byte, error) {
	type Alias UnaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "UnaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IntegerExpression

type IntegerExpression struct {
	Value *big.Int
	Base  int
	Range
}

var _ Element = &IntegerExpression{}
var _ Expression = &IntegerExpression{}

func NewIntegerExpression(
	memoryGauge common.MemoryGauge,
	value *big.Int,
	base int,
	exprRange Range,
) *IntegerExpression {
	common.UseMemory(memoryGauge, common.IntegerExpressionMemoryUsage)

	return &IntegerExpression{
		Value: value,
		Base:  base,
		Range: exprRange,
	}
}

func (*IntegerExpression) isExpression() {}

func (*IntegerExpression) ElementType() ElementType {
	return ElementTypeIntegerExpression
}

func (*IntegerExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.Value.String())
}

func (e *IntegerExpression) String() string {
	return Prettier(e)
}

func (e *IntegerExpression) MarshalJSON() ([]byte, error) {
	type Alias IntegerExpression
	return json.Marshal(&struct {
		Type  string
		Value string
		Range
		*Alias
	}{
		Type:  "IntegerExpression",
		Value: e.Value.String(),
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Element = &BoolExpression{}
var _ Expression = &BoolExpression{}

func NewBoolExpression(
	memoryGauge common.MemoryGauge,
	value bool,
	exprRange Range,
) *BoolExpression {
	common.UseMemory(memoryGauge, common.BoolExpressionMemoryUsage)

	return &BoolExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return prettier.Text("true")
	}
	return prettier.Text("false")
}

func (e *BoolExpression) String() string {
	return Prettier(e)
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BoolExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Element = &StringExpression{}
var _ Expression = &StringExpression{}

func NewStringExpression(
	memoryGauge common.MemoryGauge,
	value string,
	exprRange Range,
) *StringExpression {
	common.UseMemory(memoryGauge, common.StringExpressionMemoryUsage)

	return &StringExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*StringExpression) isExpression() {}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(strconv.Quote(e.Value))
}

func (e *StringExpression) String() string {
	return Prettier(e)
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "StringExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// NilExpression

type NilExpression struct {
	Pos Position `json:"-"`
}

var _ Element = &NilExpression{}
var _ Expression = &NilExpression{}

func NewNilExpression(
	memoryGauge common.MemoryGauge,
	pos Position,
) *NilExpression {
	common.UseMemory(memoryGauge, common.NilExpressionMemoryUsage)

	return &NilExpression{
		Pos: pos,
	}
}

func (*NilExpression) isExpression() {}

func (*NilExpression) ElementType() ElementType {
	return ElementTypeNilExpression
}

func (*NilExpression) Walk(_ func(Element)) {
	// NO-OP
}

const NilKeyword = "null"

func (e *NilExpression) StartPosition() Position {
	return e.Pos
}

func (e *NilExpression) EndPosition() Position {
	return e.Pos.Shifted(len(NilKeyword) - 1)
}

const nilExpressionDoc = prettier.Text(NilKeyword)

func (*NilExpression) Doc() prettier.Doc {
	return nilExpressionDoc
}

func (e *NilExpression) String() string {
	return Prettier(e)
}

func (e *NilExpression) MarshalJSON() ([]byte, error) {
	type Alias NilExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NilExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// ConditionalExpression

type ConditionalExpression struct {
	Test Expression
	Then Expression
	Else Expression
}

var _ Element = &ConditionalExpression{}
var _ Expression = &ConditionalExpression{}

func NewConditionalExpression(
	memoryGauge common.MemoryGauge,
	test Expression,
	then Expression,
	elseExpression Expression,
) *ConditionalExpression {
	common.UseMemory(memoryGauge, common.ConditionalExpressionMemoryUsage)

	return &ConditionalExpression{
		Test: test,
		Then: then,
		Else: elseExpression,
	}
}

func (*ConditionalExpression) isExpression() {}

func (*ConditionalExpression) ElementType() ElementType {
	return ElementTypeConditionalExpression
}

func (e *ConditionalExpression) Walk(walkChild func(Element)) {
	walkChild(e.Test)
	walkChild(e.Then)
	walkChild(e.Else)
}

func (e *ConditionalExpression) StartPosition() Position {
	return e.Test.StartPosition()
}

func (e *ConditionalExpression) EndPosition() Position {
	return e.Else.EndPosition()
}

func (e *ConditionalExpression) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("if "),
			e.Test.Doc(),
			prettier.Text(" then "),
			e.Then.Doc(),
			prettier.Text(" else "),
			e.Else.Doc(),
		},
	}
}

func (e *ConditionalExpression) String() string {
	return Prettier(e)
}

func (e *ConditionalExpression) MarshalJSON() ([]byte, error) {
	type Alias ConditionalExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ConditionalExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// OldExpression refers to the pre-state value of an expression
// in a postcondition.

type OldExpression struct {
	Expression Expression
	Label      *Identifier
	Range
}

var _ Element = &OldExpression{}
var _ Expression = &OldExpression{}

func NewOldExpression(
	memoryGauge common.MemoryGauge,
	expression Expression,
	label *Identifier,
	exprRange Range,
) *OldExpression {
	common.UseMemory(memoryGauge, common.OldExpressionMemoryUsage)

	return &OldExpression{
		Expression: expression,
		Label:      label,
		Range:      exprRange,
	}
}

func (*OldExpression) isExpression() {}

func (*OldExpression) ElementType() ElementType {
	return ElementTypeOldExpression
}

func (e *OldExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *OldExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("old("),
		e.Expression.Doc(),
		prettier.Text(")"),
	}
}

func (e *OldExpression) String() string {
	return Prettier(e)
}

func (e *OldExpression) MarshalJSON() ([]byte, error) {
	type Alias OldExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "OldExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// FreshExpression asserts that an object was allocated
// by the enclosing method.

type FreshExpression struct {
	Expression Expression
	Range
}

var _ Element = &FreshExpression{}
var _ Expression = &FreshExpression{}

func NewFreshExpression(
	memoryGauge common.MemoryGauge,
	expression Expression,
	exprRange Range,
) *FreshExpression {
	common.UseMemory(memoryGauge, common.FreshExpressionMemoryUsage)

	return &FreshExpression{
		Expression: expression,
		Range:      exprRange,
	}
}

func (*FreshExpression) isExpression() {}

func (*FreshExpression) ElementType() ElementType {
	return ElementTypeFreshExpression
}

func (e *FreshExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *FreshExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("fresh("),
		e.Expression.Doc(),
		prettier.Text(")"),
	}
}

func (e *FreshExpression) String() string {
	return Prettier(e)
}

func (e *FreshExpression) MarshalJSON() ([]byte, error) {
	type Alias FreshExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FreshExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// QuantifierExpression

type QuantifierExpression struct {
	IsForall       bool
	BoundVariables []*Formal
	Condition      Expression
	Expression     Expression
	Range
}

var _ Element = &QuantifierExpression{}
var _ Expression = &QuantifierExpression{}

func NewQuantifierExpression(
	memoryGauge common.MemoryGauge,
	isForall bool,
	boundVariables []*Formal,
	condition Expression,
	expression Expression,
	exprRange Range,
) *QuantifierExpression {
	common.UseMemory(memoryGauge, common.QuantifierExpressionMemoryUsage)

	return &QuantifierExpression{
		IsForall:       isForall,
		BoundVariables: boundVariables,
		Condition:      condition,
		Expression:     expression,
		Range:          exprRange,
	}
}

func (*QuantifierExpression) isExpression() {}

func (*QuantifierExpression) ElementType() ElementType {
	return ElementTypeQuantifierExpression
}

func (e *QuantifierExpression) Walk(walkChild func(Element)) {
	if e.Condition != nil {
		walkChild(e.Condition)
	}
	walkChild(e.Expression)
}

func (e *QuantifierExpression) Doc() prettier.Doc {
	keyword := "exists"
	if e.IsForall {
		keyword = "forall"
	}
	result := prettier.Concat{
		prettier.Text(keyword),
		prettier.Space,
	}
	for i, boundVariable := range e.BoundVariables {
		if i > 0 {
			result = append(result, prettier.Text(", "))
		}
		result = append(result, boundVariable.Doc())
	}
	if e.Condition != nil {
		result = append(result,
			prettier.Text(" | "),
			e.Condition.Doc(),
		)
	}
	return append(result,
		prettier.Text(" :: "),
		e.Expression.Doc(),
	)
}

func (e *QuantifierExpression) String() string {
	return Prettier(e)
}

func (e *QuantifierExpression) MarshalJSON() ([]byte, error) {
	type Alias QuantifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "QuantifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// SequenceExpression

type SequenceExpression struct {
	Values []Expression
	Range
}

var _ Element = &SequenceExpression{}
var _ Expression = &SequenceExpression{}

func NewSequenceExpression(
	memoryGauge common.MemoryGauge,
	values []Expression,
	exprRange Range,
) *SequenceExpression {
	common.UseMemory(memoryGauge, common.SequenceExpressionMemoryUsage)

	return &SequenceExpression{
		Values: values,
		Range:  exprRange,
	}
}

func (*SequenceExpression) isExpression() {}

func (*SequenceExpression) ElementType() ElementType {
	return ElementTypeSequenceExpression
}

func (e *SequenceExpression) Walk(walkChild func(Element)) {
	for _, value := range e.Values {
		walkChild(value)
	}
}

func (e *SequenceExpression) Doc() prettier.Doc {
	result := prettier.Concat{
		prettier.Text("["),
	}
	for i, value := range e.Values {
		if i > 0 {
			result = append(result, prettier.Text(", "))
		}
		result = append(result, value.Doc())
	}
	return append(result, prettier.Text("]"))
}

func (e *SequenceExpression) String() string {
	return Prettier(e)
}

func (e *SequenceExpression) MarshalJSON() ([]byte, error) {
	type Alias SequenceExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "SequenceExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}
