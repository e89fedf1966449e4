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

type Statement interface {
	Element
	isStatement()
	IsGhost() bool
}

// BlockStatement

type BlockStatement struct {
	Statements []Statement
	Ghost      bool
	Range
}

var _ Element = &BlockStatement{}
var _ Statement = &BlockStatement{}

func NewBlockStatement(
	memoryGauge common.MemoryGauge,
	statements []Statement,
	ghost bool,
	stmtRange Range,
) *BlockStatement {
	common.UseMemory(memoryGauge, common.BlockStatementMemoryUsage)

	return &BlockStatement{
		Statements: statements,
		Ghost:      ghost,
		Range:      stmtRange,
	}
}

func (*BlockStatement) isStatement() {}

func (*BlockStatement) ElementType() ElementType {
	return ElementTypeBlockStatement
}

func (s *BlockStatement) IsGhost() bool {
	return s.Ghost
}

func (s *BlockStatement) Walk(walkChild func(Element)) {
	walkStatements(walkChild, s.Statements)
}

func (s *BlockStatement) MarshalJSON() ([]byte, error) {
	type Alias BlockStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BlockStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		walkChild(statement)
	}
}

// ReturnStatement

type ReturnStatement struct {
	Values []Expression
	Ghost  bool
	Range
}

var _ Element = &ReturnStatement{}
var _ Statement = &ReturnStatement{}

func NewReturnStatement(
	memoryGauge common.MemoryGauge,
	values []Expression,
	ghost bool,
	stmtRange Range,
) *ReturnStatement {
	common.UseMemory(memoryGauge, common.ReturnStatementMemoryUsage)

	return &ReturnStatement{
		Values: values,
		Ghost:  ghost,
		Range:  stmtRange,
	}
}

func (*ReturnStatement) isStatement() {}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (s *ReturnStatement) IsGhost() bool {
	return s.Ghost
}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	for _, value := range s.Values {
		walkChild(value)
	}
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ReturnStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// BreakStatement

type BreakStatement struct {
	// Target is the enclosing loop or match this break exits.
	// It is resolved, not parsed.
	Target Statement `json:"-"`
	Ghost  bool
	Range
}

var _ Element = &BreakStatement{}
var _ Statement = &BreakStatement{}

func NewBreakStatement(
	memoryGauge common.MemoryGauge,
	target Statement,
	ghost bool,
	stmtRange Range,
) *BreakStatement {
	common.UseMemory(memoryGauge, common.BreakStatementMemoryUsage)

	return &BreakStatement{
		Target: target,
		Ghost:  ghost,
		Range:  stmtRange,
	}
}

func (*BreakStatement) isStatement() {}

func (*BreakStatement) ElementType() ElementType {
	return ElementTypeBreakStatement
}

func (s *BreakStatement) IsGhost() bool {
	return s.Ghost
}

func (*BreakStatement) Walk(_ func(Element)) {
	// NO-OP
}

func (s *BreakStatement) MarshalJSON() ([]byte, error) {
	type Alias BreakStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BreakStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ContinueStatement

type ContinueStatement struct {
	Target Statement `json:"-"`
	Ghost  bool
	Range
}

var _ Element = &ContinueStatement{}
var _ Statement = &ContinueStatement{}

func NewContinueStatement(
	memoryGauge common.MemoryGauge,
	target Statement,
	ghost bool,
	stmtRange Range,
) *ContinueStatement {
	common.UseMemory(memoryGauge, common.ContinueStatementMemoryUsage)

	return &ContinueStatement{
		Target: target,
		Ghost:  ghost,
		Range:  stmtRange,
	}
}

func (*ContinueStatement) isStatement() {}

func (*ContinueStatement) ElementType() ElementType {
	return ElementTypeContinueStatement
}

func (s *ContinueStatement) IsGhost() bool {
	return s.Ghost
}

func (*ContinueStatement) Walk(_ func(Element)) {
	// NO-OP
}

func (s *ContinueStatement) MarshalJSON() ([]byte, error) {
	type Alias ContinueStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ContinueStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test  Expression
	Then  *BlockStatement
	Else  Statement
	Ghost bool
	Range
}

var _ Element = &IfStatement{}
var _ Statement = &IfStatement{}

func NewIfStatement(
	memoryGauge common.MemoryGauge,
	test Expression,
	thenBlock *BlockStatement,
	elseStatement Statement,
	ghost bool,
	stmtRange Range,
) *IfStatement {
	common.UseMemory(memoryGauge, common.IfStatementMemoryUsage)

	return &IfStatement{
		Test:  test,
		Then:  thenBlock,
		Else:  elseStatement,
		Ghost: ghost,
		Range: stmtRange,
	}
}

func (*IfStatement) isStatement() {}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (s *IfStatement) IsGhost() bool {
	return s.Ghost
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	if s.Test != nil {
		walkChild(s.Test)
	}
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IfStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// WhileStatement

type WhileStatement struct {
	Test       Expression
	Invariants []*SpecClause
	Decreases  []Expression
	Body       *BlockStatement
	Ghost      bool
	Range
}

var _ Element = &WhileStatement{}
var _ Statement = &WhileStatement{}

func NewWhileStatement(
	memoryGauge common.MemoryGauge,
	test Expression,
	invariants []*SpecClause,
	decreases []Expression,
	body *BlockStatement,
	ghost bool,
	stmtRange Range,
) *WhileStatement {
	common.UseMemory(memoryGauge, common.WhileStatementMemoryUsage)

	return &WhileStatement{
		Test:       test,
		Invariants: invariants,
		Decreases:  decreases,
		Body:       body,
		Ghost:      ghost,
		Range:      stmtRange,
	}
}

func (*WhileStatement) isStatement() {}

func (*WhileStatement) ElementType() ElementType {
	return ElementTypeWhileStatement
}

func (s *WhileStatement) IsGhost() bool {
	return s.Ghost
}

func (s *WhileStatement) Walk(walkChild func(Element)) {
	if s.Test != nil {
		walkChild(s.Test)
	}
	walkChild(s.Body)
}

func (s *WhileStatement) MarshalJSON() ([]byte, error) {
	type Alias WhileStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "WhileStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// MatchStatement

type CasePattern struct {
	Identifier *Identifier
	Arguments  []*CasePattern
	// Var is the bound variable this pattern introduces,
	// if the pattern is a binder rather than a constructor.
	Var *Formal
}

func NewCasePattern(
	memoryGauge common.MemoryGauge,
	identifier *Identifier,
	arguments []*CasePattern,
	variable *Formal,
) *CasePattern {
	common.UseMemory(memoryGauge, common.CasePatternMemoryUsage)

	return &CasePattern{
		Identifier: identifier,
		Arguments:  arguments,
		Var:        variable,
	}
}

type MatchCase struct {
	Pattern *CasePattern
	Body    *BlockStatement
}

func NewMatchCase(
	memoryGauge common.MemoryGauge,
	pattern *CasePattern,
	body *BlockStatement,
) *MatchCase {
	common.UseMemory(memoryGauge, common.MatchCaseMemoryUsage)

	return &MatchCase{
		Pattern: pattern,
		Body:    body,
	}
}

type MatchStatement struct {
	Source Expression
	Cases  []*MatchCase
	Ghost  bool
	Range
}

var _ Element = &MatchStatement{}
var _ Statement = &MatchStatement{}

func NewMatchStatement(
	memoryGauge common.MemoryGauge,
	source Expression,
	cases []*MatchCase,
	ghost bool,
	stmtRange Range,
) *MatchStatement {
	common.UseMemory(memoryGauge, common.MatchStatementMemoryUsage)

	return &MatchStatement{
		Source: source,
		Cases:  cases,
		Ghost:  ghost,
		Range:  stmtRange,
	}
}

func (*MatchStatement) isStatement() {}

func (*MatchStatement) ElementType() ElementType {
	return ElementTypeMatchStatement
}

func (s *MatchStatement) IsGhost() bool {
	return s.Ghost
}

func (s *MatchStatement) Walk(walkChild func(Element)) {
	walkChild(s.Source)
	for _, matchCase := range s.Cases {
		walkChild(matchCase.Body)
	}
}

func (s *MatchStatement) MarshalJSON() ([]byte, error) {
	type Alias MatchStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MatchStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// AssignmentStatement

type AssignmentStatement struct {
	Targets []Expression
	Values  []Expression
	Ghost   bool
	Range
}

var _ Element = &AssignmentStatement{}
var _ Statement = &AssignmentStatement{}

func NewAssignmentStatement(
	memoryGauge common.MemoryGauge,
	targets []Expression,
	values []Expression,
	ghost bool,
	stmtRange Range,
) *AssignmentStatement {
	common.UseMemory(memoryGauge, common.AssignmentStatementMemoryUsage)

	return &AssignmentStatement{
		Targets: targets,
		Values:  values,
		Ghost:   ghost,
		Range:   stmtRange,
	}
}

func (*AssignmentStatement) isStatement() {}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (s *AssignmentStatement) IsGhost() bool {
	return s.Ghost
}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	for _, target := range s.Targets {
		walkChild(target)
	}
	for _, value := range s.Values {
		walkChild(value)
	}
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssignmentStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// VariableDeclarationStatement

type VariableDeclarationStatement struct {
	Variables []*Formal
	Values    []Expression
	Ghost     bool
	Range
}

var _ Element = &VariableDeclarationStatement{}
var _ Statement = &VariableDeclarationStatement{}

func NewVariableDeclarationStatement(
	memoryGauge common.MemoryGauge,
	variables []*Formal,
	values []Expression,
	ghost bool,
	stmtRange Range,
) *VariableDeclarationStatement {
	common.UseMemory(memoryGauge, common.VariableDeclarationStatementMemoryUsage)

	return &VariableDeclarationStatement{
		Variables: variables,
		Values:    values,
		Ghost:     ghost,
		Range:     stmtRange,
	}
}

func (*VariableDeclarationStatement) isStatement() {}

func (*VariableDeclarationStatement) ElementType() ElementType {
	return ElementTypeVariableDeclarationStatement
}

func (s *VariableDeclarationStatement) IsGhost() bool {
	return s.Ghost
}

func (s *VariableDeclarationStatement) Walk(walkChild func(Element)) {
	for _, value := range s.Values {
		walkChild(value)
	}
}

func (s *VariableDeclarationStatement) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclarationStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "VariableDeclarationStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// AssertStatement. Always ghost.

type AssertStatement struct {
	Test  Expression
	Label *Identifier
	Range
}

var _ Element = &AssertStatement{}
var _ Statement = &AssertStatement{}

func NewAssertStatement(
	memoryGauge common.MemoryGauge,
	test Expression,
	label *Identifier,
	stmtRange Range,
) *AssertStatement {
	common.UseMemory(memoryGauge, common.AssertStatementMemoryUsage)

	return &AssertStatement{
		Test:  test,
		Label: label,
		Range: stmtRange,
	}
}

func (*AssertStatement) isStatement() {}

func (*AssertStatement) ElementType() ElementType {
	return ElementTypeAssertStatement
}

func (*AssertStatement) IsGhost() bool {
	return true
}

func (s *AssertStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
}

func (s *AssertStatement) MarshalJSON() ([]byte, error) {
	type Alias AssertStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssertStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// AssumeStatement. Always ghost.

type AssumeStatement struct {
	Test Expression
	Range
}

var _ Element = &AssumeStatement{}
var _ Statement = &AssumeStatement{}

func NewAssumeStatement(
	memoryGauge common.MemoryGauge,
	test Expression,
	stmtRange Range,
) *AssumeStatement {
	common.UseMemory(memoryGauge, common.AssumeStatementMemoryUsage)

	return &AssumeStatement{
		Test:  test,
		Range: stmtRange,
	}
}

func (*AssumeStatement) isStatement() {}

func (*AssumeStatement) ElementType() ElementType {
	return ElementTypeAssumeStatement
}

func (*AssumeStatement) IsGhost() bool {
	return true
}

func (s *AssumeStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
}

func (s *AssumeStatement) MarshalJSON() ([]byte, error) {
	type Alias AssumeStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssumeStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// PrintStatement

type PrintStatement struct {
	Arguments []Expression
	Ghost     bool
	Range
}

var _ Element = &PrintStatement{}
var _ Statement = &PrintStatement{}

func NewPrintStatement(
	memoryGauge common.MemoryGauge,
	arguments []Expression,
	ghost bool,
	stmtRange Range,
) *PrintStatement {
	common.UseMemory(memoryGauge, common.PrintStatementMemoryUsage)

	return &PrintStatement{
		Arguments: arguments,
		Ghost:     ghost,
		Range:     stmtRange,
	}
}

func (*PrintStatement) isStatement() {}

func (*PrintStatement) ElementType() ElementType {
	return ElementTypePrintStatement
}

func (s *PrintStatement) IsGhost() bool {
	return s.Ghost
}

func (s *PrintStatement) Walk(walkChild func(Element)) {
	for _, argument := range s.Arguments {
		walkChild(argument)
	}
}

func (s *PrintStatement) MarshalJSON() ([]byte, error) {
	type Alias PrintStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "PrintStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
	Ghost      bool
	Range
}

var _ Element = &ExpressionStatement{}
var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(
	memoryGauge common.MemoryGauge,
	expression Expression,
	ghost bool,
	stmtRange Range,
) *ExpressionStatement {
	common.UseMemory(memoryGauge, common.ExpressionStatementMemoryUsage)

	return &ExpressionStatement{
		Expression: expression,
		Ghost:      ghost,
		Range:      stmtRange,
	}
}

func (*ExpressionStatement) isStatement() {}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (s *ExpressionStatement) IsGhost() bool {
	return s.Ghost
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ExpressionStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}
