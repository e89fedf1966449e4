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
	"github.com/veridian-lang/veridian/common"
	"github.com/veridian-lang/veridian/errors"
)

// A SelfExpressionCloner is an optional hook of the Cloner
// which rewrites `this` expressions during cloning,
// instead of copying them verbatim.
type SelfExpressionCloner interface {
	CloneSelfExpression(expression *SelfExpression) Expression
}

// A Cloner deep-copies AST fragments.
//
// When CloneResolved is set, resolved links are carried over:
// identifier expressions keep pointing at the clone of the formal
// they were bound to, and break and continue statements keep
// pointing at the clone of their target. When it is not set,
// resolved links and reserved attributes are dropped,
// producing a tree as if freshly parsed.
//
// A Cloner is single-use: its identity maps accumulate
// for the lifetime of the value.
type Cloner struct {
	Gauge         common.MemoryGauge
	CloneResolved bool

	// SelfCloner, if set, replaces every cloned `this` expression
	// with the expression it returns.
	SelfCloner SelfExpressionCloner

	formals    map[*Formal]*Formal
	statements map[Statement]Statement
}

var _ DeclarationVisitor[Declaration] = &Cloner{}
var _ MemberVisitor[Member] = &Cloner{}
var _ StatementVisitor[Statement] = &Cloner{}
var _ ExpressionVisitor[Expression] = &Cloner{}

func NewCloner(gauge common.MemoryGauge) *Cloner {
	return &Cloner{
		Gauge:      gauge,
		formals:    map[*Formal]*Formal{},
		statements: map[Statement]Statement{},
	}
}

func NewResolvedCloner(gauge common.MemoryGauge) *Cloner {
	cloner := NewCloner(gauge)
	cloner.CloneResolved = true
	return cloner
}

// ClonedFormal returns the clone of the given formal,
// or the formal itself if it was not cloned by this Cloner.
func (c *Cloner) ClonedFormal(formal *Formal) *Formal {
	if replacement, ok := c.formals[formal]; ok {
		return replacement
	}
	return formal
}

func (c *Cloner) clonedStatement(statement Statement) Statement {
	if replacement, ok := c.statements[statement]; ok {
		return replacement
	}
	return statement
}

func (c *Cloner) CloneProgram(program *Program) *Program {
	if program == nil {
		return nil
	}
	return NewProgram(
		c.Gauge,
		c.CloneDeclarations(program.Declarations()),
	)
}

// Declarations

func (c *Cloner) CloneDeclaration(declaration Declaration) Declaration {
	if declaration == nil {
		return nil
	}
	return AcceptDeclaration[Declaration](declaration, c)
}

func (c *Cloner) CloneDeclarations(declarations []Declaration) []Declaration {
	if declarations == nil {
		return nil
	}
	result := make([]Declaration, len(declarations))
	for i, declaration := range declarations {
		result[i] = c.CloneDeclaration(declaration)
	}
	return result
}

func (c *Cloner) VisitModuleDeclaration(declaration *ModuleDeclaration) Declaration {
	return NewModuleDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneDeclarations(declaration.Declarations),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitModuleAliasDeclaration(declaration *ModuleAliasDeclaration) Declaration {
	return NewModuleAliasDeclaration(
		c.Gauge,
		declaration.Identifier,
		declaration.Target,
		declaration.Opened,
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitAbstractModuleDeclaration(declaration *AbstractModuleDeclaration) Declaration {
	return NewAbstractModuleDeclaration(
		c.Gauge,
		declaration.Identifier,
		declaration.Target,
		declaration.Opened,
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitModuleExportDeclaration(declaration *ModuleExportDeclaration) Declaration {
	return NewModuleExportDeclaration(
		c.Gauge,
		declaration.Identifier,
		declaration.Provides,
		declaration.Reveals,
		declaration.Extends,
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitClassDeclaration(declaration *ClassDeclaration) Declaration {
	return NewClassDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneNominalTypes(declaration.ParentTraits),
		c.CloneMembers(declaration.Members),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitTraitDeclaration(declaration *TraitDeclaration) Declaration {
	return NewTraitDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneNominalTypes(declaration.ParentTraits),
		c.CloneMembers(declaration.Members),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitIteratorDeclaration(declaration *IteratorDeclaration) Declaration {
	return NewIteratorDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneFormals(declaration.Formals),
		c.CloneFormals(declaration.Outs),
		c.CloneSpecification(declaration.Specification),
		c.cloneBlockStatement(declaration.Body),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitAbstractTypeDeclaration(declaration *AbstractTypeDeclaration) Declaration {
	return NewAbstractTypeDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneNominalTypes(declaration.ParentTraits),
		c.CloneMembers(declaration.Members),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitSubsetTypeDeclaration(declaration *SubsetTypeDeclaration) Declaration {
	return NewSubsetTypeDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneFormal(declaration.Variable),
		c.CloneExpression(declaration.Constraint),
		c.CloneExpression(declaration.Witness),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitTypeSynonymDeclaration(declaration *TypeSynonymDeclaration) Declaration {
	return NewTypeSynonymDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneTypeParameters(declaration.TypeParameters),
		c.CloneType(declaration.Target),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitNewtypeDeclaration(declaration *NewtypeDeclaration) Declaration {
	return NewNewtypeDeclaration(
		c.Gauge,
		declaration.Identifier,
		c.CloneType(declaration.BaseType),
		c.CloneFormal(declaration.Variable),
		c.CloneExpression(declaration.Constraint),
		c.CloneExpression(declaration.Witness),
		c.CloneMembers(declaration.Members),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitDatatypeDeclaration(declaration *DatatypeDeclaration) Declaration {
	var cases []*DatatypeCase
	if declaration.Cases != nil {
		cases = make([]*DatatypeCase, len(declaration.Cases))
		for i, datatypeCase := range declaration.Cases {
			cases[i] = NewDatatypeCase(
				c.Gauge,
				datatypeCase.Identifier,
				c.CloneFormals(datatypeCase.Formals),
				c.CloneAttributes(datatypeCase.Attributes),
				datatypeCase.Range,
			)
		}
	}
	return NewDatatypeDeclaration(
		c.Gauge,
		declaration.Identifier,
		declaration.IsCoDatatype,
		c.CloneTypeParameters(declaration.TypeParameters),
		cases,
		c.CloneNominalTypes(declaration.ParentTraits),
		c.CloneMembers(declaration.Members),
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

func (c *Cloner) VisitTupleTypeDeclaration(declaration *TupleTypeDeclaration) Declaration {
	argumentGhostness := make([]bool, len(declaration.ArgumentGhostness))
	copy(argumentGhostness, declaration.ArgumentGhostness)

	return NewTupleTypeDeclaration(
		c.Gauge,
		declaration.Identifier,
		declaration.Arity,
		argumentGhostness,
		c.CloneAttributes(declaration.Attributes),
		declaration.Range,
	)
}

// Members

func (c *Cloner) CloneMember(member Member) Member {
	if member == nil {
		return nil
	}
	return AcceptMember[Member](member, c)
}

func (c *Cloner) CloneMembers(members []Member) []Member {
	if members == nil {
		return nil
	}
	result := make([]Member, len(members))
	for i, member := range members {
		result[i] = c.CloneMember(member)
	}
	return result
}

func (c *Cloner) VisitFieldDeclaration(member *FieldDeclaration) Member {
	return c.cloneFieldDeclaration(member)
}

func (c *Cloner) cloneFieldDeclaration(member *FieldDeclaration) *FieldDeclaration {
	return NewFieldDeclaration(
		c.Gauge,
		member.Identifier,
		c.CloneType(member.TypeAnnotation),
		member.Ghost,
		c.CloneAttributes(member.Attributes),
		member.Range,
	)
}

func (c *Cloner) VisitConstantFieldDeclaration(member *ConstantFieldDeclaration) Member {
	return NewConstantFieldDeclaration(
		c.Gauge,
		member.Identifier,
		c.CloneType(member.TypeAnnotation),
		c.CloneExpression(member.Value),
		member.Ghost,
		member.Static,
		c.CloneAttributes(member.Attributes),
		member.Range,
	)
}

func (c *Cloner) VisitSpecialFieldDeclaration(member *SpecialFieldDeclaration) Member {
	return NewSpecialFieldDeclaration(
		c.Gauge,
		member.Kind,
		c.cloneFieldDeclaration(member.FieldDeclaration),
	)
}

func (c *Cloner) VisitFunctionDeclaration(member *FunctionDeclaration) Member {
	return NewFunctionDeclaration(
		c.Gauge,
		member.Identifier,
		member.IsPredicate,
		c.CloneTypeParameters(member.TypeParameters),
		c.CloneFormals(member.Formals),
		c.CloneFormal(member.Result),
		c.CloneSpecification(member.Specification),
		c.CloneExpression(member.Body),
		member.Ghost,
		member.Static,
		c.CloneAttributes(member.Attributes),
		member.Range,
	)
}

func (c *Cloner) VisitMethodDeclaration(member *MethodDeclaration) Member {
	return NewMethodDeclaration(
		c.Gauge,
		member.Identifier,
		member.Kind,
		c.CloneTypeParameters(member.TypeParameters),
		c.CloneFormals(member.Formals),
		c.CloneFormals(member.Outs),
		c.CloneSpecification(member.Specification),
		c.cloneBlockStatement(member.Body),
		member.Ghost,
		member.Static,
		c.CloneAttributes(member.Attributes),
		member.Range,
	)
}

// Statements
//
// Container statements register their clone in the statement identity map
// before cloning children, so break and continue statements inside
// can find the clone of their target.

func (c *Cloner) CloneStatement(statement Statement) Statement {
	if statement == nil {
		return nil
	}
	return AcceptStatement[Statement](statement, c)
}

func (c *Cloner) CloneStatements(statements []Statement) []Statement {
	if statements == nil {
		return nil
	}
	result := make([]Statement, len(statements))
	for i, statement := range statements {
		result[i] = c.CloneStatement(statement)
	}
	return result
}

func (c *Cloner) cloneBlockStatement(block *BlockStatement) *BlockStatement {
	if block == nil {
		return nil
	}
	return c.VisitBlockStatement(block).(*BlockStatement)
}

func (c *Cloner) VisitBlockStatement(statement *BlockStatement) Statement {
	clone := NewBlockStatement(
		c.Gauge,
		nil,
		statement.Ghost,
		statement.Range,
	)
	c.statements[statement] = clone
	clone.Statements = c.CloneStatements(statement.Statements)
	return clone
}

func (c *Cloner) VisitReturnStatement(statement *ReturnStatement) Statement {
	return NewReturnStatement(
		c.Gauge,
		c.CloneExpressions(statement.Values),
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitBreakStatement(statement *BreakStatement) Statement {
	var target Statement
	if c.CloneResolved {
		target = c.clonedStatement(statement.Target)
	}
	return NewBreakStatement(
		c.Gauge,
		target,
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitContinueStatement(statement *ContinueStatement) Statement {
	var target Statement
	if c.CloneResolved {
		target = c.clonedStatement(statement.Target)
	}
	return NewContinueStatement(
		c.Gauge,
		target,
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitIfStatement(statement *IfStatement) Statement {
	clone := NewIfStatement(
		c.Gauge,
		nil,
		nil,
		nil,
		statement.Ghost,
		statement.Range,
	)
	c.statements[statement] = clone
	clone.Test = c.CloneExpression(statement.Test)
	clone.Then = c.cloneBlockStatement(statement.Then)
	clone.Else = c.CloneStatement(statement.Else)
	return clone
}

func (c *Cloner) VisitWhileStatement(statement *WhileStatement) Statement {
	clone := NewWhileStatement(
		c.Gauge,
		nil,
		nil,
		nil,
		nil,
		statement.Ghost,
		statement.Range,
	)
	c.statements[statement] = clone
	clone.Test = c.CloneExpression(statement.Test)
	clone.Invariants = c.cloneSpecClauses(statement.Invariants)
	clone.Decreases = c.CloneExpressions(statement.Decreases)
	clone.Body = c.cloneBlockStatement(statement.Body)
	return clone
}

func (c *Cloner) VisitMatchStatement(statement *MatchStatement) Statement {
	clone := NewMatchStatement(
		c.Gauge,
		nil,
		nil,
		statement.Ghost,
		statement.Range,
	)
	c.statements[statement] = clone
	clone.Source = c.CloneExpression(statement.Source)
	if statement.Cases != nil {
		cases := make([]*MatchCase, len(statement.Cases))
		for i, matchCase := range statement.Cases {
			cases[i] = NewMatchCase(
				c.Gauge,
				c.cloneCasePattern(matchCase.Pattern),
				c.cloneBlockStatement(matchCase.Body),
			)
		}
		clone.Cases = cases
	}
	return clone
}

func (c *Cloner) cloneCasePattern(pattern *CasePattern) *CasePattern {
	if pattern == nil {
		return nil
	}
	var arguments []*CasePattern
	if pattern.Arguments != nil {
		arguments = make([]*CasePattern, len(pattern.Arguments))
		for i, argument := range pattern.Arguments {
			arguments[i] = c.cloneCasePattern(argument)
		}
	}
	return NewCasePattern(
		c.Gauge,
		pattern.Identifier,
		arguments,
		c.CloneFormal(pattern.Var),
	)
}

func (c *Cloner) VisitAssignmentStatement(statement *AssignmentStatement) Statement {
	return NewAssignmentStatement(
		c.Gauge,
		c.CloneExpressions(statement.Targets),
		c.CloneExpressions(statement.Values),
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitVariableDeclarationStatement(statement *VariableDeclarationStatement) Statement {
	return NewVariableDeclarationStatement(
		c.Gauge,
		c.CloneFormals(statement.Variables),
		c.CloneExpressions(statement.Values),
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitAssertStatement(statement *AssertStatement) Statement {
	return NewAssertStatement(
		c.Gauge,
		c.CloneExpression(statement.Test),
		statement.Label,
		statement.Range,
	)
}

func (c *Cloner) VisitAssumeStatement(statement *AssumeStatement) Statement {
	return NewAssumeStatement(
		c.Gauge,
		c.CloneExpression(statement.Test),
		statement.Range,
	)
}

func (c *Cloner) VisitPrintStatement(statement *PrintStatement) Statement {
	return NewPrintStatement(
		c.Gauge,
		c.CloneExpressions(statement.Arguments),
		statement.Ghost,
		statement.Range,
	)
}

func (c *Cloner) VisitExpressionStatement(statement *ExpressionStatement) Statement {
	return NewExpressionStatement(
		c.Gauge,
		c.CloneExpression(statement.Expression),
		statement.Ghost,
		statement.Range,
	)
}

// Expressions

func (c *Cloner) CloneExpression(expression Expression) Expression {
	if expression == nil {
		return nil
	}
	return AcceptExpression[Expression](expression, c)
}

func (c *Cloner) CloneExpressions(expressions []Expression) []Expression {
	if expressions == nil {
		return nil
	}
	result := make([]Expression, len(expressions))
	for i, expression := range expressions {
		result[i] = c.CloneExpression(expression)
	}
	return result
}

func (c *Cloner) VisitIdentifierExpression(expression *IdentifierExpression) Expression {
	clone := NewIdentifierExpression(
		c.Gauge,
		expression.Identifier,
	)
	if c.CloneResolved && expression.Formal != nil {
		clone.Formal = c.ClonedFormal(expression.Formal)
	}
	return clone
}

func (c *Cloner) VisitSelfExpression(expression *SelfExpression) Expression {
	if c.SelfCloner != nil {
		return c.SelfCloner.CloneSelfExpression(expression)
	}
	return NewSelfExpression(
		c.Gauge,
		expression.Pos,
	)
}

func (c *Cloner) VisitMemberExpression(expression *MemberExpression) Expression {
	return NewMemberExpression(
		c.Gauge,
		c.CloneExpression(expression.Expression),
		expression.Identifier,
	)
}

func (c *Cloner) VisitInvocationExpression(expression *InvocationExpression) Expression {
	return NewInvocationExpression(
		c.Gauge,
		c.CloneExpression(expression.InvokedExpression),
		c.CloneTypes(expression.TypeArguments),
		c.CloneExpressions(expression.Arguments),
		expression.EndPos,
	)
}

func (c *Cloner) VisitIndexExpression(expression *IndexExpression) Expression {
	return NewIndexExpression(
		c.Gauge,
		c.CloneExpression(expression.TargetExpression),
		c.CloneExpression(expression.IndexingExpression),
		expression.Range,
	)
}

func (c *Cloner) VisitBinaryExpression(expression *BinaryExpression) Expression {
	return NewBinaryExpression(
		c.Gauge,
		expression.Operation,
		c.CloneExpression(expression.Left),
		c.CloneExpression(expression.Right),
	)
}

func (c *Cloner) VisitUnaryExpression(expression *UnaryExpression) Expression {
	return NewUnaryExpression(
		c.Gauge,
		expression.Operation,
		c.CloneExpression(expression.Expression),
		expression.StartPos,
	)
}

func (c *Cloner) VisitIntegerExpression(expression *IntegerExpression) Expression {
	return NewIntegerExpression(
		c.Gauge,
		expression.Value,
		expression.Base,
		expression.Range,
	)
}

func (c *Cloner) VisitBoolExpression(expression *BoolExpression) Expression {
	return NewBoolExpression(
		c.Gauge,
		expression.Value,
		expression.Range,
	)
}

func (c *Cloner) VisitStringExpression(expression *StringExpression) Expression {
	return NewStringExpression(
		c.Gauge,
		expression.Value,
		expression.Range,
	)
}

func (c *Cloner) VisitNilExpression(expression *NilExpression) Expression {
	return NewNilExpression(
		c.Gauge,
		expression.Pos,
	)
}

func (c *Cloner) VisitConditionalExpression(expression *ConditionalExpression) Expression {
	return NewConditionalExpression(
		c.Gauge,
		c.CloneExpression(expression.Test),
		c.CloneExpression(expression.Then),
		c.CloneExpression(expression.Else),
	)
}

func (c *Cloner) VisitOldExpression(expression *OldExpression) Expression {
	return NewOldExpression(
		c.Gauge,
		c.CloneExpression(expression.Expression),
		expression.Label,
		expression.Range,
	)
}

func (c *Cloner) VisitFreshExpression(expression *FreshExpression) Expression {
	return NewFreshExpression(
		c.Gauge,
		c.CloneExpression(expression.Expression),
		expression.Range,
	)
}

func (c *Cloner) VisitQuantifierExpression(expression *QuantifierExpression) Expression {
	return NewQuantifierExpression(
		c.Gauge,
		expression.IsForall,
		c.CloneFormals(expression.BoundVariables),
		c.CloneExpression(expression.Condition),
		c.CloneExpression(expression.Expression),
		expression.Range,
	)
}

func (c *Cloner) VisitSequenceExpression(expression *SequenceExpression) Expression {
	return NewSequenceExpression(
		c.Gauge,
		c.CloneExpressions(expression.Values),
		expression.Range,
	)
}

// Formals, types, specifications, attributes

func (c *Cloner) CloneFormal(formal *Formal) *Formal {
	if formal == nil {
		return nil
	}
	clone := NewFormal(
		c.Gauge,
		formal.Identifier,
		c.CloneType(formal.TypeAnnotation),
		formal.Ghost,
		c.CloneExpression(formal.DefaultValue),
	)
	clone.IsOld = formal.IsOld
	clone.InParam = formal.InParam
	clone.NameOnly = formal.NameOnly
	clone.Older = formal.Older
	if c.CloneResolved {
		clone.ResolvedType = formal.ResolvedType
	}
	c.formals[formal] = clone
	return clone
}

func (c *Cloner) CloneFormals(formals []*Formal) []*Formal {
	if formals == nil {
		return nil
	}
	result := make([]*Formal, len(formals))
	for i, formal := range formals {
		result[i] = c.CloneFormal(formal)
	}
	return result
}

func (c *Cloner) CloneTypeParameters(typeParameters []*TypeParameter) []*TypeParameter {
	if typeParameters == nil {
		return nil
	}
	result := make([]*TypeParameter, len(typeParameters))
	for i, typeParameter := range typeParameters {
		result[i] = NewTypeParameter(
			c.Gauge,
			typeParameter.Identifier,
		)
	}
	return result
}

func (c *Cloner) CloneType(ty Type) Type {
	if ty == nil {
		return nil
	}

	switch ty := ty.(type) {
	case *NominalType:
		return c.cloneNominalType(ty)

	case *TupleType:
		return NewTupleType(
			c.Gauge,
			c.CloneTypes(ty.Types),
			ty.Range,
		)

	case *FunctionType:
		return NewFunctionType(
			c.Gauge,
			c.CloneTypes(ty.ParameterTypes),
			c.CloneType(ty.ReturnType),
			ty.Range,
		)

	case *SequenceType:
		return NewSequenceType(
			c.Gauge,
			c.CloneType(ty.ElementType),
			ty.Range,
		)

	case *MapType:
		return NewMapType(
			c.Gauge,
			c.CloneType(ty.KeyType),
			c.CloneType(ty.ValueType),
			ty.Range,
		)
	}

	panic(errors.NewUnreachableError())
}

func (c *Cloner) CloneTypes(types []Type) []Type {
	if types == nil {
		return nil
	}
	result := make([]Type, len(types))
	for i, ty := range types {
		result[i] = c.CloneType(ty)
	}
	return result
}

func (c *Cloner) cloneNominalType(ty *NominalType) *NominalType {
	return NewNominalType(
		c.Gauge,
		ty.Qualifier,
		ty.Identifier,
		c.CloneTypes(ty.TypeArguments),
	)
}

func (c *Cloner) CloneNominalTypes(types []*NominalType) []*NominalType {
	if types == nil {
		return nil
	}
	result := make([]*NominalType, len(types))
	for i, ty := range types {
		result[i] = c.cloneNominalType(ty)
	}
	return result
}

func (c *Cloner) CloneSpecification(specification *Specification) *Specification {
	if specification == nil {
		return nil
	}
	return NewSpecification(
		c.Gauge,
		c.cloneSpecClauses(specification.Requires),
		c.cloneSpecClauses(specification.Ensures),
		c.cloneFrameExpressions(specification.Reads),
		c.cloneFrameExpressions(specification.Modifies),
		c.CloneExpressions(specification.Decreases),
	)
}

func (c *Cloner) cloneSpecClauses(clauses []*SpecClause) []*SpecClause {
	if clauses == nil {
		return nil
	}
	result := make([]*SpecClause, len(clauses))
	for i, clause := range clauses {
		result[i] = NewSpecClause(
			c.Gauge,
			c.CloneExpression(clause.Expression),
			clause.Injected,
		)
	}
	return result
}

func (c *Cloner) cloneFrameExpressions(frameExpressions []*FrameExpression) []*FrameExpression {
	if frameExpressions == nil {
		return nil
	}
	result := make([]*FrameExpression, len(frameExpressions))
	for i, frameExpression := range frameExpressions {
		result[i] = NewFrameExpression(
			c.Gauge,
			c.CloneExpression(frameExpression.Expression),
			frameExpression.FieldName,
		)
	}
	return result
}

// CloneAttributes deep-copies attributes.
// In non-resolved mode, reserved attributes are not carried over.
func (c *Cloner) CloneAttributes(attributes Attributes) Attributes {
	if !c.CloneResolved {
		attributes = attributes.WithoutReserved()
	}
	if attributes == nil {
		return nil
	}
	result := make(Attributes, len(attributes))
	for i, attribute := range attributes {
		result[i] = NewAttribute(
			c.Gauge,
			attribute.Identifier,
			c.CloneExpressions(attribute.Arguments),
			attribute.Range,
		)
	}
	return result
}
