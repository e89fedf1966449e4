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

package common

import (
	"github.com/veridian-lang/veridian/errors"
)

type MemoryUsage struct {
	Kind   MemoryKind
	Amount uint64
}

type MemoryGauge interface {
	MeterMemory(usage MemoryUsage) error
}

func NewConstantMemoryUsage(kind MemoryKind) MemoryUsage {
	return MemoryUsage{
		Kind:   kind,
		Amount: 1,
	}
}

var (
	// AST nodes

	ProgramMemoryUsage         = NewConstantMemoryUsage(MemoryKindProgram)
	IdentifierMemoryUsage      = NewConstantMemoryUsage(MemoryKindIdentifier)
	AttributeMemoryUsage       = NewConstantMemoryUsage(MemoryKindAttribute)
	FormalMemoryUsage          = NewConstantMemoryUsage(MemoryKindFormal)
	TypeParameterMemoryUsage   = NewConstantMemoryUsage(MemoryKindTypeParameter)
	SpecificationMemoryUsage   = NewConstantMemoryUsage(MemoryKindSpecification)
	SpecClauseMemoryUsage      = NewConstantMemoryUsage(MemoryKindSpecClause)
	FrameExpressionMemoryUsage = NewConstantMemoryUsage(MemoryKindFrameExpression)
	CasePatternMemoryUsage     = NewConstantMemoryUsage(MemoryKindCasePattern)
	MatchCaseMemoryUsage       = NewConstantMemoryUsage(MemoryKindMatchCase)
	DatatypeCaseMemoryUsage    = NewConstantMemoryUsage(MemoryKindDatatypeCase)

	// AST declarations

	ModuleDeclarationMemoryUsage         = NewConstantMemoryUsage(MemoryKindModuleDeclaration)
	ModuleAliasDeclarationMemoryUsage    = NewConstantMemoryUsage(MemoryKindModuleAliasDeclaration)
	AbstractModuleDeclarationMemoryUsage = NewConstantMemoryUsage(MemoryKindAbstractModuleDeclaration)
	ModuleExportDeclarationMemoryUsage   = NewConstantMemoryUsage(MemoryKindModuleExportDeclaration)
	ClassDeclarationMemoryUsage          = NewConstantMemoryUsage(MemoryKindClassDeclaration)
	TraitDeclarationMemoryUsage          = NewConstantMemoryUsage(MemoryKindTraitDeclaration)
	IteratorDeclarationMemoryUsage       = NewConstantMemoryUsage(MemoryKindIteratorDeclaration)
	AbstractTypeDeclarationMemoryUsage   = NewConstantMemoryUsage(MemoryKindAbstractTypeDeclaration)
	SubsetTypeDeclarationMemoryUsage     = NewConstantMemoryUsage(MemoryKindSubsetTypeDeclaration)
	TypeSynonymDeclarationMemoryUsage    = NewConstantMemoryUsage(MemoryKindTypeSynonymDeclaration)
	NewtypeDeclarationMemoryUsage        = NewConstantMemoryUsage(MemoryKindNewtypeDeclaration)
	DatatypeDeclarationMemoryUsage       = NewConstantMemoryUsage(MemoryKindDatatypeDeclaration)
	TupleTypeDeclarationMemoryUsage      = NewConstantMemoryUsage(MemoryKindTupleTypeDeclaration)

	// AST members

	FieldDeclarationMemoryUsage         = NewConstantMemoryUsage(MemoryKindFieldDeclaration)
	ConstantFieldDeclarationMemoryUsage = NewConstantMemoryUsage(MemoryKindConstantFieldDeclaration)
	SpecialFieldDeclarationMemoryUsage  = NewConstantMemoryUsage(MemoryKindSpecialFieldDeclaration)
	FunctionDeclarationMemoryUsage      = NewConstantMemoryUsage(MemoryKindFunctionDeclaration)
	MethodDeclarationMemoryUsage        = NewConstantMemoryUsage(MemoryKindMethodDeclaration)

	// AST statements

	BlockStatementMemoryUsage              = NewConstantMemoryUsage(MemoryKindBlockStatement)
	ReturnStatementMemoryUsage             = NewConstantMemoryUsage(MemoryKindReturnStatement)
	BreakStatementMemoryUsage              = NewConstantMemoryUsage(MemoryKindBreakStatement)
	ContinueStatementMemoryUsage           = NewConstantMemoryUsage(MemoryKindContinueStatement)
	IfStatementMemoryUsage                 = NewConstantMemoryUsage(MemoryKindIfStatement)
	WhileStatementMemoryUsage              = NewConstantMemoryUsage(MemoryKindWhileStatement)
	MatchStatementMemoryUsage              = NewConstantMemoryUsage(MemoryKindMatchStatement)
	AssignmentStatementMemoryUsage         = NewConstantMemoryUsage(MemoryKindAssignmentStatement)
	VariableDeclarationStatementMemoryUsage = NewConstantMemoryUsage(MemoryKindVariableDeclarationStatement)
	AssertStatementMemoryUsage             = NewConstantMemoryUsage(MemoryKindAssertStatement)
	AssumeStatementMemoryUsage             = NewConstantMemoryUsage(MemoryKindAssumeStatement)
	PrintStatementMemoryUsage              = NewConstantMemoryUsage(MemoryKindPrintStatement)
	ExpressionStatementMemoryUsage         = NewConstantMemoryUsage(MemoryKindExpressionStatement)

	// AST expressions

	IdentifierExpressionMemoryUsage  = NewConstantMemoryUsage(MemoryKindIdentifierExpression)
	SelfExpressionMemoryUsage        = NewConstantMemoryUsage(MemoryKindSelfExpression)
	MemberExpressionMemoryUsage      = NewConstantMemoryUsage(MemoryKindMemberExpression)
	InvocationExpressionMemoryUsage  = NewConstantMemoryUsage(MemoryKindInvocationExpression)
	IndexExpressionMemoryUsage       = NewConstantMemoryUsage(MemoryKindIndexExpression)
	BinaryExpressionMemoryUsage      = NewConstantMemoryUsage(MemoryKindBinaryExpression)
	UnaryExpressionMemoryUsage       = NewConstantMemoryUsage(MemoryKindUnaryExpression)
	IntegerExpressionMemoryUsage     = NewConstantMemoryUsage(MemoryKindIntegerExpression)
	BoolExpressionMemoryUsage        = NewConstantMemoryUsage(MemoryKindBoolExpression)
	StringExpressionMemoryUsage      = NewConstantMemoryUsage(MemoryKindStringExpression)
	NilExpressionMemoryUsage         = NewConstantMemoryUsage(MemoryKindNilExpression)
	ConditionalExpressionMemoryUsage = NewConstantMemoryUsage(MemoryKindConditionalExpression)
	OldExpressionMemoryUsage         = NewConstantMemoryUsage(MemoryKindOldExpression)
	FreshExpressionMemoryUsage       = NewConstantMemoryUsage(MemoryKindFreshExpression)
	QuantifierExpressionMemoryUsage  = NewConstantMemoryUsage(MemoryKindQuantifierExpression)
	SequenceExpressionMemoryUsage    = NewConstantMemoryUsage(MemoryKindSequenceExpression)

	// AST types

	NominalTypeMemoryUsage  = NewConstantMemoryUsage(MemoryKindNominalType)
	TupleTypeMemoryUsage    = NewConstantMemoryUsage(MemoryKindTupleType)
	FunctionTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindFunctionType)
	SequenceTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindSequenceType)
	MapTypeMemoryUsage      = NewConstantMemoryUsage(MemoryKindMapType)
)

// UseMemory uses the provided memory usage through the given gauge.
// If the gauge is nil, the usage is not metered.
func UseMemory(gauge MemoryGauge, usage MemoryUsage) {
	if gauge == nil {
		return
	}

	err := gauge.MeterMemory(usage)
	if err != nil {
		panic(errors.MemoryError{Err: err})
	}
}
