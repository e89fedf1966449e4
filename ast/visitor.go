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
	"github.com/veridian-lang/veridian/errors"
)

type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}

// Walk traverses the element and all of its children, depth-first.
func Walk(element Element, walkFunc func(Element)) {
	walkFunc(element)
	element.Walk(func(child Element) {
		Walk(child, walkFunc)
	})
}

type DeclarationVisitor[T any] interface {
	VisitModuleDeclaration(*ModuleDeclaration) T
	VisitModuleAliasDeclaration(*ModuleAliasDeclaration) T
	VisitAbstractModuleDeclaration(*AbstractModuleDeclaration) T
	VisitModuleExportDeclaration(*ModuleExportDeclaration) T
	VisitClassDeclaration(*ClassDeclaration) T
	VisitTraitDeclaration(*TraitDeclaration) T
	VisitIteratorDeclaration(*IteratorDeclaration) T
	VisitAbstractTypeDeclaration(*AbstractTypeDeclaration) T
	VisitSubsetTypeDeclaration(*SubsetTypeDeclaration) T
	VisitTypeSynonymDeclaration(*TypeSynonymDeclaration) T
	VisitNewtypeDeclaration(*NewtypeDeclaration) T
	VisitDatatypeDeclaration(*DatatypeDeclaration) T
	VisitTupleTypeDeclaration(*TupleTypeDeclaration) T
}

func AcceptDeclaration[T any](declaration Declaration, visitor DeclarationVisitor[T]) (_ T) {

	switch declaration.ElementType() {
	case ElementTypeModuleDeclaration:
		return visitor.VisitModuleDeclaration(declaration.(*ModuleDeclaration))

	case ElementTypeModuleAliasDeclaration:
		return visitor.VisitModuleAliasDeclaration(declaration.(*ModuleAliasDeclaration))

	case ElementTypeAbstractModuleDeclaration:
		return visitor.VisitAbstractModuleDeclaration(declaration.(*AbstractModuleDeclaration))

	case ElementTypeModuleExportDeclaration:
		return visitor.VisitModuleExportDeclaration(declaration.(*ModuleExportDeclaration))

	case ElementTypeClassDeclaration:
		return visitor.VisitClassDeclaration(declaration.(*ClassDeclaration))

	case ElementTypeTraitDeclaration:
		return visitor.VisitTraitDeclaration(declaration.(*TraitDeclaration))

	case ElementTypeIteratorDeclaration:
		return visitor.VisitIteratorDeclaration(declaration.(*IteratorDeclaration))

	case ElementTypeAbstractTypeDeclaration:
		return visitor.VisitAbstractTypeDeclaration(declaration.(*AbstractTypeDeclaration))

	case ElementTypeSubsetTypeDeclaration:
		return visitor.VisitSubsetTypeDeclaration(declaration.(*SubsetTypeDeclaration))

	case ElementTypeTypeSynonymDeclaration:
		return visitor.VisitTypeSynonymDeclaration(declaration.(*TypeSynonymDeclaration))

	case ElementTypeNewtypeDeclaration:
		return visitor.VisitNewtypeDeclaration(declaration.(*NewtypeDeclaration))

	case ElementTypeDatatypeDeclaration:
		return visitor.VisitDatatypeDeclaration(declaration.(*DatatypeDeclaration))

	case ElementTypeTupleTypeDeclaration:
		return visitor.VisitTupleTypeDeclaration(declaration.(*TupleTypeDeclaration))
	}

	panic(errors.NewUnreachableError())
}

type MemberVisitor[T any] interface {
	VisitFieldDeclaration(*FieldDeclaration) T
	VisitConstantFieldDeclaration(*ConstantFieldDeclaration) T
	VisitSpecialFieldDeclaration(*SpecialFieldDeclaration) T
	VisitFunctionDeclaration(*FunctionDeclaration) T
	VisitMethodDeclaration(*MethodDeclaration) T
}

func AcceptMember[T any](member Member, visitor MemberVisitor[T]) (_ T) {

	switch member.ElementType() {
	case ElementTypeFieldDeclaration:
		return visitor.VisitFieldDeclaration(member.(*FieldDeclaration))

	case ElementTypeConstantFieldDeclaration:
		return visitor.VisitConstantFieldDeclaration(member.(*ConstantFieldDeclaration))

	case ElementTypeSpecialFieldDeclaration:
		return visitor.VisitSpecialFieldDeclaration(member.(*SpecialFieldDeclaration))

	case ElementTypeFunctionDeclaration:
		return visitor.VisitFunctionDeclaration(member.(*FunctionDeclaration))

	case ElementTypeMethodDeclaration:
		return visitor.VisitMethodDeclaration(member.(*MethodDeclaration))
	}

	panic(errors.NewUnreachableError())
}

type StatementVisitor[T any] interface {
	VisitBlockStatement(*BlockStatement) T
	VisitReturnStatement(*ReturnStatement) T
	VisitBreakStatement(*BreakStatement) T
	VisitContinueStatement(*ContinueStatement) T
	VisitIfStatement(*IfStatement) T
	VisitWhileStatement(*WhileStatement) T
	VisitMatchStatement(*MatchStatement) T
	VisitAssignmentStatement(*AssignmentStatement) T
	VisitVariableDeclarationStatement(*VariableDeclarationStatement) T
	VisitAssertStatement(*AssertStatement) T
	VisitAssumeStatement(*AssumeStatement) T
	VisitPrintStatement(*PrintStatement) T
	VisitExpressionStatement(*ExpressionStatement) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	switch statement.ElementType() {
	case ElementTypeBlockStatement:
		return visitor.VisitBlockStatement(statement.(*BlockStatement))

	case ElementTypeReturnStatement:
		return visitor.VisitReturnStatement(statement.(*ReturnStatement))

	case ElementTypeBreakStatement:
		return visitor.VisitBreakStatement(statement.(*BreakStatement))

	case ElementTypeContinueStatement:
		return visitor.VisitContinueStatement(statement.(*ContinueStatement))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(statement.(*WhileStatement))

	case ElementTypeMatchStatement:
		return visitor.VisitMatchStatement(statement.(*MatchStatement))

	case ElementTypeAssignmentStatement:
		return visitor.VisitAssignmentStatement(statement.(*AssignmentStatement))

	case ElementTypeVariableDeclarationStatement:
		return visitor.VisitVariableDeclarationStatement(statement.(*VariableDeclarationStatement))

	case ElementTypeAssertStatement:
		return visitor.VisitAssertStatement(statement.(*AssertStatement))

	case ElementTypeAssumeStatement:
		return visitor.VisitAssumeStatement(statement.(*AssumeStatement))

	case ElementTypePrintStatement:
		return visitor.VisitPrintStatement(statement.(*PrintStatement))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(statement.(*ExpressionStatement))
	}

	panic(errors.NewUnreachableError())
}

type ExpressionVisitor[T any] interface {
	VisitIdentifierExpression(*IdentifierExpression) T
	VisitSelfExpression(*SelfExpression) T
	VisitMemberExpression(*MemberExpression) T
	VisitInvocationExpression(*InvocationExpression) T
	VisitIndexExpression(*IndexExpression) T
	VisitBinaryExpression(*BinaryExpression) T
	VisitUnaryExpression(*UnaryExpression) T
	VisitIntegerExpression(*IntegerExpression) T
	VisitBoolExpression(*BoolExpression) T
	VisitStringExpression(*StringExpression) T
	VisitNilExpression(*NilExpression) T
	VisitConditionalExpression(*ConditionalExpression) T
	VisitOldExpression(*OldExpression) T
	VisitFreshExpression(*FreshExpression) T
	VisitQuantifierExpression(*QuantifierExpression) T
	VisitSequenceExpression(*SequenceExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	switch expression.ElementType() {
	case ElementTypeIdentifierExpression:
		return visitor.VisitIdentifierExpression(expression.(*IdentifierExpression))

	case ElementTypeSelfExpression:
		return visitor.VisitSelfExpression(expression.(*SelfExpression))

	case ElementTypeMemberExpression:
		return visitor.VisitMemberExpression(expression.(*MemberExpression))

	case ElementTypeInvocationExpression:
		return visitor.VisitInvocationExpression(expression.(*InvocationExpression))

	case ElementTypeIndexExpression:
		return visitor.VisitIndexExpression(expression.(*IndexExpression))

	case ElementTypeBinaryExpression:
		return visitor.VisitBinaryExpression(expression.(*BinaryExpression))

	case ElementTypeUnaryExpression:
		return visitor.VisitUnaryExpression(expression.(*UnaryExpression))

	case ElementTypeIntegerExpression:
		return visitor.VisitIntegerExpression(expression.(*IntegerExpression))

	case ElementTypeBoolExpression:
		return visitor.VisitBoolExpression(expression.(*BoolExpression))

	case ElementTypeStringExpression:
		return visitor.VisitStringExpression(expression.(*StringExpression))

	case ElementTypeNilExpression:
		return visitor.VisitNilExpression(expression.(*NilExpression))

	case ElementTypeConditionalExpression:
		return visitor.VisitConditionalExpression(expression.(*ConditionalExpression))

	case ElementTypeOldExpression:
		return visitor.VisitOldExpression(expression.(*OldExpression))

	case ElementTypeFreshExpression:
		return visitor.VisitFreshExpression(expression.(*FreshExpression))

	case ElementTypeQuantifierExpression:
		return visitor.VisitQuantifierExpression(expression.(*QuantifierExpression))

	case ElementTypeSequenceExpression:
		return visitor.VisitSequenceExpression(expression.(*SequenceExpression))
	}

	panic(errors.NewUnreachableError())
}
