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

//go:generate go run golang.org/x/tools/cmd/stringer -type=ElementType -trimprefix=ElementType

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	ElementTypeProgram

	// Declarations

	ElementTypeModuleDeclaration
	ElementTypeModuleAliasDeclaration
	ElementTypeAbstractModuleDeclaration
	ElementTypeModuleExportDeclaration
	ElementTypeClassDeclaration
	ElementTypeTraitDeclaration
	ElementTypeIteratorDeclaration
	ElementTypeAbstractTypeDeclaration
	ElementTypeSubsetTypeDeclaration
	ElementTypeTypeSynonymDeclaration
	ElementTypeNewtypeDeclaration
	ElementTypeDatatypeDeclaration
	ElementTypeTupleTypeDeclaration

	// Members

	ElementTypeFieldDeclaration
	ElementTypeConstantFieldDeclaration
	ElementTypeSpecialFieldDeclaration
	ElementTypeFunctionDeclaration
	ElementTypeMethodDeclaration

	// Statements

	ElementTypeBlockStatement
	ElementTypeReturnStatement
	ElementTypeBreakStatement
	ElementTypeContinueStatement
	ElementTypeIfStatement
	ElementTypeWhileStatement
	ElementTypeMatchStatement
	ElementTypeAssignmentStatement
	ElementTypeVariableDeclarationStatement
	ElementTypeAssertStatement
	ElementTypeAssumeStatement
	ElementTypePrintStatement
	ElementTypeExpressionStatement

	// Expressions

	ElementTypeIdentifierExpression
	ElementTypeSelfExpression
	ElementTypeMemberExpression
	ElementTypeInvocationExpression
	ElementTypeIndexExpression
	ElementTypeBinaryExpression
	ElementTypeUnaryExpression
	ElementTypeIntegerExpression
	ElementTypeBoolExpression
	ElementTypeStringExpression
	ElementTypeNilExpression
	ElementTypeConditionalExpression
	ElementTypeOldExpression
	ElementTypeFreshExpression
	ElementTypeQuantifierExpression
	ElementTypeSequenceExpression
)
