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

package compiler

import (
	"github.com/veridian-lang/veridian/ast"
)

// A Compiler lowers a statement tree into Emitter calls.
//
// Ghost code is erased during lowering, with one exception:
// a ghost assertion lowers to a runtime check of its condition.
// This is what lets injected validity contracts execute at run
// time instead of vanishing with the rest of the ghost code.
type Compiler[E any] struct {
	emitter Emitter[E]
}

var _ ast.StatementVisitor[struct{}] = &Compiler[any]{}
var _ ast.ExpressionVisitor[any] = &Compiler[any]{}

func NewCompiler[E any](emitter Emitter[E]) *Compiler[E] {
	return &Compiler[E]{
		emitter: emitter,
	}
}

func (c *Compiler[E]) CompileStatements(statements []ast.Statement) {
	for _, statement := range statements {
		c.CompileStatement(statement)
	}
}

func (c *Compiler[E]) CompileStatement(statement ast.Statement) {
	if statement.IsGhost() {
		if assertion, ok := statement.(*ast.AssertStatement); ok {
			c.emitter.EmitRuntimeCheck(c.CompileExpression(assertion.Test))
		}
		return
	}
	ast.AcceptStatement[struct{}](statement, c)
}

func (c *Compiler[E]) VisitBlockStatement(statement *ast.BlockStatement) (_ struct{}) {
	c.emitter.EmitBlockStart()
	c.CompileStatements(statement.Statements)
	c.emitter.EmitBlockEnd()
	return
}

func (c *Compiler[E]) VisitReturnStatement(statement *ast.ReturnStatement) (_ struct{}) {
	c.emitter.EmitReturn(c.CompileExpressions(statement.Values))
	return
}

func (c *Compiler[E]) VisitBreakStatement(_ *ast.BreakStatement) (_ struct{}) {
	c.emitter.EmitBreak()
	return
}

func (c *Compiler[E]) VisitContinueStatement(_ *ast.ContinueStatement) (_ struct{}) {
	c.emitter.EmitContinue()
	return
}

func (c *Compiler[E]) VisitIfStatement(statement *ast.IfStatement) (_ struct{}) {
	c.emitter.EmitIf(c.CompileExpression(statement.Test))
	c.CompileStatement(statement.Then)
	if statement.Else != nil {
		c.emitter.EmitElse()
		c.CompileStatement(statement.Else)
	}
	c.emitter.EmitIfEnd()
	return
}

func (c *Compiler[E]) VisitWhileStatement(statement *ast.WhileStatement) (_ struct{}) {
	// invariants and decreases clauses are ghost
	c.emitter.EmitLoop(c.CompileExpression(statement.Test))
	c.CompileStatement(statement.Body)
	c.emitter.EmitLoopEnd()
	return
}

func (c *Compiler[E]) VisitMatchStatement(statement *ast.MatchStatement) (_ struct{}) {
	c.emitter.EmitMatch(c.CompileExpression(statement.Source))
	for _, matchCase := range statement.Cases {
		c.emitter.EmitCase(matchCase.Pattern)
		c.CompileStatement(matchCase.Body)
	}
	c.emitter.EmitMatchEnd()
	return
}

func (c *Compiler[E]) VisitAssignmentStatement(statement *ast.AssignmentStatement) (_ struct{}) {
	c.emitter.EmitAssignment(
		c.CompileExpressions(statement.Targets),
		c.CompileExpressions(statement.Values),
	)
	return
}

func (c *Compiler[E]) VisitVariableDeclarationStatement(
	statement *ast.VariableDeclarationStatement,
) (_ struct{}) {
	names := make([]string, len(statement.Variables))
	for i, variable := range statement.Variables {
		names[i] = variable.Identifier.Identifier
	}
	c.emitter.EmitVariableDeclaration(
		names,
		c.CompileExpressions(statement.Values),
	)
	return
}

func (c *Compiler[E]) VisitAssertStatement(statement *ast.AssertStatement) (_ struct{}) {
	// assertions are always ghost; lowering one directly
	// takes the same path as the ghost erasure bridge
	c.emitter.EmitRuntimeCheck(c.CompileExpression(statement.Test))
	return
}

func (c *Compiler[E]) VisitAssumeStatement(_ *ast.AssumeStatement) (_ struct{}) {
	// assumptions never execute
	return
}

func (c *Compiler[E]) VisitPrintStatement(statement *ast.PrintStatement) (_ struct{}) {
	c.emitter.EmitPrint(c.CompileExpressions(statement.Arguments))
	return
}

func (c *Compiler[E]) VisitExpressionStatement(statement *ast.ExpressionStatement) (_ struct{}) {
	c.emitter.EmitExpressionStatement(c.CompileExpression(statement.Expression))
	return
}

// Expressions

func (c *Compiler[E]) CompileExpression(expression ast.Expression) E {
	return ast.AcceptExpression[E](expression, c)
}

func (c *Compiler[E]) CompileExpressions(expressions []ast.Expression) []E {
	if expressions == nil {
		return nil
	}
	result := make([]E, len(expressions))
	for i, expression := range expressions {
		result[i] = c.CompileExpression(expression)
	}
	return result
}

func (c *Compiler[E]) VisitIdentifierExpression(expression *ast.IdentifierExpression) E {
	return c.emitter.EmitIdentifier(expression.Identifier.Identifier)
}

func (c *Compiler[E]) VisitSelfExpression(_ *ast.SelfExpression) E {
	return c.emitter.EmitSelf()
}

func (c *Compiler[E]) VisitMemberExpression(expression *ast.MemberExpression) E {
	return c.emitter.EmitMemberAccess(
		c.CompileExpression(expression.Expression),
		expression.Identifier.Identifier,
	)
}

func (c *Compiler[E]) VisitInvocationExpression(expression *ast.InvocationExpression) E {
	return c.emitter.EmitInvocation(
		c.CompileExpression(expression.InvokedExpression),
		c.CompileExpressions(expression.Arguments),
	)
}

func (c *Compiler[E]) VisitIndexExpression(expression *ast.IndexExpression) E {
	return c.emitter.EmitIndex(
		c.CompileExpression(expression.TargetExpression),
		c.CompileExpression(expression.IndexingExpression),
	)
}

func (c *Compiler[E]) VisitBinaryExpression(expression *ast.BinaryExpression) E {
	return c.emitter.EmitBinary(
		expression.Operation,
		c.CompileExpression(expression.Left),
		c.CompileExpression(expression.Right),
	)
}

func (c *Compiler[E]) VisitUnaryExpression(expression *ast.UnaryExpression) E {
	return c.emitter.EmitUnary(
		expression.Operation,
		c.CompileExpression(expression.Expression),
	)
}

func (c *Compiler[E]) VisitIntegerExpression(expression *ast.IntegerExpression) E {
	return c.emitter.EmitIntegerLiteral(expression.Value)
}

func (c *Compiler[E]) VisitBoolExpression(expression *ast.BoolExpression) E {
	return c.emitter.EmitBoolLiteral(expression.Value)
}

func (c *Compiler[E]) VisitStringExpression(expression *ast.StringExpression) E {
	return c.emitter.EmitStringLiteral(expression.Value)
}

func (c *Compiler[E]) VisitNilExpression(_ *ast.NilExpression) E {
	return c.emitter.EmitNilLiteral()
}

func (c *Compiler[E]) VisitConditionalExpression(expression *ast.ConditionalExpression) E {
	return c.emitter.EmitConditional(
		c.CompileExpression(expression.Test),
		c.CompileExpression(expression.Then),
		c.CompileExpression(expression.Else),
	)
}

func (c *Compiler[E]) VisitOldExpression(expression *ast.OldExpression) E {
	return c.emitter.EmitOld(c.CompileExpression(expression.Expression))
}

func (c *Compiler[E]) VisitFreshExpression(expression *ast.FreshExpression) E {
	return c.emitter.EmitFresh(c.CompileExpression(expression.Expression))
}

func (c *Compiler[E]) VisitQuantifierExpression(expression *ast.QuantifierExpression) E {
	names := make([]string, len(expression.BoundVariables))
	for i, variable := range expression.BoundVariables {
		names[i] = variable.Identifier.Identifier
	}

	// an absent range condition is equivalent to `true`
	condition := expression.Condition
	var compiledCondition E
	if condition != nil {
		compiledCondition = c.CompileExpression(condition)
	} else {
		compiledCondition = c.emitter.EmitBoolLiteral(true)
	}

	return c.emitter.EmitQuantifier(
		expression.IsForall,
		names,
		compiledCondition,
		c.CompileExpression(expression.Expression),
	)
}

func (c *Compiler[E]) VisitSequenceExpression(expression *ast.SequenceExpression) E {
	return c.emitter.EmitSequence(c.CompileExpressions(expression.Values))
}
