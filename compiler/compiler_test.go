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
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-lang/veridian/ast"
	"github.com/veridian-lang/veridian/common"
	"github.com/veridian-lang/veridian/validator"
)

// recordingEmitter compiles expressions to their textual form
// and records every statement primitive in order.
type recordingEmitter struct {
	trace []string
}

var _ Emitter[string] = &recordingEmitter{}

func (e *recordingEmitter) record(format string, args ...any) {
	e.trace = append(e.trace, fmt.Sprintf(format, args...))
}

func (e *recordingEmitter) EmitIntegerLiteral(value *big.Int) string {
	return value.String()
}

func (e *recordingEmitter) EmitBoolLiteral(value bool) string {
	return fmt.Sprintf("%t", value)
}

func (e *recordingEmitter) EmitStringLiteral(value string) string {
	return fmt.Sprintf("%q", value)
}

func (e *recordingEmitter) EmitNilLiteral() string {
	return "null"
}

func (e *recordingEmitter) EmitIdentifier(name string) string {
	return name
}

func (e *recordingEmitter) EmitSelf() string {
	return "this"
}

func (e *recordingEmitter) EmitMemberAccess(target string, name string) string {
	return fmt.Sprintf("%s.%s", target, name)
}

func (e *recordingEmitter) EmitIndex(target string, index string) string {
	return fmt.Sprintf("%s[%s]", target, index)
}

func (e *recordingEmitter) EmitUnary(operation ast.Operation, operand string) string {
	return fmt.Sprintf("%s%s", operation.Symbol(), operand)
}

func (e *recordingEmitter) EmitBinary(operation ast.Operation, left string, right string) string {
	return fmt.Sprintf("(%s %s %s)", left, operation.Symbol(), right)
}

func (e *recordingEmitter) EmitConditional(test string, then string, otherwise string) string {
	return fmt.Sprintf("(%s ? %s : %s)", test, then, otherwise)
}

func (e *recordingEmitter) EmitInvocation(invoked string, arguments []string) string {
	return fmt.Sprintf("%s(%s)", invoked, strings.Join(arguments, ", "))
}

func (e *recordingEmitter) EmitSequence(values []string) string {
	return fmt.Sprintf("[%s]", strings.Join(values, ", "))
}

func (e *recordingEmitter) EmitOld(value string) string {
	return fmt.Sprintf("old(%s)", value)
}

func (e *recordingEmitter) EmitFresh(value string) string {
	return fmt.Sprintf("fresh(%s)", value)
}

func (e *recordingEmitter) EmitQuantifier(
	isForall bool,
	boundVariables []string,
	condition string,
	body string,
) string {
	quantifier := "exists"
	if isForall {
		quantifier = "forall"
	}
	return fmt.Sprintf(
		"%s %s | %s :: %s",
		quantifier,
		strings.Join(boundVariables, ", "),
		condition,
		body,
	)
}

func (e *recordingEmitter) EmitBlockStart() {
	e.record("block-start")
}

func (e *recordingEmitter) EmitBlockEnd() {
	e.record("block-end")
}

func (e *recordingEmitter) EmitIf(test string) {
	e.record("if %s", test)
}

func (e *recordingEmitter) EmitElse() {
	e.record("else")
}

func (e *recordingEmitter) EmitIfEnd() {
	e.record("if-end")
}

func (e *recordingEmitter) EmitLoop(test string) {
	e.record("loop %s", test)
}

func (e *recordingEmitter) EmitLoopEnd() {
	e.record("loop-end")
}

func (e *recordingEmitter) EmitBreak() {
	e.record("break")
}

func (e *recordingEmitter) EmitContinue() {
	e.record("continue")
}

func (e *recordingEmitter) EmitReturn(values []string) {
	e.record("return %s", strings.Join(values, ", "))
}

func (e *recordingEmitter) EmitMatch(source string) {
	e.record("match %s", source)
}

func (e *recordingEmitter) EmitCase(pattern *ast.CasePattern) {
	name := "_"
	if pattern != nil && pattern.Identifier != nil {
		name = pattern.Identifier.Identifier
	}
	e.record("case %s", name)
}

func (e *recordingEmitter) EmitMatchEnd() {
	e.record("match-end")
}

func (e *recordingEmitter) EmitAssignment(targets []string, values []string) {
	e.record(
		"%s := %s",
		strings.Join(targets, ", "),
		strings.Join(values, ", "),
	)
}

func (e *recordingEmitter) EmitVariableDeclaration(names []string, values []string) {
	e.record(
		"var %s := %s",
		strings.Join(names, ", "),
		strings.Join(values, ", "),
	)
}

func (e *recordingEmitter) EmitExpressionStatement(value string) {
	e.record("expr %s", value)
}

func (e *recordingEmitter) EmitPrint(arguments []string) {
	e.record("print %s", strings.Join(arguments, ", "))
}

func (e *recordingEmitter) EmitRuntimeCheck(condition string) {
	e.record("check %s", condition)
}

func compileStatement(statement ast.Statement) []string {
	emitter := &recordingEmitter{}
	NewCompiler[string](emitter).CompileStatement(statement)
	return emitter.trace
}

func TestCompilerGhostAssertBridge(t *testing.T) {

	t.Parallel()

	assertion := &ast.AssertStatement{
		Test: &ast.InvocationExpression{
			InvokedExpression: &ast.MemberExpression{
				Expression: &ast.IdentifierExpression{
					Identifier: ast.Identifier{Identifier: "arg_valid"},
				},
				Identifier: ast.Identifier{Identifier: "Valid"},
			},
		},
	}

	assert.Equal(t,
		[]string{"check arg_valid.Valid()"},
		compileStatement(assertion),
	)
}

func TestCompilerGhostErasure(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name      string
		statement ast.Statement
	}{
		{
			name: "assume",
			statement: &ast.AssumeStatement{
				Test: &ast.BoolExpression{Value: true},
			},
		},
		{
			name: "ghost block",
			statement: &ast.BlockStatement{
				Ghost: true,
				Statements: []ast.Statement{
					&ast.AssignmentStatement{
						Targets: []ast.Expression{
							&ast.IdentifierExpression{
								Identifier: ast.Identifier{Identifier: "x"},
							},
						},
						Values: []ast.Expression{
							&ast.IntegerExpression{Value: big.NewInt(1)},
						},
						Ghost: true,
					},
				},
			},
		},
		{
			name: "ghost assignment",
			statement: &ast.AssignmentStatement{
				Targets: []ast.Expression{
					&ast.IdentifierExpression{
						Identifier: ast.Identifier{Identifier: "x"},
					},
				},
				Values: []ast.Expression{
					&ast.IntegerExpression{Value: big.NewInt(1)},
				},
				Ghost: true,
			},
		},
		{
			name: "ghost variable declaration",
			statement: &ast.VariableDeclarationStatement{
				Variables: []*ast.Formal{
					{Identifier: ast.Identifier{Identifier: "x"}},
				},
				Ghost: true,
			},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, compileStatement(test.statement))
		})
	}
}

func TestCompilerGhostAssertInsideRealBlock(t *testing.T) {

	t.Parallel()

	block := &ast.BlockStatement{
		Statements: []ast.Statement{
			&ast.AssignmentStatement{
				Targets: []ast.Expression{
					&ast.IdentifierExpression{
						Identifier: ast.Identifier{Identifier: "x"},
					},
				},
				Values: []ast.Expression{
					&ast.IntegerExpression{Value: big.NewInt(1)},
				},
			},
			&ast.AssertStatement{
				Test: &ast.BinaryExpression{
					Operation: ast.OperationGreater,
					Left: &ast.IdentifierExpression{
						Identifier: ast.Identifier{Identifier: "x"},
					},
					Right: &ast.IntegerExpression{Value: big.NewInt(0)},
				},
			},
			&ast.AssumeStatement{
				Test: &ast.BoolExpression{Value: false},
			},
		},
	}

	assert.Equal(t,
		[]string{
			"block-start",
			"x := 1",
			"check (x > 0)",
			"block-end",
		},
		compileStatement(block),
	)
}

func TestCompilerControlFlow(t *testing.T) {

	t.Parallel()

	x := &ast.IdentifierExpression{
		Identifier: ast.Identifier{Identifier: "x"},
	}

	statement := &ast.IfStatement{
		Test: &ast.BinaryExpression{
			Operation: ast.OperationLess,
			Left:      x,
			Right:     &ast.IntegerExpression{Value: big.NewInt(10)},
		},
		Then: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.WhileStatement{
					Test: &ast.BoolExpression{Value: true},
					Invariants: []*ast.SpecClause{
						{Expression: &ast.BoolExpression{Value: true}},
					},
					Body: &ast.BlockStatement{
						Statements: []ast.Statement{
							&ast.BreakStatement{},
						},
					},
				},
			},
		},
		Else: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ReturnStatement{
					Values: []ast.Expression{x},
				},
			},
		},
	}

	assert.Equal(t,
		[]string{
			"if (x < 10)",
			"block-start",
			"loop true",
			"block-start",
			"break",
			"block-end",
			"loop-end",
			"block-end",
			"else",
			"block-start",
			"return x",
			"block-end",
			"if-end",
		},
		compileStatement(statement),
	)
}

func TestCompilerMatch(t *testing.T) {

	t.Parallel()

	statement := &ast.MatchStatement{
		Source: &ast.IdentifierExpression{
			Identifier: ast.Identifier{Identifier: "option"},
		},
		Cases: []*ast.MatchCase{
			{
				Pattern: &ast.CasePattern{
					Identifier: &ast.Identifier{Identifier: "Some"},
				},
				Body: &ast.BlockStatement{
					Statements: []ast.Statement{
						&ast.PrintStatement{
							Arguments: []ast.Expression{
								&ast.StringExpression{Value: "some"},
							},
						},
					},
				},
			},
			{
				Pattern: &ast.CasePattern{
					Identifier: &ast.Identifier{Identifier: "None"},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}

	assert.Equal(t,
		[]string{
			"match option",
			"case Some",
			"block-start",
			`print "some"`,
			"block-end",
			"case None",
			"block-start",
			"block-end",
			"match-end",
		},
		compileStatement(statement),
	)
}

func TestCompilerQuantifierDefaultCondition(t *testing.T) {

	t.Parallel()

	emitter := &recordingEmitter{}
	compiler := NewCompiler[string](emitter)

	compiled := compiler.CompileExpression(&ast.QuantifierExpression{
		IsForall: true,
		BoundVariables: []*ast.Formal{
			{Identifier: ast.Identifier{Identifier: "i"}},
		},
		Expression: &ast.BinaryExpression{
			Operation: ast.OperationGreaterEqual,
			Left: &ast.IdentifierExpression{
				Identifier: ast.Identifier{Identifier: "i"},
			},
			Right: &ast.IntegerExpression{Value: big.NewInt(0)},
		},
	})

	assert.Equal(t, "forall i | true :: (i >= 0)", compiled)
}

// The shims produced by the validator lower to a plain delegating
// assignment, and their injected contracts lower to runtime checks.
func TestCompilerLowersShim(t *testing.T) {

	t.Parallel()

	class := &ast.ClassDeclaration{
		Identifier: ast.Identifier{Identifier: "Account"},
		Attributes: ast.Attributes{
			{
				Identifier: ast.Identifier{
					Identifier: ast.AutoContractsAttributeName,
				},
			},
		},
		Members: []ast.Member{
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "deposit"},
				Kind:       common.DeclarationKindMethod,
				Formals: []*ast.Formal{
					{Identifier: ast.Identifier{Identifier: "amount"}},
				},
				Outs: []*ast.Formal{
					{Identifier: ast.Identifier{Identifier: "total"}},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}

	synthesizer := validator.NewSynthesizer(nil, validator.DefaultOptions)
	transformed := synthesizer.TransformDeclarations([]ast.Declaration{class})
	require.Len(t, transformed, 1)

	shim := transformed[0].(*ast.ClassDeclaration).Members[0].(*ast.MethodDeclaration)

	trace := compileStatement(shim.Body)
	assert.Equal(t,
		[]string{
			"block-start",
			"total := arg_valid.deposit(amount)",
			"block-end",
		},
		trace,
	)

	// the injected precondition, asserted at a call site,
	// survives lowering as a runtime check
	precondition := &ast.AssertStatement{
		Test: shim.Specification.Requires[0].Expression,
	}
	assert.Equal(t,
		[]string{"check arg_valid.Valid()"},
		compileStatement(precondition),
	)
}
