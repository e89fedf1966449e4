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
	"math/big"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-lang/veridian/common"
)

func TestClonerNil(t *testing.T) {

	t.Parallel()

	cloner := NewCloner(nil)

	assert.Nil(t, cloner.CloneProgram(nil))
	assert.Nil(t, cloner.CloneDeclaration(nil))
	assert.Nil(t, cloner.CloneMember(nil))
	assert.Nil(t, cloner.CloneStatement(nil))
	assert.Nil(t, cloner.CloneExpression(nil))
	assert.Nil(t, cloner.CloneType(nil))
	assert.Nil(t, cloner.CloneFormal(nil))
	assert.Nil(t, cloner.CloneSpecification(nil))
	assert.Nil(t, cloner.CloneAttributes(nil))
	assert.Nil(t, cloner.CloneDeclarations(nil))
	assert.Nil(t, cloner.CloneMembers(nil))
	assert.Nil(t, cloner.CloneStatements(nil))
	assert.Nil(t, cloner.CloneExpressions(nil))
	assert.Nil(t, cloner.CloneTypes(nil))
	assert.Nil(t, cloner.CloneFormals(nil))
}

func TestClonerDeepCopiesExpression(t *testing.T) {

	t.Parallel()

	expression := &BinaryExpression{
		Operation: OperationPlus,
		Left: &IntegerExpression{
			Value: big.NewInt(1),
			Base:  10,
		},
		Right: &InvocationExpression{
			InvokedExpression: &MemberExpression{
				Expression: &SelfExpression{},
				Identifier: Identifier{Identifier: "size"},
			},
		},
	}

	clone := NewCloner(nil).CloneExpression(expression)

	require.Empty(t, deep.Equal(expression, clone))

	// every node must be a fresh allocation
	binary := clone.(*BinaryExpression)
	assert.NotSame(t, expression, binary)
	assert.NotSame(t, expression.Left, binary.Left)
	assert.NotSame(t, expression.Right, binary.Right)

	invocation := binary.Right.(*InvocationExpression)
	member := invocation.InvokedExpression.(*MemberExpression)
	assert.NotSame(t,
		expression.Right.(*InvocationExpression).InvokedExpression,
		member,
	)
}

func TestClonerSelfRewrite(t *testing.T) {

	t.Parallel()

	expression := &MemberExpression{
		Expression: &SelfExpression{},
		Identifier: Identifier{Identifier: "balance"},
	}

	cloner := NewCloner(nil)
	cloner.SelfCloner = selfToIdentifier{gauge: nil, name: "arg_valid"}

	clone := cloner.CloneExpression(expression)

	member := clone.(*MemberExpression)
	identifier, ok := member.Expression.(*IdentifierExpression)
	require.True(t, ok)
	assert.Equal(t, "arg_valid", identifier.Identifier.Identifier)
}

type selfToIdentifier struct {
	gauge common.MemoryGauge
	name  string
}

var _ SelfExpressionCloner = selfToIdentifier{}

func (s selfToIdentifier) CloneSelfExpression(expression *SelfExpression) Expression {
	return NewIdentifierExpression(
		s.gauge,
		NewIdentifier(s.gauge, s.name, expression.Pos),
	)
}

func TestClonerFormalIdentity(t *testing.T) {

	t.Parallel()

	formal := &Formal{
		Identifier: Identifier{Identifier: "x"},
	}

	method := &MethodDeclaration{
		Identifier: Identifier{Identifier: "m"},
		Kind:       common.DeclarationKindMethod,
		Formals:    []*Formal{formal},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{
					Values: []Expression{
						&IdentifierExpression{
							Identifier: Identifier{Identifier: "x"},
							Formal:     formal,
						},
					},
				},
			},
		},
	}

	t.Run("resolved", func(t *testing.T) {

		t.Parallel()

		cloner := NewResolvedCloner(nil)
		clone := cloner.CloneMember(method).(*MethodDeclaration)

		clonedFormal := clone.Formals[0]
		require.NotSame(t, formal, clonedFormal)

		returnStatement := clone.Body.Statements[0].(*ReturnStatement)
		identifier := returnStatement.Values[0].(*IdentifierExpression)

		// the cloned reference must point at the cloned formal,
		// not the original
		assert.Same(t, clonedFormal, identifier.Formal)
	})

	t.Run("non-resolved", func(t *testing.T) {

		t.Parallel()

		cloner := NewCloner(nil)
		clone := cloner.CloneMember(method).(*MethodDeclaration)

		returnStatement := clone.Body.Statements[0].(*ReturnStatement)
		identifier := returnStatement.Values[0].(*IdentifierExpression)

		assert.Nil(t, identifier.Formal)
	})
}

func TestClonerBreakTargetIdentity(t *testing.T) {

	t.Parallel()

	loop := &WhileStatement{
		Test: &BoolExpression{Value: true},
	}
	breakStatement := &BreakStatement{
		Target: loop,
	}
	loop.Body = &BlockStatement{
		Statements: []Statement{
			breakStatement,
		},
	}

	t.Run("resolved", func(t *testing.T) {

		t.Parallel()

		cloner := NewResolvedCloner(nil)
		clone := cloner.CloneStatement(loop).(*WhileStatement)

		require.NotSame(t, loop, clone)

		clonedBreak := clone.Body.Statements[0].(*BreakStatement)
		assert.Same(t, Statement(clone), clonedBreak.Target)
	})

	t.Run("non-resolved", func(t *testing.T) {

		t.Parallel()

		cloner := NewCloner(nil)
		clone := cloner.CloneStatement(loop).(*WhileStatement)

		clonedBreak := clone.Body.Statements[0].(*BreakStatement)
		assert.Nil(t, clonedBreak.Target)
	})
}

func TestClonerReservedAttributes(t *testing.T) {

	t.Parallel()

	class := &ClassDeclaration{
		Identifier: Identifier{Identifier: "Account"},
		Attributes: Attributes{
			{Identifier: Identifier{Identifier: AutoContractsAttributeName}},
			{Identifier: Identifier{Identifier: "_resolved"}},
		},
	}

	t.Run("non-resolved drops reserved", func(t *testing.T) {

		t.Parallel()

		clone := NewCloner(nil).CloneDeclaration(class).(*ClassDeclaration)

		require.Len(t, clone.Attributes, 1)
		assert.Equal(t,
			AutoContractsAttributeName,
			clone.Attributes[0].Identifier.Identifier,
		)
	})

	t.Run("resolved keeps reserved", func(t *testing.T) {

		t.Parallel()

		clone := NewResolvedCloner(nil).CloneDeclaration(class).(*ClassDeclaration)

		require.Len(t, clone.Attributes, 2)
		assert.Equal(t,
			"_resolved",
			clone.Attributes[1].Identifier.Identifier,
		)
	})
}

func TestClonerAllDeclarations(t *testing.T) {

	t.Parallel()

	declarations := []Declaration{
		&ModuleDeclaration{
			Identifier: Identifier{Identifier: "M"},
			Declarations: []Declaration{
				&ClassDeclaration{
					Identifier: Identifier{Identifier: "C"},
					Members: []Member{
						&FieldDeclaration{
							Identifier:     Identifier{Identifier: "f"},
							TypeAnnotation: &NominalType{Identifier: Identifier{Identifier: "int"}},
						},
					},
				},
			},
		},
		&ModuleAliasDeclaration{
			Identifier: Identifier{Identifier: "A"},
			Target: QualifiedName{
				{Identifier: "Impl"},
				{Identifier: "A"},
			},
			Opened: true,
		},
		&AbstractModuleDeclaration{
			Identifier: Identifier{Identifier: "Abs"},
		},
		&ModuleExportDeclaration{
			Identifier: Identifier{Identifier: "E"},
			Provides:   []Identifier{{Identifier: "C"}},
		},
		&TraitDeclaration{
			Identifier: Identifier{Identifier: "T"},
		},
		&IteratorDeclaration{
			Identifier: Identifier{Identifier: "It"},
			Formals: []*Formal{
				{Identifier: Identifier{Identifier: "n"}},
			},
		},
		&AbstractTypeDeclaration{
			Identifier: Identifier{Identifier: "Opaque"},
		},
		&SubsetTypeDeclaration{
			Identifier: Identifier{Identifier: "nat"},
			Variable:   &Formal{Identifier: Identifier{Identifier: "x"}},
			Constraint: &BinaryExpression{
				Operation: OperationGreaterEqual,
				Left: &IdentifierExpression{
					Identifier: Identifier{Identifier: "x"},
				},
				Right: &IntegerExpression{Value: big.NewInt(0), Base: 10},
			},
		},
		&TypeSynonymDeclaration{
			Identifier: Identifier{Identifier: "Bytes"},
			Target: &SequenceType{
				ElementType: &NominalType{Identifier: Identifier{Identifier: "u8"}},
			},
		},
		&NewtypeDeclaration{
			Identifier: Identifier{Identifier: "Handle"},
			BaseType:   &NominalType{Identifier: Identifier{Identifier: "int"}},
		},
		&DatatypeDeclaration{
			Identifier: Identifier{Identifier: "Option"},
			Cases: []*DatatypeCase{
				{Identifier: Identifier{Identifier: "None"}},
				{
					Identifier: Identifier{Identifier: "Some"},
					Formals: []*Formal{
						{Identifier: Identifier{Identifier: "value"}},
					},
				},
			},
		},
		&TupleTypeDeclaration{
			Identifier:        Identifier{Identifier: "_tuple2"},
			Arity:             2,
			ArgumentGhostness: []bool{false, true},
		},
	}

	program := NewProgram(nil, declarations)

	clone := NewCloner(nil).CloneProgram(program)

	require.Empty(t, deep.Equal(program.Declarations(), clone.Declarations()))

	for i, declaration := range program.Declarations() {
		assert.NotSame(t, declaration, clone.Declarations()[i])
	}
}

func TestClonerAllStatements(t *testing.T) {

	t.Parallel()

	statements := []Statement{
		&ReturnStatement{
			Values: []Expression{
				&NilExpression{},
			},
		},
		&BreakStatement{},
		&ContinueStatement{},
		&IfStatement{
			Test: &BoolExpression{Value: true},
			Then: &BlockStatement{},
			Else: &BlockStatement{},
		},
		&WhileStatement{
			Test: &BoolExpression{Value: true},
			Invariants: []*SpecClause{
				{Expression: &BoolExpression{Value: true}},
			},
			Decreases: []Expression{
				&IdentifierExpression{Identifier: Identifier{Identifier: "n"}},
			},
			Body: &BlockStatement{},
		},
		&MatchStatement{
			Source: &IdentifierExpression{Identifier: Identifier{Identifier: "o"}},
			Cases: []*MatchCase{
				{
					Pattern: &CasePattern{
						Identifier: &Identifier{Identifier: "Some"},
						Arguments: []*CasePattern{
							{Var: &Formal{Identifier: Identifier{Identifier: "v"}}},
						},
					},
					Body: &BlockStatement{},
				},
			},
		},
		&AssignmentStatement{
			Targets: []Expression{
				&IdentifierExpression{Identifier: Identifier{Identifier: "x"}},
			},
			Values: []Expression{
				&IntegerExpression{Value: big.NewInt(1), Base: 10},
			},
		},
		&VariableDeclarationStatement{
			Variables: []*Formal{
				{Identifier: Identifier{Identifier: "y"}},
			},
			Values: []Expression{
				&IntegerExpression{Value: big.NewInt(2), Base: 10},
			},
		},
		&AssertStatement{
			Test: &BoolExpression{Value: true},
		},
		&AssumeStatement{
			Test: &BoolExpression{Value: true},
		},
		&PrintStatement{
			Arguments: []Expression{
				&StringExpression{Value: "hello"},
			},
		},
		&ExpressionStatement{
			Expression: &InvocationExpression{
				InvokedExpression: &IdentifierExpression{
					Identifier: Identifier{Identifier: "g"},
				},
			},
		},
	}

	block := &BlockStatement{
		Statements: statements,
	}

	clone := NewCloner(nil).CloneStatement(block).(*BlockStatement)

	require.Empty(t, deep.Equal(block, clone))

	for i, statement := range block.Statements {
		assert.NotSame(t, statement, clone.Statements[i])
	}
}

func TestClonerAllExpressions(t *testing.T) {

	t.Parallel()

	expressions := []Expression{
		&IdentifierExpression{Identifier: Identifier{Identifier: "x"}},
		&SelfExpression{},
		&MemberExpression{
			Expression: &SelfExpression{},
			Identifier: Identifier{Identifier: "f"},
		},
		&InvocationExpression{
			InvokedExpression: &IdentifierExpression{
				Identifier: Identifier{Identifier: "g"},
			},
			TypeArguments: []Type{
				&NominalType{Identifier: Identifier{Identifier: "int"}},
			},
			Arguments: []Expression{
				&IntegerExpression{Value: big.NewInt(1), Base: 10},
			},
		},
		&IndexExpression{
			TargetExpression:   &IdentifierExpression{Identifier: Identifier{Identifier: "s"}},
			IndexingExpression: &IntegerExpression{Value: big.NewInt(0), Base: 10},
		},
		&BinaryExpression{
			Operation: OperationImplies,
			Left:      &BoolExpression{Value: true},
			Right:     &BoolExpression{Value: false},
		},
		&UnaryExpression{
			Operation:  OperationNegate,
			Expression: &BoolExpression{Value: true},
		},
		&IntegerExpression{Value: big.NewInt(42), Base: 10},
		&BoolExpression{Value: true},
		&StringExpression{Value: "s"},
		&NilExpression{},
		&ConditionalExpression{
			Test: &BoolExpression{Value: true},
			Then: &IntegerExpression{Value: big.NewInt(1), Base: 10},
			Else: &IntegerExpression{Value: big.NewInt(2), Base: 10},
		},
		&OldExpression{
			Expression: &MemberExpression{
				Expression: &SelfExpression{},
				Identifier: Identifier{Identifier: "count"},
			},
		},
		&FreshExpression{
			Expression: &IdentifierExpression{Identifier: Identifier{Identifier: "o"}},
		},
		&QuantifierExpression{
			IsForall: true,
			BoundVariables: []*Formal{
				{Identifier: Identifier{Identifier: "i"}},
			},
			Condition: &BoolExpression{Value: true},
			Expression: &BinaryExpression{
				Operation: OperationLess,
				Left:      &IdentifierExpression{Identifier: Identifier{Identifier: "i"}},
				Right:     &IntegerExpression{Value: big.NewInt(10), Base: 10},
			},
		},
		&SequenceExpression{
			Values: []Expression{
				&IntegerExpression{Value: big.NewInt(1), Base: 10},
			},
		},
	}

	cloner := NewCloner(nil)

	for _, expression := range expressions {
		clone := cloner.CloneExpression(expression)
		require.Empty(t, deep.Equal(expression, clone))
		assert.NotSame(t, expression, clone)
	}
}

func TestClonerMetering(t *testing.T) {

	t.Parallel()

	gauge := &countingGauge{}
	cloner := NewCloner(gauge)

	cloner.CloneExpression(&BinaryExpression{
		Operation: OperationPlus,
		Left:      &IntegerExpression{Value: big.NewInt(1), Base: 10},
		Right:     &IntegerExpression{Value: big.NewInt(2), Base: 10},
	})

	assert.Equal(t,
		uint64(1),
		gauge.kinds[common.MemoryKindBinaryExpression],
	)
	assert.Equal(t,
		uint64(2),
		gauge.kinds[common.MemoryKindIntegerExpression],
	)
}

type countingGauge struct {
	kinds map[common.MemoryKind]uint64
}

var _ common.MemoryGauge = &countingGauge{}

func (g *countingGauge) MeterMemory(usage common.MemoryUsage) error {
	if g.kinds == nil {
		g.kinds = map[common.MemoryKind]uint64{}
	}
	g.kinds[usage.Kind] += usage.Amount
	return nil
}
