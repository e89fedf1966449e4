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

package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-lang/veridian/ast"
	"github.com/veridian-lang/veridian/common"
)

func intType() *ast.NominalType {
	return &ast.NominalType{
		Identifier: ast.Identifier{Identifier: "int"},
	}
}

func autoContractsAttributes() ast.Attributes {
	return ast.Attributes{
		{
			Identifier: ast.Identifier{
				Identifier: ast.AutoContractsAttributeName,
			},
		},
	}
}

// newAccountClass builds
//
//	{:autocontracts} class Account {
//	    var balance: int
//	    method deposit(amount: int) returns (total: int) { ... }
//	}
func newAccountClass() *ast.ClassDeclaration {
	return &ast.ClassDeclaration{
		Identifier: ast.Identifier{Identifier: "Account"},
		Attributes: autoContractsAttributes(),
		Members: []ast.Member{
			&ast.FieldDeclaration{
				Identifier:     ast.Identifier{Identifier: "balance"},
				TypeAnnotation: intType(),
			},
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "deposit"},
				Kind:       common.DeclarationKindMethod,
				Formals: []*ast.Formal{
					{
						Identifier:     ast.Identifier{Identifier: "amount"},
						TypeAnnotation: intType(),
					},
				},
				Outs: []*ast.Formal{
					{
						Identifier:     ast.Identifier{Identifier: "total"},
						TypeAnnotation: intType(),
					},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}
}

func transformSingle(t *testing.T, options Options, declaration ast.Declaration) ast.Declaration {
	t.Helper()

	synthesizer := NewSynthesizer(nil, options)
	transformed := synthesizer.TransformDeclarations(
		[]ast.Declaration{declaration},
	)
	require.Len(t, transformed, 1)
	return transformed[0]
}

func TestSynthesizerShimShape(t *testing.T) {

	t.Parallel()

	transformed := transformSingle(t, DefaultOptions, newAccountClass())

	class, ok := transformed.(*ast.ClassDeclaration)
	require.True(t, ok)

	assert.Equal(t, "Account_valid", class.Identifier.Identifier)

	// the field is dropped, only the shim remains
	require.Len(t, class.Members, 1)

	shim, ok := class.Members[0].(*ast.MethodDeclaration)
	require.True(t, ok)

	assert.Equal(t, "deposit_valid", shim.Identifier.Identifier)

	// original formals, plus the trailing witness
	require.Len(t, shim.Formals, 2)
	assert.Equal(t, "amount", shim.Formals[0].Identifier.Identifier)

	witness := shim.Formals[1]
	assert.Equal(t, WitnessName, witness.Identifier.Identifier)
	assert.False(t, witness.Ghost)

	witnessType, ok := witness.TypeAnnotation.(*ast.NominalType)
	require.True(t, ok)
	assert.Equal(t, "Account", witnessType.Identifier.Identifier)

	require.Len(t, shim.Outs, 1)
	assert.Equal(t, "total", shim.Outs[0].Identifier.Identifier)

	// requires and ensures each begin with arg_valid.Valid()
	specification := shim.Specification
	require.NotNil(t, specification)

	for _, clauses := range [][]*ast.SpecClause{
		specification.Requires,
		specification.Ensures,
	} {
		require.NotEmpty(t, clauses)
		clause := clauses[0]
		assert.True(t, clause.Injected)
		requireValidityCall(t, clause.Expression)
	}

	// the modifies frame begins with arg_valid.Repr
	require.NotEmpty(t, specification.Modifies)
	frame := specification.Modifies[0].Expression.(*ast.MemberExpression)
	assert.Equal(t, ReprFieldName, frame.Identifier.Identifier)
	requireWitnessReference(t, frame.Expression)

	// the body is the single statement `total := arg_valid.deposit(amount);`
	require.NotNil(t, shim.Body)
	require.Len(t, shim.Body.Statements, 1)

	assignment, ok := shim.Body.Statements[0].(*ast.AssignmentStatement)
	require.True(t, ok)

	require.Len(t, assignment.Targets, 1)
	target := assignment.Targets[0].(*ast.IdentifierExpression)
	assert.Equal(t, "total", target.Identifier.Identifier)

	require.Len(t, assignment.Values, 1)
	call, ok := assignment.Values[0].(*ast.InvocationExpression)
	require.True(t, ok)

	invoked := call.InvokedExpression.(*ast.MemberExpression)
	assert.Equal(t, "deposit", invoked.Identifier.Identifier)
	requireWitnessReference(t, invoked.Expression)

	require.Len(t, call.Arguments, 1)
	argument := call.Arguments[0].(*ast.IdentifierExpression)
	assert.Equal(t, "amount", argument.Identifier.Identifier)
}

func requireValidityCall(t *testing.T, expression ast.Expression) {
	t.Helper()

	call, ok := expression.(*ast.InvocationExpression)
	require.True(t, ok)
	member, ok := call.InvokedExpression.(*ast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, ValidPredicateName, member.Identifier.Identifier)
	requireWitnessReference(t, member.Expression)
}

func requireWitnessReference(t *testing.T, expression ast.Expression) {
	t.Helper()

	identifier, ok := expression.(*ast.IdentifierExpression)
	require.True(t, ok)
	assert.Equal(t, WitnessName, identifier.Identifier.Identifier)
}

func TestSynthesizerSelfRewrite(t *testing.T) {

	t.Parallel()

	class := &ast.ClassDeclaration{
		Identifier: ast.Identifier{Identifier: "Account"},
		Attributes: autoContractsAttributes(),
		Members: []ast.Member{
			&ast.FunctionDeclaration{
				Identifier: ast.Identifier{Identifier: "available"},
				Result: &ast.Formal{
					Identifier:     ast.Identifier{Identifier: "amount"},
					TypeAnnotation: intType(),
				},
				Body: &ast.MemberExpression{
					Expression: &ast.SelfExpression{},
					Identifier: ast.Identifier{Identifier: "balance"},
				},
			},
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "reset"},
				Kind:       common.DeclarationKindMethod,
				Specification: &ast.Specification{
					Requires: []*ast.SpecClause{
						{
							Expression: &ast.BinaryExpression{
								Operation: ast.OperationGreaterEqual,
								Left: &ast.MemberExpression{
									Expression: &ast.SelfExpression{},
									Identifier: ast.Identifier{Identifier: "balance"},
								},
								Right: &ast.IntegerExpression{},
							},
						},
					},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}

	transformed := transformSingle(t, DefaultOptions, class)

	var selfCount, witnessCount int
	ast.Walk(transformed, func(element ast.Element) {
		switch element := element.(type) {
		case *ast.SelfExpression:
			selfCount++
		case *ast.IdentifierExpression:
			if element.Identifier.Identifier == WitnessName {
				witnessCount++
			}
		}
	})
	assert.Zero(t, selfCount)
	assert.Positive(t, witnessCount)

	// the requires clause of the shim references the witness, not `this`
	shim := transformed.(*ast.ClassDeclaration).Members[1].(*ast.MethodDeclaration)
	clauses := shim.Specification.Requires
	require.Len(t, clauses, 2)

	rewritten := clauses[1].Expression.(*ast.BinaryExpression)
	member := rewritten.Left.(*ast.MemberExpression)
	requireWitnessReference(t, member.Expression)
}

func TestSynthesizerDroppedKinds(t *testing.T) {

	t.Parallel()

	dropped := []ast.Declaration{
		&ast.AbstractTypeDeclaration{
			Identifier: ast.Identifier{Identifier: "Shape"},
		},
		&ast.ModuleExportDeclaration{
			Identifier: ast.Identifier{Identifier: "Exports"},
		},
		&ast.SubsetTypeDeclaration{
			Identifier: ast.Identifier{Identifier: "Nat"},
			Variable:   &ast.Formal{Identifier: ast.Identifier{Identifier: "n"}},
			Constraint: &ast.BoolExpression{Value: true},
		},
		&ast.TypeSynonymDeclaration{
			Identifier: ast.Identifier{Identifier: "Amount"},
			Target:     intType(),
		},
		&ast.NewtypeDeclaration{
			Identifier: ast.Identifier{Identifier: "Handle"},
			BaseType:   intType(),
		},
		&ast.DatatypeDeclaration{
			Identifier: ast.Identifier{Identifier: "Option"},
		},
		&ast.TupleTypeDeclaration{Arity: 2},
		&ast.IteratorDeclaration{
			Identifier: ast.Identifier{Identifier: "Range"},
		},
	}

	for _, declaration := range dropped {
		declaration := declaration

		name := declaration.DeclarationKind().Name()

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			module := &ast.ModuleDeclaration{
				Identifier:   ast.Identifier{Identifier: "M"},
				Declarations: []ast.Declaration{declaration},
			}

			synthesizer := NewSynthesizer(nil, DefaultOptions)
			twin := synthesizer.TransformModule(module)

			// only the injected self-opening alias remains
			require.Len(t, twin.Declarations, 1)
			assert.IsType(t, &ast.ModuleAliasDeclaration{}, twin.Declarations[0])
		})
	}
}

func TestSynthesizerConstructorsAndLemmas(t *testing.T) {

	t.Parallel()

	newClass := func() *ast.ClassDeclaration {
		return &ast.ClassDeclaration{
			Identifier: ast.Identifier{Identifier: "Account"},
			Members: []ast.Member{
				&ast.MethodDeclaration{
					Identifier: ast.Identifier{Identifier: "init"},
					Kind:       common.DeclarationKindConstructor,
					Body:       &ast.BlockStatement{},
				},
				&ast.MethodDeclaration{
					Identifier: ast.Identifier{Identifier: "balanceNonNegative"},
					Kind:       common.DeclarationKindLemma,
					Ghost:      true,
					Body:       &ast.BlockStatement{},
				},
			},
		}
	}

	t.Run("excluded by default", func(t *testing.T) {
		t.Parallel()

		transformed := transformSingle(t, DefaultOptions, newClass())
		assert.Empty(t, transformed.(*ast.ClassDeclaration).Members)
	})

	t.Run("lemmas included when requested", func(t *testing.T) {
		t.Parallel()

		options := DefaultOptions
		options.ValidateLemmas = true

		transformed := transformSingle(t, options, newClass())
		members := transformed.(*ast.ClassDeclaration).Members
		require.Len(t, members, 1)
		assert.Equal(t,
			"balanceNonNegative_valid",
			members[0].MemberIdentifier().Identifier,
		)
	})
}

func TestSynthesizerPureOptions(t *testing.T) {

	t.Parallel()

	newClass := func() *ast.ClassDeclaration {
		return &ast.ClassDeclaration{
			Identifier: ast.Identifier{Identifier: "Account"},
			Attributes: autoContractsAttributes(),
			Members: []ast.Member{
				&ast.FunctionDeclaration{
					Identifier:  ast.Identifier{Identifier: "isEmpty"},
					IsPredicate: true,
					Body:        &ast.BoolExpression{Value: true},
				},
			},
		}
	}

	t.Run("no pure copies", func(t *testing.T) {
		t.Parallel()

		options := DefaultOptions
		options.AddPureCopies = false

		transformed := transformSingle(t, options, newClass())
		assert.Empty(t, transformed.(*ast.ClassDeclaration).Members)
	})

	t.Run("copies without validation", func(t *testing.T) {
		t.Parallel()

		options := DefaultOptions
		options.ValidatePure = false

		transformed := transformSingle(t, options, newClass())
		members := transformed.(*ast.ClassDeclaration).Members
		require.Len(t, members, 1)

		pure := members[0].(*ast.FunctionDeclaration)
		assert.Equal(t, "isEmpty_valid", pure.Identifier.Identifier)
		assert.True(t, pure.IsPredicate)
		assert.Nil(t, pure.Specification)

		// the witness is still appended, so rewritten
		// self-references stay bound
		require.Len(t, pure.Formals, 1)
		assert.Equal(t, WitnessName, pure.Formals[0].Identifier.Identifier)
	})

	t.Run("validated copies", func(t *testing.T) {
		t.Parallel()

		transformed := transformSingle(t, DefaultOptions, newClass())
		members := transformed.(*ast.ClassDeclaration).Members
		require.Len(t, members, 1)

		pure := members[0].(*ast.FunctionDeclaration)
		require.NotNil(t, pure.Specification)
		require.Len(t, pure.Specification.Requires, 1)

		clause := pure.Specification.Requires[0]
		assert.True(t, clause.Injected)
		requireValidityCall(t, clause.Expression)
	})
}

func TestSynthesizerStaticMethod(t *testing.T) {

	t.Parallel()

	class := &ast.ClassDeclaration{
		Identifier: ast.Identifier{Identifier: "Account"},
		Members: []ast.Member{
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "zero"},
				Kind:       common.DeclarationKindMethod,
				Static:     true,
				Outs: []*ast.Formal{
					{
						Identifier:     ast.Identifier{Identifier: "amount"},
						TypeAnnotation: intType(),
					},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}

	transformed := transformSingle(t, DefaultOptions, class)

	shim := transformed.(*ast.ClassDeclaration).Members[0].(*ast.MethodDeclaration)
	assert.True(t, shim.Static)

	assignment := shim.Body.Statements[0].(*ast.AssignmentStatement)
	call := assignment.Values[0].(*ast.InvocationExpression)
	invoked := call.InvokedExpression.(*ast.MemberExpression)

	// a static shim delegates through the class, not the witness
	receiver := invoked.Expression.(*ast.IdentifierExpression)
	assert.Equal(t, "Account", receiver.Identifier.Identifier)
}

func TestSynthesizerGenericWitness(t *testing.T) {

	t.Parallel()

	typeParameter := &ast.TypeParameter{
		Identifier: ast.Identifier{Identifier: "T"},
	}

	class := &ast.ClassDeclaration{
		Identifier:     ast.Identifier{Identifier: "Box"},
		TypeParameters: []*ast.TypeParameter{typeParameter},
		Members: []ast.Member{
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "get"},
				Kind:       common.DeclarationKindMethod,
				Outs: []*ast.Formal{
					{
						Identifier: ast.Identifier{Identifier: "value"},
						TypeAnnotation: &ast.NominalType{
							Identifier: ast.Identifier{Identifier: "T"},
						},
					},
				},
				Body: &ast.BlockStatement{},
			},
		},
	}

	transformed := transformSingle(t, DefaultOptions, class)

	shim := transformed.(*ast.ClassDeclaration).Members[0].(*ast.MethodDeclaration)
	witness := shim.Formals[len(shim.Formals)-1]

	witnessType := witness.TypeAnnotation.(*ast.NominalType)
	assert.Equal(t, "Box", witnessType.Identifier.Identifier)

	// the type arguments are re-synthesized open references,
	// one per class type parameter
	require.Len(t, witnessType.TypeArguments, 1)
	argument := witnessType.TypeArguments[0].(*ast.NominalType)
	assert.Equal(t, "T", argument.Identifier.Identifier)
	assert.Empty(t, argument.Qualifier)
	assert.Empty(t, argument.TypeArguments)
}

func TestSynthesizerTrait(t *testing.T) {

	t.Parallel()

	trait := &ast.TraitDeclaration{
		Identifier: ast.Identifier{Identifier: "Store"},
		Attributes: autoContractsAttributes(),
		Members: []ast.Member{
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "clear"},
				Kind:       common.DeclarationKindMethod,
				Body:       &ast.BlockStatement{},
			},
		},
	}

	transformed := transformSingle(t, DefaultOptions, trait)

	twin, ok := transformed.(*ast.TraitDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Store_valid", twin.Identifier.Identifier)
	assert.Nil(t, twin.Attributes.Find(ast.AutoContractsAttributeName))

	require.Len(t, twin.Members, 1)
	assert.Equal(t, "clear_valid", twin.Members[0].MemberIdentifier().Identifier)
}

func TestSynthesizerAutoContractsStripped(t *testing.T) {

	t.Parallel()

	transformed := transformSingle(t, DefaultOptions, newAccountClass())

	class := transformed.(*ast.ClassDeclaration)
	assert.Nil(t, class.Attributes.Find(ast.AutoContractsAttributeName))
}

func TestSynthesizerNaming(t *testing.T) {

	t.Parallel()

	class := &ast.ClassDeclaration{
		Identifier: ast.Identifier{Identifier: "Account"},
		Members: []ast.Member{
			&ast.FunctionDeclaration{
				Identifier: ast.Identifier{Identifier: "available"},
				Body:       &ast.IntegerExpression{},
			},
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "deposit"},
				Kind:       common.DeclarationKindMethod,
				Body:       &ast.BlockStatement{},
			},
			&ast.MethodDeclaration{
				Identifier: ast.Identifier{Identifier: "withdraw"},
				Kind:       common.DeclarationKindMethod,
				Body:       &ast.BlockStatement{},
			},
		},
	}

	transformed := transformSingle(t, DefaultOptions, class)

	seen := map[string]struct{}{}
	for _, member := range transformed.(*ast.ClassDeclaration).Members {
		name := member.MemberIdentifier().Identifier

		assert.Regexp(t, fmt.Sprintf("%s$", ValidSuffix), name)

		_, collision := seen[name]
		assert.False(t, collision, "duplicate member name %s", name)
		seen[name] = struct{}{}
	}
	assert.Len(t, seen, 3)
}

func TestSynthesizerNestedModules(t *testing.T) {

	t.Parallel()

	module := &ast.ModuleDeclaration{
		Identifier: ast.Identifier{Identifier: "Outer"},
		Declarations: []ast.Declaration{
			&ast.ModuleDeclaration{
				Identifier: ast.Identifier{Identifier: "Inner"},
				Declarations: []ast.Declaration{
					newAccountClass(),
				},
			},
		},
	}

	synthesizer := NewSynthesizer(nil, DefaultOptions)
	twin := synthesizer.TransformModule(module)

	assert.Equal(t, "Outer_valid", twin.Identifier.Identifier)
	require.Len(t, twin.Declarations, 2)

	outerAlias := twin.Declarations[0].(*ast.ModuleAliasDeclaration)
	assert.True(t, outerAlias.Opened)
	assert.Equal(t, "Outer", outerAlias.Identifier.Identifier)
	assert.Equal(t, "Impl.Outer", outerAlias.Target.String())

	inner := twin.Declarations[1].(*ast.ModuleDeclaration)
	assert.Equal(t, "Inner_valid", inner.Identifier.Identifier)
	require.Len(t, inner.Declarations, 2)

	innerAlias := inner.Declarations[0].(*ast.ModuleAliasDeclaration)
	assert.True(t, innerAlias.Opened)
	assert.Equal(t, "Inner", innerAlias.Identifier.Identifier)
	assert.Equal(t, "Impl.Outer.Inner", innerAlias.Target.String())

	class := inner.Declarations[1].(*ast.ClassDeclaration)
	assert.Equal(t, "Account_valid", class.Identifier.Identifier)
}

func TestSynthesizerImportRewrite(t *testing.T) {

	t.Parallel()

	t.Run("alias", func(t *testing.T) {
		t.Parallel()

		alias := &ast.ModuleAliasDeclaration{
			Identifier: ast.Identifier{Identifier: "Collections"},
			Target: ast.QualifiedName{
				{Identifier: "Std"},
				{Identifier: "Collections"},
			},
		}

		transformed := transformSingle(t, DefaultOptions, alias)

		rewritten := transformed.(*ast.ModuleAliasDeclaration)
		assert.Equal(t, "Collections", rewritten.Identifier.Identifier)
		assert.Equal(t, "Impl.Std.Collections", rewritten.Target.String())
	})

	t.Run("abstract", func(t *testing.T) {
		t.Parallel()

		module := &ast.AbstractModuleDeclaration{
			Identifier: ast.Identifier{Identifier: "Spec"},
			Target: ast.QualifiedName{
				{Identifier: "Interfaces"},
			},
		}

		transformed := transformSingle(t, DefaultOptions, module)

		rewritten := transformed.(*ast.AbstractModuleDeclaration)
		assert.Equal(t, "Impl.Interfaces", rewritten.Target.String())
	})
}

func TestSynthesizerIdempotentFiltering(t *testing.T) {

	t.Parallel()

	module := &ast.ModuleDeclaration{
		Identifier: ast.Identifier{Identifier: "M"},
		Declarations: []ast.Declaration{
			newAccountClass(),
		},
	}

	synthesizer := NewSynthesizer(nil, DefaultOptions)

	once := synthesizer.TransformModule(module)
	twice := synthesizer.TransformModule(once)

	// a tree free of droppable declarations loses nothing
	// on a second transform
	require.Len(t, twice.Declarations, len(once.Declarations))
	for i, declaration := range once.Declarations {
		assert.Equal(t,
			declaration.ElementType(),
			twice.Declarations[i].ElementType(),
		)
	}
}

func TestSynthesizerDoesNotMutateInput(t *testing.T) {

	t.Parallel()

	class := newAccountClass()

	transformSingle(t, DefaultOptions, class)

	assert.Equal(t, "Account", class.Identifier.Identifier)
	assert.NotNil(t, class.Attributes.Find(ast.AutoContractsAttributeName))
	require.Len(t, class.Members, 2)

	method := class.Members[1].(*ast.MethodDeclaration)
	assert.Equal(t, "deposit", method.Identifier.Identifier)
	require.Len(t, method.Formals, 1)
	assert.Nil(t, method.Specification)
}
