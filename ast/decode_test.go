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
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-lang/veridian/common"
)

func TestDecodeProgramRoundTrip(t *testing.T) {

	t.Parallel()

	program := NewProgram(nil, []Declaration{
		&ModuleDeclaration{
			Identifier: Identifier{Identifier: "Bank"},
			Attributes: Attributes{
				{Identifier: Identifier{Identifier: "axiom"}},
			},
			Declarations: []Declaration{
				&ClassDeclaration{
					Identifier: Identifier{Identifier: "Account"},
					Attributes: Attributes{
						{Identifier: Identifier{Identifier: AutoContractsAttributeName}},
					},
					Members: []Member{
						&FieldDeclaration{
							Identifier:     Identifier{Identifier: "balance"},
							TypeAnnotation: &NominalType{Identifier: Identifier{Identifier: "int"}},
						},
						&FunctionDeclaration{
							Identifier:  Identifier{Identifier: "Valid"},
							IsPredicate: true,
							Ghost:       true,
							Body: &BinaryExpression{
								Operation: OperationGreaterEqual,
								Left: &MemberExpression{
									Expression: &SelfExpression{},
									Identifier: Identifier{Identifier: "balance"},
								},
								Right: &IntegerExpression{
									Value: big.NewInt(0),
									Base:  10,
								},
							},
						},
						&MethodDeclaration{
							Identifier: Identifier{Identifier: "deposit"},
							Kind:       common.DeclarationKindMethod,
							Formals: []*Formal{
								{
									Identifier:     Identifier{Identifier: "amount"},
									TypeAnnotation: &NominalType{Identifier: Identifier{Identifier: "int"}},
								},
							},
							Specification: &Specification{
								Requires: []*SpecClause{
									{
										Expression: &BinaryExpression{
											Operation: OperationGreater,
											Left: &IdentifierExpression{
												Identifier: Identifier{Identifier: "amount"},
											},
											Right: &IntegerExpression{
												Value: big.NewInt(0),
												Base:  10,
											},
										},
									},
								},
							},
							Body: &BlockStatement{
								Statements: []Statement{
									&AssignmentStatement{
										Targets: []Expression{
											&MemberExpression{
												Expression: &SelfExpression{},
												Identifier: Identifier{Identifier: "balance"},
											},
										},
										Values: []Expression{
											&BinaryExpression{
												Operation: OperationPlus,
												Left: &MemberExpression{
													Expression: &SelfExpression{},
													Identifier: Identifier{Identifier: "balance"},
												},
												Right: &IdentifierExpression{
													Identifier: Identifier{Identifier: "amount"},
												},
											},
										},
									},
									&AssertStatement{
										Test: &InvocationExpression{
											InvokedExpression: &MemberExpression{
												Expression: &SelfExpression{},
												Identifier: Identifier{Identifier: "Valid"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	})

	encoded, err := json.Marshal(program)
	require.NoError(t, err)

	decoded, err := DecodeProgram(nil, encoded)
	require.NoError(t, err)

	require.Empty(t, deep.Equal(program.Declarations(), decoded.Declarations()))
}

func TestDecodeStatementUnknownType(t *testing.T) {

	t.Parallel()

	decoder := NewDecoder(nil)

	_, err := decoder.DecodeStatement([]byte(`{"Type": "GotoStatement"}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "GotoStatement")
}

func TestDecodeProgramInvalidType(t *testing.T) {

	t.Parallel()

	_, err := DecodeProgram(nil, []byte(`{"Type": "Expression"}`))
	require.Error(t, err)
}
