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
	"encoding/json"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-lang/veridian/ast"
)

func newBankProgram() *ast.Program {
	return ast.NewProgram(nil, []ast.Declaration{
		&ast.ModuleDeclaration{
			Identifier: ast.Identifier{Identifier: "Bank"},
			Declarations: []ast.Declaration{
				newAccountClass(),
			},
		},
	})
}

func TestWireProgramTwins(t *testing.T) {

	t.Parallel()

	program := newBankProgram()
	original := program.Declarations()[0]

	synthesizer := NewSynthesizer(nil, DefaultOptions)
	wired := synthesizer.WireProgram(program)

	declarations := wired.Declarations()
	require.Len(t, declarations, 3)

	// the original declaration is carried over unchanged
	assert.Same(t, original, declarations[0])

	reference, ok := declarations[1].(*ast.ModuleDeclaration)
	require.True(t, ok)
	assert.Equal(t, WiringRootName, reference.Identifier.Identifier)

	twin, ok := declarations[2].(*ast.ModuleDeclaration)
	require.True(t, ok)
	assert.Equal(t, ValidatorTwinName, twin.Identifier.Identifier)

	// the twin opens the reference twin,
	// then holds the transformed module
	require.Len(t, twin.Declarations, 2)

	alias := twin.Declarations[0].(*ast.ModuleAliasDeclaration)
	assert.True(t, alias.Opened)
	assert.Equal(t, WiringRootName, alias.Target.String())

	module := twin.Declarations[1].(*ast.ModuleDeclaration)
	assert.Equal(t, "Bank_valid", module.Identifier.Identifier)
}

func TestWireReferenceTwinIsDeepClone(t *testing.T) {

	t.Parallel()

	program := newBankProgram()
	original := program.Declarations()[0]

	synthesizer := NewSynthesizer(nil, DefaultOptions)
	wired := synthesizer.WireProgram(program)

	reference := wired.Declarations()[1].(*ast.ModuleDeclaration)
	require.Len(t, reference.Declarations, 1)

	clone := reference.Declarations[0]
	assert.NotSame(t, original, clone)
	assert.Empty(t, deep.Equal(original, clone))
}

func TestWireProgramIdempotent(t *testing.T) {

	t.Parallel()

	synthesizer := NewSynthesizer(nil, DefaultOptions)

	once := synthesizer.WireProgram(newBankProgram())
	twice := synthesizer.WireProgram(once)

	// twins of the previous run are discarded and regenerated
	require.Len(t, twice.Declarations(), len(once.Declarations()))

	names := make([]string, 0, len(twice.Declarations()))
	for _, declaration := range twice.Declarations() {
		names = append(names, declaration.DeclarationIdentifier().Identifier)
	}
	assert.Equal(t,
		[]string{"Bank", WiringRootName, ValidatorTwinName},
		names,
	)
}

func TestWireProgramRewritesImports(t *testing.T) {

	t.Parallel()

	program := ast.NewProgram(nil, []ast.Declaration{
		&ast.ModuleAliasDeclaration{
			Identifier: ast.Identifier{Identifier: "Std"},
			Target: ast.QualifiedName{
				{Identifier: "Std"},
			},
		},
	})

	synthesizer := NewSynthesizer(nil, DefaultOptions)
	wired := synthesizer.WireProgram(program)

	twin := wired.Declarations()[2].(*ast.ModuleDeclaration)
	require.Len(t, twin.Declarations, 2)

	rewritten := twin.Declarations[1].(*ast.ModuleAliasDeclaration)
	assert.Equal(t, "Impl.Std", rewritten.Target.String())
}

func TestWireNilProgram(t *testing.T) {

	t.Parallel()

	synthesizer := NewSynthesizer(nil, DefaultOptions)
	assert.Nil(t, synthesizer.WireProgram(nil))
}

func TestSynthesizeJSON(t *testing.T) {

	t.Parallel()

	synthesizer := NewSynthesizer(nil, DefaultOptions)

	wired, source, err := synthesizer.Synthesize(
		newBankProgram(),
		JSONPrinter{Indent: "    "},
		PrintModeMarkInjected,
	)
	require.NoError(t, err)
	require.NotNil(t, wired)

	require.True(t, json.Valid(source))
	assert.Contains(t, string(source), ValidatorTwinName)
	assert.Contains(t, string(source), "deposit_valid")

	// the serialized form round-trips through the decoder
	decoded, err := ast.DecodeProgram(nil, source)
	require.NoError(t, err)
	assert.Empty(t, deep.Equal(wired.Declarations(), decoded.Declarations()))
}
