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
	"strings"

	"github.com/veridian-lang/veridian/ast"
)

// ValidatorTwinName is the name of the injected validator twin module.
const ValidatorTwinName = WiringRootName + ValidSuffix

// WireProgram produces the combined program handed to the printer:
// the original declarations unchanged, followed by the reference twin
// and the validator twin.
//
// The reference twin is a resolved deep clone of the original
// declarations, wrapped in a module named by the wiring root, so the
// validator twin's rewritten imports and self-opening aliases have a
// target to resolve against. The validator twin is the transform of
// the same declarations, prefixed with an opened alias of the
// reference twin so originals stay visible by simple name.
//
// Twins synthesized by a previous run are discarded first, making
// wiring idempotent with respect to repeated invocations.
func (s *Synthesizer) WireProgram(program *ast.Program) *ast.Program {
	if program == nil {
		return nil
	}

	declarations := program.Declarations()

	kept := make([]ast.Declaration, 0, len(declarations))
	for _, declaration := range declarations {
		if isSynthesizedTwin(declaration) {
			continue
		}
		kept = append(kept, declaration)
	}

	combined := append(
		kept,
		s.newReferenceTwin(kept),
		s.newValidatorTwin(kept),
	)

	return ast.NewProgram(s.gauge, combined)
}

func isSynthesizedTwin(declaration ast.Declaration) bool {
	if declaration.ElementType() != ast.ElementTypeModuleDeclaration {
		return false
	}
	return strings.HasPrefix(
		declaration.DeclarationIdentifier().Identifier,
		WiringRootName,
	)
}

// newReferenceTwin deep-clones the given declarations with resolved
// links preserved, so calls from the validator twin resolve into the
// clone. A single cloner spans all declarations: cross-declaration
// identity links must land on the same clones.
func (s *Synthesizer) newReferenceTwin(declarations []ast.Declaration) *ast.ModuleDeclaration {
	cloner := ast.NewResolvedCloner(s.gauge)
	return ast.NewModuleDeclaration(
		s.gauge,
		ast.NewIdentifier(s.gauge, WiringRootName, ast.EmptyPosition),
		cloner.CloneDeclarations(declarations),
		nil,
		ast.EmptyRange,
	)
}

func (s *Synthesizer) newValidatorTwin(declarations []ast.Declaration) *ast.ModuleDeclaration {
	transformed := s.TransformDeclarations(declarations)

	alias := s.newSelfOpeningAlias(nil)

	return ast.NewModuleDeclaration(
		s.gauge,
		ast.NewIdentifier(s.gauge, ValidatorTwinName, ast.EmptyPosition),
		append([]ast.Declaration{alias}, transformed...),
		nil,
		ast.EmptyRange,
	)
}

// Synthesize wires the program and serializes the result
// with the given printer.
func (s *Synthesizer) Synthesize(
	program *ast.Program,
	printer Printer,
	mode PrintMode,
) (*ast.Program, []byte, error) {
	wired := s.WireProgram(program)
	source, err := printer.Print(wired, mode)
	if err != nil {
		return nil, nil, err
	}
	return wired, source, nil
}
