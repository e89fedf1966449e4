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

	"github.com/veridian-lang/veridian/ast"
)

// PrintMode selects how a wired program is re-emitted.
type PrintMode uint

const (
	// PrintModePlain renders injected specification clauses
	// the same way as user-written ones.
	PrintModePlain PrintMode = iota

	// PrintModeMarkInjected renders injected specification
	// clauses distinctly from user-written ones.
	PrintModeMarkInjected
)

// A Printer serializes a wired program for re-emission.
type Printer interface {
	Print(program *ast.Program, mode PrintMode) ([]byte, error)
}

// JSONPrinter is the default Printer. It emits the program AST
// as JSON. Injected clauses always carry their marker in the
// serialized form, so both print modes produce it; the mode
// matters to printers producing surface syntax.
type JSONPrinter struct {
	// Indent, if non-empty, pretty-prints with the given indentation.
	Indent string
}

var _ Printer = JSONPrinter{}

func (p JSONPrinter) Print(program *ast.Program, _ PrintMode) ([]byte, error) {
	if p.Indent != "" {
		return json.MarshalIndent(program, "", p.Indent)
	}
	return json.Marshal(program)
}
