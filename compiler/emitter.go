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
	"math/big"

	"github.com/veridian-lang/veridian/ast"
)

// An Emitter is the per-backend emission protocol of the lowering
// pipeline. The compiler drives it in source order: statement
// primitives are emitted as side effects, expression primitives
// return the backend's compiled representation E.
//
// Structured statements are bracketed: an if statement arrives as
// EmitIf, the then-block, optionally EmitElse and the else branch,
// then EmitIfEnd. Loops and matches follow the same shape.
type Emitter[E any] interface {

	// expressions

	EmitIntegerLiteral(value *big.Int) E
	EmitBoolLiteral(value bool) E
	EmitStringLiteral(value string) E
	EmitNilLiteral() E
	EmitIdentifier(name string) E
	EmitSelf() E
	EmitMemberAccess(target E, name string) E
	EmitIndex(target E, index E) E
	EmitUnary(operation ast.Operation, operand E) E
	EmitBinary(operation ast.Operation, left E, right E) E
	EmitConditional(test E, then E, otherwise E) E
	EmitInvocation(invoked E, arguments []E) E
	EmitSequence(values []E) E
	EmitOld(value E) E
	EmitFresh(value E) E
	EmitQuantifier(isForall bool, boundVariables []string, condition E, body E) E

	// statements

	EmitBlockStart()
	EmitBlockEnd()
	EmitIf(test E)
	EmitElse()
	EmitIfEnd()
	EmitLoop(test E)
	EmitLoopEnd()
	EmitBreak()
	EmitContinue()
	EmitReturn(values []E)
	EmitMatch(source E)
	EmitCase(pattern *ast.CasePattern)
	EmitMatchEnd()
	EmitAssignment(targets []E, values []E)
	EmitVariableDeclaration(names []string, values []E)
	EmitExpressionStatement(value E)
	EmitPrint(arguments []E)

	// EmitRuntimeCheck evaluates at run time a condition
	// lowered from a ghost assertion.
	EmitRuntimeCheck(condition E)
}
