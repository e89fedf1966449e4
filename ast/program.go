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

	"github.com/veridian-lang/veridian/common"
)

// Program is the top-level unit the validator operates on:
// the list of top-level declarations of a compilation.
type Program struct {
	declarations []Declaration
}

var _ Element = &Program{}

func NewProgram(
	memoryGauge common.MemoryGauge,
	declarations []Declaration,
) *Program {
	common.UseMemory(memoryGauge, common.ProgramMemoryUsage)

	return &Program{
		declarations: declarations,
	}
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) Declarations() []Declaration {
	return p.declarations
}

func (p *Program) StartPosition() Position {
	if len(p.declarations) == 0 {
		return EmptyPosition
	}
	firstDeclaration := p.declarations[0]
	return firstDeclaration.StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.declarations)
	if count == 0 {
		return EmptyPosition
	}
	lastDeclaration := p.declarations[count-1]
	return lastDeclaration.EndPosition()
}

func (p *Program) Walk(walkChild func(Element)) {
	for _, declaration := range p.declarations {
		walkChild(declaration)
	}
}

func (p *Program) MarshalJSON() ([]byte, error) {
	type Alias Program
	return json.Marshal(&struct {
		Type         string
		Declarations []Declaration
		*Alias
	}{
		Type:         "Program",
		Declarations: p.declarations,
		Alias:        (*Alias)(p),
	})
}
