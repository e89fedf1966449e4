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

// SpecClause is a single requires, ensures, or invariant clause.
//
// Injected marks clauses synthesized by the validator transform,
// so printers can render them distinctly from user-written clauses.
type SpecClause struct {
	Expression Expression
	Injected   bool
}

func NewSpecClause(
	memoryGauge common.MemoryGauge,
	expression Expression,
	injected bool,
) *SpecClause {
	common.UseMemory(memoryGauge, common.SpecClauseMemoryUsage)

	return &SpecClause{
		Expression: expression,
		Injected:   injected,
	}
}

func (c *SpecClause) StartPosition() Position {
	return c.Expression.StartPosition()
}

func (c *SpecClause) EndPosition() Position {
	return c.Expression.EndPosition()
}

func (c *SpecClause) MarshalJSON() ([]byte, error) {
	type Alias SpecClause
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "SpecClause",
		Alias: (*Alias)(c),
	})
}

// FrameExpression is a single reads or modifies frame element.
type FrameExpression struct {
	Expression Expression
	// FieldName restricts the frame to a single field, if non-empty
	FieldName string
}

func NewFrameExpression(
	memoryGauge common.MemoryGauge,
	expression Expression,
	fieldName string,
) *FrameExpression {
	common.UseMemory(memoryGauge, common.FrameExpressionMemoryUsage)

	return &FrameExpression{
		Expression: expression,
		FieldName:  fieldName,
	}
}

func (f *FrameExpression) StartPosition() Position {
	return f.Expression.StartPosition()
}

func (f *FrameExpression) EndPosition() Position {
	return f.Expression.EndPosition()
}

func (f *FrameExpression) MarshalJSON() ([]byte, error) {
	type Alias FrameExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "FrameExpression",
		Alias: (*Alias)(f),
	})
}

// Specification is the machine-checked contract of a function,
// method, or iterator.
type Specification struct {
	Requires  []*SpecClause
	Ensures   []*SpecClause
	Reads     []*FrameExpression
	Modifies  []*FrameExpression
	Decreases []Expression
}

func NewSpecification(
	memoryGauge common.MemoryGauge,
	requires []*SpecClause,
	ensures []*SpecClause,
	reads []*FrameExpression,
	modifies []*FrameExpression,
	decreases []Expression,
) *Specification {
	common.UseMemory(memoryGauge, common.SpecificationMemoryUsage)

	return &Specification{
		Requires:  requires,
		Ensures:   ensures,
		Reads:     reads,
		Modifies:  modifies,
		Decreases: decreases,
	}
}

// IsEmpty returns true if no clause of any kind is present.
func (s *Specification) IsEmpty() bool {
	return s == nil ||
		len(s.Requires) == 0 &&
			len(s.Ensures) == 0 &&
			len(s.Reads) == 0 &&
			len(s.Modifies) == 0 &&
			len(s.Decreases) == 0
}
