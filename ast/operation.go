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
	"fmt"

	"github.com/veridian-lang/veridian/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota

	// Unary

	OperationNegate
	OperationMinusUnary

	// Binary

	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationLessEqual
	OperationGreater
	OperationGreaterEqual
	OperationAnd
	OperationOr
	OperationImplies
	OperationIff
)

func (s Operation) Symbol() string {
	switch s {
	case OperationNegate:
		return "!"
	case OperationMinusUnary, OperationMinus:
		return "-"
	case OperationPlus:
		return "+"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationLessEqual:
		return "<="
	case OperationGreater:
		return ">"
	case OperationGreaterEqual:
		return ">="
	case OperationAnd:
		return "&&"
	case OperationOr:
		return "||"
	case OperationImplies:
		return "==>"
	case OperationIff:
		return "<==>"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Operation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	operation, ok := operationsByName[name]
	if !ok {
		return fmt.Errorf("invalid operation: %s", name)
	}
	*s = operation
	return nil
}

var operationsByName = map[string]Operation{
	"OperationNegate":       OperationNegate,
	"OperationMinusUnary":   OperationMinusUnary,
	"OperationPlus":         OperationPlus,
	"OperationMinus":        OperationMinus,
	"OperationMul":          OperationMul,
	"OperationDiv":          OperationDiv,
	"OperationMod":          OperationMod,
	"OperationEqual":        OperationEqual,
	"OperationNotEqual":     OperationNotEqual,
	"OperationLess":         OperationLess,
	"OperationLessEqual":    OperationLessEqual,
	"OperationGreater":      OperationGreater,
	"OperationGreaterEqual": OperationGreaterEqual,
	"OperationAnd":          OperationAnd,
	"OperationOr":           OperationOr,
	"OperationImplies":      OperationImplies,
	"OperationIff":          OperationIff,
}

func (s Operation) String() string {
	switch s {
	case OperationUnknown:
		return "OperationUnknown"
	case OperationNegate:
		return "OperationNegate"
	case OperationMinusUnary:
		return "OperationMinusUnary"
	case OperationPlus:
		return "OperationPlus"
	case OperationMinus:
		return "OperationMinus"
	case OperationMul:
		return "OperationMul"
	case OperationDiv:
		return "OperationDiv"
	case OperationMod:
		return "OperationMod"
	case OperationEqual:
		return "OperationEqual"
	case OperationNotEqual:
		return "OperationNotEqual"
	case OperationLess:
		return "OperationLess"
	case OperationLessEqual:
		return "OperationLessEqual"
	case OperationGreater:
		return "OperationGreater"
	case OperationGreaterEqual:
		return "OperationGreaterEqual"
	case OperationAnd:
		return "OperationAnd"
	case OperationOr:
		return "OperationOr"
	case OperationImplies:
		return "OperationImplies"
	case OperationIff:
		return "OperationIff"
	}

	panic(errors.NewUnreachableError())
}
