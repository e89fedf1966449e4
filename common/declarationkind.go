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

package common

import (
	"github.com/veridian-lang/veridian/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=DeclarationKind -trimprefix=DeclarationKind

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota

	// Modules

	DeclarationKindModule
	DeclarationKindModuleAlias
	DeclarationKindAbstractModule
	DeclarationKindModuleExport

	// Top-level type declarations

	DeclarationKindClass
	DeclarationKindTrait
	DeclarationKindIterator
	DeclarationKindAbstractType
	DeclarationKindSubsetType
	DeclarationKindTypeSynonym
	DeclarationKindNewtype
	DeclarationKindDatatype
	DeclarationKindCoDatatype
	DeclarationKindTupleType

	// Members

	DeclarationKindField
	DeclarationKindConstantField
	DeclarationKindSpecialField
	DeclarationKindFunction
	DeclarationKindPredicate
	DeclarationKindMethod
	DeclarationKindConstructor
	DeclarationKindLemma
	DeclarationKindTwoStateLemma
	DeclarationKindLeastLemma
	DeclarationKindGreatestLemma

	// Others

	DeclarationKindParameter
	DeclarationKindTypeParameter
	DeclarationKindSelf
)

// IsLemma returns true for every member of the lemma family.
// Lemmas carry no runtime behavior.
func (k DeclarationKind) IsLemma() bool {
	switch k {
	case DeclarationKindLemma,
		DeclarationKindTwoStateLemma,
		DeclarationKindLeastLemma,
		DeclarationKindGreatestLemma:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindClass,
		DeclarationKindTrait,
		DeclarationKindIterator,
		DeclarationKindAbstractType,
		DeclarationKindSubsetType,
		DeclarationKindTypeSynonym,
		DeclarationKindNewtype,
		DeclarationKindDatatype,
		DeclarationKindCoDatatype,
		DeclarationKindTupleType,
		DeclarationKindTypeParameter:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindModule:
		return "module"
	case DeclarationKindModuleAlias:
		return "module alias"
	case DeclarationKindAbstractModule:
		return "abstract module"
	case DeclarationKindModuleExport:
		return "module export"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindTrait:
		return "trait"
	case DeclarationKindIterator:
		return "iterator"
	case DeclarationKindAbstractType:
		return "abstract type"
	case DeclarationKindSubsetType:
		return "subset type"
	case DeclarationKindTypeSynonym:
		return "type synonym"
	case DeclarationKindNewtype:
		return "newtype"
	case DeclarationKindDatatype:
		return "datatype"
	case DeclarationKindCoDatatype:
		return "codatatype"
	case DeclarationKindTupleType:
		return "tuple type"
	case DeclarationKindField:
		return "field"
	case DeclarationKindConstantField:
		return "constant field"
	case DeclarationKindSpecialField:
		return "special field"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindPredicate:
		return "predicate"
	case DeclarationKindMethod:
		return "method"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindLemma:
		return "lemma"
	case DeclarationKindTwoStateLemma:
		return "twostate lemma"
	case DeclarationKindLeastLemma:
		return "least lemma"
	case DeclarationKindGreatestLemma:
		return "greatest lemma"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindTypeParameter:
		return "type parameter"
	case DeclarationKindSelf:
		return "this"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) Keywords() string {
	switch k {
	case DeclarationKindModule:
		return "module"
	case DeclarationKindModuleAlias,
		DeclarationKindAbstractModule:
		return "import"
	case DeclarationKindModuleExport:
		return "export"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindTrait:
		return "trait"
	case DeclarationKindIterator:
		return "iterator"
	case DeclarationKindAbstractType:
		return "type"
	case DeclarationKindSubsetType:
		return "subset type"
	case DeclarationKindTypeSynonym:
		return "type"
	case DeclarationKindNewtype:
		return "newtype"
	case DeclarationKindDatatype:
		return "datatype"
	case DeclarationKindCoDatatype:
		return "codatatype"
	case DeclarationKindField,
		DeclarationKindSpecialField:
		return "var"
	case DeclarationKindConstantField:
		return "const"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindPredicate:
		return "predicate"
	case DeclarationKindMethod:
		return "method"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindLemma:
		return "lemma"
	case DeclarationKindTwoStateLemma:
		return "twostate lemma"
	case DeclarationKindLeastLemma:
		return "least lemma"
	case DeclarationKindGreatestLemma:
		return "greatest lemma"
	case DeclarationKindSelf:
		return "this"
	default:
		return ""
	}
}
