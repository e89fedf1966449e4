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

// ModuleDeclaration is a literal module definition.
// Modules form a tree; the root is the program's default module.
type ModuleDeclaration struct {
	Identifier   Identifier
	Declarations []Declaration
	Attributes   Attributes
	Range
}

var _ Element = &ModuleDeclaration{}
var _ Declaration = &ModuleDeclaration{}

func NewModuleDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	declarations []Declaration,
	attributes Attributes,
	declarationRange Range,
) *ModuleDeclaration {
	common.UseMemory(memoryGauge, common.ModuleDeclarationMemoryUsage)

	return &ModuleDeclaration{
		Identifier:   identifier,
		Declarations: declarations,
		Attributes:   attributes,
		Range:        declarationRange,
	}
}

func (*ModuleDeclaration) isDeclaration() {}

func (*ModuleDeclaration) ElementType() ElementType {
	return ElementTypeModuleDeclaration
}

func (d *ModuleDeclaration) Walk(walkChild func(Element)) {
	for _, declaration := range d.Declarations {
		walkChild(declaration)
	}
}

func (d *ModuleDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ModuleDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindModule
}

func (d *ModuleDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *ModuleDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ModuleDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ModuleDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// ModuleAliasDeclaration is an import of another module under a local name,
// e.g. `import opened A = B.C`.
type ModuleAliasDeclaration struct {
	Identifier Identifier
	Target     QualifiedName
	Opened     bool
	Attributes Attributes
	Range
}

var _ Element = &ModuleAliasDeclaration{}
var _ Declaration = &ModuleAliasDeclaration{}

func NewModuleAliasDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	target QualifiedName,
	opened bool,
	attributes Attributes,
	declarationRange Range,
) *ModuleAliasDeclaration {
	common.UseMemory(memoryGauge, common.ModuleAliasDeclarationMemoryUsage)

	return &ModuleAliasDeclaration{
		Identifier: identifier,
		Target:     target,
		Opened:     opened,
		Attributes: attributes,
		Range:      declarationRange,
	}
}

func (*ModuleAliasDeclaration) isDeclaration() {}

func (*ModuleAliasDeclaration) ElementType() ElementType {
	return ElementTypeModuleAliasDeclaration
}

func (*ModuleAliasDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *ModuleAliasDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ModuleAliasDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindModuleAlias
}

func (d *ModuleAliasDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *ModuleAliasDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ModuleAliasDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ModuleAliasDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// AbstractModuleDeclaration is an import of a module as an abstract view,
// e.g. `import A : B.C`.
type AbstractModuleDeclaration struct {
	Identifier Identifier
	Target     QualifiedName
	Opened     bool
	Attributes Attributes
	Range
}

var _ Element = &AbstractModuleDeclaration{}
var _ Declaration = &AbstractModuleDeclaration{}

func NewAbstractModuleDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	target QualifiedName,
	opened bool,
	attributes Attributes,
	declarationRange Range,
) *AbstractModuleDeclaration {
	common.UseMemory(memoryGauge, common.AbstractModuleDeclarationMemoryUsage)

	return &AbstractModuleDeclaration{
		Identifier: identifier,
		Target:     target,
		Opened:     opened,
		Attributes: attributes,
		Range:      declarationRange,
	}
}

func (*AbstractModuleDeclaration) isDeclaration() {}

func (*AbstractModuleDeclaration) ElementType() ElementType {
	return ElementTypeAbstractModuleDeclaration
}

func (*AbstractModuleDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *AbstractModuleDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *AbstractModuleDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindAbstractModule
}

func (d *AbstractModuleDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *AbstractModuleDeclaration) MarshalJSON() ([]byte, error) {
	type Alias AbstractModuleDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AbstractModuleDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// ModuleExportDeclaration declares an export set of the enclosing module.
type ModuleExportDeclaration struct {
	Identifier Identifier
	Provides   []Identifier
	Reveals    []Identifier
	Extends    []Identifier
	Attributes Attributes
	Range
}

var _ Element = &ModuleExportDeclaration{}
var _ Declaration = &ModuleExportDeclaration{}

func NewModuleExportDeclaration(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	provides []Identifier,
	reveals []Identifier,
	extends []Identifier,
	attributes Attributes,
	declarationRange Range,
) *ModuleExportDeclaration {
	common.UseMemory(memoryGauge, common.ModuleExportDeclarationMemoryUsage)

	return &ModuleExportDeclaration{
		Identifier: identifier,
		Provides:   provides,
		Reveals:    reveals,
		Extends:    extends,
		Attributes: attributes,
		Range:      declarationRange,
	}
}

func (*ModuleExportDeclaration) isDeclaration() {}

func (*ModuleExportDeclaration) ElementType() ElementType {
	return ElementTypeModuleExportDeclaration
}

func (*ModuleExportDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *ModuleExportDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ModuleExportDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindModuleExport
}

func (d *ModuleExportDeclaration) DeclarationAttributes() Attributes {
	return d.Attributes
}

func (d *ModuleExportDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ModuleExportDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ModuleExportDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
