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
	"github.com/veridian-lang/veridian/ast"
	"github.com/veridian-lang/veridian/common"
	"github.com/veridian-lang/veridian/errors"
)

// Names fixed by the validation convention.
const (
	// ValidSuffix is appended to every declaration
	// retained in the validator twin.
	ValidSuffix = "_valid"

	// WitnessName is the name of the synthesized formal
	// holding the receiver instance under validation.
	WitnessName = "arg_valid"

	// ValidPredicateName is the implicit validity predicate
	// declared by the auto-contracts marker.
	ValidPredicateName = "Valid"

	// ReprFieldName is the implicit ownership-frame field
	// declared by the auto-contracts marker.
	ReprFieldName = "Repr"

	// WiringRootName is the name of the reference twin module.
	// Rewritten import paths resolve against it.
	WiringRootName = "Impl"
)

// Options control which members of a module
// receive validation counterparts.
type Options struct {
	// AddPureCopies adds renamed copies
	// of functions and predicates.
	AddPureCopies bool

	// ValidatePure injects validity preconditions
	// into the copies added by AddPureCopies.
	ValidatePure bool

	// ValidateLemmas generates shims for lemmas,
	// which are otherwise excluded.
	ValidateLemmas bool
}

// DefaultOptions validates pure declarations but not lemmas.
var DefaultOptions = Options{
	AddPureCopies: true,
	ValidatePure:  true,
}

// A Synthesizer produces the validator twin of a module tree:
// a parallel module in which every retained method is rewritten
// into a thin shim that delegates to the original implementation
// and checks the implicit validity contract around the call.
//
// The transform never mutates its input. Each declaration is
// rebuilt from cloned parts through a fresh Cloner, so the
// identity maps of one member never leak into another.
type Synthesizer struct {
	gauge   common.MemoryGauge
	options Options
}

func NewSynthesizer(gauge common.MemoryGauge, options Options) *Synthesizer {
	return &Synthesizer{
		gauge:   gauge,
		options: options,
	}
}

// transformContext records the module and class position of the
// declaration being transformed. It is threaded as a parameter
// through the recursive transform calls, never stored on the
// Synthesizer, which keeps nested-module transforms re-entrant.
type transformContext struct {
	// modulePath holds the names of the enclosing original modules,
	// outermost first.
	modulePath []ast.Identifier

	// className is the simple name of the enclosing class or trait,
	// or empty outside class context.
	className string

	// typeParameterNames are the enclosing class's type parameters,
	// recorded by name so the witness type can be re-synthesized
	// without referencing the class declaration itself.
	typeParameterNames []string

	// autoContracts records whether the enclosing class
	// declared the auto-contracts marker.
	autoContracts bool
}

func (ctx transformContext) inClass() bool {
	return ctx.className != ""
}

func (ctx transformContext) withModule(identifier ast.Identifier) transformContext {
	path := ctx.modulePath
	ctx.modulePath = append(path[:len(path):len(path)], identifier)
	return ctx
}

func (ctx transformContext) withClass(
	identifier ast.Identifier,
	typeParameters []*ast.TypeParameter,
	autoContracts bool,
) transformContext {
	names := make([]string, len(typeParameters))
	for i, typeParameter := range typeParameters {
		names[i] = typeParameter.Identifier.Identifier
	}
	ctx.className = identifier.Identifier
	ctx.typeParameterNames = names
	ctx.autoContracts = autoContracts
	return ctx
}

// witnessRewriter replaces every cloned `this` expression
// with a reference to the validity witness. Shim methods have
// no implicit receiver, so the receiver must become an
// explicit parameter reference.
type witnessRewriter struct {
	gauge common.MemoryGauge
}

var _ ast.SelfExpressionCloner = witnessRewriter{}

func (r witnessRewriter) CloneSelfExpression(expression *ast.SelfExpression) ast.Expression {
	return ast.NewIdentifierExpression(
		r.gauge,
		ast.NewIdentifier(r.gauge, WitnessName, expression.Pos),
	)
}

// newCloner returns a fresh single-use Cloner for one declaration.
// In class context, self-references are rewritten to the witness.
func (s *Synthesizer) newCloner(ctx transformContext) *ast.Cloner {
	cloner := ast.NewCloner(s.gauge)
	if ctx.inClass() {
		cloner.SelfCloner = witnessRewriter{gauge: s.gauge}
	}
	return cloner
}

// TransformModule produces the validator twin of a single module:
// the module renamed with the valid suffix, its retained declarations
// transformed, and a self-opening alias injected so the twin resolves
// the original declarations it shims through the reference twin.
func (s *Synthesizer) TransformModule(module *ast.ModuleDeclaration) *ast.ModuleDeclaration {
	if module == nil {
		return nil
	}
	return s.transformModule(transformContext{}, module)
}

// TransformDeclarations transforms a top-level declaration list,
// omitting the declarations excluded from validation.
func (s *Synthesizer) TransformDeclarations(declarations []ast.Declaration) []ast.Declaration {
	return s.transformDeclarations(transformContext{}, declarations)
}

func (s *Synthesizer) transformDeclarations(
	ctx transformContext,
	declarations []ast.Declaration,
) []ast.Declaration {
	result := make([]ast.Declaration, 0, len(declarations))
	for _, declaration := range declarations {
		transformed := s.transformDeclaration(ctx, declaration)
		if transformed == nil {
			continue
		}
		result = append(result, transformed)
	}
	return result
}

func (s *Synthesizer) transformDeclaration(
	ctx transformContext,
	declaration ast.Declaration,
) ast.Declaration {
	switch declaration.ElementType() {
	case ast.ElementTypeModuleDeclaration:
		return s.transformModule(ctx, declaration.(*ast.ModuleDeclaration))

	case ast.ElementTypeModuleAliasDeclaration:
		return s.rewriteModuleAlias(ctx, declaration.(*ast.ModuleAliasDeclaration))

	case ast.ElementTypeAbstractModuleDeclaration:
		return s.rewriteAbstractModule(ctx, declaration.(*ast.AbstractModuleDeclaration))

	case ast.ElementTypeClassDeclaration:
		class := declaration.(*ast.ClassDeclaration)
		return s.transformComposite(
			ctx,
			class.Identifier,
			class.TypeParameters,
			class.ParentTraits,
			class.Members,
			class.Attributes,
			class.Range,
			false,
		)

	case ast.ElementTypeTraitDeclaration:
		trait := declaration.(*ast.TraitDeclaration)
		return s.transformComposite(
			ctx,
			trait.Identifier,
			trait.TypeParameters,
			trait.ParentTraits,
			trait.Members,
			trait.Attributes,
			trait.Range,
			true,
		)

	case ast.ElementTypeAbstractTypeDeclaration,
		ast.ElementTypeModuleExportDeclaration,
		ast.ElementTypeSubsetTypeDeclaration,
		ast.ElementTypeTypeSynonymDeclaration,
		ast.ElementTypeNewtypeDeclaration,
		ast.ElementTypeDatatypeDeclaration,
		ast.ElementTypeTupleTypeDeclaration,
		ast.ElementTypeIteratorDeclaration:
		// Shape-only declarations carry no checkable behavior.
		// Iterators hold their state implicitly and cannot be
		// delegated to through an explicit witness.
		return nil

	default:
		panic(errors.NewUnreachableError())
	}
}

func (s *Synthesizer) transformModule(
	ctx transformContext,
	module *ast.ModuleDeclaration,
) *ast.ModuleDeclaration {

	inner := ctx.withModule(module.Identifier)

	declarations := s.transformDeclarations(inner, module.Declarations)

	// The self-opening alias lets the twin see the original,
	// untransformed declarations through the reference twin.
	alias := s.newSelfOpeningAlias(inner.modulePath)

	cloner := s.newCloner(ctx)
	attributes := s.stripAutoContracts(cloner.CloneAttributes(module.Attributes))

	return ast.NewModuleDeclaration(
		s.gauge,
		s.suffixedIdentifier(module.Identifier),
		append([]ast.Declaration{alias}, declarations...),
		attributes,
		module.Range,
	)
}

// newSelfOpeningAlias builds `import opened <name> = Impl.<path>`
// for the module at the given original path.
func (s *Synthesizer) newSelfOpeningAlias(modulePath []ast.Identifier) *ast.ModuleAliasDeclaration {
	target := make(ast.QualifiedName, 0, len(modulePath)+1)
	target = append(
		target,
		ast.NewIdentifier(s.gauge, WiringRootName, ast.EmptyPosition),
	)
	for _, segment := range modulePath {
		target = append(
			target,
			ast.NewIdentifier(s.gauge, segment.Identifier, ast.EmptyPosition),
		)
	}

	name := WiringRootName
	if len(modulePath) > 0 {
		name = modulePath[len(modulePath)-1].Identifier
	}

	return ast.NewModuleAliasDeclaration(
		s.gauge,
		ast.NewIdentifier(s.gauge, name, ast.EmptyPosition),
		target,
		true,
		nil,
		ast.EmptyRange,
	)
}

func (s *Synthesizer) rewriteModuleAlias(
	ctx transformContext,
	alias *ast.ModuleAliasDeclaration,
) *ast.ModuleAliasDeclaration {
	cloner := s.newCloner(ctx)
	return ast.NewModuleAliasDeclaration(
		s.gauge,
		ast.NewIdentifier(s.gauge, alias.Identifier.Identifier, alias.Identifier.Pos),
		s.rewriteImportTarget(alias.Target),
		alias.Opened,
		s.stripAutoContracts(cloner.CloneAttributes(alias.Attributes)),
		alias.Range,
	)
}

func (s *Synthesizer) rewriteAbstractModule(
	ctx transformContext,
	module *ast.AbstractModuleDeclaration,
) *ast.AbstractModuleDeclaration {
	cloner := s.newCloner(ctx)
	return ast.NewAbstractModuleDeclaration(
		s.gauge,
		ast.NewIdentifier(s.gauge, module.Identifier.Identifier, module.Identifier.Pos),
		s.rewriteImportTarget(module.Target),
		module.Opened,
		s.stripAutoContracts(cloner.CloneAttributes(module.Attributes)),
		module.Range,
	)
}

// rewriteImportTarget redirects an import so it resolves against
// the reference twin instead of the original module.
func (s *Synthesizer) rewriteImportTarget(target ast.QualifiedName) ast.QualifiedName {
	cloned := make(ast.QualifiedName, 0, len(target))
	for _, segment := range target {
		cloned = append(
			cloned,
			ast.NewIdentifier(s.gauge, segment.Identifier, segment.Pos),
		)
	}
	return cloned.Prepended(
		ast.NewIdentifier(s.gauge, WiringRootName, ast.EmptyPosition),
	)
}

func (s *Synthesizer) transformComposite(
	ctx transformContext,
	identifier ast.Identifier,
	typeParameters []*ast.TypeParameter,
	parentTraits []*ast.NominalType,
	members []ast.Member,
	attributes ast.Attributes,
	declarationRange ast.Range,
	isTrait bool,
) ast.Declaration {

	autoContracts := attributes.Find(ast.AutoContractsAttributeName) != nil

	inner := ctx.withClass(identifier, typeParameters, autoContracts)

	transformedMembers := make([]ast.Member, 0, len(members))
	for _, member := range members {
		transformed := s.transformMember(inner, member)
		if transformed == nil {
			continue
		}
		transformedMembers = append(transformedMembers, transformed)
	}

	cloner := s.newCloner(ctx)
	clonedTypeParameters := cloner.CloneTypeParameters(typeParameters)
	clonedParentTraits := cloner.CloneNominalTypes(parentTraits)
	clonedAttributes := s.stripAutoContracts(cloner.CloneAttributes(attributes))

	renamed := s.suffixedIdentifier(identifier)

	if isTrait {
		return ast.NewTraitDeclaration(
			s.gauge,
			renamed,
			clonedTypeParameters,
			clonedParentTraits,
			transformedMembers,
			clonedAttributes,
			declarationRange,
		)
	}
	return ast.NewClassDeclaration(
		s.gauge,
		renamed,
		clonedTypeParameters,
		clonedParentTraits,
		transformedMembers,
		clonedAttributes,
		declarationRange,
	)
}

func (s *Synthesizer) transformMember(ctx transformContext, member ast.Member) ast.Member {
	switch member.ElementType() {
	case ast.ElementTypeFieldDeclaration,
		ast.ElementTypeConstantFieldDeclaration,
		ast.ElementTypeSpecialFieldDeclaration:
		// State is not directly validated, only behavior.
		return nil

	case ast.ElementTypeFunctionDeclaration:
		return s.transformFunction(ctx, member.(*ast.FunctionDeclaration))

	case ast.ElementTypeMethodDeclaration:
		return s.transformMethod(ctx, member.(*ast.MethodDeclaration))

	default:
		panic(errors.NewUnreachableError())
	}
}

// transformFunction produces the renamed copy of a function
// or predicate. In class context the copy gains the validity
// witness formal, so that rewritten self-references stay bound.
func (s *Synthesizer) transformFunction(
	ctx transformContext,
	function *ast.FunctionDeclaration,
) ast.Member {

	if !s.options.AddPureCopies {
		return nil
	}

	cloner := s.newCloner(ctx)

	formals := cloner.CloneFormals(function.Formals)
	if ctx.inClass() {
		formals = append(formals, s.newWitnessFormal(ctx))
	}

	specification := cloner.CloneSpecification(function.Specification)

	if s.options.ValidatePure && ctx.autoContracts {
		if specification == nil {
			specification = ast.NewSpecification(s.gauge, nil, nil, nil, nil, nil)
		}
		specification.Requires = append(
			[]*ast.SpecClause{s.newValidityClause()},
			specification.Requires...,
		)
	}

	return ast.NewFunctionDeclaration(
		s.gauge,
		s.suffixedIdentifier(function.Identifier),
		function.IsPredicate,
		cloner.CloneTypeParameters(function.TypeParameters),
		formals,
		cloner.CloneFormal(function.Result),
		specification,
		cloner.CloneExpression(function.Body),
		function.Ghost,
		function.Static,
		s.stripAutoContracts(cloner.CloneAttributes(function.Attributes)),
		function.Range,
	)
}

// transformMethod produces the contract-checking shim of a method:
// the cloned signature extended with the validity witness, the
// validity contract injected, and a body that delegates to the
// original method. Constructors never get shims; lemmas only
// when validating lemmas is enabled.
func (s *Synthesizer) transformMethod(
	ctx transformContext,
	method *ast.MethodDeclaration,
) ast.Member {

	switch {
	case method.Kind == common.DeclarationKindConstructor:
		return nil
	case method.IsLemma() && !s.options.ValidateLemmas:
		return nil
	}

	cloner := s.newCloner(ctx)

	formals := cloner.CloneFormals(method.Formals)
	outs := cloner.CloneFormals(method.Outs)

	if ctx.inClass() {
		formals = append(formals, s.newWitnessFormal(ctx))
	}

	specification := cloner.CloneSpecification(method.Specification)

	if ctx.inClass() && ctx.autoContracts {
		if specification == nil {
			specification = ast.NewSpecification(s.gauge, nil, nil, nil, nil, nil)
		}
		specification.Requires = append(
			[]*ast.SpecClause{s.newValidityClause()},
			specification.Requires...,
		)
		specification.Ensures = append(
			[]*ast.SpecClause{s.newValidityClause()},
			specification.Ensures...,
		)
		specification.Modifies = append(
			[]*ast.FrameExpression{s.newReprFrame()},
			specification.Modifies...,
		)
	}

	body := s.newDelegatingBody(ctx, method)

	return ast.NewMethodDeclaration(
		s.gauge,
		s.suffixedIdentifier(method.Identifier),
		method.Kind,
		cloner.CloneTypeParameters(method.TypeParameters),
		formals,
		outs,
		specification,
		body,
		method.Ghost,
		method.Static,
		s.stripAutoContracts(cloner.CloneAttributes(method.Attributes)),
		method.Range,
	)
}

// newDelegatingBody builds the single statement of a shim:
// a call to the original method, with the original input formals
// as arguments and the original output formals as destinations.
func (s *Synthesizer) newDelegatingBody(
	ctx transformContext,
	method *ast.MethodDeclaration,
) *ast.BlockStatement {

	var receiver ast.Expression
	switch {
	case method.Static && ctx.inClass():
		receiver = s.newIdentifierExpression(ctx.className)
	case ctx.inClass():
		receiver = s.newIdentifierExpression(WitnessName)
	}

	var invoked ast.Expression
	if receiver != nil {
		invoked = ast.NewMemberExpression(
			s.gauge,
			receiver,
			ast.NewIdentifier(s.gauge, method.Identifier.Identifier, ast.EmptyPosition),
		)
	} else {
		invoked = s.newIdentifierExpression(method.Identifier.Identifier)
	}

	arguments := make([]ast.Expression, 0, len(method.Formals))
	for _, formal := range method.Formals {
		arguments = append(
			arguments,
			s.newIdentifierExpression(formal.Identifier.Identifier),
		)
	}

	call := ast.NewInvocationExpression(
		s.gauge,
		invoked,
		nil,
		arguments,
		ast.EmptyPosition,
	)

	var statement ast.Statement
	if len(method.Outs) > 0 {
		targets := make([]ast.Expression, 0, len(method.Outs))
		for _, out := range method.Outs {
			targets = append(
				targets,
				s.newIdentifierExpression(out.Identifier.Identifier),
			)
		}
		statement = ast.NewAssignmentStatement(
			s.gauge,
			targets,
			[]ast.Expression{call},
			false,
			ast.EmptyRange,
		)
	} else {
		statement = ast.NewExpressionStatement(
			s.gauge,
			call,
			false,
			ast.EmptyRange,
		)
	}

	return ast.NewBlockStatement(
		s.gauge,
		[]ast.Statement{statement},
		false,
		ast.EmptyRange,
	)
}

// newWitnessFormal builds `arg_valid: C<T1, ..., Tn>`.
// The class's type parameters are re-synthesized as open type
// references by name, so the formal does not reference the class's
// own type-parameter objects.
func (s *Synthesizer) newWitnessFormal(ctx transformContext) *ast.Formal {
	var typeArguments []ast.Type
	if len(ctx.typeParameterNames) > 0 {
		typeArguments = make([]ast.Type, 0, len(ctx.typeParameterNames))
		for _, name := range ctx.typeParameterNames {
			typeArguments = append(
				typeArguments,
				ast.NewNominalType(
					s.gauge,
					nil,
					ast.NewIdentifier(s.gauge, name, ast.EmptyPosition),
					nil,
				),
			)
		}
	}

	witnessType := ast.NewNominalType(
		s.gauge,
		nil,
		ast.NewIdentifier(s.gauge, ctx.className, ast.EmptyPosition),
		typeArguments,
	)

	return ast.NewFormal(
		s.gauge,
		ast.NewIdentifier(s.gauge, WitnessName, ast.EmptyPosition),
		witnessType,
		false,
		nil,
	)
}

// newValidityClause builds the injected clause `arg_valid.Valid()`.
func (s *Synthesizer) newValidityClause() *ast.SpecClause {
	call := ast.NewInvocationExpression(
		s.gauge,
		ast.NewMemberExpression(
			s.gauge,
			s.newIdentifierExpression(WitnessName),
			ast.NewIdentifier(s.gauge, ValidPredicateName, ast.EmptyPosition),
		),
		nil,
		nil,
		ast.EmptyPosition,
	)
	return ast.NewSpecClause(s.gauge, call, true)
}

// newReprFrame builds the injected frame element `arg_valid.Repr`.
func (s *Synthesizer) newReprFrame() *ast.FrameExpression {
	return ast.NewFrameExpression(
		s.gauge,
		ast.NewMemberExpression(
			s.gauge,
			s.newIdentifierExpression(WitnessName),
			ast.NewIdentifier(s.gauge, ReprFieldName, ast.EmptyPosition),
		),
		"",
	)
}

func (s *Synthesizer) newIdentifierExpression(name string) *ast.IdentifierExpression {
	return ast.NewIdentifierExpression(
		s.gauge,
		ast.NewIdentifier(s.gauge, name, ast.EmptyPosition),
	)
}

func (s *Synthesizer) suffixedIdentifier(identifier ast.Identifier) ast.Identifier {
	return ast.NewIdentifier(
		s.gauge,
		identifier.Identifier+ValidSuffix,
		identifier.Pos,
	)
}

func (s *Synthesizer) stripAutoContracts(attributes ast.Attributes) ast.Attributes {
	return attributes.Without(ast.AutoContractsAttributeName)
}
