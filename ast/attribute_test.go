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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesFind(t *testing.T) {

	t.Parallel()

	attributes := Attributes{
		{Identifier: Identifier{Identifier: "axiom"}},
		{Identifier: Identifier{Identifier: AutoContractsAttributeName}},
	}

	assert.Same(t, attributes[1], attributes.Find(AutoContractsAttributeName))
	assert.Nil(t, attributes.Find("missing"))
}

func TestAttributesWithout(t *testing.T) {

	t.Parallel()

	attributes := Attributes{
		{Identifier: Identifier{Identifier: "axiom"}},
		{Identifier: Identifier{Identifier: AutoContractsAttributeName}},
		{Identifier: Identifier{Identifier: "axiom"}},
	}

	result := attributes.Without("axiom")

	require.Len(t, result, 1)
	assert.Equal(t,
		AutoContractsAttributeName,
		result[0].Identifier.Identifier,
	)

	// original is unchanged
	assert.Len(t, attributes, 3)
}

func TestAttributesWithoutReserved(t *testing.T) {

	t.Parallel()

	attributes := Attributes{
		{Identifier: Identifier{Identifier: "_valid_shim"}},
		{Identifier: Identifier{Identifier: "axiom"}},
		{Identifier: Identifier{Identifier: "_resolved"}},
	}

	result := attributes.WithoutReserved()

	require.Len(t, result, 1)
	assert.Equal(t, "axiom", result[0].Identifier.Identifier)
}

func TestAttributeIsReserved(t *testing.T) {

	t.Parallel()

	reserved := &Attribute{
		Identifier: Identifier{Identifier: "_injected"},
	}
	plain := &Attribute{
		Identifier: Identifier{Identifier: "autocontracts"},
	}

	assert.True(t, reserved.IsReserved())
	assert.False(t, plain.IsReserved())
}
