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
	"strings"

	"github.com/turbolent/prettier"
)

const prettierMaxLineWidth = 80

type hasDoc interface {
	Doc() prettier.Doc
}

// Prettier pretty-prints the given documentable value to a string.
func Prettier(element hasDoc) string {
	var builder strings.Builder
	prettier.Prettier(
		&builder,
		element.Doc(),
		prettierMaxLineWidth,
		"    ",
	)
	return builder.String()
}
