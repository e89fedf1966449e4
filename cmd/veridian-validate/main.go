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

// veridian-validate rewrites serialized program trees so they carry
// their own validation shims: for each given file (or each program
// file in a given folder), the program is re-emitted with a reference
// twin and a validator twin attached.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/veridian-lang/veridian/ast"
	"github.com/veridian-lang/veridian/validator"
)

var pureCopiesFlag = flag.Bool(
	"pure-copies",
	true,
	"add renamed copies of pure functions and predicates",
)
var validatePureFlag = flag.Bool(
	"validate-pure",
	true,
	"inject validity preconditions into the pure copies",
)
var validateLemmasFlag = flag.Bool(
	"validate-lemmas",
	false,
	"generate validation shims for lemmas",
)

const programFileExtension = ".veridian.json"

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		printError(fmt.Errorf("usage: %s [options] file-or-folder ...", os.Args[0]))
		flag.PrintDefaults()
		os.Exit(1)
	}

	options := validator.Options{
		AddPureCopies:  *pureCopiesFlag,
		ValidatePure:   *validatePureFlag,
		ValidateLemmas: *validateLemmasFlag,
	}
	synthesizer := validator.NewSynthesizer(nil, options)

	failed := false
	for _, path := range paths {
		if err := validatePath(synthesizer, path); err != nil {
			printError(err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func validatePath(synthesizer *validator.Synthesizer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return validateFile(synthesizer, path)
	}

	return filepath.WalkDir(path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, programFileExtension) {
			return nil
		}
		return validateFile(synthesizer, path)
	})
}

func validateFile(synthesizer *validator.Synthesizer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	program, err := ast.DecodeProgram(nil, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	_, source, err := synthesizer.Synthesize(
		program,
		validator.JSONPrinter{Indent: "    "},
		validator.PrintModeMarkInjected,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(path, source, 0o644)
}

func printError(err error) {
	message := aurora.Colorize(
		err.Error(),
		aurora.RedFg|aurora.BrightFg|aurora.BoldFm,
	).String()
	_, _ = fmt.Fprintln(os.Stderr, message)
}
