/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errutils

import (
	"errors"
	"fmt"
	"io"

	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/log/attribute"
)

type PrettyPrintableError interface {
	PrettyError() string
}

func ErrorString(err error) string {
	if err == nil {
		return "<nil>"
	}

	var prettyPrintError PrettyPrintableError

	if errors.As(err, &prettyPrintError) {
		return prettyPrintError.PrettyError()
	} else {
		return err.Error()
	}
}

// PrintError should pretty-print the error using a more user-friendly format
func PrintError(err error) {
	if err != nil {
		log.With(attribute.Error(err)).Error("%s", ErrorString(err))
	}
}

// PrintWarning prints the error as a warning.
// The error is pretty-printed if the error implements the PrettyPrintableError interface
func PrintWarning(err error) {
	if err != nil {
		log.With(attribute.Error(err)).Warn("%s", ErrorString(err))
	}
}

func PrintWarnings(errs []error) {
	for _, err := range errs {
		PrintWarning(err)
	}
}

// WriteList writes each error as a "  - " prefixed list item to w, one per line.
func WriteList(w io.Writer, errs []error) {
	for _, err := range errs {
		_, _ = fmt.Fprintf(w, "  - %s\n", ErrorString(err))
	}
}
