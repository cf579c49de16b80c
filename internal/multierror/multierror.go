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

package multierror

import (
	"errors"
	"fmt"
	"strings"
)

// MultiError is an error containing several errors
// Unlike errors.Join() it produces an error with exported fields and can be included in structured logging
type MultiError struct {
	// Errors is a list of errors grouped into this MultiError
	Errors []error `json:"errors"`
}

func (m MultiError) Error() string {
	s := make([]string, len(m.Errors))
	for i, e := range m.Errors {
		s[i] = e.Error()
	}
	return fmt.Sprintf("encountered multiple errors: [ %s ]", strings.Join(s, ", "))
}

// Unwrap lets errors.Is and errors.As inspect every grouped error.
func (m MultiError) Unwrap() []error {
	return m.Errors
}

// New groups the non-nil errors. It returns nil if there are none and the error itself if there is only one.
// Nested MultiErrors are flattened.
func New(errs ...error) error {
	m := MultiError{}
	for _, e := range errs {
		if e == nil {
			continue
		}
		var me MultiError
		if errors.As(e, &me) {
			m.Errors = append(m.Errors, me.Errors...)
		} else {
			m.Errors = append(m.Errors, e)
		}
	}

	switch len(m.Errors) {
	case 0:
		return nil
	case 1:
		return m.Errors[0]
	default:
		return m
	}
}

// Flatten returns the errors grouped in err, or err itself as the only element if it is no MultiError.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var me MultiError
	if errors.As(err, &me) {
		return me.Errors
	}
	return []error{err}
}
