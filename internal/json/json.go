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

package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dynatrace/feature-toggles/internal/errutils"
)

// ValidationError is returned by Unmarshal if data is no valid JSON or does not fit the target type.
// If the decoder reported an offset, the error locates it in the file.
type ValidationError struct {
	FilePath string `json:"filePath"`
	// LineNumber is 1-based, -1 if unknown
	LineNumber int `json:"lineNumber"`
	// CharacterNumberInLine is 1-based, -1 if unknown
	CharacterNumberInLine int    `json:"characterNumberInLine"`
	LineContent           string `json:"lineContent"`
	PreviousLineContent   string `json:"previousLineContent"`
	// Err is the error returned by encoding/json
	Err error `json:"error"`
}

var (
	_ errutils.PrettyPrintableError = (*ValidationError)(nil)
	_ error                         = (*ValidationError)(nil)
)

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid JSON in %q: %s", e.FilePath, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ContainsLineInformation reports whether the error could be located in the file.
func (e ValidationError) ContainsLineInformation() bool {
	return e.LineNumber > 0 && e.CharacterNumberInLine > 0 && e.LineContent != ""
}

// PrettyError renders the offending line and its predecessor with a marker below the offending character.
func (e ValidationError) PrettyError() string {
	if !e.ContainsLineInformation() {
		return e.Error()
	}

	gutter := strings.Repeat(" ", len(strconv.Itoa(e.LineNumber)))
	detab := func(s string) string { return strings.ReplaceAll(s, "\t", " ") }

	var b strings.Builder
	fmt.Fprintf(&b, "File did not contain valid json:\n")
	fmt.Fprintf(&b, " --> %s:%d:%d\n", e.FilePath, e.LineNumber, e.CharacterNumberInLine)
	fmt.Fprintf(&b, " %s | %s\n", gutter, detab(e.PreviousLineContent))
	fmt.Fprintf(&b, " %d | %s\n", e.LineNumber, detab(e.LineContent))
	fmt.Fprintf(&b, " %s | %s^^^\n", gutter, strings.Repeat(" ", e.CharacterNumberInLine-1))
	fmt.Fprintf(&b, " %s - Cause: %s\n", gutter, e.Err)
	return b.String()
}

// Unmarshal decodes data into v like encoding/json does, but syntax and type errors are returned as ValidationError
// pointing at the offending line of filePath.
func Unmarshal(data []byte, filePath string, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return locate(data, filePath, syntaxErr.Offset, err)
	case errors.As(err, &typeErr):
		return locate(data, filePath, typeErr.Offset, err)
	default:
		return unlocated(filePath, err)
	}
}

// locate builds a ValidationError for the byte offset reported by encoding/json, which points just past the
// offending character.
func locate(data []byte, filePath string, offset int64, err error) ValidationError {
	if offset < 0 || offset > int64(len(data)) {
		return unlocated(filePath, err)
	}

	before := data[:offset]
	lineStart := bytes.LastIndexByte(before, '\n') + 1

	lineEnd := bytes.IndexByte(data[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(data)
	} else {
		lineEnd += lineStart
	}

	var previous []byte
	if lineStart > 0 {
		prevStart := bytes.LastIndexByte(data[:lineStart-1], '\n') + 1
		previous = data[prevStart : lineStart-1]
	}

	return ValidationError{
		FilePath:              filePath,
		LineNumber:            bytes.Count(before, []byte{'\n'}) + 1,
		CharacterNumberInLine: int(offset) - lineStart,
		LineContent:           string(data[lineStart:lineEnd]),
		PreviousLineContent:   string(previous),
		Err:                   err,
	}
}

func unlocated(filePath string, err error) ValidationError {
	return ValidationError{
		FilePath:              filePath,
		LineNumber:            -1,
		CharacterNumberInLine: -1,
		Err:                   err,
	}
}

// MarshalIndent indents JSON encoded content with two spaces. Content that cannot be indented is returned as is.
func MarshalIndent(jsonContent []byte) []byte {
	var b bytes.Buffer
	if err := json.Indent(&b, jsonContent, "", "  "); err != nil {
		return jsonContent
	}
	return b.Bytes()
}
