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

package featureflags

import (
	"maps"
	"slices"
)

// FlagSet is an immutable mapping of feature flag names to their values.
// Methods that change a flag return a new FlagSet and leave the receiver untouched, so a FlagSet can be shared
// between goroutines freely. The zero value is an empty FlagSet.
type FlagSet struct {
	values map[string]bool
}

// NewFlagSet creates a FlagSet holding a copy of values.
func NewFlagSet(values map[string]bool) FlagSet {
	return FlagSet{values: maps.Clone(values)}
}

// Get returns the value of the named flag and whether it is present at all.
func (s FlagSet) Get(name string) (value bool, ok bool) {
	value, ok = s.values[name]
	return value, ok
}

// Enabled returns the value of the named flag, or false if the flag is not present.
func (s FlagSet) Enabled(name string) bool {
	return s.values[name]
}

// Len returns the number of flags in the set.
func (s FlagSet) Len() int {
	return len(s.values)
}

// Names returns the flag names in lexical order.
func (s FlagSet) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ToMap returns a copy of the flags as a plain map.
func (s FlagSet) ToMap() map[string]bool {
	m := make(map[string]bool, len(s.values))
	maps.Copy(m, s.values)
	return m
}

// With returns a FlagSet equal to s, except that name is set to value.
func (s FlagSet) With(name string, value bool) FlagSet {
	m := s.ToMap()
	m[name] = value
	return FlagSet{values: m}
}

// Merge returns a FlagSet with the flags of s, overwritten by all flags of other.
func (s FlagSet) Merge(other FlagSet) FlagSet {
	m := s.ToMap()
	maps.Copy(m, other.values)
	return FlagSet{values: m}
}

// Equal reports whether both sets contain the same flags with the same values.
func (s FlagSet) Equal(other FlagSet) bool {
	return maps.Equal(s.values, other.values)
}
