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
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// StateInfo builds a string message describing the current value of every flag next to the value loaded from the
// source, noting especially if a flag has been overridden.
func (p *Provider) StateInfo() string {
	p.mu.Lock()
	loaded := p.loaded
	p.mu.Unlock()
	current := p.Current()

	s := strings.Builder{}

	if anyModified(loaded, current) {
		s.WriteString("Lines starting with '!' indicate that a flag has been overridden at runtime.\n\n")
	}

	_, _ = fmt.Fprintf(&s, "Feature Flags (%s):\n\n", p.State())
	s.WriteString(makeFlagTableString(loaded, current))

	return s.String()
}

func anyModified(loaded, current FlagSet) bool {
	for name, enabled := range current.values {
		if v, ok := loaded.Get(name); !ok || v != enabled {
			return true
		}
	}
	return false
}

func makeFlagTableString(loaded, current FlagSet) string {
	s := strings.Builder{}

	names := maps.Keys(current.values)
	slices.Sort(names)
	for _, name := range names {
		enabled := current.Enabled(name)
		source := "<unset>"
		modifiedStr := "!"
		if v, ok := loaded.Get(name); ok {
			source = fmt.Sprint(v)
			if v == enabled {
				modifiedStr = " "
			}
		}
		_, _ = fmt.Fprintf(&s, "%v\t%v: %v (source:%v)\n", modifiedStr, name, enabled, source)
	}
	return s.String()
}
