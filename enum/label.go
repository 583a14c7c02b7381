/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package enum

import "github.com/tomoncle/labelenum/types"

// Labeled stores a member's display label. It is embedded by Member so the
// display capability is implemented once for every backing kind.
type Labeled struct {
	label string
}

var _ types.HasDisplayLabel = Labeled{}

// GetDisplay returns the display label, or "" when none was declared.
func (l Labeled) GetDisplay() string {
	return l.label
}

// Display is the property form of GetDisplay.
func (l Labeled) Display() string {
	return l.label
}
