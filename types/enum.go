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

package types

// IllegalName is the rendering of a member that is not part of any enumeration.
const IllegalName = "unknown"

// HasDisplayLabel is the display capability shared by every backing kind.
// Both accessors return the same label.
type HasDisplayLabel interface {
	GetDisplay() string
	Display() string
}

// BaseEnum represents one enumeration member independent of its backing kind.
type BaseEnum interface {
	HasDisplayLabel
	IsValid() bool
	Name() string
	String() string
	RawValue() any
}

// EnumType represents a whole enumeration independent of its backing kind.
type EnumType interface {
	TypeName() string
	Names() []string
	DisplayNames() []string
	Entries() []BaseEnum
}
