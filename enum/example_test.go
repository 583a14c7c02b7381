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

package enum_test

import (
	"errors"
	"fmt"

	"github.com/tomoncle/labelenum/enum"
)

var Color = enum.Must(enum.NewStr("Color",
	enum.ValueWithLabel("RED", "red", "Red Like Blood"),
	enum.ValueOnly("GREEN", "green"),
	enum.ValueWithLabel("BLUE", "blue", "Love Is Blue"),
))

func ExampleNewStr() {
	blue, _ := Color.ByValue("blue")
	fmt.Println(blue.Name(), blue, blue.Display())
	fmt.Printf("%#v\n", blue)
	fmt.Println(Color.Names())
	// Output:
	// BLUE blue Love Is Blue
	// <Color.BLUE: "blue">
	// [RED GREEN BLUE]
}

func ExampleNewInt() {
	sw := enum.Must(enum.NewInt("Switch",
		enum.ValueWithLabel("ON", 1, "turn on"),
		enum.ValueOnly("OFF", 0),
	))
	on, _ := sw.ByValue(1)
	fmt.Println(on.Name(), on.Display())

	_, err := sw.ByValue("1")
	fmt.Println(errors.Is(err, enum.ErrTypeMismatch))
	// Output:
	// ON turn on
	// true
}

func ExampleNewLazy() {
	status := enum.NewLazy(func() (*enum.Enum[any], error) {
		return enum.New[any]("Status",
			enum.ValueWithLabel("DRAFT", "draft", "Draft"),
			enum.ValueOnly("PUBLISHED", "published"),
		)
	})
	draft, _ := status.MustGet().ByName("DRAFT")
	fmt.Println(draft, draft.Display())
	fmt.Println(status.MustGet().ValueMap())
	// Output:
	// Status.DRAFT Draft
	// {"draft": <Status.DRAFT: "draft">, "published": <Status.PUBLISHED: "published">}
}

func ExampleIsEnumError() {
	_, err := Color.ByName("PURPLE")
	if is, kind := enum.IsEnumError(err); is {
		fmt.Println(kind, "|", err)
	}
	// Output:
	// unknown name | enum Color: unknown name "PURPLE"
}
