// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace_test

import (
	"fmt"
	"time"

	"vawter.tech/anytime"
	"vawter.tech/anytime/pace"
	"vawter.tech/anytime/sorting"
)

func ExampleWithMaxRate() {
	// Execute at most 1000 steps per second, with no burst.
	data := []int{3, 1, 2}
	sorted, err := anytime.Exec(sorting.NewSelection(data), time.Second,
		anytime.WithMiddleware(pace.WithMaxRate(1000, 1)))
	if err != nil {
		panic(err)
	}
	fmt.Println(sorted)

	// Output:
	// [1 2 3]
}
