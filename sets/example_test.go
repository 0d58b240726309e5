package sets_test

import (
	"fmt"

	"github.com/npillmayer/containers/sets"
)

func ExampleUnion() {
	a, b := sets.Of(1, 2, 3), sets.Of(3, 4, 5)
	fmt.Println(sets.Union(a, b))
	fmt.Println(sets.Intersection(a, b))
	fmt.Println(sets.Difference(a, b))
	fmt.Println(sets.IsMember(5, a, b))
	// Output:
	// {1 2 3 4 5}
	// {3}
	// {1 2}
	// true
}
