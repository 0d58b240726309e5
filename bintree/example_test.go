package bintree_test

import (
	"fmt"

	"github.com/npillmayer/containers/bintree"
)

func ExampleTree_IsBalanced() {
	tree := bintree.NewOrdered[int]()
	for _, k := range []int{10, 5, 15, 3, 7, 18} {
		tree.Insert(k)
	}
	fmt.Println(tree.Inorder(), tree.Height(), tree.IsBalanced())
	tree.Insert(20)
	tree.Insert(25)
	fmt.Println(tree.Height(), tree.IsBalanced(), tree.Unbalanced())
	// Output:
	// [3 5 7 10 15 18] 3 true
	// 5 false [18 15 10]
}
