package fixedarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynarray/fixedarray"
)

// ExampleFixedArray shows the three ways to write an element and the checked reads.
func ExampleFixedArray() {
	a, err := fixedarray.New[int](3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	*a.Index(0) = 1 // unchecked
	_ = a.Set(1, 2) // checked
	a.Data()[2] = 3 // raw buffer

	v1, _ := a.At(1)
	last, _ := a.Back()
	fmt.Println(*a.Index(0), v1, last)

	_, err = a.At(3)
	var re *fixedarray.RangeError
	if errors.As(err, &re) {
		fmt.Println("index", re.Index, "length", re.Length)
	}
	// Output:
	// 1 2 3
	// index 3 length 3
}

// ExampleFixedArray_Clone copies an array of records and edits only the source.
func ExampleFixedArray_Clone() {
	type rec struct {
		X int
		Y float64
		Z string
	}
	a := fixedarray.MustNew[rec](5)
	f, _ := a.FrontRef()
	*f = rec{X: 12, Y: 32.125, Z: "Alphabet Soup"}

	b := a.Clone()
	f.Z = "changed"

	first, _ := a.Begin().Get()
	bf, _ := b.Front()
	fmt.Println(first.X, first.Y, first.Z)
	fmt.Println(bf.X, bf.Y, bf.Z)
	// Output:
	// 12 32.125 changed
	// 12 32.125 Alphabet Soup
}

// ExampleFixedArray_Backward walks the array in reverse.
func ExampleFixedArray_Backward() {
	a := fixedarray.FromSlice([]string{"a", "b", "c"})
	for i, p := range a.Backward() {
		fmt.Print(i, *p, " ")
	}
	fmt.Println()
	// Output:
	// 2c 1b 0a
}

// ExampleFixedArray_Swap exchanges storage without copying.
func ExampleFixedArray_Swap() {
	a := fixedarray.FromSlice([]int{1, 2, 3})
	b := fixedarray.FromSlice([]int{9})
	_ = a.Swap(b)
	fmt.Println(a, b)
	// Output:
	// [9] [1, 2, 3]
}

// ExampleCopy copies forward into a reverse destination.
func ExampleCopy() {
	src := fixedarray.FromSlice([]int{1, 2, 3, 4})
	dst := fixedarray.MustNew[int](4)
	if _, err := fixedarray.Copy[int](src.CBegin(), src.CEnd(), dst.RBegin()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dst)
	// Output:
	// [4, 3, 2, 1]
}
