package hcltype_test

import (
	"fmt"

	"github.com/ava12/hcltype/descriptor"
	"github.com/ava12/hcltype/parser"
)

func Example() {
	t, e := parser.Parse("${object({'name':'${string}','ports':'${[number]}','labels':'${map(string)}'})}")
	if e != nil {
		fmt.Println(e)
		return
	}

	o := t.(*descriptor.Object)
	for _, f := range o.Fields() {
		switch ft := f.Type.(type) {
		case *descriptor.List:
			fmt.Printf("%s: %s of %s\n", f.Name, ft.Kind(), ft.Elem().Kind())
		case *descriptor.Map:
			fmt.Printf("%s: %s of %s\n", f.Name, ft.Kind(), ft.Value().Kind())
		default:
			fmt.Printf("%s: %s\n", f.Name, ft.Kind())
		}
	}

	_, e = parser.Parse("${object({'a':'${string}','a':'${number}'})}")
	fmt.Println(e)

	// Output:
	// name: string
	// ports: list of number
	// labels: map of string
	// duplicate field "a" at line 1 col 27
}
