package rope_test

import (
	"fmt"

	"github.com/gorope/skiprope"
)

func Example() {
	r, err := rope.NewWithUTF8([]byte("hello world"))
	if err != nil {
		panic(err)
	}
	r.Insert(5, []byte(", there"))
	r.Delete(0, 6)
	fmt.Println(string(r.CreateCString()[:r.ByteCount()]))
	// Output:
	//  there world
}
