package allocator_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/venueplan/allocator"
	"github.com/katalvlaran/venueplan/venuefile"
)

func ExampleAllocator() {
	venues, _ := venuefile.Parse(strings.NewReader(`The Gabba (200)
Corridor l1 to l2 (200): 150

Suncorp Stadium (100)
Corridor l1 to l2 (200): 70
`))
	a := allocator.New(venues)

	cricket, _ := a.CreateEvent("Cricket", 180)
	rugby, _ := a.CreateEvent("Rugby", 90)

	fmt.Println(a.Allocate(cricket, venues[0]))
	err := a.Allocate(rugby, venues[1])
	fmt.Println(errors.Is(err, allocator.ErrUnsafeTraffic))

	a.Remove("Cricket", 180)
	fmt.Println(a.Allocate(rugby, venues[1]))
	fmt.Println(a.Allocations()[0])
	fmt.Print(a.Traffic())

	// Output:
	// <nil>
	// true
	// <nil>
	// Rugby (Size: 90) : Suncorp Stadium (Capacity: 100)
	// Corridor l1 to l2 (200): 70
}
