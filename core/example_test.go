package core_test

import (
	"fmt"

	"github.com/katalvlaran/venueplan/core"
)

// ExampleTraffic shows ledger updates, merging and the safety predicate.
func ExampleTraffic() {
	city, _ := core.NewLocation("City")
	valley, _ := core.NewLocation("Valley")
	toValley, _ := core.NewCorridor(city, valley, 100)
	toCity, _ := core.NewCorridor(valley, city, 50)

	stadium := core.NewTraffic()
	_ = stadium.Update(toValley, 60)
	_ = stadium.Update(toCity, 20)

	theatre := core.NewTraffic()
	_ = theatre.Update(toValley, 45)

	total := stadium.Clone()
	_ = total.Merge(theatre)

	fmt.Print(total)
	fmt.Println("safe:", total.IsSafe(), "overloaded:", total.Overloaded())

	// Output:
	// Corridor City to Valley (100): 105
	// Corridor Valley to City (50): 20
	// safe: false overloaded: [Corridor City to Valley (100)]
}
