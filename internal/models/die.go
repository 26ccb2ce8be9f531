package models

// DiceCount is the number of dice on the table
const DiceCount = 10

// Die is a single die on the table
type Die struct {
	// Value is the face currently showing, 1..6
	Value int

	// Held excludes the die from the next commit
	Held bool
}

// DiceSet is the ordered set of ten dice. Order only matters for display.
type DiceSet [DiceCount]Die

// Values returns the face values in display order
func (d DiceSet) Values() [DiceCount]int {
	var values [DiceCount]int
	for i, die := range d {
		values[i] = die.Value
	}
	return values
}

// HeldFlags returns the held flags in display order
func (d DiceSet) HeldFlags() [DiceCount]bool {
	var held [DiceCount]bool
	for i, die := range d {
		held[i] = die.Held
	}
	return held
}

// AllEqual reports whether every die shows the same face
func (d DiceSet) AllEqual() bool {
	for _, die := range d[1:] {
		if die.Value != d[0].Value {
			return false
		}
	}
	return true
}
