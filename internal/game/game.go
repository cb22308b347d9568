// Package game plays single rounds of the N-door Monty Hall game.
//
// A round hides the car behind one door, lets the contestant pick a door,
// and has the host open every other door except one. The contestant then
// either keeps the pick or switches to the last closed door.
//
// Randomness is always drawn from a caller-supplied *rand.Rand so that runs
// are reproducible from a seed.
package game

import "math/rand"

// Door is one of the doors in a single round.
type Door struct {
	hasCar bool
}

// HideCar places the car behind the door.
func (d *Door) HideCar() {
	d.hasCar = true
}

// HasCar reports whether the car is behind the door.
func (d Door) HasCar() bool {
	return d.hasCar
}

// NewDoors returns n closed doors, none of them hiding the car.
func NewDoors(n int) []Door {
	return make([]Door, n)
}

// Round captures one game from deal to final choice. Door positions are
// indexes into Doors.
type Round struct {
	Doors []Door

	// Prize is the door hiding the car.
	Prize int

	// Pick is the contestant's initial choice. It may equal Prize.
	Pick int

	// Kept holds the doors still closed after the host's reveal, in
	// ascending door order. Set by Reveal.
	Kept []int

	// Final is the door the contestant ends up with. Set by Decide.
	Final int
}

// Deal creates a round with n doors, hides the car behind a uniformly
// random door and draws the contestant's pick independently.
// n must be positive.
func Deal(rng *rand.Rand, n int) *Round {
	doors := NewDoors(n)
	prize := rng.Intn(n)
	doors[prize].HideCar()
	pick := rng.Intn(n)

	return &Round{
		Doors: doors,
		Prize: prize,
		Pick:  pick,
		Final: pick,
	}
}

// Reveal selects the two doors that stay closed: the pick, and the prize
// door if it differs from the pick. When the pick already hides the car,
// the other survivor is the highest-numbered remaining door. A host scanning
// the doors from the left and opening every goat it passes until two remain
// leaves exactly that door shut, so no extra randomness is drawn.
func (r *Round) Reveal() {
	survivor := r.Prize
	if survivor == r.Pick {
		survivor = -1
		for i := len(r.Doors) - 1; i >= 0; i-- {
			if i != r.Pick && !r.Doors[i].HasCar() {
				survivor = i
				break
			}
		}
	}

	switch {
	case survivor < 0:
		r.Kept = []int{r.Pick}
	case survivor < r.Pick:
		r.Kept = []int{survivor, r.Pick}
	default:
		r.Kept = []int{r.Pick, survivor}
	}
}

// Decide applies the strategy to the revealed doors and records the final choice.
func (r *Round) Decide(s Strategy) {
	r.Final = r.Pick
	if s == Switch {
		r.Final = r.other()
	}
}

// other returns the closed door that is not the pick. With a single door
// left the pick is returned.
func (r *Round) other() int {
	for _, k := range r.Kept {
		if k != r.Pick {
			return k
		}
	}
	return r.Pick
}

// Won reports whether the final choice hides the car.
func (r *Round) Won() bool {
	return r.Doors[r.Final].HasCar()
}

// PlayRound plays a full round and returns it for inspection.
func PlayRound(rng *rand.Rand, s Strategy, n int) *Round {
	r := Deal(rng, n)
	r.Reveal()
	r.Decide(s)
	return r
}

// Play plays one round with n doors and reports whether the contestant wins.
func Play(rng *rand.Rand, s Strategy, n int) bool {
	return PlayRound(rng, s, n).Won()
}
