package game

// Strategy is the contestant's policy once the host has opened every other door.
type Strategy string

const (
	// Switch moves to the other closed door.
	Switch Strategy = "switch"

	// Stay keeps the original pick.
	Stay Strategy = "stay"
)

// Strategies returns every strategy in result emission order.
func Strategies() []Strategy {
	return []Strategy{Switch, Stay}
}

// Valid returns true if the strategy is a recognized value.
func (s Strategy) Valid() bool {
	switch s {
	case Switch, Stay:
		return true
	}
	return false
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// Label returns the value written to the "Switch?" column.
func (s Strategy) Label() string {
	if s == Switch {
		return "Yes"
	}
	return "No"
}
