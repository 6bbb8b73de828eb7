package crucible

// Heading is one of the four cardinal travel directions.
// The constants are ordered clockwise so that turning is modular arithmetic.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// Delta returns the (dx, dy) grid offset of one step in h.
// Y grows southward, matching row order.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		panic("crucible: invalid heading")
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic("crucible: invalid heading")
	}
}

// Left returns h rotated 90° counter-clockwise.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Right returns h rotated 90° clockwise.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool { return h <= West }

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
