package signal

import (
	"fmt"
	"strings"
)

// Shape selects the excitation family.
type Shape int

const (
	ShapeSinusoidal Shape = iota
	ShapeTriangular
	ShapeTrapezoidal
	// ShapeCustom is a user-supplied cycle; the synthesizer is not involved.
	ShapeCustom
)

var shapeNames = [...]string{
	ShapeSinusoidal:  "sinusoidal",
	ShapeTriangular:  "triangular",
	ShapeTrapezoidal: "trapezoidal",
	ShapeCustom:      "custom",
}

// Shapes lists all shapes in display order.
func Shapes() []Shape {
	return []Shape{ShapeSinusoidal, ShapeTriangular, ShapeTrapezoidal, ShapeCustom}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape resolves a shape name. Short aliases (sine, tri, trap, user)
// are accepted.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sinusoidal", "sine", "sin":
		return ShapeSinusoidal, nil
	case "triangular", "triangle", "tri":
		return ShapeTriangular, nil
	case "trapezoidal", "trapezoid", "trap":
		return ShapeTrapezoidal, nil
	case "custom", "user", "upload":
		return ShapeCustom, nil
	default:
		return 0, fmt.Errorf("unknown waveform shape: %q", name)
	}
}
