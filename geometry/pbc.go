package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Unwrap moves both hydrogens of a water molecule into the periodic image of
// its oxygen, so that O-H vectors can be taken by plain subtraction.
func Unwrap(O, H1, H2, bounds r3.Vec) (o, h1, h2 r3.Vec) {
	o = O
	h1 = r3.Add(O, PeriodicDisplacement(H1, O, bounds))
	h2 = r3.Add(O, PeriodicDisplacement(H2, O, bounds))
	return
}
