// Package circuits holds the demo circuits used to produce genuine proofs
// and verifying keys in the verifier's wire format, for the prove command and
// the end-to-end tests.
package circuits

import "github.com/consensys/gnark/frontend"

// Cubic proves knowledge of x such that x**3 + x + 5 == Y, with Y public.
type Cubic struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (circuit *Cubic) Define(api frontend.API) error {
	x3 := api.Mul(circuit.X, circuit.X, circuit.X)
	api.AssertIsEqual(circuit.Y, api.Add(x3, circuit.X, 5))
	return nil
}

// CubicRoot proves knowledge of x such that x**3 + x + 5 == 35. The
// statement is fixed, so the circuit has no public inputs and its verifying
// key carries a single IC point.
type CubicRoot struct {
	X frontend.Variable
}

func (circuit *CubicRoot) Define(api frontend.API) error {
	x3 := api.Mul(circuit.X, circuit.X, circuit.X)
	api.AssertIsEqual(api.Add(x3, circuit.X, 5), 35)
	return nil
}
