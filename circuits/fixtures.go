package circuits

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	gnark_groth16 "github.com/consensys/gnark/backend/groth16"
	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/Electron-Labs/groth16-verifier/groth16"
)

// Fixture bundles one circuit's artifacts in the verifier's wire format.
type Fixture struct {
	Proof  []byte
	Key    []byte
	Inputs []byte
}

// Generate compiles the circuit, runs the trusted setup, proves the
// assignment and exports proof, verifying key and public inputs in the wire
// format.
func Generate(circuit, assignment frontend.Circuit) (Fixture, error) {
	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return Fixture{}, fmt.Errorf("compile: %w", err)
	}
	pk, vk, err := gnark_groth16.Setup(ccs)
	if err != nil {
		return Fixture{}, fmt.Errorf("setup: %w", err)
	}
	fullWitness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField())
	if err != nil {
		return Fixture{}, fmt.Errorf("witness: %w", err)
	}
	proof, err := gnark_groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return Fixture{}, fmt.Errorf("prove: %w", err)
	}
	publicWitness, err := fullWitness.Public()
	if err != nil {
		return Fixture{}, fmt.Errorf("public witness: %w", err)
	}

	proofBytes, err := ExportProof(proof)
	if err != nil {
		return Fixture{}, err
	}
	keyBytes, err := ExportVerifyingKey(vk)
	if err != nil {
		return Fixture{}, err
	}
	return Fixture{
		Proof:  proofBytes,
		Key:    keyBytes,
		Inputs: ExportPublicInputs(publicWitness),
	}, nil
}

// ExportProof re-encodes a gnark proof in the verifier's wire format.
func ExportProof(proof gnark_groth16.Proof) ([]byte, error) {
	backendProof, ok := proof.(*groth16_bls12381.Proof)
	if !ok {
		return nil, fmt.Errorf("proof is not a bls12-381 groth16 proof")
	}
	return groth16.EncodeProof(&groth16.Proof{
		A: backendProof.Ar,
		B: backendProof.Bs,
		C: backendProof.Krs,
	}), nil
}

// ExportVerifyingKey re-encodes a gnark verifying key in the verifier's wire
// format.
func ExportVerifyingKey(vk gnark_groth16.VerifyingKey) ([]byte, error) {
	backendVK, ok := vk.(*groth16_bls12381.VerifyingKey)
	if !ok {
		return nil, fmt.Errorf("verifying key is not a bls12-381 groth16 key")
	}
	return groth16.EncodeVerifyingKey(&groth16.VerifyingKey{
		Alpha: backendVK.G1.Alpha,
		Beta:  backendVK.G2.Beta,
		Gamma: backendVK.G2.Gamma,
		Delta: backendVK.G2.Delta,
		IC:    backendVK.G1.K,
	}), nil
}

// ExportPublicInputs serializes the public witness vector as concatenated
// big-endian scalars.
func ExportPublicInputs(publicWitness witness.Witness) []byte {
	vec := publicWitness.Vector().(fr_bls12381.Vector)
	return groth16.EncodeScalars(vec)
}
