package circuits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Electron-Labs/groth16-verifier/groth16"
)

func TestGenerateCubic(t *testing.T) {
	fix, err := Generate(&Cubic{}, &Cubic{X: 3, Y: 35})
	require.NoError(t, err)
	require.Len(t, fix.Proof, groth16.SizeProof)
	require.Len(t, fix.Inputs, groth16.SizeScalar)

	vk, err := groth16.DecodeVerifyingKey(fix.Key)
	require.NoError(t, err)
	require.Equal(t, 1, vk.NumPublicInputs())
}

func TestGenerateCubicRoot(t *testing.T) {
	fix, err := Generate(&CubicRoot{}, &CubicRoot{X: 3})
	require.NoError(t, err)
	require.Empty(t, fix.Inputs)

	vk, err := groth16.DecodeVerifyingKey(fix.Key)
	require.NoError(t, err)
	require.Equal(t, 0, vk.NumPublicInputs())
}

func TestGenerateRejectsBadWitness(t *testing.T) {
	_, err := Generate(&Cubic{}, &Cubic{X: 3, Y: 36})
	require.Error(t, err)
}
