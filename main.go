package main

import (
	"github.com/Electron-Labs/groth16-verifier/cmd"
	_ "github.com/Electron-Labs/groth16-verifier/cmd/keyset"
	_ "github.com/Electron-Labs/groth16-verifier/cmd/prove"
	_ "github.com/Electron-Labs/groth16-verifier/cmd/verify"
)

func main() {
	cmd.Execute()
}
