// The c-shared build of the verifier, exposing the minimal embedding
// boundary to non-Go hosts:
//
//	go build -buildmode=c-shared -o libgroth16verifier.so ./cshared
//
// The exported symbol is
//
//	int verify(unsigned char *proof, size_t proof_len, unsigned char *key, size_t key_len);
//
// returning 1 for a valid proof and 0 for anything else.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/Electron-Labs/groth16-verifier/groth16"
)

//export verify
func verify(proof *C.uchar, proofLen C.size_t, key *C.uchar, keyLen C.size_t) C.int {
	return C.int(groth16.VerifyBytes(borrow(proof, proofLen), borrow(key, keyLen)))
}

// borrow wraps a caller-owned buffer for the duration of the call; nothing is
// copied, retained or mutated.
func borrow(ptr *C.uchar, n C.size_t) []byte {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(n))
}

func main() {}
