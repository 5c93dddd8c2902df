// Package keyset maintains an ordered registry of trusted verifying keys and
// a merkle commitment over their keccak256 fingerprints, so an embedding host
// can pin the set of circuits it accepts proofs for.
package keyset

import (
	"encoding/hex"
	"fmt"

	mt "github.com/txaty/go-merkletree"
	"golang.org/x/crypto/sha3"

	"github.com/Electron-Labs/groth16-verifier/groth16"
)

// Entry is one registered verifying key.
type Entry struct {
	Name        string
	Fingerprint []byte
	Key         groth16.VerifyingKey
}

// Serialize makes Entry usable as a merkle data block; leaves are the key
// fingerprints.
func (e *Entry) Serialize() ([]byte, error) {
	return e.Fingerprint, nil
}

// Keyset is an ordered set of trusted verifying keys.
type Keyset struct {
	entries []*Entry
	byPrint map[string]*Entry
}

func New() *Keyset {
	return &Keyset{byPrint: make(map[string]*Entry)}
}

// Add validates raw verifying-key bytes through the codec and registers them
// under name, returning the key's fingerprint. Malformed keys and duplicate
// fingerprints are rejected.
func (s *Keyset) Add(name string, raw []byte) ([]byte, error) {
	vk, err := groth16.DecodeVerifyingKey(raw)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", name, err)
	}
	fingerprint := Fingerprint(raw)
	id := hex.EncodeToString(fingerprint)
	if _, ok := s.byPrint[id]; ok {
		return nil, fmt.Errorf("key %q: fingerprint %s already registered", name, id)
	}
	entry := &Entry{Name: name, Fingerprint: fingerprint, Key: vk}
	s.entries = append(s.entries, entry)
	s.byPrint[id] = entry
	return fingerprint, nil
}

func (s *Keyset) Len() int {
	return len(s.entries)
}

func (s *Keyset) Entries() []*Entry {
	return s.entries
}

// Root returns the merkle root committing to the ordered fingerprint set.
func (s *Keyset) Root() ([]byte, error) {
	tree, err := s.tree()
	if err != nil {
		return nil, err
	}
	return tree.Root, nil
}

// Proof returns an inclusion proof for the named key, together with the root
// it verifies against.
func (s *Keyset) Proof(name string) (*mt.Proof, []byte, error) {
	var target *Entry
	for _, e := range s.entries {
		if e.Name == name {
			target = e
			break
		}
	}
	if target == nil {
		return nil, nil, fmt.Errorf("key %q not registered", name)
	}
	tree, err := s.tree()
	if err != nil {
		return nil, nil, err
	}
	proof, err := tree.Proof(target)
	if err != nil {
		return nil, nil, err
	}
	return proof, tree.Root, nil
}

// VerifyMembership checks a fingerprint's inclusion proof against a root.
func VerifyMembership(fingerprint []byte, proof *mt.Proof, root []byte) (bool, error) {
	block := &Entry{Fingerprint: fingerprint}
	return mt.Verify(block, proof, root, &mt.Config{HashFunc: KeccakHashFunc})
}

func (s *Keyset) tree() (*mt.MerkleTree, error) {
	if len(s.entries) == 0 {
		return nil, fmt.Errorf("keyset is empty")
	}
	blocks := make([]mt.DataBlock, len(s.entries))
	for i := range blocks {
		blocks[i] = s.entries[i]
	}
	// the tree library needs at least two blocks; a single-key set gets a
	// zero-fingerprint sibling
	if len(blocks) == 1 {
		blocks = append(blocks, &Entry{Fingerprint: make([]byte, 32)})
	}
	config := mt.Config{
		HashFunc: KeccakHashFunc,
		Mode:     mt.ModeTreeBuild,
	}
	return mt.New(&config, blocks)
}

// Fingerprint is the keccak256 digest of raw verifying-key bytes.
func Fingerprint(raw []byte) []byte {
	hash, _ := KeccakHashFunc(raw)
	return hash
}

func KeccakHashFunc(data []byte) ([]byte, error) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	return hasher.Sum(nil), nil
}
