package core

import "fmt"

// FileType is the type of SLEEP file a header belongs to.
//
// signatures, bitfield and tree are the three SLEEP files. The key and data
// files carry no SLEEP header.
type FileType uint8

const (
	// BitField describes which pieces of data are present locally and which
	// tree nodes have been written. It is a materialized index and can be regenerated.
	BitField FileType = iota

	// Signatures holds 64 byte Ed25519 signatures, one per tree root
	Signatures

	// Tree holds the serialized Merkle tree, fixed size nodes in in-order notation
	Tree
)

func parseFileType(b byte) (FileType, bool) {
	switch b {
	case 0:
		return BitField, true
	case 1:
		return Signatures, true
	case 2:
		return Tree, true
	}

	return 0, false
}

func (ft FileType) code() byte {
	switch ft {
	case BitField:
		return 0
	case Signatures:
		return 1
	case Tree:
		return 2
	}

	panic(fmt.Sprintf("gosleep: invalid file type %d", uint8(ft)))
}

// Valid reports whether ft is a known file type
func (ft FileType) Valid() bool {
	_, ok := parseFileType(uint8(ft))

	return ok
}

func (ft FileType) String() string {
	switch ft {
	case BitField:
		return "bitfield"
	case Signatures:
		return "signatures"
	case Tree:
		return "tree"
	}

	return fmt.Sprintf("FileType(%d)", uint8(ft))
}

// ParseFileType maps a file type name (bitfield, signatures or tree) to its FileType
func ParseFileType(name string) (FileType, error) {
	for _, ft := range []FileType{BitField, Signatures, Tree} {
		if ft.String() == name {
			return ft, nil
		}
	}

	return 0, fmt.Errorf("gosleep: unknown file type %q", name)
}

// ProtocolVersion is the SLEEP protocol version
type ProtocolVersion uint8

const (
	// V0 is the version specified by the paper released in 2017-09
	V0 ProtocolVersion = iota
)

func parseProtocolVersion(b byte) (ProtocolVersion, bool) {
	switch b {
	case 0:
		return V0, true
	}

	return 0, false
}

func (pv ProtocolVersion) code() byte {
	switch pv {
	case V0:
		return 0
	}

	panic(fmt.Sprintf("gosleep: invalid protocol version %d", uint8(pv)))
}

// IsV0 reports whether the version is V0
func (pv ProtocolVersion) IsV0() bool {
	return pv == V0
}

func (pv ProtocolVersion) String() string {
	switch pv {
	case V0:
		return "v0"
	}

	return fmt.Sprintf("ProtocolVersion(%d)", uint8(pv))
}

// HashType is the algorithm named in a header
type HashType uint8

const (
	// HashNone means the algorithm name is empty
	HashNone HashType = iota

	// BLAKE2b hashing algorithm, used by tree files
	BLAKE2b

	// Ed25519 signature algorithm, used by signatures files
	Ed25519
)

const (
	blake2bName = "BLAKE2b"
	ed25519Name = "Ed25519"
)

func parseHashType(name string) (HashType, bool) {
	switch name {
	case blake2bName:
		return BLAKE2b, true
	case ed25519Name:
		return Ed25519, true
	case "":
		return HashNone, true
	}

	return 0, false
}

func (ht HashType) algorithmName() string {
	switch ht {
	case BLAKE2b:
		return blake2bName
	case Ed25519:
		return ed25519Name
	case HashNone:
		return ""
	}

	panic(fmt.Sprintf("gosleep: invalid hash type %d", uint8(ht)))
}

// Valid reports whether ht is a known hash type
func (ht HashType) Valid() bool {
	switch ht {
	case HashNone, BLAKE2b, Ed25519:
		return true
	}

	return false
}

func (ht HashType) String() string {
	switch ht {
	case BLAKE2b:
		return blake2bName
	case Ed25519:
		return ed25519Name
	case HashNone:
		return "none"
	}

	return fmt.Sprintf("HashType(%d)", uint8(ht))
}

// ParseHashType maps an algorithm name (BLAKE2b, Ed25519, or none/empty) to its HashType
func ParseHashType(name string) (HashType, error) {
	if name == "none" {
		return HashNone, nil
	}

	ht, ok := parseHashType(name)
	if !ok {
		return 0, fmt.Errorf("gosleep: unknown algorithm %q", name)
	}

	return ht, nil
}
