package core

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"
	"golang.org/x/crypto/blake2b"
	"unicode/utf8"
)

const (
	// HeaderSize is the fixed size of every SLEEP header
	HeaderSize = 32

	// MaxAlgorithmNameLength is the largest algorithm name that fits after the
	// 8 byte fixed prefix
	MaxAlgorithmNameLength = HeaderSize - algorithmNameOffset

	// BitfieldEntrySize is the entry size of a canonical .bitfield file
	BitfieldEntrySize uint16 = 3328

	// SignaturesEntrySize is the entry size of a canonical .signatures file
	SignaturesEntrySize uint16 = ed25519.SignatureSize

	// TreeEntrySize is the entry size of a canonical .tree file: a BLAKE2b-256
	// node hash followed by the uint64 byte length of the node
	TreeEntrySize uint16 = blake2b.Size256 + 8
)

const (
	fileTypeOffset        = 3
	protocolVersionOffset = 4
	entrySizeOffset       = 5
	algorithmLenOffset    = 7
	algorithmNameOffset   = 8
)

var (
	byteOrder binary.ByteOrder = binary.BigEndian
	magic                      = [3]byte{0x05, 0x02, 0x57}
)

// Header is the structural representation of a 32 byte SLEEP header.
// The zero value is not a canonical header; use NewHeader, one of the
// canonical constructors or Decode.
type Header struct {
	fileType        FileType
	protocolVersion ProtocolVersion
	entrySize       uint16
	hashType        HashType
}

// NewHeader creates a V0 header.
//
// ft and ht must be one of the declared FileType and HashType constants,
// Encode panics otherwise. Use FileType.Valid and HashType.Valid to check
// values that come from outside the program.
func NewHeader(ft FileType, entrySize uint16, ht HashType) Header {
	return Header{
		fileType:        ft,
		protocolVersion: V0,
		entrySize:       entrySize,
		hashType:        ht,
	}
}

// NewBitfield creates the canonical .bitfield header
func NewBitfield() Header {
	return NewHeader(BitField, BitfieldEntrySize, HashNone)
}

// NewSignatures creates the canonical .signatures header
func NewSignatures() Header {
	return NewHeader(Signatures, SignaturesEntrySize, Ed25519)
}

// NewTree creates the canonical .tree header
func NewTree() Header {
	return NewHeader(Tree, TreeEntrySize, BLAKE2b)
}

// NewCanonical creates the canonical header for the given file type
func NewCanonical(ft FileType) Header {
	switch ft {
	case BitField:
		return NewBitfield()
	case Signatures:
		return NewSignatures()
	case Tree:
		return NewTree()
	}

	panic(fmt.Sprintf("gosleep: invalid file type %d", uint8(ft)))
}

// FileType returns the type of file the header belongs to
func (h Header) FileType() FileType { return h.fileType }

// ProtocolVersion returns the SLEEP protocol version
func (h Header) ProtocolVersion() ProtocolVersion { return h.protocolVersion }

// EntrySize returns the size of each entry in the file body
func (h Header) EntrySize() uint16 { return h.entrySize }

// HashType returns the algorithm named in the header
func (h Header) HashType() HashType { return h.hashType }

// IsBitfield reports whether the header is formatted as a .bitfield
func (h Header) IsBitfield() bool {
	return h.entrySize == BitfieldEntrySize &&
		h.fileType == BitField &&
		h.hashType == HashNone
}

// IsSignatures reports whether the header is formatted as a .signatures
func (h Header) IsSignatures() bool {
	return h.entrySize == SignaturesEntrySize &&
		h.fileType == Signatures &&
		h.hashType == Ed25519
}

// IsTree reports whether the header is formatted as a .tree
func (h Header) IsTree() bool {
	return h.entrySize == TreeEntrySize &&
		h.fileType == Tree &&
		h.hashType == BLAKE2b
}

// IsCanonical reports whether the header matches any of the three
// well known SLEEP file configurations
func (h Header) IsCanonical() bool {
	return h.IsBitfield() || h.IsSignatures() || h.IsTree()
}

func (h Header) String() string {
	return fmt.Sprintf(
		"%s header (protocol %s, entry size %d, algorithm %s)",
		h.fileType, h.protocolVersion, h.entrySize, h.hashType,
	)
}

// Encode serializes the header. Use this to persist a header back to disk.
func (h Header) Encode() [HeaderSize]byte {
	var b [HeaderSize]byte

	copy(b[:len(magic)], magic[:])

	b[fileTypeOffset] = h.fileType.code()
	b[protocolVersionOffset] = h.protocolVersion.code()

	byteOrder.PutUint16(b[entrySizeOffset:algorithmLenOffset], h.entrySize)

	name := h.hashType.algorithmName()

	b[algorithmLenOffset] = uint8(len(name))
	copy(b[algorithmNameOffset:], name)

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler
func (h Header) MarshalBinary() ([]byte, error) {
	b := h.Encode()

	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Trailing padding is not verified.
func (h *Header) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}

	*h = decoded

	return nil
}

// Decode parses a 32 byte buffer into a valid Header.
// Decode never reads outside of b and never panics, whatever its length or content.
func Decode(b []byte, opts ...Option) (Header, error) {
	cfg := DefaultConfig

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if len(b) != HeaderSize {
		return Header{}, newDecodeError(ErrWrongLength, 0, len(b))
	}

	for i, m := range magic {
		if b[i] != m {
			return Header{}, newDecodeError(ErrBadMagic, i, b[i])
		}
	}

	ft, ok := parseFileType(b[fileTypeOffset])
	if !ok {
		return Header{}, newDecodeError(ErrUnknownFileType, fileTypeOffset, b[fileTypeOffset])
	}

	pv, ok := parseProtocolVersion(b[protocolVersionOffset])
	if !ok {
		return Header{}, newDecodeError(ErrUnknownProtocolVersion, protocolVersionOffset, b[protocolVersionOffset])
	}

	entrySize := byteOrder.Uint16(b[entrySizeOffset:algorithmLenOffset])

	nameLen := int(b[algorithmLenOffset])
	if nameLen > MaxAlgorithmNameLength {
		return Header{}, newDecodeError(ErrAlgorithmNameTooLong, algorithmLenOffset, nameLen)
	}

	nameEnd := algorithmNameOffset + nameLen
	if nameEnd > len(b) {
		return Header{}, newDecodeError(ErrAlgorithmNameOutOfBounds, algorithmLenOffset, nameEnd)
	}

	name := b[algorithmNameOffset:nameEnd]
	if !utf8.Valid(name) {
		return Header{}, newDecodeError(ErrInvalidUTF8, algorithmNameOffset, append([]byte(nil), name...))
	}

	ht, ok := parseHashType(string(name))
	if !ok {
		return Header{}, newDecodeError(ErrUnrecognizedAlgorithm, algorithmNameOffset, string(name))
	}

	if cfg.StrictPadding {
		for i := nameEnd; i < len(b); i++ {
			if b[i] != 0 {
				return Header{}, newDecodeError(ErrNonZeroPadding, i, b[i])
			}
		}
	}

	return Header{
		fileType:        ft,
		protocolVersion: pv,
		entrySize:       entrySize,
		hashType:        ht,
	}, nil
}
