package gosleep_test

import (
	"bytes"
	"errors"
	"github.com/aneshas/gosleep"
	"github.com/aneshas/gosleep/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestShould_Read_Header_And_Leave_Body_Unread(t *testing.T) {
	h := core.NewTree()
	b := h.Encode()

	body := []byte("first tree node")
	r := bytes.NewReader(append(b[:], body...))

	got, err := gosleep.ReadHeader(r)

	assert.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, len(body), r.Len())
}

func TestShould_Report_Short_Header(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{
			name: "empty",
			in:   nil,
		},
		{
			name: "31 bytes",
			in:   make([]byte, 31),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gosleep.ReadHeader(bytes.NewReader(tc.in))

			assert.ErrorIs(t, err, gosleep.ErrShortHeader)
		})
	}
}

func TestShould_Propagate_Decode_Errors(t *testing.T) {
	b := make([]byte, core.HeaderSize)

	_, err := gosleep.ReadHeader(bytes.NewReader(b))

	assert.ErrorIs(t, err, core.ErrBadMagic)
}

func TestShould_Propagate_Reader_Errors(t *testing.T) {
	readErr := errors.New("disk on fire")

	_, err := gosleep.ReadHeader(&failingIO{err: readErr})

	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, gosleep.ErrShortHeader)
}

func TestShould_Honor_Strict_Padding(t *testing.T) {
	b := core.NewSignatures().Encode()
	b[core.HeaderSize-1] = 0x7f

	_, err := gosleep.ReadHeader(bytes.NewReader(b[:]))

	assert.NoError(t, err)

	_, err = gosleep.ReadHeader(bytes.NewReader(b[:]), gosleep.WithStrictPadding())

	assert.ErrorIs(t, err, core.ErrNonZeroPadding)

	_, err = gosleep.ReadHeader(
		bytes.NewReader(b[:]),
		gosleep.WithDecodeConfig(core.Config{StrictPadding: true}),
	)

	assert.ErrorIs(t, err, core.ErrNonZeroPadding)
}

func TestShould_Write_Header(t *testing.T) {
	var (
		buf  bytes.Buffer
		logs bytes.Buffer
	)

	err := gosleep.WriteHeader(
		&buf,
		core.NewBitfield(),
		gosleep.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)),
	)

	require.NoError(t, err)

	want := core.NewBitfield().Encode()

	assert.Equal(t, want[:], buf.Bytes())
	assert.Contains(t, logs.String(), `"file_type":"bitfield"`)
}

func TestShould_Report_Partial_Write(t *testing.T) {
	err := gosleep.WriteHeader(&failingIO{n: 10, err: errors.New("disk full")}, core.NewTree())

	assert.ErrorIs(t, err, gosleep.ErrPartialWrite)

	err = gosleep.WriteHeader(&failingIO{err: errors.New("disk full")}, core.NewTree())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, gosleep.ErrPartialWrite)
}

func TestShould_Expect_Canonical_Headers(t *testing.T) {
	assert.NoError(t, gosleep.Expect(core.NewBitfield(), core.BitField))
	assert.NoError(t, gosleep.Expect(core.NewSignatures(), core.Signatures))
	assert.NoError(t, gosleep.Expect(core.NewTree(), core.Tree))

	cases := []struct {
		name string
		h    core.Header
		ft   core.FileType
	}{
		{
			name: "wrong file type",
			h:    core.NewTree(),
			ft:   core.Signatures,
		},
		{
			name: "wrong entry size",
			h:    core.NewHeader(core.Signatures, 40, core.Ed25519),
			ft:   core.Signatures,
		},
		{
			name: "wrong algorithm",
			h:    core.NewHeader(core.Tree, 40, core.Ed25519),
			ft:   core.Tree,
		},
		{
			name: "unknown file type",
			h:    core.NewHeader(core.FileType(7), 40, core.Ed25519),
			ft:   core.FileType(7),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, gosleep.Expect(tc.h, tc.ft), gosleep.ErrNotCanonical)
		})
	}
}

type failingIO struct {
	n   int
	err error
}

func (f *failingIO) Read([]byte) (int, error) {
	return 0, f.err
}

func (f *failingIO) Write([]byte) (int, error) {
	return f.n, f.err
}
