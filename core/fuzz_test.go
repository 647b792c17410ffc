package core_test

import (
	"bytes"
	"github.com/aneshas/gosleep/core"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func FuzzDecode(f *testing.F) {
	for _, h := range []core.Header{core.NewBitfield(), core.NewSignatures(), core.NewTree()} {
		b := h.Encode()
		f.Add(b[:])
	}

	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0xff}, core.HeaderSize))
	f.Add(mkHeader("\x05\x02W\x00\x00\x00\x00\xff"))
	f.Add([]byte("\x05\x02W\x01\x00\x00\x28\x19BLAKE2bXXXXXXXXXXXXXXXXXX"))

	f.Fuzz(func(t *testing.T, data []byte) {
		h, err := core.Decode(data)
		if err != nil {
			return
		}

		b := h.Encode()

		again, err := core.Decode(b[:], core.WithStrictPadding())
		if err != nil {
			t.Fatalf("re-decoding %v: %v", b, err)
		}

		if again != h {
			t.Fatalf("round trip mismatch: %v != %v", again, h)
		}
	})
}

func TestShould_Never_Panic_On_Arbitrary_Input(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	inputs := [][]byte{
		bytes.Repeat([]byte{0x00}, core.HeaderSize),
		bytes.Repeat([]byte{0xff}, core.HeaderSize),
		{0x05},
		{0x05, 0x02},
		{0x05, 0x02, 0x57},
	}

	for n := 0; n <= 300; n++ {
		b := make([]byte, n)
		rnd.Read(b)

		if n >= 3 {
			copy(b, "\x05\x02W")
		}

		inputs = append(inputs, b)
	}

	for nameLen := 0; nameLen <= 255; nameLen++ {
		b := mkHeader("\x05\x02W\x02\x00\x00\x28")
		b[7] = byte(nameLen)

		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_, _ = core.Decode(in)
			_, _ = core.Decode(in, core.WithStrictPadding())
		})
	}
}

func TestShould_Round_Trip_Every_Decodable_Prefix(t *testing.T) {
	names := []string{"", "BLAKE2b", "Ed25519"}

	for ft := 0; ft < 3; ft++ {
		for _, name := range names {
			for _, size := range []uint16{0, 1, 40, 64, 3328, 65535} {
				b := make([]byte, core.HeaderSize)

				copy(b, "\x05\x02W")
				b[3] = byte(ft)
				b[5] = byte(size >> 8)
				b[6] = byte(size)
				b[7] = byte(len(name))
				copy(b[8:], name)

				h, err := core.Decode(b)

				assert.NoError(t, err)

				got := h.Encode()

				assert.Equal(t, b, got[:])
			}
		}
	}
}
