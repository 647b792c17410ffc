package core_test

import (
	"github.com/aneshas/gosleep/core"
	"testing"
)

var benchHeader = []byte("\x05\x02W\x01\x00\x00\x28\x07BLAKE2b\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = core.Decode(benchHeader)
	}
}

func BenchmarkDecodeStrict(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = core.Decode(benchHeader, core.WithStrictPadding())
	}
}

func BenchmarkEncode(b *testing.B) {
	h := core.NewTree()

	for i := 0; i < b.N; i++ {
		_ = h.Encode()
	}
}
