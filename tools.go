//go:build tools

package gosleep

import (
	_ "github.com/vektra/mockery/v2"
)
