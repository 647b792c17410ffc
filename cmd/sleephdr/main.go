// Command sleephdr inspects and creates SLEEP file headers.
package main

import (
	"fmt"
	"github.com/aneshas/gosleep/internal/cli"
	"github.com/aneshas/gosleep/internal/fs"
	"os"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	if err := cli.Execute(fs.NewDisk(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
