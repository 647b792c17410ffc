package cli

import (
	"encoding/json"
	"fmt"
	"github.com/aneshas/gosleep/core"
	"io"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type headerView struct {
	Path            string `json:"path"`
	FileType        string `json:"file_type"`
	ProtocolVersion string `json:"protocol_version"`
	EntrySize       uint16 `json:"entry_size"`
	Algorithm       string `json:"algorithm"`
	Canonical       bool   `json:"canonical"`
}

func newHeaderView(path string, h core.Header) headerView {
	return headerView{
		Path:            path,
		FileType:        h.FileType().String(),
		ProtocolVersion: h.ProtocolVersion().String(),
		EntrySize:       h.EntrySize(),
		Algorithm:       h.HashType().String(),
		Canonical:       h.IsCanonical(),
	}
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON:
		return nil
	}

	return fmt.Errorf("invalid output format %q (expected text or json)", format)
}

func printHeader(w io.Writer, format string, v headerView) error {
	if format == outputJSON {
		return json.NewEncoder(w).Encode(v)
	}

	_, err := fmt.Fprintf(
		w,
		"%s: type=%s version=%s entry_size=%d algorithm=%s canonical=%t\n",
		v.Path, v.FileType, v.ProtocolVersion, v.EntrySize, v.Algorithm, v.Canonical,
	)

	return err
}
