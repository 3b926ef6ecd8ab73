// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render writes a normalized statement result to an output stream as
// CSV, compact JSON, or a pretty-printed raw envelope.
package render

import (
	"fmt"
	"io"
	"strings"

	"rdsq/cli/internal/dataapi"
)

// Format selects the output rendering.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatRaw  Format = "raw"
)

// ParseFormat maps a user-supplied format name to a Format,
// case-insensitively. Unknown names fall back to CSV.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "raw":
		return FormatRaw
	default:
		return FormatCSV
	}
}

// Render writes res to w in the given format.
func Render(w io.Writer, format Format, res *dataapi.Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatRaw:
		return writeRaw(w, res)
	default:
		return writeCSV(w, res)
	}
}

// stringify converts one cell value to its textual form. Null becomes the
// empty string; blobs render as Postgres-style hex escapes.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return fmt.Sprintf("\\x%x", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
