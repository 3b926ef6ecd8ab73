// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	level int

	infoPrinter  = pterm.Info.WithWriter(os.Stderr)
	debugPrinter = pterm.Debug.WithWriter(os.Stderr)
)

// Setup sets the diagnostic verbosity for the process: 0 silences
// diagnostics, 1 enables info lines, 2 and above enables debug dumps.
func Setup(verbosity int) {
	level = verbosity
	if verbosity >= 2 {
		pterm.EnableDebugMessages()
	}
}

// Infof prints an informational line to stderr at -v and above.
func Infof(format string, args ...any) {
	if level >= 1 {
		infoPrinter.Println(fmt.Sprintf(format, args...))
	}
}

// Debugf prints a masked debug line to stderr at -vv and above. Debug dumps
// may contain request and response payloads, so they are always masked.
func Debugf(format string, args ...any) {
	if level >= 2 {
		debugPrinter.Println(Mask(fmt.Sprintf(format, args...)))
	}
}
