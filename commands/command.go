// Package commands implements the sheetstream CLI commands: spec, check,
// discover, read and version. Protocol messages go to stdout, one JSON
// document per line; diagnostics go to stderr.
package commands

import (
	"fmt"
	"log"
)

const APP = "sheetstream"

const VERSION = "v0.1.0"

// Debug enables diagnostic logging on stderr. Set by the root --debug flag.
var Debug = false

func debugf(format string, args ...any) {
	if Debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
