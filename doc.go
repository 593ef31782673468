/*
Package crabcamera emits the CrabCamera demonstration report: a fixed,
human-readable description of the cross-platform Tauri camera plugin — its
integration story, command surface, technical specifications, and
competitive advantages.

The report content is literal data compiled into the binary. Rendering is a
pure function of that data: no input, no environment lookups, no
randomness, so two runs always produce byte-identical output.

# Usage

Print the report to any writer:

	package main

	import (
		"log"
		"os"

		"github.com/Seif10284/crabcamera"
	)

	func main() {
		if err := crabcamera.Demonstrate(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

The crabcamera CLI (cmd/crabcamera) wraps the same data with styled
terminal rendering, a JSON command listing, an HTTP server, and an MCP
server. None of those surfaces implement the camera system the report
describes; they only deliver its description.
*/
package crabcamera
