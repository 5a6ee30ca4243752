// Package main provides the fcn CLI: run, validate and draw the two-layer network.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "forward":
		err = runForward(os.Stdout, args)
	case "validate":
		var ok bool
		ok, err = runValidate(os.Stdout, args)
		if err == nil && !ok {
			os.Exit(1)
		}
	case "arch":
		var ok bool
		ok, err = runArch(os.Stdout, args)
		if err == nil && !ok {
			os.Exit(1)
		}
	case "draw":
		err = runDraw(os.Stdout, args)
	case "version":
		fmt.Printf("fcn %s\n", version)
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("❌ %s: %v", cmd, err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "fcn - two-layer fully connected network forward pass")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  forward [-x 1.0,2.0]            Run the reference network on an input")
	fmt.Fprintln(w, "  validate [-tol 1e-6]            Validate the reference network")
	fmt.Fprintln(w, "  arch 3 5 5 2                    Check a layer-size list against [3, 5, 5, 2]")
	fmt.Fprintln(w, "  draw [-o network.png] [sizes]   Draw a network diagram (default 2 2 2)")
	fmt.Fprintln(w, "  version                         Show version")
}
