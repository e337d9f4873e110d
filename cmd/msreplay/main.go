// Command msreplay plays a TOML interaction script against the selection
// engine without a terminal and prints the selection and focus after each
// step.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"multiselect/internal/replay"
)

func main() {
	var events, debug bool
	flag.BoolVar(&events, "events", false, "Print bus events under each step")
	flag.BoolVar(&debug, "debug", false, "Log engine diagnostics to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: msreplay [-events] [-debug] script.toml")
		os.Exit(2)
	}
	if !debug {
		log.SetOutput(io.Discard)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error reading script: %v\n", err)
		os.Exit(1)
	}
	script, err := replay.Parse(data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := replay.Run(script, os.Stdout, replay.Options{Events: events, Debug: debug}); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
