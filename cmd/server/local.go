package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hazyhaar/phonekey/pkg/langpack"
	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

// localConfig builds the engine configuration for CLI usage: built-ins plus
// any rule packs found in packsDir.
func localConfig(packsDir, mode string) (*phonetic.Config, error) {
	reg := langpack.NewRegistry(packsDir)
	if err := reg.Load(); err != nil {
		return nil, err
	}
	cfg := reg.Config()
	if mode == "exact" {
		cfg = cfg.Clone()
		cfg.Mode = phonetic.Exact
		cfg.CollapseDuplicates = false
	}
	return cfg, nil
}

func cmdEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	packsDir := fs.String("packs-dir", "packs", "rule packs directory")
	mode := fs.String("mode", "approx", "rule mode: exact or approx")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: phonekey encode [--mode exact|approx] <name>")
		os.Exit(1)
	}
	name := strings.Join(fs.Args(), " ")

	cfg, err := localConfig(*packsDir, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results := phonetic.Encode(name, cfg)
	if len(results) == 0 {
		fmt.Println("(no keys)")
		return
	}
	for _, r := range results {
		fmt.Printf("%-4s %s\n", r.Lang, strings.Join(r.Keys, " "))
	}
}

func cmdMatch(args []string) {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	packsDir := fs.String("packs-dir", "packs", "rule packs directory")
	mode := fs.String("mode", "approx", "rule mode: exact or approx")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: phonekey match [--mode exact|approx] <name-a> <name-b>")
		os.Exit(1)
	}
	a, b := fs.Arg(0), fs.Arg(1)

	cfg, err := localConfig(*packsDir, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	match := phonetic.Match(a, b, cfg)
	sim := phonetic.Similarity(a, b, cfg)
	fmt.Printf("match=%v similarity=%.3f\n", match, sim)
	if !match {
		os.Exit(1)
	}
}
