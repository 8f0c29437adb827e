// Package main provides the weft tensor-network CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/weft-ml/weft/backend/cpu"
	"github.com/weft-ml/weft/netspec"
	"github.com/weft-ml/weft/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("weft %s\n", version)
	case "contract":
		if err := runContract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "weft: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("weft - tensor network contraction")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  contract <spec.yaml>    Contract a network described in YAML")
	fmt.Println("  version                 Show version")
}

func runContract(args []string) error {
	fs := flag.NewFlagSet("contract", flag.ExitOnError)
	out := fs.String("o", "", "write the contracted tensor as a msgpack snapshot")
	order := fs.String("order", "", "comma-separated node order (default: insertion order)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("contract needs exactly one spec file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	spec, err := netspec.Parse(data)
	if err != nil {
		return err
	}
	nw, err := spec.Build(cpu.New())
	if err != nil {
		return err
	}

	var seq []string
	if *order != "" {
		seq = strings.Split(*order, ",")
	}
	result, err := nw.Contract(seq...)
	if err != nil {
		return err
	}

	fmt.Printf("contracted %d nodes\n", nw.Size())
	fmt.Printf("result shape: %v\n", result.Shape())
	if result.Shape().NumElements() <= 16 {
		fmt.Printf("result: %s\n", result.Tensor())
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := netspec.SaveTensors(f, map[string]*tensor.Dense{result.Name(): result.Tensor()}); err != nil {
			return err
		}
		fmt.Printf("snapshot written to %s\n", *out)
	}
	return nil
}
