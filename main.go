package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"gobf/pkg/bf"
)

func main() {
	inPath := flag.String("in", "", "input Brainfuck source file path")
	compile := flag.Bool("compile", false, "emit C source instead of interpreting")
	outPath := flag.String("out", "", "output C file path (implies -compile; default: stdout)")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file> to interpret, add -compile or -out to emit C")
		flag.Usage()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	if !*compile && *outPath == "" {
		if err := interpret(string(source)); err != nil {
			fmt.Fprintf(os.Stderr, "run failed for %q: %v\n", *inPath, err)
			os.Exit(1)
		}
		return
	}

	code, err := bf.Compile(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Print(code)
		return
	}
	if err := os.WriteFile(*outPath, []byte(code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output file %q: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("compiled %d bytes -> %s\n", len(code), *outPath)
}

func interpret(source string) error {
	prog, err := bf.Parse(source)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	m := bf.NewMachine()
	m.Input = bufio.NewReader(os.Stdin)
	m.Output = out
	return m.Run(prog)
}
