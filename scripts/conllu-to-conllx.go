//go:build ignore

// Convert CoNLL-U treebanks to the plain CoNLL-X layout the scorer reads.
// Comment lines, multiword token ranges, and empty nodes are dropped;
// UPOS/XPOS map onto CPOSTAG/POSTAG and the projective head columns are
// blanked.
// Usage: go run ./scripts/conllu-to-conllx.go INPUT.conllu OUTPUT.conll
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/conllu-to-conllx.go INPUT.conllu OUTPUT.conll")
		os.Exit(1)
	}

	if err := convert(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convert(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows, skipped, lineno int
	inSentence := false

	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		// Comments carry sentence metadata the scorer does not use.
		if strings.HasPrefix(line, "#") {
			continue
		}

		if line == "" {
			if inSentence {
				fmt.Fprintln(w)
				inSentence = false
			}
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != 10 {
			return fmt.Errorf("line %d: expected 10 columns, got %d", lineno, len(cols))
		}

		// Multiword ranges (1-2) and empty nodes (1.1) have no place in
		// the basic dependency tree.
		if strings.ContainsAny(cols[0], "-.") {
			skipped++
			continue
		}

		row := []string{cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7], "_", "_"}
		fmt.Fprintln(w, strings.Join(row, "\t"))
		rows++
		inSentence = true
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	fmt.Printf("  -> %s (%d rows, %d skipped)\n", outPath, rows, skipped)
	return nil
}
