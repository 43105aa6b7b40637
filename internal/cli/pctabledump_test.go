package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chessplay/internal/pcgraph"
)

func TestRunPcTableDumpWithNoEdgesYieldsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "edges.bin")
	output := filepath.Join(dir, "pc-table.bin")

	if err := os.WriteFile(input, pcgraph.PackEdges(nil), 0644); err != nil {
		t.Fatalf("failed to write input fixture: %v", err)
	}

	if err := runPcTableDump(context.Background(), []string{"--input=" + input, "--output=" + output}); err != nil {
		t.Fatalf("runPcTableDump failed: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output file was not written: %v", err)
	}
}

func TestRunPcTableDumpMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runPcTableDump(context.Background(), []string{"--input=" + filepath.Join(dir, "missing.bin")})
	if err == nil {
		t.Fatal("expected an error when the input file does not exist")
	}
}
