package testutil

import (
	"testing"
)

func TestPrintModeRendering(t *testing.T) {
	bin := BuildBinary(t)
	input := Testdata(t, "paths.txt")
	output, err := RunBinary(t, bin, input, "-print")
	if err != nil {
		t.Fatalf("pathtree -print failed: %v", err)
	}
	AssertGolden(t, "print_basic.golden", output)
}

func TestPrintModeCollapseDepth(t *testing.T) {
	bin := BuildBinary(t)
	output, err := RunBinary(t, bin, nil, "-print", "-collapse-depth", "1", "testdata/paths.txt")
	if err != nil {
		t.Fatalf("pathtree -print failed: %v", err)
	}
	AssertGolden(t, "print_depth1.golden", output)
}

func TestPrintModeRejectsBadConfig(t *testing.T) {
	bin := BuildBinary(t)
	if _, err := RunBinary(t, bin, nil, "-print", "-separator", ""); err == nil {
		t.Fatalf("expected configuration error exit")
	}
}
