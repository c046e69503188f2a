package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/handrank/domain/poker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEvaluate(t *testing.T) {
	r := evaluate("ah kh qh jh th", testLogger())
	if r.Err != nil {
		t.Fatal(r.Err)
	}
	if r.Category != poker.RoyalFlush {
		t.Fatalf("expected royal_flush, got %s", r.Category)
	}
	if r.Hand.String() != "AH KH QH JH TH" {
		t.Fatalf("expected AH KH QH JH TH, got %s", r.Hand.String())
	}
}

func TestEvaluateInvalid(t *testing.T) {
	r := evaluate("AH AH QH JH TH", testLogger())
	if !errors.Is(r.Err, poker.ErrDuplicateCard) {
		t.Fatalf("expected ErrDuplicateCard, got %v", r.Err)
	}
}

func TestResultsTable(t *testing.T) {
	logger := testLogger()
	results := []result{
		evaluate("2S 4H 6D 8C JS", logger),
		evaluate("AH KH", logger),
	}
	data := resultsTable(results)
	if len(data) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(data))
	}
	if data[1][0] != "2S 4H 6D 8C JS" || pterm.RemoveColorFromString(data[1][1]) != "high_card" {
		t.Fatalf("unexpected row %v", data[1])
	}
	if data[2][0] != "AH KH" || pterm.RemoveColorFromString(data[2][1]) != "invalid" || !strings.Contains(data[2][2], "exactly 5 cards") {
		t.Fatalf("unexpected row %v", data[2])
	}
}

func TestExitCode(t *testing.T) {
	logger := testLogger()
	if code := exitCode([]result{evaluate("AH KH QH JH TH", logger)}); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if code := exitCode([]result{evaluate("AH KH QH JH TH", logger), evaluate("XX", logger)}); code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
}

func TestRun(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	if code := run([]string{"AH 2S 3D 4C 5H", "QH QD QC 2C 3H"}, testLogger()); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if code := run([]string{"AH 2S 3D 4C"}, testLogger()); code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
}
