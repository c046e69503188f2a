package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/handrank/domain/poker"
)

const debugEnv = "HANDRANK_DEBUG"

type result struct {
	Input       string
	Hand        poker.Hand
	Category    poker.Category
	Description string
	Err         error
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Fprintf(os.Stderr, "usage: %s [\"AH KH QH JH TH\" ...]\n", os.Args[0])
		os.Exit(2)
	}

	if os.Getenv(debugEnv) != "" {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	if len(os.Args) > 1 {
		os.Exit(run(os.Args[1:], logger))
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hand", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Rank", pterm.FgDarkGray.ToStyle()),
	).Render()
	interactive(logger)
}

// run evaluates every argument as one hand, prints a table and returns
// the process exit code.
func run(args []string, logger *slog.Logger) int {
	results := make([]result, 0, len(args))
	for _, arg := range args {
		results = append(results, evaluate(arg, logger))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(resultsTable(results)).Render(); err != nil {
		logger.Error("failed to render results", "error", err)
		return 1
	}
	return exitCode(results)
}

func interactive(logger *slog.Logger) {
	for {
		input, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter a hand such as AH KH QH JH TH. When done, type done").Show()
		if err != nil {
			logger.Error("failed to read input", "error", err)
			return
		}
		// Print a blank line for better readability
		pterm.Println()
		input = strings.TrimSpace(input)
		if input == "" || strings.EqualFold(input, "done") {
			return
		}
		r := evaluate(input, logger)
		if r.Err != nil {
			pterm.Error.Println(r.Err.Error())
			continue
		}
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{resultPanel(r)}}).Render()
	}
}

func evaluate(input string, logger *slog.Logger) result {
	r := result{Input: input}
	h, err := poker.ParseHand(input)
	if err != nil {
		logger.Error("rejected hand", "input", input, "error", err)
		r.Err = err
		return r
	}
	r.Hand = h
	r.Category = h.Evaluate()
	desc, err := h.Describe()
	if err != nil {
		logger.Warn("no reference description", "hand", h.String(), "error", err)
	}
	r.Description = desc
	logger.Debug("classified hand", "hand", h.String(), "category", r.Category.String())
	return r
}

func exitCode(results []result) int {
	for _, r := range results {
		if r.Err != nil {
			return 1
		}
	}
	return 0
}
