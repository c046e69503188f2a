package main

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/handrank/domain/poker"
)

func resultsTable(results []result) [][]string {
	data := [][]string{{"Hand", "Category", "Description"}}
	for _, r := range results {
		if r.Err != nil {
			data = append(data, []string{r.Input, pterm.LightRed("invalid"), r.Err.Error()})
			continue
		}
		data = append(data, []string{r.Hand.String(), categoryStyle(r.Category).Sprint(r.Category.String()), r.Description})
	}
	return data
}

func resultPanel(r result) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := categoryStyle(r.Category).Sprint("|" + r.Category.Title() + "|")
	body := pterm.Sprintfln("%s\n%s", r.Hand.Pretty(), r.Description)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)}
}

func categoryStyle(c poker.Category) *pterm.Style {
	switch {
	case c >= poker.StraightFlush:
		return pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold)
	case c >= poker.FullHouse:
		return pterm.NewStyle(pterm.FgLightGreen)
	case c >= poker.Straight:
		return pterm.NewStyle(pterm.FgLightCyan)
	case c >= poker.Pair:
		return pterm.NewStyle(pterm.FgLightYellow)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}
