package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/statements"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	doneColor   = color.New(color.FgGreen)
	mutedColor  = color.New(color.FgHiBlack)
	timeColor   = color.New(color.FgYellow)
)

// renderFeed prints a day's items, activity feed first and the log of past
// statements after it.
func renderFeed(w io.Writer, day string, items []statements.Item) {
	headerColor.Fprintf(w, "%s\n", day)

	if len(items) == 0 {
		mutedColor.Fprintln(w, "  no statements yet")
		return
	}

	activity, log := statements.SplitTimeline(items)
	for _, item := range activity {
		renderItem(w, item)
	}
	if len(log) > 0 {
		mutedColor.Fprintln(w, "  — log —")
		for _, item := range log {
			renderItem(w, item)
		}
	}
}

func renderItem(w io.Writer, item statements.Item) {
	check := "[ ]"
	if item.Completed {
		check = doneColor.Sprint("[x]")
	}

	// Pad the emoji column by display width so double-width glyphs line up
	emoji := runewidth.FillRight(item.Emoji, 2)

	line := fmt.Sprintf("  %s %s %s", check, emoji, item.Text)
	if item.Completed {
		line = fmt.Sprintf("  %s %s %s", check, emoji, mutedColor.Sprint(item.Text))
	}
	fmt.Fprint(w, line)

	if item.Time != "" {
		fmt.Fprintf(w, " %s", timeColor.Sprintf("@%s", item.Time))
	}
	mutedColor.Fprintf(w, "  (%s · %s · %s)\n", item.ID, item.EffectiveCategory(), item.EffectiveTimeline())
}
