// Package printers renders journal entries and mood statistics.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodjournal/pkg/entry"
	"tableflip.dev/moodjournal/pkg/mood"
	"tableflip.dev/moodjournal/pkg/stats"
	"tableflip.dev/moodjournal/pkg/timeutil"
)

type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Message prints a plain line.
func (pp *PrettyPrint) Message(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", a...)
}

// Warn prints a line that needs the user's attention.
func (pp *PrettyPrint) Warn(format string, a ...interface{}) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintf(pp.out(), format+"\n", a...)
}

// Success prints a confirmation line.
func (pp *PrettyPrint) Success(format string, a ...interface{}) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), format+"\n", a...)
}

func (pp *PrettyPrint) None(message string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), message)
}

// Mood renders m in its color.
func Mood(m mood.Kind) string {
	return moodColor(m).Sprint(m.String())
}

func moodColor(m mood.Kind) *color.Color {
	switch m {
	case mood.Happy:
		return color.New(color.FgHiYellow)
	case mood.Sad:
		return color.New(color.FgBlue)
	case mood.Angry:
		return color.New(color.FgRed)
	case mood.Tired:
		return color.New(color.FgMagenta)
	case mood.Stressed:
		return color.New(color.FgHiRed)
	case mood.Hungry:
		return color.New(color.FgYellow)
	case mood.Calm:
		return color.New(color.FgGreen)
	case mood.Confused:
		return color.New(color.FgCyan)
	default:
		return color.New()
	}
}

// Entry prints one entry under its 1-based number.
func (pp *PrettyPrint) Entry(n int, e *entry.Entry) {
	w := pp.out()
	h := color.New(color.Bold)
	_, _ = h.Fprintf(w, "\n--- Entry %d ---\n", n)
	_, _ = fmt.Fprintf(w, "[Start: %s]\n", entry.FormatMinute(e.Start))

	tags := ""
	if len(e.Tags) > 0 {
		tags = " Tags: " + strings.Join(e.Tags, ", ")
	}
	_, _ = fmt.Fprintf(w, "Mood: %s%s\n", Mood(e.Mood), tags)
	_, _ = fmt.Fprintf(w, "Duration: %s\n", timeutil.PhraseMinutes(e.DurationMinutes()))
	if e.NeedsFeedback() {
		_, _ = fmt.Fprintf(w, "Feedback: %s\n", color.New(color.FgRed).Sprint("Feedback pending"))
	} else {
		_, _ = fmt.Fprintf(w, "Feedback: %s\n", e.Note)
	}
	_, _ = fmt.Fprintln(w, "--------------")
}

// Entries prints entries numbered from 1, or empty when there are none.
func (pp *PrettyPrint) Entries(empty string, entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.None(empty)
		return
	}
	for i, e := range entries {
		pp.Entry(i+1, e)
	}
}

// Summary prints the mood counts of s followed by its most common mood.
func (pp *PrettyPrint) Summary(s stats.Summary, commonLabel string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range s.Counts {
		tbl.AddRow(Mood(c.Mood)+":", fmt.Sprintf("%d", c.Count), fmt.Sprintf("(%.1f%%)", c.Percent))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintf(pp.out(), "%s: %s\n", commonLabel, Mood(s.MostCommon))
}

// Stats prints the day by day summaries and then the overall one.
func (pp *PrettyPrint) Stats(days []stats.Day, overall stats.Summary) {
	pp.NewLine()
	pp.Title("Mood Stats Day by Day")
	for _, d := range days {
		_, _ = fmt.Fprintf(pp.out(), "Date: %s\n", d.Day)
		pp.Summary(d.Summary, "Most common mood")
		pp.NewLine()
	}
	pp.Title("Overall Mood Stats")
	pp.Summary(overall, "Overall most common mood")
}

// Moods lists every mood name.
func (pp *PrettyPrint) Moods() {
	names := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		names = append(names, Mood(m))
	}
	_, _ = fmt.Fprintf(pp.out(), "Available moods: %s\n", strings.Join(names, ", "))
}
