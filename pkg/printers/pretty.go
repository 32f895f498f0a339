package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TaskPage renders one fetched page: the rows, the aggregate summary, and the
// pagination footer.
func (pp *PrettyPrint) TaskPage(snap store.Snapshot) {
	if len(snap.Tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
	} else {
		pp.Tasks(snap.Tasks...)
	}
	pp.Summary(snap)
	pp.Footer(snap)
}

// Tasks renders rows without the page chrome.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	table := uitable.New()
	table.MaxColWidth = 60

	if pp.ShowID {
		table.AddRow("ID", "", "TITLE", "DUE", "CREATED")
	} else {
		table.AddRow("", "TITLE", "DUE", "CREATED")
	}

	for _, t := range tasks {
		if pp.ShowID {
			table.AddRow(t.ID, bullet(t), t.Title, due(t), t.CreatedAt.Format("2006-01-02"))
		} else {
			table.AddRow(bullet(t), t.Title, due(t), t.CreatedAt.Format("2006-01-02"))
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Summary prints the aggregate counters as reported by the last fetch.
func (pp *PrettyPrint) Summary(snap store.Snapshot) {
	b := color.New(color.Bold)
	g := color.New(color.FgGreen)
	y := color.New(color.FgYellow)
	f := color.New(color.Faint)

	_, _ = b.Printf("%d", snap.TotalTasks)
	_, _ = f.Print(" tasks  ")
	_, _ = g.Printf("%d done", snap.Completed)
	_, _ = f.Print("  ")
	_, _ = y.Printf("%d open", snap.Pending)
	_, _ = f.Printf("  %s %d%%\n", progressBar(snap.Progress), snap.Progress)
}

// Footer prints the page position when there is more than one page.
func (pp *PrettyPrint) Footer(snap store.Snapshot) {
	if snap.TotalPages <= 1 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("page %d/%d (%d matching)\n", snap.Page, snap.TotalPages, snap.TotalCount)
}

func bullet(t task.Task) string {
	if t.IsCompleted {
		return color.GreenString("✓")
	}
	if t.Overdue() {
		return color.RedString("•")
	}
	return "•"
}

func due(t task.Task) string {
	if t.DueDate == nil {
		return ""
	}
	if t.Overdue() {
		return color.RedString(t.DueDate.String())
	}
	return t.DueDate.String()
}

const barWidth = 20

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := barWidth * percent / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}
