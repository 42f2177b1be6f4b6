package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"rr-simulator/internal/core"
	"rr-simulator/internal/responses"
)

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt prints the timeline as a bar of process names, each cell as wide
// as its slice, followed by the slice boundaries.
func WriteGantt(w io.Writer, gantt []responses.SliceResponse) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString(strconv.Itoa(gantt[0].Start))
	for _, s := range gantt {
		width := cellWidth(s)
		bar.WriteString(center(s.Process, width))
		bar.WriteString("|")

		end := strconv.Itoa(s.End)
		pad := width + 1 - len(end)
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(end)
	}
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, axis.String())
	_, _ = fmt.Fprintln(w)
}

func cellWidth(s responses.SliceResponse) int {
	width := s.Duration * 2
	if minWidth := len(s.Process) + 2; width < minWidth {
		width = minWidth
	}
	return width
}

func center(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// WriteResults prints the per-process metrics with averages in the footer.
func WriteResults(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Results")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Burst", "Wait", "Response", "Turnaround", "Completion"})
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.Name,
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.ResponseTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Average %.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average %.2f", response.AverageResponseTime),
		fmt.Sprintf("Average %.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Total %d", response.TotalTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Quantum: %d  Context switches: %d  Utilization: %.2f  Throughput: %.3f/tick\n",
		response.TimeQuantum, response.ContextSwitches, response.CpuUtilization, response.CpuThroughput)
}

// WriteSchedule prints a whole batch run.
func WriteSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	WriteTitle(w, title)
	WriteGantt(w, response.Gantt)
	WriteResults(w, response)
}

// WriteQueue prints the ready queue as "name (remaining)" blocks.
func WriteQueue(w io.Writer, queue []core.QueueEntry) {
	if len(queue) == 0 {
		_, _ = fmt.Fprintln(w, "Queue: (empty)")
		return
	}
	parts := make([]string, 0, len(queue))
	for _, q := range queue {
		parts = append(parts, fmt.Sprintf("%s (%d)", q.Name, q.RemainingTime))
	}
	_, _ = fmt.Fprintln(w, "Queue:", strings.Join(parts, " "))
}

// WriteStep prints one executed slice and the queue that follows it.
func WriteStep(w io.Writer, step int, slice core.ExecutionSlice, queue []core.QueueEntry) {
	_, _ = fmt.Fprintf(w, "Step %d: CPU runs %s from %d to %d\n", step, slice.Process, slice.Start, slice.End)
	WriteQueue(w, queue)
}
