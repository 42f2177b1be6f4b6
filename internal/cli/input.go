package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rr-simulator/internal/core"
)

type workloadFlags struct {
	processes []string
	example   bool
	quantum   int
}

func (f *workloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.processes, "process", "p", nil, "Process as NAME=BURST (repeatable, input order is queue order)")
	cmd.Flags().BoolVar(&f.example, "example", false, "Use the example workload P1=7 P2=4 P3=3 P4=5")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", 0, "Time quantum (default from config)")
}

// workload resolves the process list and quantum. fallback, the configured
// quantum, applies only when --quantum was not given at all.
func (f *workloadFlags) workload(cmd *cobra.Command, fallback int) ([]core.Process, int, error) {
	quantum := fallback
	if cmd.Flags().Changed("quantum") {
		quantum = f.quantum
	}
	if f.example {
		if len(f.processes) > 0 {
			return nil, 0, fmt.Errorf("--example and --process are mutually exclusive")
		}
		return core.ExampleProcesses(), quantum, nil
	}
	processes := make([]core.Process, 0, len(f.processes))
	for _, raw := range f.processes {
		p, err := ParseProcess(raw)
		if err != nil {
			return nil, 0, err
		}
		processes = append(processes, p)
	}
	return processes, quantum, nil
}

// ParseProcess parses "NAME=BURST". A bare "BURST" is accepted and left
// unnamed for the caller to fill in.
func ParseProcess(raw string) (core.Process, error) {
	name, burst, found := strings.Cut(strings.TrimSpace(raw), "=")
	if !found {
		burst, name = name, ""
	}
	n, err := strconv.Atoi(strings.TrimSpace(burst))
	if err != nil {
		return core.Process{}, fmt.Errorf("process %q: burst time is not an integer", raw)
	}
	return core.Process{Name: strings.TrimSpace(name), BurstTime: n}, nil
}

// fillNames names unnamed processes P<n> by position, the way new rows are
// labelled when added one at a time.
func fillNames(processes []core.Process) {
	for i := range processes {
		if processes[i].Name == "" {
			processes[i].Name = fmt.Sprintf("P%d", i+1)
		}
	}
}
