package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"rr-simulator/internal/report"
	"rr-simulator/internal/requests"
	"rr-simulator/internal/responses"
	"rr-simulator/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		flags   workloadFlags
		fcfs    bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a batch simulation and print the timeline and results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			processes, quantum, err := flags.workload(cmd, cfg.RoundRobinTimeQuantum)
			if err != nil {
				return err
			}
			fillNames(processes)
			request := &requests.ScheduleRequest{Processes: processes}
			ctx := logger.WithContext(cmd.Context())

			var response responses.ScheduleResponse
			title := "Round Robin"
			if fcfs {
				title = "First Come First Serve"
				response, err = schedulers.ScheduleFirstComeFirstServe(ctx, request, cfg.MaxSlices)
			} else {
				response, err = schedulers.ScheduleRoundRobin(ctx, request, quantum, cfg.MaxSlices)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(response)
			}
			report.WriteSchedule(out, title, response)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&fcfs, "fcfs", false, "Use a quantum as long as the longest burst (first come first serve)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}
