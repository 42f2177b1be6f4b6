package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rr-simulator/internal/report"
	"rr-simulator/internal/schedulers"
)

func newStepCmd() *cobra.Command {
	var (
		flags       workloadFlags
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Walk through the schedule one dispatch at a time",
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

			stepper := schedulers.NewStepperWithLimit(cfg.MaxSlices)
			if err := stepper.Init(processes, quantum); err != nil {
				return err
			}
			logger.Debug().Int("quantum", quantum).Int("processes", len(processes)).Msg("step mode started")

			out := cmd.OutOrStdout()
			var in *bufio.Reader
			if interactive {
				in = bufio.NewReader(cmd.InOrStdin())
			}
			report.WriteTitle(out, fmt.Sprintf("Round Robin, quantum %d", quantum))
			report.WriteQueue(out, stepper.Queue())

			for {
				if in != nil {
					_, _ = fmt.Fprint(out, "[enter] next step ")
					if _, err := in.ReadString('\n'); err != nil {
						if err != io.EOF {
							return err
						}
						// input closed: run the rest without pausing
						in = nil
					}
				}
				res, err := stepper.Step()
				if err != nil {
					return err
				}
				if res.Done {
					break
				}
				report.WriteStep(out, res.Step, res.Slice, res.Queue)
			}

			outcome, err := stepper.Outcome()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out)
			report.WriteSchedule(out, "Final results", schedulers.GenerateResponse(schedulers.AlgorithmRoundRobin, outcome))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Wait for Enter between steps")
	return cmd
}
