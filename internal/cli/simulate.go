package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/render"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

const allPolicies = "all"

func newSimulateCmd() *cobra.Command {
	var (
		policyName  string
		higherFirst bool
		randomCount int
		seed        int64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [workload-file]",
		Short: "Run a scheduling policy over a workload file or a random workload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var request requests.ScheduleRequests
			switch {
			case len(args) == 1:
				var err error
				if request, err = workload.Load(args[0]); err != nil {
					return err
				}
			case randomCount > 0:
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				request = workload.Random(randomCount, rand.New(rand.NewSource(seed))).Request()
			default:
				return fmt.Errorf("give a workload file or --random N")
			}
			if cmd.Flags().Changed("higher-first") {
				lowerIsHigher := !higherFirst
				request.LowerIsHigherPriority = &lowerIsHigher
			}
			if err := request.Validate(cfg.MinProcesses, cfg.MaxProcesses); err != nil {
				return err
			}

			results, err := simulate(request, policyName)
			if err != nil {
				return err
			}
			for _, result := range results {
				logger.Info("simulated", "run_id", result.RunId, "policy", result.Algorithm, "processes", len(request.Jobs))
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, result := range results {
				render.Title(cmd.OutOrStdout(), result.Algorithm)
				render.Gantt(cmd.OutOrStdout(), result.Timeline)
				render.Table(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "fcfs", "Policy: fcfs, sjf, priority, deadline, mlq or all")
	cmd.Flags().BoolVar(&higherFirst, "higher-first", false, "Treat larger priority values as more urgent")
	cmd.Flags().IntVar(&randomCount, "random", 0, "Generate N random processes instead of reading a file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for --random")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

// simulate runs one named policy, or all of them in display order.
func simulate(request requests.ScheduleRequests, policyName string) ([]responses.ScheduleResponse, error) {
	processes := request.Processes()
	params := request.Params(cfg.LowerIsHigherPriority)

	if strings.EqualFold(policyName, allPolicies) {
		all, err := schedulers.SimulateAll(processes, params)
		if err != nil {
			return nil, err
		}
		results := make([]responses.ScheduleResponse, 0, len(all))
		for _, policy := range schedulers.Policies {
			results = append(results, all[policy.String()])
		}
		return results, nil
	}

	policy, err := schedulers.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	result, err := schedulers.Simulate(processes, policy, params)
	if err != nil {
		return nil, err
	}
	return []responses.ScheduleResponse{result}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
