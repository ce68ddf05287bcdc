package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"os-scheduler/internal/workload"
)

func newRandomCmd() *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random YAML workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			data, err := workload.Marshal(workload.Random(count, rand.New(rand.NewSource(seed))))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of processes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	return cmd
}
