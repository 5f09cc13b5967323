package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	progress "gopkg.in/cheggaaa/pb.v1"

	"github.com/cyraxred/rbtree"
)

// stressCmd drives a randomized insert/remove workload against a tree and
// cross-checks the balancing invariants along the way.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run a randomized workload and validate the tree invariants.",
	Long: `stress performs a configurable number of random insertions and removals over
a bounded key range and validates the red-black invariants periodically and at
the end of the run. A non-zero exit status means an invariant was broken.`,
	Args: cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		ops, err := flags.GetInt("ops")
		if err != nil {
			panic(err)
		}
		keyRange, err := flags.GetInt("keys")
		if err != nil {
			panic(err)
		}
		seed, err := flags.GetInt64("seed")
		if err != nil {
			panic(err)
		}
		checkEvery, err := flags.GetInt("check-every")
		if err != nil {
			panic(err)
		}
		quiet, err := flags.GetBool("quiet")
		if err != nil {
			panic(err)
		}

		random := rand.New(rand.NewSource(seed))
		tree := rbtree.NewOrdered[int]()
		var bar *progress.ProgressBar
		if !quiet {
			bar = progress.New(ops)
			bar.ShowSpeed = false
			bar.SetMaxWidth(80).Start()
		}
		for i := 0; i < ops; i++ {
			key := random.Intn(keyRange)
			if random.Intn(100) < 55 {
				tree.Insert(key)
			} else {
				tree.Remove(key)
			}
			if checkEvery > 0 && (i+1)%checkEvery == 0 {
				if err := tree.Validate(); err != nil {
					log.Fatalf("invariant violation after %d operations: %v", i+1, err)
				}
			}
			if bar != nil {
				bar.Set(i + 1)
			}
		}
		if bar != nil {
			bar.Finish()
		}
		if err := tree.Validate(); err != nil {
			log.Fatalf("invariant violation at the end of the run: %v", err)
		}
		fmt.Fprintf(os.Stderr, "ok: %d operations, %d nodes left\n", ops, tree.Len())
	},
}

func init() {
	flags := stressCmd.Flags()
	flags.Int("ops", 100000, "Number of operations to run.")
	flags.Int("keys", 1000, "Keys are drawn from [0, this value).")
	flags.Int64("seed", 0, "Seed of the random generator.")
	flags.Int("check-every", 1000, "Validate the tree every that many operations. 0 disables.")
	flags.Bool("quiet", false, "Do not render the progress bar.")
}
