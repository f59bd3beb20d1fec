package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"go.lepak.sg/avltree/tree/avl"
)

type randomConfiguration struct {
	Base *baseConfiguration
	Num  int
	Seed int64
}

func newRandomCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &randomConfiguration{Base: baseConfig}

	var cmd = &cobra.Command{
		Use:   "random",
		Short: "Build a tree from 0..n-1 inserted in random order and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().IntVarP(&config.Num, "num", "n", 10, "number of nodes in the tree")
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 0, "seed (default current unix time in ns)")

	return cmd
}

func runRandom(out io.Writer, config *randomConfiguration) error {
	if config.Num < 0 {
		return fmt.Errorf("number of nodes must not be negative, got %d", config.Num)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	config.Base.log.Debug().Int("num", config.Num).Int64("seed", config.Seed).Msg("building random tree")

	tr := avl.BuildRandom(config.Num, config.Seed)

	preorder := make([]int, 0, config.Num)
	tr.PreOrder(func(n *avl.Node[int]) {
		preorder = append(preorder, n.Value())
	})

	fmt.Fprintln(out, "seed:", config.Seed)
	fmt.Fprintln(out, "preorder:", preorder)
	fmt.Fprintln(out, "inorder:", tr.Values())

	fmt.Fprintln(out, "tree:")
	fmt.Fprint(out, tr.String())

	fmt.Fprintln(out, "height:", tr.Height(),
		"ideal:", avl.IdealHeight(tr.Size()),
		"worst:", avl.MaxHeight(tr.Size()))

	return nil
}
