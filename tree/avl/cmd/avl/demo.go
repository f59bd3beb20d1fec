package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.lepak.sg/avltree/tree/avl"
)

type demoConfiguration struct {
	Base   *baseConfiguration
	Insert []int
	Delete []int
	Draw   bool
}

func newDemoCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &demoConfiguration{Base: baseConfig}

	var cmd = &cobra.Command{
		Use:   "demo",
		Short: "Insert and delete some values, then print every node in order",
		Long: `Inserts the --insert values one by one, deletes the --delete values,
then prints each node in order together with its balance factor.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().IntSliceVar(&config.Insert, "insert", []int{7, 6, 9, 5, 8, 10}, "values to insert, in this order")
	cmd.Flags().IntSliceVar(&config.Delete, "delete", []int{6, 7}, "values to delete after inserting")
	cmd.Flags().BoolVar(&config.Draw, "draw", false, "draw the tree after the node list")

	return cmd
}

func runDemo(out io.Writer, config *demoConfiguration) error {
	log := config.Base.log

	tr := avl.NewOrdered[int]()
	tr.InsertAll(config.Insert...)
	log.Debug().Ints("values", config.Insert).Int("size", tr.Size()).Msg("inserted")

	for _, v := range config.Delete {
		if !tr.Delete(v) {
			log.Warn().Int("value", v).Msg("value not in tree, nothing deleted")
		}
	}

	if err := tr.Validate(); err != nil {
		return fmt.Errorf("tree is inconsistent: %w", err)
	}
	log.Info().Int("size", tr.Size()).Int("height", tr.Height()).Msg("tree ready")

	tr.Traverse(func(n *avl.Node[int]) {
		fmt.Fprintf(out, "node: %d, factor: %d\n", n.Value(), n.Balance())
	})

	if config.Draw {
		fmt.Fprintln(out, "tree:")
		fmt.Fprint(out, tr.String())
	}

	return nil
}
