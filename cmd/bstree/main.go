/*
Command bstree exercises binary search trees from the command line.

	bstree demo                 replay a tour of all tree operations
	bstree levels 40 10 50 5    print the levels of a tree
	bstree dot 40 10 50 5       output a tree in Graphviz DOT format
	bstree html 40 10 50 5      output the levels of a tree as an HTML table

Trees are built by inserting the integer arguments in the order given.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/bstree/console"
	"github.com/npillmayer/bstree/html"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var traceLevel string
	root := &cobra.Command{
		Use:           "bstree",
		Short:         "exercise unbalanced binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseTraceLevel(traceLevel)
			if err != nil {
				return err
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (error, info, debug)")
	root.AddCommand(demoCommand(), levelsCommand(), dotCommand(), htmlCommand())
	return root
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// treeFromArgs inserts the integer arguments into a new tree.
func treeFromArgs(args []string) (*bstree.Tree[int], error) {
	tree := bstree.New[int]()
	for _, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", arg)
		}
		tree.Insert(x)
	}
	return tree, nil
}

func levelsCommand() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "levels <int>...",
		Short: "print the levels of a tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treeFromArgs(args)
			if err != nil {
				return err
			}
			var config *console.Config
			if width > 0 {
				config = &console.Config{LineWidth: width}
			}
			return console.Fprint(console.NewPrinter(nil, config), tree, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "line width; 0 means terminal width")
	return cmd
}

func dotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <int>...",
		Short: "output a tree in Graphviz DOT format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treeFromArgs(args)
			if err != nil {
				return err
			}
			return bstree.Tree2Dot(tree, cmd.OutOrStdout())
		},
	}
}

func htmlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "html <int>...",
		Short: "output the levels of a tree as an HTML table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treeFromArgs(args)
			if err != nil {
				return err
			}
			if err := html.Render(tree, cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
