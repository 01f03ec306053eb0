package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/c360studio/dwcgraph/entity"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/spf13/cobra"
)

func vocabCmd() *cobra.Command {
	var byKind bool

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the relations used in the graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if byKind {
				return printKinds(cmd.OutOrStdout())
			}
			return printRelations(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&byKind, "kinds", false, "Group relations by entity kind with their source fields")
	return cmd
}

func printRelations(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RELATION\tIRI\tVALUE")
	for _, meta := range tern.Relations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", meta.Name, meta.StandardIRI, meta.DataType)
	}
	return tw.Flush()
}

func printKinds(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, k := range entity.Kinds() {
		fmt.Fprintf(tw, "%s\t%s\t\n", k, k.Class())
		for _, rel := range entity.Describe(k) {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", rel.Field, rel.Predicate, rel.ValueKind)
		}
	}
	return tw.Flush()
}
