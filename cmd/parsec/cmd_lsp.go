package main

import (
	"github.com/dhamidi/parsec/langsvr"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for exprlang",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := langsvr.NewServer("0.1.0")
			return server.RunStdio()
		},
	}
}
