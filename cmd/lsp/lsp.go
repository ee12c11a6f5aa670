/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp provides the lsp command for propcheck.
package lsp

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/lsp"
)

// Cmd is the lsp cobra command.
var Cmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the language server over stdio",
	Long: `Run a Language Server Protocol server on stdin and stdout. Open CSS, HTML
and JavaScript documents are validated on open and change, and problems are
published as diagnostics.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	if viper.GetBool(workspace.KeyVerbose) {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}
	return lsp.NewServer(ws.Validator).Run()
}
