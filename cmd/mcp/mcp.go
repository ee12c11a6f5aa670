/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for propcheck.
package mcp

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/mcpserver"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server over stdio",
	Long: `Run a Model Context Protocol server on stdin and stdout exposing tools to
validate property values and stylesheets, list properties, and explain
value syntaxes.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if viper.GetBool(workspace.KeyVerbose) {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}
	return mcpserver.New(ws.Validator, ws.Catalog).Run(cmd.Context())
}
