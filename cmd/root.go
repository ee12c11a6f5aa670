/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for propcheck.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/propcheck/cmd/check"
	"bennypowers.dev/propcheck/cmd/list"
	"bennypowers.dev/propcheck/cmd/lsp"
	"bennypowers.dev/propcheck/cmd/mcp"
	"bennypowers.dev/propcheck/cmd/search"
	"bennypowers.dev/propcheck/cmd/syntax"
	"bennypowers.dev/propcheck/cmd/validate"
	"bennypowers.dev/propcheck/cmd/version"
	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "propcheck",
	Short: "Validate style property values against their value syntaxes",
	Long: `propcheck checks style property values, such as "margin: 0 auto", against
value definition syntaxes like "[ <length> | <percentage> | auto ]{1,4}".

It reads stylesheets, <style> blocks and style attributes in HTML, and css
tagged templates in JavaScript, and can run as a language server or an MCP server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(workspace.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(workspace.KeyConfig, "c", "", "Config file (default .config/propcheck.{yaml,yml,json})")
	flags.String(workspace.KeyPrefix, "", "Prefix of custom properties that skip validation (default \"--\")")
	flags.BoolP(workspace.KeyVerbose, "v", false, "Log debug output")

	for _, key := range []string{workspace.KeyConfig, workspace.KeyPrefix, workspace.KeyVerbose} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("PROPCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(lsp.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(syntax.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
