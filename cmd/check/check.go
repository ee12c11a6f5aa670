/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for propcheck.
package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/propcheck/cmd/render"
	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/validator"
)

// ErrInvalid is returned when the checked value does not validate.
var ErrInvalid = errors.New("invalid value")

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check <property> <value...>",
	Short: "Check a single property value",
	Long: `Check one property value against the syntax registered for the property.
Remaining arguments are joined with spaces to form the value.

  propcheck check margin 0 auto
  propcheck check color '#ff3366'
  propcheck check width 'var(--size)'`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().Bool("resolved", false, "Resolve the value to typed values before matching")
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	resolved, _ := cmd.Flags().GetBool("resolved")
	strict, _ := cmd.Flags().GetBool("strict")
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}

	property, value := args[0], strings.Join(args[1:], " ")
	r := checkValue(ws.Validator, property, value, resolved)
	logger.Debug("%s: %q -> %s (%s)", property, value, r.Status, r.Kind)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = render.JSON(out, r)
	case "text":
		err = render.Result(out, value, r)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if failed(r, strict || ws.Config.Strict) {
		return fmt.Errorf("%w for %s", ErrInvalid, property)
	}
	return nil
}

func checkValue(v *validator.Validator, property, value string, resolved bool) validator.Result {
	if resolved {
		return v.ValidateResolvedText(property, value)
	}
	return v.ValidateProperty(property, value)
}

func failed(r validator.Result, strict bool) bool {
	switch r.Status {
	case validator.StatusError:
		return true
	case validator.StatusWarning:
		return strict
	}
	return false
}
