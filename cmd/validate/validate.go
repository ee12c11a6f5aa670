/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for propcheck.
package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/propcheck/cmd/render"
	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/sheet"
	"bennypowers.dev/propcheck/validator"
)

// ErrValidationFailed is returned when any file has errors, or warnings
// in strict mode.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate property values in stylesheets",
	Long: `Validate every declaration in stylesheets, HTML documents and JavaScript
css tagged templates. Without arguments, the files listed in the config are
validated.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output problems")
	Cmd.Flags().Bool("resolved", false, "Resolve values to typed values before matching")
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}
	strict = strict || ws.Config.Strict

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		expanded, err := ws.Config.ExpandFiles(ws.FS, ws.Root)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	mode := validator.ModeText
	if resolved {
		mode = validator.ModeResolved
	}
	reports := validateFiles(ws, files, mode)
	summary := render.Summarize(reports)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = render.JSON(out, struct {
			Files   []render.FileReport `json:"files"`
			Summary render.Summary      `json:"summary"`
		}{reports, summary})
	case "text":
		err = render.Findings(out, reports)
		if err == nil && !quiet {
			_, err = fmt.Fprintf(out, "%d files, %d errors, %d warnings\n", summary.Files, summary.Errors, summary.Warnings)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if summary.Errors > 0 || (strict && summary.Warnings > 0) {
		return ErrValidationFailed
	}
	return nil
}

// validateFiles checks each file, recording read and parse failures in
// the report instead of stopping.
func validateFiles(ws *workspace.Workspace, files []string, mode validator.Mode) []render.FileReport {
	reports := make([]render.FileReport, 0, len(files))
	for _, file := range files {
		report := render.FileReport{File: file, Findings: []validator.Finding{}}

		lang, err := languageFor(ws, file)
		if err != nil {
			report.Error = err.Error()
			reports = append(reports, report)
			continue
		}

		data, err := ws.FS.ReadFile(file)
		if err != nil {
			report.Error = fmt.Sprintf("error reading file: %v", err)
			reports = append(reports, report)
			continue
		}

		findings, err := ws.Validator.CheckDocument(data, lang, mode)
		if err != nil {
			report.Error = err.Error()
			reports = append(reports, report)
			continue
		}
		logger.Debug("%s: %d declarations as %s", file, len(findings), lang)

		if problems := validator.Problems(findings); problems != nil {
			report.Findings = problems
		}
		reports = append(reports, report)
	}
	return reports
}

// languageFor prefers the config's language override for file and falls
// back to the file extension.
func languageFor(ws *workspace.Workspace, file string) (sheet.Language, error) {
	if name := ws.Config.LanguageForFile(ws.Root, file); name != "" {
		return sheet.LanguageFromString(name)
	}
	return sheet.LanguageForPath(file)
}
