/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace assembles the config, catalog and validator shared by
// the CLI commands.
package workspace

import (
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/propcheck/catalog"
	"bennypowers.dev/propcheck/config"
	"bennypowers.dev/propcheck/fs"
	"bennypowers.dev/propcheck/validator"
)

// Viper keys bound by the root command.
const (
	KeyConfig  = "config"
	KeyPrefix  = "prefix"
	KeyVerbose = "verbose"
)

// Workspace is everything a command needs to validate values.
type Workspace struct {
	FS        fs.FileSystem
	Root      string
	Config    *config.Config
	Catalog   *catalog.Catalog
	Validator *validator.Validator
}

// Load reads the config named by --config, or discovers one under root,
// and builds a validator from it. --prefix overrides the config's
// custom property prefix.
func Load(filesystem fs.FileSystem, root string) (*Workspace, error) {
	var cfg *config.Config
	if path := viper.GetString(KeyConfig); path != "" {
		loaded, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault(filesystem, root)
	}

	if viper.IsSet(KeyPrefix) {
		cfg.CustomPropertyPrefix = viper.GetString(KeyPrefix)
	}

	cat, err := catalog.New(cfg.CatalogOptions())
	if err != nil {
		return nil, fmt.Errorf("error building property catalog: %w", err)
	}

	v := validator.New(cat,
		validator.WithColors(cat),
		validator.WithCustomPropertyPrefix(cfg.CustomPropertyPrefix),
	)

	return &Workspace{
		FS:        filesystem,
		Root:      root,
		Config:    cfg,
		Catalog:   cat,
		Validator: v,
	}, nil
}

// LoadOS loads the workspace for the current directory.
func LoadOS() (*Workspace, error) {
	return Load(fs.NewOSFileSystem(), ".")
}
