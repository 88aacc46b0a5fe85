/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"dirpx.dev/typedef"
	"dirpx.dev/typedef/apis"
	"dirpx.dev/typedef/config"
)

var headerColor = color.New(color.FgCyan, color.Bold)

// entry is one exported row. Identities are deliberately absent: they are
// only meaningful inside the process that assigned them.
type entry struct {
	Name string `toml:"name" msgpack:"name"`
	Kind string `toml:"kind" msgpack:"kind"`
}

type namesOptions struct {
	configPath string
	style      string
	base       int
	format     string
}

func newNamesCmd() *cobra.Command {
	var opts namesOptions
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print display names and identities for a catalog of Go types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			typedef.SetConfig(cfg)

			toks := make([]typedef.Token, 0, len(catalog))
			for _, of := range catalog {
				toks = append(toks, of())
			}
			return render(cmd.OutOrStdout(), strings.ToLower(opts.format), toks)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVar(&opts.style, "style", "short", "name style (short|qualified)")
	cmd.Flags().IntVar(&opts.base, "base", config.DefaultFallbackBase, "base for identity fallback names (10|16)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text|toml|msgpack)")
	return cmd
}

// config loads --config (or the defaults) and applies explicitly set flags on top.
func (o namesOptions) config(cmd *cobra.Command) (apis.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return apis.Config{}, err
		}
		cfg = loaded
	}

	var opts []config.Option
	if cmd.Flags().Changed("style") {
		style, err := apis.ParseNameStyle(o.style)
		if err != nil {
			return apis.Config{}, err
		}
		opts = append(opts, config.WithStyle(style))
	}
	if cmd.Flags().Changed("base") {
		if o.base != 10 && o.base != 16 {
			return apis.Config{}, fmt.Errorf("unsupported base %d (must be 10 or 16)", o.base)
		}
		opts = append(opts, config.WithFallbackBase(o.base))
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return config.Sanitize(cfg), nil
}

func render(w io.Writer, format string, toks []typedef.Token) error {
	switch format {
	case "text":
		return renderText(w, toks)
	case "toml":
		return toml.NewEncoder(w).Encode(struct {
			Types []entry `toml:"types"`
		}{Types: entries(toks)})
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(entries(toks))
	default:
		return fmt.Errorf("unsupported format %q (must be text, toml or msgpack)", format)
	}
}

func entries(toks []typedef.Token) []entry {
	out := make([]entry, 0, len(toks))
	for _, tok := range toks {
		out = append(out, entry{Name: tok.Name(), Kind: tok.Type().Kind().String()})
	}
	return out
}

func renderText(w io.Writer, toks []typedef.Token) error {
	width := runewidth.StringWidth("NAME")
	for _, tok := range toks {
		width = max(width, runewidth.StringWidth(tok.Name()))
	}

	if _, err := fmt.Fprintf(w, "%s  %s\n", headerColor.Sprint(runewidth.FillRight("NAME", width)), headerColor.Sprint("ID")); err != nil {
		return err
	}
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(tok.Name(), width), tok.ID()); err != nil {
			return err
		}
	}
	return nil
}
