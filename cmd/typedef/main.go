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

// Command typedef prints the identities and display names this build of the
// typedef package assigns to a catalog of Go types.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "typedef",
		Short:         "Inspect type identity tokens",
		Long:          "typedef shows how this build identifies and names Go types.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, _ := cmd.Flags().GetString("color")
			return setupColor(mode, cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newNamesCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setupColor applies the --color flag. In auto mode color is enabled only
// when out is a terminal.
func setupColor(mode string, out io.Writer) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		f, ok := out.(*os.File)
		color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
	return nil
}
