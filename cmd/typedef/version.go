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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dirpx.dev/typedef"
)

var versionColor = color.New(color.FgGreen, color.Bold)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the typedef build version and naming mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := "names"
			if !typedef.NameResolution {
				mode = "identities only"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "typedef %s (%s)\n", versionColor.Sprint(version), mode)
			return err
		},
	}
}
