/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command enumdemo prints labeled enumerations, either the built-in samples
// or the types of a YAML declaration file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomoncle/labelenum/demo"
	"github.com/tomoncle/labelenum/loader"
	"github.com/tomoncle/labelenum/types"
	"github.com/tomoncle/labelenum/utils"
)

const appName = "enumdemo"

var Version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	file      string
	logLevel  string
	logFormat string
	logCaller string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Print labeled enumerations",
		Long: `enumdemo prints every member of an enumeration with its value,
display label and rendering.

Without --file the built-in Color, Switch and Status samples are printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.ConfigureConsoleOutput(cmd.ErrOrStderr())
			utils.ConfigureLogLevel(opts.logLevel)
			utils.ConfigureCallerPathFormat(opts.logCaller)
			utils.ConfigureConsoleLogFormat(opts.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			enums, err := opts.enums()
			if err != nil {
				return err
			}
			return demo.PrintAll(cmd.OutOrStdout(), enums)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "YAML declaration file")
	flags.StringVar(&opts.logLevel, "log-level", utils.EnvDefaultString("LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", utils.EnvDefaultString("CONSOLE_LOG_FORMAT", "text"), "Log format (text, json)")
	flags.StringVar(&opts.logCaller, "log-caller", utils.EnvDefaultString("LOG_CALLER_FORMAT", "short"), "Caller location in logs (short, file)")

	cmd.AddCommand(showCmd(opts), versionCmd())
	return cmd
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE NAME|VALUE",
		Short: "Print one member, found by name or value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enums, err := opts.enums()
			if err != nil {
				return err
			}
			for _, e := range enums {
				if e.TypeName() == args[0] {
					return demo.Describe(cmd.OutOrStdout(), e, args[1])
				}
			}
			return fmt.Errorf("%w: %q", loader.ErrUnknownType, args[0])
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

func (o *options) enums() ([]types.EnumType, error) {
	if o.file == "" {
		return demo.Samples(), nil
	}
	c, err := loader.Load(o.file)
	if err != nil {
		return nil, fmt.Errorf("load declarations: %w", err)
	}
	return c.Types(), nil
}
