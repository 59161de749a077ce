//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command golisp implements a driver for the Scheme-like interpreter in
// package lisp: a run mode that evaluates a file/flag/stdin program,
// and a REPL mode for interactive use.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nfiedler/golisp/internal/applog"
	"github.com/nfiedler/golisp/internal/config"
	"github.com/nfiedler/golisp/lisp"
)

var (
	flagEval    string
	flagNoColor bool
	flagConfig  string
)

func main() {
	defer applog.Exit(0)
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		applog.Exit(1)
	}
}

// newRootCmd builds the golisp Cobra command tree: a root command that
// runs a program (the default action, or explicit `run`), and a `repl`
// subcommand for interactive use.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "golisp [file]",
		Short: "A small Lisp/Scheme-like interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && flagEval == "" && stdinIsTerminal() {
				return runRepl(cmd)
			}
			return runProgram(cmd, args)
		},
	}
	root.PersistentFlags().StringVarP(&flagEval, "eval", "e", "", "evaluate the given program text instead of a file")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized REPL output")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file (default ~/.golisprc)")

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Evaluate a program from a file, --eval, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, args)
		},
	}
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
	root.AddCommand(runCmd, replCmd)
	return root
}

// stdinIsTerminal reports whether stdin looks like an interactive
// terminal rather than a pipe or redirected file, used to decide whether
// a bare "golisp" invocation should drop into the REPL.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// loadConfig resolves and loads the TOML configuration, applying
// --no-color as an override.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	} else {
		path = config.ExpandHome(path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flagNoColor {
		cfg.Color = false
	}
	return cfg, nil
}

// sourceForRun determines the program text to evaluate: --eval, a file
// argument, or stdin, in that order.
func sourceForRun(args []string) (string, error) {
	if flagEval != "" {
		return flagEval, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// runProgram implements the `run` behavior: one or more top-level forms
// are parsed and evaluated in turn against a single persistent
// Interpreter, and the serialized value of the last one is printed. This
// is the original interpreter's per-form REPL loop pushed down to
// batch-file mode (see SPEC_FULL.md §C.1).
func runProgram(cmd *cobra.Command, args []string) error {
	if err := applog.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging unavailable:", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	source, err := sourceForRun(args)
	if err != nil {
		return err
	}
	interp := lisp.NewInterpreter()
	for _, path := range cfg.Preload {
		if err := runFile(interp, path); err != nil {
			return err
		}
	}
	var last string
	for _, form := range splitForms(source) {
		last, err = interp.Run(form)
		if err != nil {
			return err
		}
	}
	cmd.Println(last)
	return nil
}

// runFile evaluates every top-level form in the file at path against
// interp, discarding the results; used to apply Config.Preload.
func runFile(interp *lisp.Interpreter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("preloading %s: %w", path, err)
	}
	for _, form := range splitForms(string(data)) {
		if _, err := interp.Run(form); err != nil {
			return fmt.Errorf("preloading %s: %w", path, err)
		}
	}
	return nil
}

// splitForms breaks source into the text of each top-level datum, so
// that a file containing several definitions can be run one form at a
// time against one Interpreter, matching spec.md's one-call-one-datum
// Run contract. It relies on lisp.NextFormLength to find where each
// form ends.
func splitForms(source string) []string {
	var forms []string
	rest := source
	for {
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if trimmed == "" {
			break
		}
		n := lisp.NextFormLength(trimmed)
		if n <= 0 {
			forms = append(forms, trimmed)
			break
		}
		forms = append(forms, trimmed[:n])
		rest = trimmed[n:]
	}
	return forms
}

// runRepl implements the interactive loop: chzyer/readline supplies line
// editing and persistent history, fatih/color colorizes results (green)
// and errors (red) when Config.Color is set, and every input line is
// evaluated against one long-lived Interpreter so definitions
// accumulate across the session.
func runRepl(cmd *cobra.Command) error {
	if err := applog.Setup(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: logging unavailable:", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	interp := lisp.NewInterpreter()
	for _, path := range cfg.Preload {
		if err := runFile(interp, path); err != nil {
			return err
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: config.ExpandHome(cfg.HistoryFile),
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result, err := interp.Run(line)
		if err != nil {
			if cfg.Color {
				fmt.Fprintln(cmd.OutOrStdout(), red(err.Error()))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
			}
			continue
		}
		if cfg.Color {
			fmt.Fprintln(cmd.OutOrStdout(), green(result))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
	}
	return nil
}
