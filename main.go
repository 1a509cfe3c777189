package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kogu/golox/config"
	"github.com/kogu/golox/driver"
	"github.com/kogu/golox/eval"
	"github.com/kogu/golox/printer"
	"github.com/kogu/golox/report"
	"github.com/peterh/liner"
)

const (
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
)

func main() {
	const (
		inputUsage = "input file path"
	)
	var inputPath, printMode, configPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&printMode, "print", "", "print expressions as infix, rpn or lispy instead of evaluating them")
	flag.StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/golox/config.yaml)")

	flag.Parse()

	if flag.NArg() > 1 || (flag.NArg() == 1 && inputPath != "") {
		fmt.Fprintln(os.Stderr, "Usage: golox [-print mode] [script]")
		os.Exit(exitUsage)
	}
	if flag.NArg() == 1 {
		inputPath = flag.Arg(0)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	if printMode != "" {
		cfg.Print = printMode
	}

	runner := driver.NewRunner(os.Stdout, report.NewConsole(os.Stderr))
	if cfg.Print != "" {
		mode, err := printer.ParseMode(cfg.Print)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
		runner.SetMode(mode)
	}

	if inputPath == "" {
		if err := RunPrompt(runner, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := RunFile(runner, inputPath); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var runtimeErr *eval.RuntimeError
	switch {
	case errors.Is(err, driver.ErrStatic):
		return exitData
	case errors.As(err, &runtimeErr):
		fmt.Fprintln(os.Stderr, runtimeErr)
		return exitRuntime
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}

func RunPrompt(r *driver.Runner, cfg config.Config) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(cfg.History), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(cfg.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(cfg.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		_, err = r.RunSource(input)
		if err != nil && !errors.Is(err, driver.ErrStatic) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		r.Reset()
	}
}

func RunFile(r *driver.Runner, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, err = r.RunSource(string(bytes))
	return err
}
