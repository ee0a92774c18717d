package main

// The entry point of the reef editor. It handles command-line flags and the
// config file, opens the terminal through the selected backend and runs the
// editor loop.

import (
	"fmt"
	"os"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	os.Exit(run())
}

// run does all the work of main and returns the exit code, so deferred
// cleanup happens before the process exits.
func run() int {
	// Initialize configuration from the config file and flags.
	args, err := InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reef: %v\n", err)
		return 2
	}

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return 0
	}

	// Print supported file types if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo(os.Stdout)
		return 0
	}

	// Print the highlight palette if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return 0
	}

	logger, closeLog, err := newLogger(Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reef: %v\n", err)
		return 1
	}
	defer closeLog()

	screen, err := openScreen(Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reef: %v\n", err)
		return 1
	}

	editor, err := NewEditor(Config, screen)
	if err != nil {
		screen.Close()
		fmt.Fprintf(os.Stderr, "reef: %v\n", err)
		return 1
	}
	editor.logger = logger

	// Cursor history is a convenience; the editor works without it.
	if Config.UseHistory && Config.HistoryPath != "" {
		history, err := OpenHistory(Config.HistoryPath)
		if err != nil {
			editor.addLog("History", err.Error())
		} else {
			editor.history = history
			defer history.Close()
		}
	}

	if len(args) > 0 {
		editor.Open(args[0])
	}
	editor.setStatusMessage("HELP: Ctrl + (S)ave | (Q)uit | (F)ind | (O)pen | (T)itle | (U) shell | (E) read shell")

	runErr := editor.Run()
	if err := screen.Close(); err != nil {
		editor.addLog("Screen", err.Error())
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "reef: %v\n", runErr)
		return 1
	}
	return 0
}

// openScreen starts the frontend selected by the configuration.
func openScreen(cfg Configuration) (Frontend, error) {
	if cfg.Backend == BackendTermbox {
		s, err := NewTermboxScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	t, err := OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return NewANSIScreen(t), nil
}
