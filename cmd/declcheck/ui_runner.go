package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"declcheck/internal/driver"
	"declcheck/internal/pipeline"
	"declcheck/internal/source"
	"declcheck/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []*driver.Result
	err     error
}

// runCheckDirWithUI runs CheckDir in the background while a progress view
// consumes its events. The view renders to stderr so stdout stays clean.
func runCheckDirWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		fileSet, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
