package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/pathtree/internal/data/dispatcher"
	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/tree"
	"github.com/atomicstack/pathtree/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Input         string
	Separator     string
	Width         int
	Height        int
	ShowFooter    bool
	Print         bool
	Follow        bool
	CollapseDepth int
}

// Run opens the input and either prints the tree or starts the Bubble Tea
// program. Print mode is also used when stdout is not a terminal.
func Run(cfg Config) error {
	interactive := ModeFor(cfg, ProbeTerminal()) == ModeInteractive
	if !interactive && cfg.Follow {
		return errors.New("follow mode needs an interactive terminal")
	}
	stream, err := source.Open(cfg.Input, source.Options{Follow: cfg.Follow})
	if err != nil {
		return err
	}
	defer stream.Stop()
	if !interactive {
		return Print(cfg, stream, os.Stdout)
	}
	model := ui.NewModel(ui.Options{
		Separator:     cfg.Separator,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		CollapseDepth: cfg.CollapseDepth,
		Stream:        stream,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if stream.Name() == source.StdinName {
		// stdin carries the paths, so keys come from the controlling terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Print drains stream into a tree and writes every visible line to w,
// collapsing nodes at cfg.CollapseDepth first. Lines read before a source
// error are still written.
func Print(cfg Config, stream *source.Stream, w io.Writer) error {
	root := tree.New()
	d := dispatcher.New(root, cfg.Separator)
	var readErr error
	for evt := range stream.Events() {
		if res := d.Handle(evt); res.Err != nil && readErr == nil {
			readErr = res.Err
		}
	}
	collapsed := tree.CollapseAtDepth(root, cfg.CollapseDepth)
	out := bufio.NewWriter(w)
	lines := tree.NewLines(root, collapsed)
	count := 0
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		out.WriteString(line.String())
		out.WriteByte('\n')
		count++
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	events.App.Print(stream.Name(), d.Lines(), count)
	return readErr
}
