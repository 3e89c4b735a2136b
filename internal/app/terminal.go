package app

import (
	"os"

	"golang.org/x/term"
)

// Mode names how Run presents the tree.
type Mode string

const (
	ModeInteractive Mode = "interactive"
	ModePrint       Mode = "print"
)

// Descriptor is the terminal state of one standard file descriptor.
type Descriptor struct {
	TTY    bool   `json:"tty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Terminal describes stdin, stdout and stderr at startup. When paths are
// piped in only stdout and stderr can be terminals.
type Terminal struct {
	Stdin  Descriptor `json:"stdin"`
	Stdout Descriptor `json:"stdout"`
	Stderr Descriptor `json:"stderr"`
}

// ProbeTerminal inspects the standard descriptors.
func ProbeTerminal() Terminal {
	return Terminal{
		Stdin:  probe(os.Stdin),
		Stdout: probe(os.Stdout),
		Stderr: probe(os.Stderr),
	}
}

func probe(f *os.File) Descriptor {
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return Descriptor{}
	}
	d := Descriptor{TTY: true}
	if w, h, err := term.GetSize(fd); err == nil {
		d.Width, d.Height = w, h
	} else {
		d.Error = err.Error()
	}
	return d
}

// ModeFor prints when asked to or when stdout is not a terminal.
func ModeFor(cfg Config, t Terminal) Mode {
	if cfg.Print || !t.Stdout.TTY {
		return ModePrint
	}
	return ModeInteractive
}
