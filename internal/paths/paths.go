// Package paths manages the standard directory layout used by orchestraigo
// for data, models, logs and outputs below a single root.
//
// Nothing is created at import time; callers decide when to Ensure the layout.
package paths

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Standard directory names, in the order they are listed.
const (
	Data        = "data"
	Models      = "models"
	Logs        = "logs"
	Outputs     = "outputs"
	Configs     = "configs"
	Experiments = "experiments"
	Tmp         = "tmp"
)

// LogFileName is the name of the log file inside the logs directory.
const LogFileName = "orchestrai.log"

var standard = []string{Data, Models, Logs, Outputs, Configs, Experiments, Tmp}

// Entry is one named directory.
type Entry struct {
	Name string
	Path string
}

// Paths resolves the standard directories below Root on an afero filesystem.
type Paths struct {
	fs   afero.Fs
	root string
}

// New returns the layout rooted at root. A nil fs means the OS filesystem.
func New(fs afero.Fs, root string) (*Paths, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if root == "" {
		return nil, fmt.Errorf("paths root must not be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths root %q: %w", root, err)
	}
	return &Paths{fs: fs, root: abs}, nil
}

// Root returns the absolute root directory.
func (p *Paths) Root() string { return p.root }

// Dir returns the absolute path of a standard directory by name.
func (p *Paths) Dir(name string) string { return filepath.Join(p.root, name) }

// LogFile returns the path of the log file.
func (p *Paths) LogFile() string { return filepath.Join(p.Dir(Logs), LogFileName) }

// All lists root followed by every standard directory.
func (p *Paths) All() []Entry {
	out := make([]Entry, 0, len(standard)+1)
	out = append(out, Entry{Name: "root", Path: p.root})
	for _, name := range standard {
		out = append(out, Entry{Name: name, Path: p.Dir(name)})
	}
	return out
}

// Ensure creates every standard directory that does not exist yet.
func (p *Paths) Ensure() error {
	for _, e := range p.All() {
		if err := p.fs.MkdirAll(e.Path, 0o755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", e.Name, err)
		}
	}
	return nil
}

// OpenLog ensures the layout and opens the log file for appending.
func (p *Paths) OpenLog() (afero.File, error) {
	if err := p.Ensure(); err != nil {
		return nil, err
	}
	f, err := p.fs.OpenFile(p.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Print writes a table of all directories to w.
func (p *Paths) Print(w io.Writer) {
	fmt.Fprintln(w, "\n=== Orchestraigo Paths ===")
	for _, e := range p.All() {
		fmt.Fprintf(w, "%-12s: %s\n", e.Name, e.Path)
	}
	fmt.Fprintln(w, "==========================")
}
