// Package launch resolves an application name to an installed executable and starts it,
// asking the suggestion backend for a launch command when nothing is installed locally.
package launch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/pkg/filesystem"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

const (
	usageMessage     = "Usage: open <appname>"
	fallbackLabel    = "Suggested by AI"
	fallbackQuestion = "Run this command instead? [Y/n]: "
)

// Resolver implements ports.AppLauncher.
type Resolver struct {
	Roots     []string
	Exists    func(path string) bool
	Opener    ports.Opener
	Suggester ports.Suggester
	Gate      ports.Gate
	Console   ports.Console
	OS        domain.OSName
	Logger    ports.Logger
}

// ResolveAndLaunch opens the first installed candidate for appName, or routes a
// backend-suggested launch command through the gate.
func (r *Resolver) ResolveAndLaunch(ctx context.Context, appName string) error {
	app := strings.TrimSpace(appName)
	if app == "" {
		r.Console.Println(usageMessage)
		return nil
	}

	exists := r.Exists
	if exists == nil {
		exists = filesystem.Exists
	}

	for _, candidate := range Candidates(r.roots(), app) {
		if !exists(candidate) {
			continue
		}
		r.Console.Printf("Opening %s...\n", app)
		if err := r.Opener.Open(ctx, candidate); err != nil {
			r.Console.Printf("Failed to open app: %v\n", err)
			r.warn("launch failed", &domain.LaunchError{Path: candidate, Err: err})
			return nil
		}
		r.debug("launched app", map[string]interface{}{"app": app, "path": candidate})
		return nil
	}

	r.Console.Printf("App '%s' not found locally. Asking AI...\n", app)
	command, err := r.Suggester.Suggest(ctx, "open "+app, r.OS)
	if err != nil {
		return err
	}
	_, err = r.Gate.ConfirmAndRun(ctx, domain.Proposal{
		Command:  command,
		Label:    fallbackLabel,
		Question: fallbackQuestion,
	})
	return err
}

func (r *Resolver) roots() []string {
	if len(r.Roots) > 0 {
		return r.Roots
	}
	return DefaultRoots()
}

func (r *Resolver) warn(msg string, err error) {
	if r.Logger != nil {
		r.Logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

func (r *Resolver) debug(msg string, fields map[string]interface{}) {
	if r.Logger != nil {
		r.Logger.Debug(msg, fields)
	}
}

// Candidates lists <root>/<app>/<app>.exe for each root, preserving root order.
func Candidates(roots []string, app string) []string {
	candidates := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(filesystem.ExpandHome(root), app, app+".exe"))
	}
	return candidates
}

// DefaultRoots returns the roaming app-data, Program Files and Program Files (x86) directories.
func DefaultRoots() []string {
	return []string{
		envOr("APPDATA", filepath.Join(filesystem.UserHomeDir(), "AppData", "Roaming")),
		envOr("ProgramFiles", `C:\Program Files`),
		envOr("ProgramFiles(x86)", `C:\Program Files (x86)`),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

var _ ports.AppLauncher = (*Resolver)(nil)
