package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/pkg/filesystem"
)

// EnvLoader loads backend credentials from the first .env file found.
type EnvLoader struct {
	candidates []string
}

// NewEnvLoader searches, in order: the executable's directory, %ProgramFiles%\SmartCMD and
// the current working directory.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{candidates: DefaultEnvCandidates()}
}

// NewEnvLoaderWithCandidates uses an explicit search order.
func NewEnvLoaderWithCandidates(candidates ...string) *EnvLoader {
	return &EnvLoader{candidates: candidates}
}

// DefaultEnvCandidates returns the .env search order for this host.
func DefaultEnvCandidates() []string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), domain.EnvFileName))
	}
	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	candidates = append(candidates, filepath.Join(programFiles, domain.ProgramFilesAppName, domain.EnvFileName))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, domain.EnvFileName))
	}
	return candidates
}

// Load reads the first existing candidate into the process environment without
// overriding variables that are already set. It returns the loaded path, or ""
// when no candidate exists.
func (l *EnvLoader) Load() (string, error) {
	for _, candidate := range l.candidates {
		if !filesystem.Exists(candidate) {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

// Candidates returns the search order.
func (l *EnvLoader) Candidates() []string {
	return l.candidates
}
