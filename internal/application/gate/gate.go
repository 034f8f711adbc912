// Package gate shows a proposed command and runs it only after the user confirms.
package gate

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// LauncherKeyword is the Windows shell verb that only finds programs on PATH.
const LauncherKeyword = "start"

// StartAdvisory is printed before running a command that begins with LauncherKeyword.
const StartAdvisory = "Note: 'start' commands may not work for apps not in PATH. Use 'open <app>' instead."

// Gate shows a proposed command and runs it only after the user confirms.
type Gate struct {
	Console  ports.Console
	Executor ports.CommandExecutor
	// Security is optional. Findings are always shown; they refuse execution only when Enforce is set.
	Security ports.SecurityService
	Enforce  bool
	Logger   ports.Logger
}

// ConfirmAndRun implements ports.Gate. It reports whether the command was executed.
func (g *Gate) ConfirmAndRun(ctx context.Context, proposal domain.Proposal) (bool, error) {
	g.Console.Printf("%s: %s\n", proposal.Label, proposal.Command)

	risk := g.assess(proposal.Command)
	if risk.Flagged() {
		g.Console.Printf("Warning: %s risk (%s)\n", strings.ToUpper(string(risk.Level)), risk.Action)
		for _, reason := range risk.Reasons {
			g.Console.Printf(" - %s\n", reason)
		}
		if g.Enforce && risk.Action == domain.ActionBlock {
			g.Console.Printf("Blocked by guardrail: %s\n", strings.Join(risk.Reasons, "; "))
			g.warn("command blocked", map[string]interface{}{"command": proposal.Command, "level": string(risk.Level)})
			return false, nil
		}
	}

	reply, err := g.Console.ReadLine(proposal.Question)
	if err != nil {
		return false, err
	}
	if !domain.IsAffirmative(reply) {
		return false, nil
	}

	if IsLauncherCommand(proposal.Command) {
		g.Console.Println(StartAdvisory)
	}

	result, err := g.Executor.Execute(ctx, proposal.Command)
	if err != nil {
		return result.Ran, fmt.Errorf("execute command: %w", err)
	}
	if result.ExitCode != 0 {
		g.Console.Printf("Command exited with status %d\n", result.ExitCode)
	}
	g.debug("command finished", map[string]interface{}{
		"exit_code":   result.ExitCode,
		"duration_ms": result.DurationMS,
	})
	return true, nil
}

func (g *Gate) assess(command string) domain.RiskAssessment {
	if g.Security == nil {
		return domain.RiskAssessment{Level: domain.RiskSafe, Action: domain.ActionAllow}
	}
	risk, err := g.Security.Evaluate(command)
	if err != nil {
		g.warn("guardrail evaluation failed", map[string]interface{}{"error": err.Error()})
		return domain.RiskAssessment{Level: domain.RiskSafe, Action: domain.ActionAllow}
	}
	return risk
}

func (g *Gate) warn(msg string, fields map[string]interface{}) {
	if g.Logger != nil {
		g.Logger.Warn(msg, fields)
	}
}

func (g *Gate) debug(msg string, fields map[string]interface{}) {
	if g.Logger != nil {
		g.Logger.Debug(msg, fields)
	}
}

// IsLauncherCommand reports whether the first shell token is the launcher keyword.
func IsLauncherCommand(command string) bool {
	return strings.EqualFold(firstToken(command), LauncherKeyword)
}

func firstToken(command string) string {
	tokens, err := shlex.Split(command)
	if err != nil || len(tokens) == 0 {
		tokens = strings.Fields(command)
	}
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

var _ ports.Gate = (*Gate)(nil)
