package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the process exit status.
func report(err error) int {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		if cfgErr.Err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s not found. Please ensure .env file exists with the key.\n", cfgErr.Key)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return domain.ExitConfigError
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

func isVerbose() bool {
	value := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
