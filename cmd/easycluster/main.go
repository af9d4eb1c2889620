// Package main is the entry point for the easycluster CLI.
//
// easycluster provisions the Azure infrastructure of a Batch AI training
// cluster: resource group, storage account, Azure Files share, workspace
// and the cluster itself. Every step only creates what is missing, so a
// command can be re-run safely after a failure.
//
// Commands: init, cluster create, cluster monitor, storage fileshare create,
// storage fileshare directory create.
//
// For detailed usage information, run:
//
//	easycluster --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/easycluster/cmd/easycluster/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
