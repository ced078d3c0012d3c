package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/reoring/chartopts/internal/cli"
)

var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.Execute(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		cli.Report(os.Stderr, err)
		os.Exit(1)
	}
}
