package main

import (
	"context"
	"os"
	"os/signal"

	"gup.dev/gup/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, version, commit, date)
	stop()
	os.Exit(code)
}
