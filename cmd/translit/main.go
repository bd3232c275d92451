// Command translit converts Cyrillic text to ASCII.
//
// Usage:
//
//	translit [flags] [text...]        convert arguments, or stdin lines when none are given
//	translit files [-j N] FILE...     write FILE.ascii next to each input
//	translit serve                    run the HTTP API
//
// Flags shared by every command:
//
//	-config   YAML configuration file (also TRANSLIT_CONFIG)
//	-system   passport2013, bgn_pcgn or iso9
//	-iconv    fold through the external ASCII normalizer instead of the table
//
// Exit status is 0 on success, 1 on runtime errors and 2 on usage errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
