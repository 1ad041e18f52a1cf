// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command loader fills the ekphrasis database from the offline dataset files.
//
// Every command is a full reload of what it touches:
//
//	loader paintings                 reload painting (clears pairing too)
//	loader poems                     reload poem (clears pairing too)
//	loader pairings clip [--truncate]
//	loader all                       paintings, poems, then every pairing source
//	loader count <table>
//	loader clear [table]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
