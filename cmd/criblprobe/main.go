package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nloira/criblprobe/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)

	// User interrupt ends the run cleanly.
	if ctx.Err() != nil {
		fmt.Println("Goodbye!")
		os.Exit(0)
	}

	if err != nil {
		os.Exit(1)
	}
}
