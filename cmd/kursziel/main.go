package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/finwatch/kursziel/internal/cli"
)

func main() {
	// Stop cleanly on Ctrl-C or SIGTERM instead of leaving a
	// half-written workbook behind.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupted, stopping")
		os.Exit(0)
	}()

	cli.Execute()
}
