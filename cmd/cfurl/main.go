package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/common-fate/cfurl/pkg/cfurl"
)

func main() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		// restore cursor in case spinner gets stuck
		// https://github.com/briandowns/spinner/issues/122
		if runtime.GOOS != "windows" {
			fmt.Fprint(os.Stderr, "\033[?25h")
		}
		os.Exit(130)
	}()

	app := cfurl.GetCliApp(cfurl.Opts{})
	os.Exit(cfurl.Run(app, os.Args))
}
