package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lakshaymaurya-felt/fastclean/cmd"
)

// Set via -ldflags at build time.
var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := cmd.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cmd.Execute(context.Background(), info); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
