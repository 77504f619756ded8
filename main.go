package main

import (
	"os"

	"github.com/partyapatil/Ai-blog-frontend/cmd"
)

// Set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	os.Exit(cmd.Execute())
}
