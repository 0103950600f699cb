// cmd/riskstats/main.go
package main

import (
	cmd "github.com/mwiater/riskstats/internal/commands"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main injects build metadata and hands off to the cobra root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
