// cmd/algobench/main.go
package main

import (
	cmd "github.com/mwiater/algobench/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the algobench CLI application by delegating to the
// cobra root command defined in the algobench package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
