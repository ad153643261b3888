package main

import (
	bentocmd "github.com/initializ/bento/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	bentocmd.SetVersionInfo(version, commit)
	bentocmd.Execute()
}
