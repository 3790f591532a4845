// Package main is the entry point for the tabsplit CLI.
package main

import "github.com/ajxudir/tabsplit/cmd"

func main() {
	cmd.Execute()
}
