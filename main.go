// Package main is the entry point for the nrql-chart CLI.
package main

import (
	"nrql-chart-fetcher/cmd"
)

func main() {
	cmd.Execute()
}
