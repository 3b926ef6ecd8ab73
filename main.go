// Package main is the entry point for the rdsq CLI.
// It queries Amazon RDS databases through the Data API.
package main

import (
	"rdsq/cli/cmd"
)

func main() {
	cmd.Execute()
}
