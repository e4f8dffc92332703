package main

import (
	"github.com/spf13/cobra"

	"github.com/mnightingale/qp/cmd/qp/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
