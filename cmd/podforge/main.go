package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	runcmder "github.com/podforge/podforge/cmd/podforge/run"
	servecmder "github.com/podforge/podforge/cmd/podforge/serve"
)

func main() {
	root := &cobra.Command{
		Use:   "podforge",
		Short: "Turn articles, files, and text into two-speaker podcasts",
	}

	root.AddCommand(servecmder.NewServeCmd())
	root.AddCommand(runcmder.NewRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
