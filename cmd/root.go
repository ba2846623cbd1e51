package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gramophone/util/anchor"
)

var (
	tui     = anchor.New(anchor.Cyan)
	cmdRoot = &cobra.Command{
		Use:   "gramophone",
		Short: "Find free classical recordings across public audio catalogs",
	}
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
