package main

import (
	"os"

	"github.com/alantheprice/scribe/cmd"
	"github.com/alantheprice/scribe/pkg/utils"
)

func main() {
	defer utils.CloseLogger()

	if err := cmd.Execute(); err != nil {
		utils.LogError(err)
		os.Exit(1)
	}
}
