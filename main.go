// main is the entry point of the esgscore CLI.
package main

import (
	"github.com/huangsam/esgscore/cmd"
	"github.com/huangsam/esgscore/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("esgscore failed", err)
	}
}
