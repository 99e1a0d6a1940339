package main

import (
	"os"

	"github.com/adamspd/LogicQuiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
