package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	exitCodeSuccess = iota
	exitCodeError
)

func main() {
	cmd, err := newRootCommand().ExecuteC()
	if err == nil {
		os.Exit(exitCodeSuccess)
	}

	fmt.Fprintln(os.Stderr, err)
	if cmd != nil && usageErr(err) {
		fmt.Fprintln(os.Stderr, cmd.UsageString())
	}
	os.Exit(exitCodeError)
}

func usageErr(err error) bool {
	keywords := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
	}

	cause := err.Error()
	for _, k := range keywords {
		if strings.Contains(cause, k) {
			return true
		}
	}
	return false
}
