// Command schnorr generates Schnorr groups, signs files and verifies
// signatures. Groups and signatures are stored one decimal integer per line.
//
// Usage:
//
//	schnorr [--config FILE] group  --out group.txt [--bits N]
//	schnorr [--config FILE] sign   --group group.txt --in message.txt --out signature.txt
//	schnorr [--config FILE] verify --group group.txt --in message.txt --sig signature.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitValid
	case errors.Is(err, errInvalidSignature):
		return exitInvalid
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}
