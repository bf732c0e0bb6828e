package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// Environment of an extension, holding the global flag values.
const (
	EnvVerbose = "BIDS_VERBOSE"
	EnvPlain   = "BIDS_PLAIN"
)

// IsCommand reports whether name is a subcommand registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external bidsort-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bidsort-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvCSVPath+"="+*csvPath,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
		EnvPlain+"="+strconv.FormatBool(*plain),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
