package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/errors"
)

const (
	promptDisks = "Please enter the amount of disks:"
	promptRetry = "Invalid disk amount. Please enter a valid number:"
)

// diskCountFromArgs parses the first argument as a disk count.
// ok is false when there are no arguments.
func diskCountFromArgs(args []string) (n int, ok bool, err error) {
	if len(args) == 0 {
		return 0, false, nil
	}
	n, err = errors.ParseDiskCount(args[0])
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// diskCountFromLine reads one line from r and parses it as a disk count.
// ok is false for a blank line. io.EOF is returned only when no input is left.
func diskCountFromLine(r *bufio.Reader) (n int, ok bool, err error) {
	line, err := r.ReadString('\n')
	if err != nil && !(stderrors.Is(err, io.EOF) && line != "") {
		return 0, false, err
	}
	if strings.TrimSpace(line) == "" {
		return 0, false, nil
	}
	n, err = errors.ParseDiskCount(line)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// resolveDiskCount takes the disk count from args, else from in.
//
// An invalid argument is reported on errOut and then treated like a missing
// one. Input lines are read until one holds a count in [0, maxDisks]; each
// rejected line is answered with a retry prompt on out. Running out of input
// is an error.
func resolveDiskCount(args []string, in io.Reader, out, errOut io.Writer, maxDisks int) (int, error) {
	n, ok, err := diskCountFromArgs(args)
	if err == nil && ok {
		if err = errors.ValidateDiskCount(n, maxDisks); err == nil {
			return n, nil
		}
	}
	if err != nil {
		printError(errOut, "%s", errors.UserMessage(err))
	}

	fmt.Fprintln(out, promptDisks)
	r := bufio.NewReader(in)
	for {
		n, ok, err := diskCountFromLine(r)
		if stderrors.Is(err, io.EOF) {
			return 0, errors.New(errors.ErrCodeInvalidInput, "no disk amount given")
		}
		if err == nil && ok {
			if err = errors.ValidateDiskCount(n, maxDisks); err == nil {
				return n, nil
			}
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) && !errors.Is(err, errors.ErrCodeInvalidDiskCount) {
			return 0, err
		}
		fmt.Fprintln(out, promptRetry)
	}
}

// diskCount resolves the disk count for cmd. Without an argument the config
// default is used when set; otherwise the user is prompted.
func (c *CLI) diskCount(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 0 && c.Config.Disks > 0 {
		return c.Config.Disks, nil
	}
	return resolveDiskCount(args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), c.Config.MaxDisks)
}
