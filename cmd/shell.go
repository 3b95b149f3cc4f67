package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pagesim/mem/replacement"
	"github.com/sarchlab/pagesim/report"
	"github.com/sarchlab/pagesim/simulation"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run simulations interactively from a console menu",
	Run: func(cmd *cobra.Command, args []string) {
		runShell(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// runShell loops over console input until the user selects 0. Malformed
// input re-prompts instead of terminating the loop.
func runShell(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "==== Page Replacement Simulator ====")
	fmt.Fprintln(out, "Algorithms: 1) FIFO  2) OPT  3) LRU")
	fmt.Fprintln(out, "Enter 0 as algorithm choice to exit.")
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, "Select algorithm (0 to exit): ")
		choice, ok := readInt(scanner)
		if !ok {
			return
		}

		if choice == 0 {
			fmt.Fprintln(out, "Exiting...")
			return
		}

		kind, err := kindFromChoice(choice)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		fmt.Fprint(out, "Enter frame count: ")
		frameCount, ok := readInt(scanner)
		if !ok {
			return
		}
		if frameCount <= 0 {
			fmt.Fprintln(out, "Invalid frame count.")
			continue
		}

		fmt.Fprintln(out, "Enter reference string (space separated integers):")
		if !scanner.Scan() {
			return
		}

		refs, err := parseReferences(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if len(refs) == 0 {
			fmt.Fprintln(out, "Reference string cannot be empty.")
			continue
		}

		fmt.Fprintf(out, "\nRunning %s with %d frames on %d references.\n\n",
			kind, frameCount, len(refs))

		trace, err := simulation.Simulate(kind, frameCount, refs)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		report.Write(out, trace)
		fmt.Fprintln(out)
	}
}

func kindFromChoice(choice int) (replacement.Kind, error) {
	switch choice {
	case 1:
		return replacement.FIFO, nil
	case 2:
		return replacement.Opt, nil
	case 3:
		return replacement.LRU, nil
	default:
		return replacement.FIFO,
			fmt.Errorf("unknown algorithm choice %d", choice)
	}
}

// readInt reads lines until one parses as an integer. It returns false
// when the input is exhausted.
func readInt(scanner *bufio.Scanner) (int, bool) {
	for scanner.Scan() {
		value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return value, true
		}
	}

	return 0, false
}
