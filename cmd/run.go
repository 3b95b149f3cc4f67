package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/mem/replacement"
	"github.com/sarchlab/pagesim/report"
	"github.com/sarchlab/pagesim/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print the trace table",
	RunE:  runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("policy", "p", "fifo",
		"replacement algorithm, one of fifo, lru, opt")
	runCmd.Flags().IntP("frames", "f", 3,
		"number of frame slots")
	runCmd.Flags().StringP("refs", "r", "",
		"reference string, integers separated by spaces or commas")
	runCmd.Flags().String("refs-file", "",
		"file holding the reference string")
	runCmd.Flags().Bool("record", false,
		"record the run into an SQLite database")
	runCmd.Flags().String("db", "",
		"database name for --record, defaults to PAGESIM_DB or an "+
			"auto-generated name")
}

// databaseName resolves the database name at run time, after the .env
// file has been loaded, so that PAGESIM_DB from .env applies.
func databaseName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv("PAGESIM_DB")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	policyName, _ := cmd.Flags().GetString("policy")
	frameCount, _ := cmd.Flags().GetInt("frames")
	refsArg, _ := cmd.Flags().GetString("refs")
	refsFile, _ := cmd.Flags().GetString("refs-file")
	record, _ := cmd.Flags().GetBool("record")
	dbName, _ := cmd.Flags().GetString("db")

	kind, err := replacement.ParseKind(policyName)
	if err != nil {
		return err
	}

	refs, err := gatherReferences(refsArg, refsFile)
	if err != nil {
		return err
	}

	s, err := simulation.MakeBuilder().
		WithPolicy(kind).
		WithFrameCount(frameCount).
		WithReferences(refs).
		Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Running %s with %d frames on %d references.\n\n",
		kind, frameCount, len(refs))

	trace := s.Run()
	report.Write(cmd.OutOrStdout(), trace)

	if record {
		recorder := datarecording.NewTraceRecorder(databaseName(dbName))
		recorder.RecordRun(s, trace)
		recorder.Flush()
		atexit.Register(recorder.Close)
	}

	return nil
}

func gatherReferences(refsArg, refsFile string) ([]int, error) {
	if refsFile != "" {
		content, err := os.ReadFile(refsFile)
		if err != nil {
			return nil, err
		}

		return parseReferences(string(content))
	}

	return parseReferences(refsArg)
}

// parseReferences converts a reference string in textual form to page
// numbers. Spaces, commas, and newlines all work as separators.
func parseReferences(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})

	refs := make([]int, 0, len(fields))
	for _, field := range fields {
		page, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", field)
		}

		refs = append(refs, page)
	}

	return refs, nil
}
