package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pagesim/datarecording"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the runs recorded in a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbName, _ := cmd.Flags().GetString("db")

		dbName = databaseName(dbName)
		if dbName == "" {
			return fmt.Errorf("no database given, use --db or PAGESIM_DB")
		}

		return listRuns(cmd.OutOrStdout(), dbName)
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().String("db", "",
		"database holding recorded runs, defaults to PAGESIM_DB")
}

func listRuns(w io.Writer, dbName string) error {
	filename := dbName
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	reader := datarecording.NewDataReader(filename)
	defer reader.Close()

	reader.MapTable(datarecording.RunTableName, datarecording.RunEntry{})

	results, totalCount, err := reader.Query(
		context.Background(),
		datarecording.RunTableName,
		datarecording.QueryParams{})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-22s%-8s%-8s%-6s%-8s%-10s%s\n",
		"Run ID", "Policy", "Frames", "Hits", "Faults", "Hit Ratio",
		"References")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, result := range results {
		run := result.(*datarecording.RunEntry)

		fmt.Fprintf(w, "%-22s%-8s%-8d%-6d%-8d%-10.4f%s\n",
			run.RunID, run.Policy, run.FrameCount,
			run.Hits, run.Faults, run.HitRatio, run.References)
	}

	fmt.Fprintf(w, "\n%d runs recorded.\n", totalCount)

	return nil
}
