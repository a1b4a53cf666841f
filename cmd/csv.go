package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Append the records of a CSV file to the record store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		db, _, srvs, err := openServices(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := srvs.Records.ImportCSV(cmd.Context(), f)
		if err != nil {
			return err
		}

		logger.Log.Info("imported records", zap.String("file", args[0]), zap.Int("count", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records\n", n)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Write all records as CSV to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, srvs, err := openServices(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		var out io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return srvs.Records.ExportCSV(cmd.Context(), out)
	},
}
