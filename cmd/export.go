/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/backup"
)

var exportDir string
var exportStdout bool
var exportS3 bool

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all journal data as one JSON document",
	Long: `Export all journal data as dayspark-backup-YYYY-MM-DD.json.

By default the file is written to export.dir from config.yaml. Use --stdout to
print it, or --s3 to upload it to export.bucket. The upload is one-way: nothing
is ever downloaded or merged back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "export", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		exp, err := s.journal.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportStdout {
			return backup.Encode(os.Stdout, exp)
		}
		if exportS3 {
			location, err := backup.Upload(cmd.Context(), s.config.Export, exp)
			if err != nil {
				return err
			}
			fmt.Println("✅ Exported to", location)
			return nil
		}

		dir := s.config.Export.Dir
		if cmd.Flags().Changed("dir") {
			dir = exportDir
		}
		path, err := backup.WriteFile(dir, exp)
		if err != nil {
			return err
		}
		fmt.Println("✅ Exported to", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Directory to write the export file to")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the export document to stdout")
	exportCmd.Flags().BoolVar(&exportS3, "s3", false, "Upload the export to the configured S3 bucket")
	exportCmd.MarkFlagsMutuallyExclusive("dir", "stdout", "s3")
}
