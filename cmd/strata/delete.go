package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/codec"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [file] [path]",
	Short: "Delete one field of a document",
	Long: `Delete removes the field at a dotted path and rewrites the file.
Deleting a field that does not exist is a no-op. Parent objects are
kept even when the deletion leaves them empty.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		file, rawPath := args[0], args[1]

		path, err := codec.ParsePath(rawPath)
		if err != nil {
			fatal("Invalid field path", err)
		}

		ov, c, err := loadDocument(file)
		if err != nil {
			fatal("Failed to load document", err)
		}

		ov.Delete(path)

		if err := saveDocument(file, c, ov); err != nil {
			fatal("Failed to write document", err)
		}
		fmt.Printf("Deleted %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
