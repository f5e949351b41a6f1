package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/codec"
)

var maskPattern string

var maskCmd = &cobra.Command{
	Use:   "mask [file]",
	Short: "List the field paths of a document",
	Long: `Mask prints the field mask of a document, one dotted path per line.
Leaf values and empty objects each contribute a path. With --pattern
the paths are filtered through a glob matched against the path
segments joined by '/' (e.g. 'user/**' or '**/id').`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]

		ov, _, err := loadDocument(file)
		if err != nil {
			fatal("Failed to load document", err)
		}

		mask := ov.FieldMask()
		if maskPattern != "" {
			mask, err = codec.Select(ov, maskPattern)
			if err != nil {
				fatal("Invalid pattern", err)
			}
		}

		for _, path := range mask.Paths() {
			fmt.Println(path)
		}
	},
}

func init() {
	maskCmd.Flags().StringVar(&maskPattern, "pattern", "", "Glob filter over '/'-joined paths")
	rootCmd.AddCommand(maskCmd)
}
