package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/codec"
	"github.com/aretw0/strata/pkg/model"
)

var patchFields string

var patchCmd = &cobra.Command{
	Use:   "patch [dst] [src]",
	Short: "Apply selected fields of one document to another",
	Long: `Patch copies the fields named by --fields from the source document
into the destination and rewrites the destination file. A named field
that is absent from the source is deleted from the destination, so a
patch can clear fields as well as set them.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dstFile, srcFile := args[0], args[1]

		if patchFields == "" {
			fatal("Missing flag", fmt.Errorf("--fields is required"))
		}

		var paths []model.FieldPath
		for _, raw := range strings.Split(patchFields, ",") {
			path, err := codec.ParsePath(strings.TrimSpace(raw))
			if err != nil {
				fatal("Invalid field path", err)
			}
			paths = append(paths, path)
		}
		mask := model.NewFieldMask(paths...)

		dst, c, err := loadDocument(dstFile)
		if err != nil {
			fatal("Failed to load destination", err)
		}
		src, _, err := loadDocument(srcFile)
		if err != nil {
			fatal("Failed to load source", err)
		}

		dst.SetAll(mask, src)

		if err := saveDocument(dstFile, c, dst); err != nil {
			fatal("Failed to write destination", err)
		}
		fmt.Printf("Patched %d field(s) into %s\n", mask.Len(), dstFile)
	},
}

func init() {
	patchCmd.Flags().StringVar(&patchFields, "fields", "", "Comma-separated field paths to copy")
	rootCmd.AddCommand(patchCmd)
}
