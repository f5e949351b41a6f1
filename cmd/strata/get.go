package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/strata/pkg/codec"
)

var getCmd = &cobra.Command{
	Use:   "get [file] [path]",
	Short: "Read one field of a document",
	Long:  `Get prints the value at a dotted field path, rendered as YAML. A path that does not resolve exits with status 1.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		file, rawPath := args[0], args[1]

		path, err := codec.ParsePath(rawPath)
		if err != nil {
			fatal("Invalid field path", err)
		}

		ov, _, err := loadDocument(file)
		if err != nil {
			fatal("Failed to load document", err)
		}

		value, ok := ov.Get(path)
		if !ok {
			fmt.Fprintf(os.Stderr, "field %s not found\n", path)
			os.Exit(1)
		}

		out, err := yaml.Marshal(codec.ToNative(value))
		if err != nil {
			fatal("Failed to render value", err)
		}
		fmt.Print(string(out))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
