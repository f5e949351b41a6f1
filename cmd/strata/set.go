package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/strata/pkg/codec"
)

var setCmd = &cobra.Command{
	Use:   "set [file] [path] [value]",
	Short: "Write one field of a document",
	Long: `Set writes a value at a dotted field path and rewrites the file.
The value is parsed as a YAML fragment, so plain scalars, quoted
strings and inline maps ('{a: 1}') all work. Intermediate objects are
created as needed; setting through a scalar replaces it with an object.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		file, rawPath, rawValue := args[0], args[1], args[2]

		path, err := codec.ParsePath(rawPath)
		if err != nil {
			fatal("Invalid field path", err)
		}

		var native any
		if err := yaml.Unmarshal([]byte(rawValue), &native); err != nil {
			fatal("Invalid value", err)
		}
		value, err := codec.FromNative(native)
		if err != nil {
			fatal("Invalid value", err)
		}

		ov, c, err := loadDocument(file)
		if err != nil {
			fatal("Failed to load document", err)
		}

		ov.Set(path, value)

		if err := saveDocument(file, c, ov); err != nil {
			fatal("Failed to write document", err)
		}
		fmt.Printf("Set %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
