package cmd

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sclamons/bioscrape-distr/sbml"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert external model formats into the native declarative document",
}

var sbmlOutPath string

var convertSBMLCmd = &cobra.Command{
	Use:   "sbml <file.xml>",
	Short: "Convert a restricted SBML document to the native declarative form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, warnings, err := sbml.Import(args[0])
		if err != nil {
			return fmt.Errorf("importing %s: %w", args[0], err)
		}
		for _, w := range warnings {
			logrus.Warn(w)
		}
		data, err := xml.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling converted document: %w", err)
		}
		if sbmlOutPath == "" {
			fmt.Println(string(data))
			return nil
		}
		return os.WriteFile(sbmlOutPath, data, 0o644)
	},
}

func init() {
	convertSBMLCmd.Flags().StringVar(&sbmlOutPath, "out", "", "write the converted document here instead of stdout")
	convertCmd.AddCommand(convertSBMLCmd)
	rootCmd.AddCommand(convertCmd)
}
