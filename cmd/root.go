package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pygen",
	Short: "pygen assembles trees of emittable nodes and renders them as indented source text",
	Long:  "pygen assembles trees of emittable nodes and renders them as indented source text",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
