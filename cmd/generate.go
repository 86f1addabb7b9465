package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emitkit/pygen/codegen"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	defaultFunctionName = "yoink"
	defaultOutputPath   = ""
)

var (
	functionName string
	outputPath   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "render the showcase module",
	Long:  "assemble the built-in showcase tree and render it as Python source text",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		Generate()
	},
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".py" {
		return errors.New("output file must have a .py extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return errors.Wrap(err, "output file directory")
	}

	return nil
}

func Generate() {
	text := codegen.Render(showcaseModule(functionName))

	if outputPath == "" {
		fmt.Println(text)
		return
	}

	if err := validateOutputFile(outputPath); err != nil {
		cobra.CheckErr(err)
	}

	if err := os.WriteFile(outputPath, []byte(text+"\n"), 0644); err != nil {
		cobra.CheckErr(errors.Wrapf(err, "writing %s", outputPath))
	}
}

// showcaseModule builds an in-memory tree exercising each node kind and
// returns it unrendered. The even/odd function is named by funcName.
func showcaseModule(funcName string) codegen.Node {
	classify := codegen.NewIfChain([]codegen.ConditionBlock{
		{Condition: "n < 0", Block: codegen.NewReturn("'negative'")},
		{Condition: "n == 0", Block: codegen.NewReturn("'zero'")},
		{Condition: "True", Block: codegen.NewReturn("'positive'")},
	}, codegen.LastIsFallback)

	accumulator := codegen.NewClass("Accumulator", nil, []codegen.Node{
		codegen.NewFunction("__init__", []string{"self"},
			codegen.NewAssign("self.total", "0")),
		codegen.BlankLine(),
		codegen.NewFunction("add", []string{"self", "value"},
			codegen.NewSuite(
				codegen.NewAssert("value is not None"),
				codegen.NewAssign("self.total", "self.total + value"),
				codegen.NewReturn("self.total"),
			)),
	})

	countdown := codegen.NewFunction("countdown", []string{"n"},
		codegen.NewSuite(
			codegen.NewWhile("n > 0", codegen.NewSuite(
				codegen.NewYield("n"),
				codegen.NewAssign("n", "n - 1"),
			)),
			codegen.NewFor([]string{"k", "v"}, "sorted(os.environ.items())",
				codegen.NewStatement("print(k, v)")),
		))

	return codegen.NewCollection(
		codegen.NewComment("generated by pygen; do not edit"),
		codegen.NewImport("os"),
		codegen.NewImportAs("itertools", "it"),
		codegen.NewFromImport("math", []string{"floor", "sqrt"}),
		codegen.BlankLine(),
		codegen.NewFunction(funcName, []string{"x"},
			codegen.NewIf("x % 2 == 0",
				codegen.NewSuite(
					codegen.NewAssign("y", "x+2"),
					codegen.NewReturn("y"),
				),
				codegen.NewReturn("2*x"),
			)),
		codegen.BlankLine(),
		codegen.NewFunction("classify", []string{"n"}, classify),
		codegen.BlankLine(),
		countdown,
		codegen.BlankLine(),
		accumulator,
	)
}

func init() {
	generateCmd.Flags().StringVar(&functionName, "name", defaultFunctionName, "name of the generated even/odd function")
	generateCmd.Flags().StringVar(&outputPath, "output", defaultOutputPath, "write the rendered text to this .py file instead of stdout")
	cobra.MarkFlagFilename(generateCmd.Flags(), "output", ".py") // for file completion

	rootCmd.AddCommand(generateCmd)
}
