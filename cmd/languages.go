package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minifykit/internal/ui"
)

var languagesCmd = &cobra.Command{
	Use:     "languages [dir]",
	Aliases: []string{"list-languages"},
	Short:   "List the supported languages and their extensions",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := projectDir(args)
		cfg := loadConfig(dir)

		reg, err := cfg.Registry()
		if err != nil {
			ui.PrintError("Invalid language configuration: %v", err)
			os.Exit(1)
		}

		fmt.Println(ui.Header("Supported languages"))
		fmt.Println()
		for _, m := range reg.All() {
			exts := reg.ExtensionsOf(m.Name())
			if len(exts) == 0 {
				ui.PrintKeyValue(m.Name(), "(no extensions, selectable by name)")
				continue
			}
			ui.PrintKeyValue(m.Name(), strings.Join(exts, ", "))
		}
		fmt.Println()
	},
}
