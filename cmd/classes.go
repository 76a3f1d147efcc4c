/*
Copyright © 2022 Nicholas McKinney
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"binobj/internal/bin"
)

var colorClass = color.New(color.Bold, color.FgHiMagenta).SprintFunc()

// classesCmd represents the classes command
var classesCmd = &cobra.Command{
	Use:   "classes FILE",
	Short: "Print the classes of the current object",
	Long: `Print the classes of the current object with their fields and methods.

Classes come from the format plugin, or are derived from the symbol table when
the plugin has none or the object is a Swift binary. Methods are labelled
method.<class>.<method>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, bf, err := openFile(args[0])
		if err != nil {
			return err
		}
		defer bf.Close()

		o := b.CurObject()
		if o == nil {
			return bin.ErrNotFound
		}
		fmt.Printf("%s %s\n", colorField("Lang:"), o.Lang)
		for _, c := range o.Classes {
			name := c.Name
			if c.Super != "" {
				name += " : " + c.Super
			}
			fmt.Printf("%s %s\n", colorClass("class"), name)
			for _, f := range c.Fields {
				fmt.Printf("\t%s field %s\n", hex(f.VAddr), f.Name)
			}
			for _, m := range c.Methods {
				label, ok := o.MethodLabel(m.VAddr)
				if !ok {
					label = m.Name
				}
				fmt.Printf("\t%s %s\n", hex(m.VAddr), label)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
