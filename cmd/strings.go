/*
Copyright © 2022 Nicholas McKinney
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binobj/internal/bin"
)

var outputFilePath string

// stringsCmd represents the strings command
var stringsCmd = &cobra.Command{
	Use:   "strings FILE",
	Short: "Print the strings of the current object",
	Args:  cobra.ExactArgs(1),
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

		var w io.Writer = os.Stdout
		if outputFilePath != "" {
			f, err := os.Create(outputFilePath)
			if err != nil {
				return fmt.Errorf("unable to create output file. %v", err)
			}
			defer f.Close()
			w = f
		}
		for _, s := range o.Strings {
			fmt.Fprintf(w, "%s %s %-7s %s\n", hex(s.VAddr), hex(s.PAddr), s.Type, s.String)
		}
		if outputFilePath != "" {
			log.WithFields(log.Fields{"count": len(o.Strings), "path": outputFilePath}).Info("strings written")
		}
		return nil
	},
}

func init() {
	stringsCmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "Output File Path")
	stringsCmd.Flags().Bool("debase64", false, "decode base64 strings")
	viper.BindPFlag("debase64", stringsCmd.Flags().Lookup("debase64"))
	rootCmd.AddCommand(stringsCmd)
}
