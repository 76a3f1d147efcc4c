/*
Copyright © 2022 Nicholas McKinney
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"binobj/internal/bin"
	"binobj/internal/kv"
)

var (
	colorField = color.New(color.Bold, color.FgHiBlue).SprintFunc()
	colorCur   = color.New(color.FgHiGreen).SprintFunc()
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "List the binary objects loaded from a file",
	Long: `List the binary objects loaded from a file with their architecture, base
address and the number of sections, symbols and imports recovered.

With --db the metadata of every object is stored in a bolt database under
<file-uuid>/<object-id>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")

		_, bf, err := openFile(args[0])
		if err != nil {
			return err
		}
		defer bf.Close()

		fmt.Printf("%s %s\n", colorField("File:"), bf.Name)
		fmt.Printf("%s %s\n", colorField("UUID:"), bf.UUID)
		fmt.Printf("%s %s\n\n", colorField("Size:"), humanize.Bytes(bf.Buf.Size()))

		cur := bf.Cur()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Arch", "Bits", "Type", "Size", "Base", "Sections", "Symbols", "Imports", "Lang"})
		for _, o := range bf.Objects() {
			id := strconv.FormatUint(uint64(o.ID), 10)
			if o == cur {
				id = colorCur(id + "*")
			}
			var arch, typ string
			var bits int
			if o.Info != nil {
				arch, bits, typ = o.Info.Arch, o.Info.Bits, o.Info.Type
			}
			table.Append([]string{
				id,
				arch,
				strconv.Itoa(bits),
				typ,
				humanize.Bytes(o.Size),
				hex(o.BaseAddress()),
				strconv.Itoa(len(o.Sections)),
				strconv.Itoa(len(o.Symbols)),
				strconv.Itoa(len(o.Imports)),
				o.Lang.String(),
			})
		}
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.Render()

		if cur != nil {
			printEntry(cur)
		}

		if dbPath != "" {
			for _, o := range bf.Objects() {
				bucket := fmt.Sprintf("%s/%d", bf.UUID, o.ID)
				if err := kv.Save(dbPath, bucket, o.KV); err != nil {
					return err
				}
				log.WithFields(log.Fields{"db": dbPath, "bucket": bucket}).Info("saved metadata")
			}
		}
		return nil
	},
}

func printEntry(o *bin.Object) {
	if e := o.SpecialSymbols[bin.SymEntry]; e != nil {
		fmt.Printf("\n%s %s (paddr %s)\n", colorField("Entry:"), hex(e.VAddr), hex(e.PAddr))
	}
	if len(o.Libs) > 0 {
		fmt.Printf("%s\n", colorField("Libraries:"))
		for _, lib := range o.Libs {
			fmt.Printf("\t%s\n", lib)
		}
	}
}

func init() {
	infoCmd.Flags().String("db", "", "bolt database to store object metadata in")
	rootCmd.AddCommand(infoCmd)
}
