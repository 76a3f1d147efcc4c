/*
Copyright © 2022 Nicholas McKinney
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binobj/internal/bin"
	"binobj/internal/config"
	"binobj/internal/plugin"
)

var (
	cfgFile string
	Verbose bool
	Color   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binobj",
	Short: "Loads ELF, Mach-O and PE files into binary objects",
	Long: `Loads executables into binary objects and reports what was recovered:
sections, symbols, imports, strings, classes and the source language.

Universal Mach-O binaries load one object per architecture. DLLs wrapped by
monoxgas sRDI (https://github.com/monoxgas/sRDI) load as the embedded DLL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		color.NoColor = !viper.GetBool("color")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihandler.Default)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/binobj/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&Color, "color", false, "colorize output")
	rootCmd.PersistentFlags().Int("minstrlen", 0, "minimum string length (default is the plugin's)")
	rootCmd.PersistentFlags().Bool("filter", true, "rename duplicate symbol, section and class names")
	rootCmd.PersistentFlags().Bool("rawstr", false, "scan the whole object for strings instead of data sections")
	rootCmd.PersistentFlags().StringSlice("extract", []string{"all"}, "collections to extract (relocs,imports,strings,classes,symbols,all)")
	rootCmd.PersistentFlags().String("baddr", "", "base address to load at")
	rootCmd.PersistentFlags().String("laddr", "", "load address")
	for _, name := range []string{"verbose", "color", "minstrlen", "filter", "rawstr", "extract", "baddr", "laddr"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.BindEnv("color", "CLICOLOR")
	config.SetDefaults(viper.GetViper())

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "binobj"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("binobj")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// openFile loads path with the configured options and returns its registry.
func openFile(path string) (*bin.Bin, *bin.File, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	b := bin.New(conf.Options(), nil)
	baddr, laddr := conf.Addrs()
	bf, err := plugin.Open(b, path, baddr, laddr)
	if err != nil {
		return nil, nil, err
	}
	return b, bf, nil
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}
