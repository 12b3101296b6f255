/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/gohydro/InputParameters"
)

var (
	cfgFile  string
	logger   = zap.NewNop()
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gohydro",
	Short: "Primitive and conserved variable transforms on structured hydro grids",
	Long: `
Builds a structured mesh block, lays down an initial primitive state and
converts it to conserved variables with a parallel kernel.

gohydro convert -I input.yaml
gohydro bench -I input.yaml --threadList 1,2,4,8`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if dir := viper.GetString("profile"); len(dir) != 0 {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gohydro.yaml)")
	pf.BoolP("verbose", "v", false, "debug level logging")
	pf.String("profile", "", "directory to write a CPU profile into")
	pf.IntP("threads", "t", 0, "number of worker goroutines, 0 = all CPUs (overrides the input file)")
	pf.String("schedule", "", "row schedule, dynamic or static (overrides the input file)")
	pf.Int("chunk", 0, "rows claimed at a time by the dynamic schedule (overrides the input file)")
	for _, name := range []string{"verbose", "profile", "threads", "schedule", "chunk"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gohydro")
	}
	viper.SetEnvPrefix("GOHYDRO")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

const exampleFile = `
########################################
Title: "Test Case"
Gamma: 1.4
NX1: 256
NX2: 256
NX3: 1
NGhost: 2
Threads: 0 # 0 = all CPUs
Schedule: dynamic # or static
InitType: sod # uniform, sod or blast
InitParams:
  axis: 1
########################################
`

func processInput(icFile string) (ip *InputParameters.InputParameters3D, err error) {
	var (
		data []byte
	)
	if len(icFile) == 0 {
		logger.Info("no input parameters file (-I, --inputConditionsFile), using defaults")
		fmt.Printf("Example File:%s\n", exampleFile)
		ip = InputParameters.NewInputParameters3D()
	} else {
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		ip = &InputParameters.InputParameters3D{}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", icFile, err)
			return
		}
	}
	applyOverrides(ip)
	err = ip.Validate()
	return
}

// applyOverrides lets flags, the environment and the config file win over the input file
func applyOverrides(ip *InputParameters.InputParameters3D) {
	if viper.IsSet("threads") {
		ip.Threads = viper.GetInt("threads")
	}
	if viper.IsSet("schedule") {
		ip.Schedule = viper.GetString("schedule")
	}
	if viper.IsSet("chunk") {
		ip.Chunk = viper.GetInt("chunk")
	}
}
