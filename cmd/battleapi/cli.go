package main

import (
	"flag"

	"github.com/spf13/viper"
)

// cliArgs are the command line overrides. Anything not set on the
// command line falls back to the config file, then to defaults.
type cliArgs struct {
	Addr      string
	Port      int
	LogLevel  string
	ConfigDir string
}

// parseArgs reads flags and pushes explicit overrides into viper so the
// rest of the program has a single configuration source.
func parseArgs() cliArgs {
	var args cliArgs
	flag.StringVar(&args.Addr, "a", "", "HTTP listening address")
	flag.StringVar(&args.Addr, "addr", "", "HTTP listening address")
	flag.IntVar(&args.Port, "p", 0, "HTTP listening port")
	flag.IntVar(&args.Port, "port", 0, "HTTP listening port")
	flag.StringVar(&args.LogLevel, "l", "", "logging level")
	flag.StringVar(&args.LogLevel, "log", "", "logging level")
	flag.StringVar(&args.ConfigDir, "c", ".", "directory containing battleapi.cfg.json")
	flag.StringVar(&args.ConfigDir, "config", ".", "directory containing battleapi.cfg.json")
	flag.Parse()
	return args
}

// apply pushes non-empty CLI values over the loaded config.
func (a cliArgs) apply() {
	if a.Addr != "" {
		viper.Set("server.addr", a.Addr)
	}
	if a.Port != 0 {
		viper.Set("server.port", a.Port)
	}
	if a.LogLevel != "" {
		viper.Set("logLevel", a.LogLevel)
	}
}
