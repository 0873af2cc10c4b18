package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tdfs/internal/flagx"
)

// FlagNames lists every flag parseFlags understands. Each takes a value.
var FlagNames = []string{"-a", "-u", "-t", "-i", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so subcommand arguments do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], FlagNames)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "user id")
	fs.StringVar(&cfg.UserToken, "t", cfg.UserToken, "user token")
	fs.StringVar(&cfg.LocalDB, "l", cfg.LocalDB, "local journal database file")
	timeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
