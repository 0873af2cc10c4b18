package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/client/cli"
	"github.com/dmitrijs2005/tdfs/internal/client/config"
	"github.com/dmitrijs2005/tdfs/internal/flagx"
)

func main() {
	os.Exit(run())
}

func run() int {

	cfg := config.LoadConfig()
	args := flagx.Positional(os.Args[1:], append([]string{"-c", "-config"}, config.FlagNames...))

	app, err := cli.NewApp(context.Background(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer app.Close()

	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0

}
