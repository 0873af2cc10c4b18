// Command share adds a collaborator to a file on behalf of its owner. It
// reads the same configuration as the server, so -d, -s and -c apply:
//
//	share -c server.json <file_id> <owner_id> <collaborator_id>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/flagx"
	"github.com/dmitrijs2005/tdfs/internal/server"
	"github.com/dmitrijs2005/tdfs/internal/server/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadConfig()
	args := flagx.Positional(os.Args[1:], append([]string{"-c", "-config"}, config.FlagNames...))

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: share [-d dsn] [-s secret] [-c config.json] <file_id> <owner_id> <collaborator_id>")
		return 2
	}

	if err := server.ShareFile(context.Background(), cfg, args[0], args[1], args[2]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, common.ErrorValidation) {
			return 2
		}
		return 1
	}

	fmt.Printf("shared %s with %s\n", args[0], args[2])
	return 0
}
