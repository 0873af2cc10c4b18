// Command token mints a user token signed with the server secret. It reads
// the same configuration as the server, so -s, -t and -c apply:
//
//	token -c server.json alice
package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/flagx"
	"github.com/dmitrijs2005/tdfs/internal/server/auth"
	"github.com/dmitrijs2005/tdfs/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()
	args := flagx.Positional(os.Args[1:], append([]string{"-c", "-config"}, config.FlagNames...))

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: token [-s secret] [-t minutes] [-c config.json] <user_id>")
		os.Exit(2)
	}

	tok, err := auth.GenerateToken(args[0], []byte(cfg.SecretKey), cfg.TokenValidityDuration)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(tok)

}
