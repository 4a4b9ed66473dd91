package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/trattoria/internal/buildinfo"
	"github.com/dmitrijs2005/trattoria/internal/client/cli"
	"github.com/dmitrijs2005/trattoria/internal/client/config"
	"github.com/dmitrijs2005/trattoria/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
