package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/trattoria/internal/logging"
	"github.com/dmitrijs2005/trattoria/internal/server"
	"github.com/dmitrijs2005/trattoria/internal/server/config"

	_ "modernc.org/sqlite"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout)

	app, err := server.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
