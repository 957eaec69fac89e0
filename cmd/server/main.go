package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/listbot/internal/flagx"
	"github.com/dmitrijs2005/listbot/internal/server"
	"github.com/dmitrijs2005/listbot/internal/server/auth"
	"github.com/dmitrijs2005/listbot/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// -mint <gateway> prints a webhook token for the gateway and exits.
	if gateway := flagx.StringFlag(os.Args[1:], "", "mint"); gateway != "" {
		token, err := auth.GenerateToken(gateway, []byte(cfg.SecretKey), cfg.TokenValidityDuration)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(token)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
