// Package main runs the juice shop point of sale console.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/andrisetia/tokojus/internal/accountrepo"
	"github.com/andrisetia/tokojus/internal/accountservice"
	"github.com/andrisetia/tokojus/internal/cli"
	"github.com/andrisetia/tokojus/internal/orderrepo"
	"github.com/andrisetia/tokojus/internal/orderservice"
	"github.com/andrisetia/tokojus/pkg/configpkg"
	"github.com/andrisetia/tokojus/pkg/dbpkg"
	"github.com/andrisetia/tokojus/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)

	ctx := context.Background()

	db, err := dbpkg.Setup(ctx, config.MongoURI, config.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	accountRepo := accountrepo.NewRepoMongo(db)
	orderRepo := orderrepo.NewRepoMongo(db)

	if err := accountRepo.CreateIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot create account indexes")
	}

	if err := orderRepo.CreateIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot create order indexes")
	}

	app := cli.New(
		os.Stdin,
		os.Stdout,
		logger,
		accountservice.New(accountRepo),
		orderservice.New(orderRepo, accountRepo),
	)

	logger.Info().Msg("juice shop console started")

	if err := app.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("console loop failed")
	}
}
