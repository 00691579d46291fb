package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/api"
	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/cnf"
	"github.com/revelaction/vclause/lexicon"
	"github.com/revelaction/vclause/rdb"
)

const (
	redisConnectionTestTimeout = 5 * time.Second
	shutdownTimeout            = 10 * time.Second
)

func serveCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve the extraction over HTTP",
		ArgsUsage: "<config.json>",
		Action: func(cCtx *cli.Context) error {
			if cCtx.Args().Len() != 1 {
				return errors.New("serve needs a config file")
			}

			conf, err := cnf.LoadConfig(cCtx.Args().First())
			if err != nil {
				return err
			}
			if err := cnf.SetupLogging(conf.LogFile, conf.LogLevel); err != nil {
				return err
			}
			if err := cnf.ValidateAndDefaults(conf); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return runServer(cCtx.Context, conf)
		},
	}
}

func newActions(conf *cnf.Conf, p *Pool) (*api.Actions, error) {
	ts, err := loadTagset(conf.TagsetPath)
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(strings.Join(conf.Headers, ","))
	if err != nil {
		return nil, err
	}

	actions := &api.Actions{
		Aggregator: clause.NewAggregator(ts, clause.WithValidation(!conf.NoValidate)),
		Headers:    headers,
		Version:    BuildTag,
	}

	if len(conf.LexiconPaths) > 0 {
		dict, err := lexicon.LoadFiles(conf.LexiconPaths...)
		if err != nil {
			return nil, err
		}
		log.Info().Int("lists", dict.Len()).Msg("lexicon loaded")
		actions.Filter = dict
	}

	if conf.CorpusPath != "" {
		repo, err := NewDocRepository(p, conf.CorpusPath)
		if err != nil {
			return nil, err
		}
		actions.Docs = repo
	}

	return actions, nil
}

func runServer(ctx context.Context, conf *cnf.Conf) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := &Pool{}
	defer p.Close()

	actions, err := newActions(conf, p)
	if err != nil {
		return err
	}

	if conf.Redis != nil {
		cache := rdb.NewCache(conf.Redis)
		defer cache.Close()

		pingCtx, cancel := context.WithTimeout(ctx, redisConnectionTestTimeout)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		actions.Cache = cache
	}

	log.Info().Str("tagset", actions.Aggregator.Tagset().Name).Msg("Starting vclause")

	server := api.NewServer(conf, actions)
	server.Start(ctx)

	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	log.Info().Msg("Graceful shutdown completed")
	return nil
}
