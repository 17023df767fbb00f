// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/guidesearch"
	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/store/badger"
)

func main() {
	app := &cli.App{
		Name:  "guidesearch",
		Usage: "Search and discovery engine for local-guide content catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a catalog JSON file into a catalog database",
				Action:    importCommand,
				ArgsUsage: "<catalog.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to catalog database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a one-shot query against a catalog",
				Action:    searchCommand,
				ArgsUsage: "<query terms...>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to catalog database directory",
					},
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to a catalog JSON file (alternative to --db)",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: `Restrict results to one category ("all" for none)`,
						Value: string(catalog.CategoryAll),
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML file overriding engine tunables",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results to print",
						Value: 10,
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "List the catalog's facet labels",
				Action: categoriesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to catalog database directory",
					},
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to a catalog JSON file (alternative to --db)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func importCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one catalog JSON file")
	}

	records, err := readCatalogFile(c.Args().First())
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.PutCatalog(context.Background(), records); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	fmt.Printf("Imported %d records into %s\n", len(records), c.String("db"))
	return nil
}

func searchCommand(c *cli.Context) error {
	engine, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	query := strings.Join(c.Args().Slice(), " ")
	results := engine.Search(query, catalog.Category(c.String("category")))

	if limit := c.Int("limit"); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		record, _ := engine.Catalog().Get(hit.Slug)
		fields := make([]string, len(hit.MatchedFields))
		for j, field := range hit.MatchedFields {
			fields[j] = field.String()
		}
		fmt.Printf("%d: %q (%s) [%0.3f] %s\n",
			i, record.Title, hit.Slug, hit.Score, strings.Join(fields, ","))
	}
	return nil
}

func categoriesCommand(c *cli.Context) error {
	engine, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, category := range engine.Categories() {
		fmt.Println(category)
	}
	return nil
}

// openEngine builds an Engine from either --db or --catalog.
func openEngine(c *cli.Context) (*guidesearch.Engine, func(), error) {
	var opts []guidesearch.Option
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, guidesearch.WithConfig(cfg))
	}

	switch {
	case c.String("catalog") != "":
		records, err := readCatalogFile(c.String("catalog"))
		if err != nil {
			return nil, nil, err
		}
		engine, err := guidesearch.New(records, opts...)
		if err != nil {
			return nil, nil, err
		}
		return engine, func() {}, nil

	case c.String("db") != "":
		backend, err := badger.OpenBackend(c.String("db"), false)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		repo, err := badger.NewCatalogRepository(backend)
		if err != nil {
			backend.Close()
			return nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		engine, err := guidesearch.Open(context.Background(), repo, opts...)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, nil, err
		}
		cleanup := func() {
			repo.Close()
			backend.Close()
		}
		return engine, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("either --db or --catalog is required")
	}
}

// readCatalogFile parses a JSON array of content records.
func readCatalogFile(path string) ([]catalog.ContentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var records []catalog.ContentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return records, nil
}
