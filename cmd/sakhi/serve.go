package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bizsakhi/sakhi/internal/classifier"
	"github.com/bizsakhi/sakhi/internal/fastpath"
	"github.com/bizsakhi/sakhi/internal/ledger"
	"github.com/bizsakhi/sakhi/internal/pipeline"
	"github.com/bizsakhi/sakhi/internal/query"
	"github.com/bizsakhi/sakhi/internal/reconciler"
	"github.com/bizsakhi/sakhi/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat API server",
		Long: `Start the HTTP server that resolves chat messages into ledger
records and answers summary queries.`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "HTTP port (overrides server.port)")
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	dbPath, err := databasePath()
	if err != nil {
		return err
	}

	db, err := ledger.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer func() { _ = db.Close() }()

	gateway, err := classifier.NewGateway(classifier.Config{
		Provider:   viper.GetString("classifier.provider"),
		APIKey:     viper.GetString("classifier.api_key"),
		Model:      viper.GetString("classifier.model"),
		Timeout:    viper.GetDuration("classifier.timeout"),
		MaxRetries: viper.GetInt("classifier.max_retries"),
		RateLimit:  viper.GetInt("classifier.rate_limit"),
		CacheTTL:   viper.GetDuration("classifier.cache_ttl"),
	})
	if err != nil {
		return fmt.Errorf("failed to create classifier gateway: %w", err)
	}
	defer gateway.Close()

	matcher, err := fastpath.NewDefaultMatcher()
	if err != nil {
		return fmt.Errorf("failed to compile fast patterns: %w", err)
	}

	queries := query.New(db)
	p := pipeline.New(matcher, gateway, reconciler.New(db), queries, db, db)

	port := viper.GetInt("server.port")
	slog.Info("starting sakhi",
		"version", version,
		"port", port,
		"database", dbPath,
		"provider", viper.GetString("classifier.provider"),
		"patterns", matcher.PatternCount())

	return server.New(port, p, queries, db, db).Run(cmd.Context())
}
