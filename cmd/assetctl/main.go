package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/assetmagnets/platform/internal/client"
	"github.com/assetmagnets/platform/internal/config"
	"github.com/assetmagnets/platform/internal/localstore"
)

func main() {
	rootCmd := newRootCmd(openClient, os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openClient builds the client from the environment and restores the saved session
func openClient(ctx context.Context) (*client.Client, io.Closer, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, err
	}

	var (
		store  localstore.Storage
		closer io.Closer
	)
	if cfg.StateRedisURL != "" {
		rs, err := localstore.OpenRedis(ctx, cfg.StateRedisURL, "assetctl:")
		if err != nil {
			return nil, nil, err
		}
		store, closer = rs, rs
	} else {
		fs, err := localstore.OpenSQLite(cfg.StatePath)
		if err != nil {
			return nil, nil, err
		}
		store, closer = fs, fs
	}

	c := client.New(store, client.Options{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.Timeout,
		DemoFallback: cfg.DemoFallback,
	})
	if err := c.Session().Load(ctx); err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return c, closer, nil
}
