// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/blog-auth/internal/adapter"
	"github.com/MKhiriev/blog-auth/internal/client"
	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/service"
	"github.com/MKhiriev/blog-auth/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("blog-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, "server adapter:", err)
		return 1
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, "local storage:", err)
		return 1
	}
	defer storages.LocalStorage.Close()

	app, err := client.NewApp(service.NewClientServices(storages, serverAdapter), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	// Run prints its own error line.
	if err = app.Run(ctx, cfg.Args); err != nil {
		return 1
	}
	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
