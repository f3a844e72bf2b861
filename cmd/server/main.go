package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/finners68/textract-proxy/config"
	"github.com/finners68/textract-proxy/pkg/otel"
	"github.com/finners68/textract-proxy/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	godotenv.Load()

	configFlag := flag.String("config", "", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "textract-proxy", version); err != nil {
		panic(err)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		panic(err)
	}
}
