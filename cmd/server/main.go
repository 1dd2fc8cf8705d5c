package main

import (
	"net/http"
	"os"

	"github.com/8Gelos8/DreamPrintUA/internal/app/server/api"
	"github.com/8Gelos8/DreamPrintUA/internal/config"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/localstore"
	"github.com/8Gelos8/DreamPrintUA/internal/utils/logger"
)

func main() {
	conf := config.NewConfig()
	log := logger.New(conf.Env)

	store, err := localstore.New(conf.Store.Path, conf.Store.QuotaBytes, log)
	if err != nil {
		log.Error("open local store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	mux, err := api.New(store, conf, log)
	if err != nil {
		log.Error("build server", "error", err)
		os.Exit(1)
	}

	log.Info("start server", "address", conf.Server.RunAddress, "env", conf.Env)
	if err := http.ListenAndServe(conf.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
