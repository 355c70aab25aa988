package main

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "checkout.api.seftechub.com"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		return
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg, dao.NewDAO(cfg))

	log.Info("Starting checkout.api.seftechub.com service")
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout.api.seftechub.com service")
}
