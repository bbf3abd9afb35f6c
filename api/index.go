package handler

import (
	"net/http"
	"pgsystem/config"
	"pgsystem/di"
	"pgsystem/shared/logger"
	"sync"
)

var (
	once sync.Once
	app  *di.App
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeApp()
	})

	app.HTTP.ServeHTTP(w, r)
}
