package di

import (
	"pgsystem/internal/domains/room/seeder"
	"pgsystem/transport/http"
)

// App is everything cmd/app needs from the graph.
type App struct {
	HTTP   *http.HTTP
	Seeder seeder.Seeder
}
