package controller

import (
	"context"

	"github.com/ougirez/concursos/internal/service/explorer"
	"github.com/ougirez/concursos/internal/service/overview"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	overview *overview.Service
	explorer *explorer.Service
	db       Pinger
}

func NewController(overview *overview.Service, explorer *explorer.Service, db Pinger) *Controller {
	return &Controller{overview: overview, explorer: explorer, db: db}
}

// Page is what every HTML page hands to the layout.
type Page struct {
	Title   string
	Active  string
	Content interface{}
}
