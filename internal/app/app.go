package app

import (
	"github.com/bank-system/teller/internal/api"
	"github.com/bank-system/teller/internal/config"
	"github.com/bank-system/teller/internal/gateway"
	"github.com/bank-system/teller/internal/payment"
	"github.com/bank-system/teller/internal/session"
)

type App struct {
	Config     *config.Config
	Gateway    *gateway.AccountGateway
	Payments   *payment.Submitter
	Controller *session.Controller
}

// NewApp wires the transport, gateway, submitter and controller together.
// Nothing here opens resources that need closing; the client holds no
// state beyond the in-memory session.
func NewApp(cfg *config.Config) *App {
	client := api.NewClient(cfg.API)

	accountGateway := gateway.NewAccountGateway(client)
	submitter := payment.NewSubmitter(client, accountGateway, cfg.Defaults.Currency)

	return &App{
		Config:     cfg,
		Gateway:    accountGateway,
		Payments:   submitter,
		Controller: session.NewController(accountGateway, submitter),
	}
}
