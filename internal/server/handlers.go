// internal/server/handlers.go
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stepchain/internal/chain"
	"stepchain/internal/common/errors"
	"stepchain/internal/common/logger"
	"stepchain/internal/models"
	"stepchain/internal/teams"
)

// todaysNews is the fixed item returned by GET /shami_momo.
var todaysNews = models.News{
	Day:     "today",
	Content: "Shamiko is going to go on date with Momo.",
}

type Handler struct {
	chain  *chain.Orchestrator
	logger logger.Logger
}

func NewHandler(orchestrator *chain.Orchestrator, log logger.Logger) *Handler {
	return &Handler{
		chain:  orchestrator,
		logger: log,
	}
}

// CreateSomething runs the payload through the step chain and returns the
// final echoed payload. The request context flows into the chain, so a client
// disconnect abandons the remaining outbound calls.
func (h *Handler) CreateSomething(c echo.Context) error {
	var p models.Payload
	if err := c.Bind(&p); err != nil {
		return errors.NewMalformedPayloadError(err)
	}

	result, err := h.chain.Run(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) TodaysNews(c echo.Context) error {
	return c.JSON(http.StatusOK, todaysNews)
}

func (h *Handler) AllTeams(c echo.Context) error {
	return c.JSON(http.StatusOK, teams.All())
}

func (h *Handler) TeamsJ1(c echo.Context) error {
	return c.JSON(http.StatusOK, teams.ByLeague(models.LeagueJ1))
}

func (h *Handler) TeamsJ2(c echo.Context) error {
	return c.JSON(http.StatusOK, teams.ByLeague(models.LeagueJ2))
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
