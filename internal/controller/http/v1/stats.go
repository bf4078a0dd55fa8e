package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/BotStats/internal/controller/common/logging"
	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/service"
	"github.com/labstack/echo/v4"
)

type successResponse struct {
	Type string `json:"type"`
}

var success = successResponse{Type: "success"}

type accountsResponse struct {
	Accounts []string `json:"accounts"`
}

type keywordUpdates struct {
	Items []domain.KeywordUpdate `validate:"dive"`
}

type statsRoutes struct {
	stats service.Stats
}

func newStatsRoutes(g *echo.Group, stats service.Stats) {
	r := &statsRoutes{stats: stats}

	g.GET("/list_accounts", r.listAccounts)

	g.GET("/:account/stats", r.account)
	g.POST("/:account/stats", r.updateAccount)
	g.POST("/:account/stats/add_logs", r.appendAccountLog)
	g.POST("/:account/stats/set_keywords", r.upsertKeywords)
	g.POST("/:account/stats/:id/add_log", r.appendKeywordLog)
	g.POST("/:account/update-keyword-stats", r.updateKeyword)

	g.GET("/:account/keywords/:id", r.keyword)
	g.GET("/:account/keywords/:id/logs", r.keywordLogs)

	g.GET("/:account/clear_log", r.clearAccount)
	g.GET("/:account/clear_log_full", r.resetAccount)
}

func (r *statsRoutes) listAccounts(c echo.Context) error {
	return c.JSON(http.StatusOK, accountsResponse{Accounts: r.stats.ListAccounts()})
}

func (r *statsRoutes) account(c echo.Context) error {
	name, err := accountParam(c)
	if err != nil {
		return err
	}

	acc, ok := r.stats.Account(name)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, acc)
}

func (r *statsRoutes) updateAccount(c echo.Context) error {
	const op = "update_account"

	name, err := accountParam(c)
	if err != nil {
		return err
	}

	var delta domain.AccountDelta
	if err := bindJSON(c, &delta); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	logginghelper.LogReceived(op, name)

	r.stats.UpdateAccount(name, delta)
	return c.JSON(http.StatusOK, success)
}

func (r *statsRoutes) appendAccountLog(c echo.Context) error {
	const op = "append_account_log"

	name, err := accountParam(c)
	if err != nil {
		return err
	}

	var entry domain.LogEntry
	if err := bindJSON(c, &entry); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	logginghelper.LogReceived(op, name)

	r.stats.AppendAccountLog(name, entry)
	return c.JSON(http.StatusOK, success)
}

func (r *statsRoutes) upsertKeywords(c echo.Context) error {
	const op = "upsert_keywords"

	name, err := accountParam(c)
	if err != nil {
		return err
	}

	var updates keywordUpdates
	if err := decodeJSON(c, &updates.Items); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	if err := c.Validate(&updates); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	logginghelper.LogReceived(op, name)

	r.stats.UpsertKeywords(name, updates.Items)
	return c.JSON(http.StatusOK, success)
}

func (r *statsRoutes) appendKeywordLog(c echo.Context) error {
	const op = "append_keyword_log"

	name, err := accountParam(c)
	if err != nil {
		return err
	}
	id, err := keywordIDParam(c)
	if err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}

	var entry domain.LogEntry
	if err := bindJSON(c, &entry); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	logginghelper.LogReceived(op, name)

	if !r.stats.AppendKeywordLog(name, id, entry) {
		logginghelper.LogKeywordMissing(name, id)
	}
	return c.JSON(http.StatusOK, success)
}

// updateKeyword applies only the scalar fields of the body; logs and error_counts are
// ignored on this route.
func (r *statsRoutes) updateKeyword(c echo.Context) error {
	const op = "update_keyword"

	name, err := accountParam(c)
	if err != nil {
		return err
	}

	var upd domain.KeywordUpdate
	if err := bindJSON(c, &upd); err != nil {
		logginghelper.LogRejected(op, name, err)
		return err
	}
	logginghelper.LogReceived(op, name)

	if !r.stats.UpdateKeyword(name, upd.ID, upd.KeywordPatch) {
		logginghelper.LogKeywordMissing(name, upd.ID)
	}
	return c.JSON(http.StatusOK, success)
}

func (r *statsRoutes) keyword(c echo.Context) error {
	name, err := accountParam(c)
	if err != nil {
		return err
	}
	id, err := keywordIDParam(c)
	if err != nil {
		return err
	}

	kw, ok := r.stats.Keyword(name, id)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, kw)
}

func (r *statsRoutes) keywordLogs(c echo.Context) error {
	name, err := accountParam(c)
	if err != nil {
		return err
	}
	id, err := keywordIDParam(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.stats.KeywordLogs(name, id))
}

func (r *statsRoutes) clearAccount(c echo.Context) error {
	name, err := accountParam(c)
	if err != nil {
		return err
	}
	logginghelper.LogReceived("clear_account", name)

	r.stats.ClearAccount(c.Request().Context(), name)
	return c.JSON(http.StatusOK, success)
}

func (r *statsRoutes) resetAccount(c echo.Context) error {
	name, err := accountParam(c)
	if err != nil {
		return err
	}
	logginghelper.LogReceived("reset_account", name)

	r.stats.ResetAccount(name)
	return c.JSON(http.StatusOK, success)
}
