package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/chat"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/dashboard"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/terminal"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/trade"
	apperrors "github.com/hellosamyak/AgriPulse-backend/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	dashboardSvc dashboard.Service
	terminalSvc  terminal.Service
	tradeSvc     trade.Service
	chatSvc      chat.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(dashboardSvc dashboard.Service, terminalSvc terminal.Service, tradeSvc trade.Service, chatSvc chat.Service, logger *slog.Logger) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		terminalSvc:  terminalSvc,
		tradeSvc:     tradeSvc,
		chatSvc:      chatSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Home greets API consumers.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to AgriPulse API!"})
}

// Dashboard returns the location-keyed farmer dashboard aggregate.
func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.dashboardSvc.Overview(c.Request.Context(), c.Query("location"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "dashboard_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Terminal returns the commodity market terminal aggregate.
func (h *Handler) Terminal(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	harvestDays, ok := intQuery(c, "harvest_days")
	if !ok {
		return
	}

	resp, err := h.terminalSvc.Terminal(c.Request.Context(), terminal.Query{
		Commodity:   c.Query("commodity"),
		Location:    c.Query("location"),
		Limit:       limit,
		HarvestDays: harvestDays,
	})
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "terminal_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TradeSimulation computes the profitability of one simulated shipment.
func (h *Handler) TradeSimulation(c *gin.Context) {
	qty := 1.0
	if raw := c.Query("qty"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "qty must be numeric", err))
			return
		}
		qty = parsed
	}

	mode := trade.Mode(strings.ToLower(strings.TrimSpace(c.DefaultQuery("mode", string(trade.ModeDomestic)))))

	result, err := h.tradeSvc.Simulate(c.Request.Context(), trade.Input{
		Commodity:   c.Query("commodity"),
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		QtyTonnes:   qty,
		Mode:        mode,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "trade_failed"
		switch {
		case apperrors.IsCode(err, apperrors.CodeInvalidInput):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, apperrors.CodeNotFound):
			status = http.StatusNotFound
			code = "route_not_found"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Chat relays one farmer question to the chatbot.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	reply, err := h.chatSvc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		status := http.StatusInternalServerError
		code := "chat_failed"
		switch {
		case apperrors.IsCode(err, apperrors.CodeInvalidInput):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, apperrors.CodeLLMError):
			status = http.StatusBadGateway
			code = "llm_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", name+" must be an integer", err))
		return 0, false
	}
	return parsed, true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
