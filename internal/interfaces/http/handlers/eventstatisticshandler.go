package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	statsUsecases "github.com/tessera-live/tessera/internal/application/statistics/usecases"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/interfaces/http/middleware"
	"github.com/tessera-live/tessera/internal/shared/logger"
	"github.com/tessera-live/tessera/internal/shared/utils"
)

type EventStatisticsHandler struct {
	listUC        statsUsecases.ListEventStatisticsExecutor
	getStatUC     statsUsecases.GetEventStatisticExecutor
	getSingleUC   statsUsecases.GetSingleEventWithStatisticsExecutor
	grossIncomeUC statsUsecases.GrossIncomeExecutor
	noSeatsUC     statsUsecases.NoSeatsAvailableExecutor
	logger        logger.Interface
}

func NewEventStatisticsHandler(
	listUC statsUsecases.ListEventStatisticsExecutor,
	getStatUC statsUsecases.GetEventStatisticExecutor,
	getSingleUC statsUsecases.GetSingleEventWithStatisticsExecutor,
	grossIncomeUC statsUsecases.GrossIncomeExecutor,
	noSeatsUC statsUsecases.NoSeatsAvailableExecutor,
	logger logger.Interface,
) *EventStatisticsHandler {
	return &EventStatisticsHandler{
		listUC:        listUC,
		getStatUC:     getStatUC,
		getSingleUC:   getSingleUC,
		grossIncomeUC: grossIncomeUC,
		noSeatsUC:     noSeatsUC,
		logger:        logger,
	}
}

// ListEventStatistics returns the statistics of every event visible to the
// caller, ordered by begin time. `?active=true` narrows the listing to events
// that have not ended yet.
func (h *EventStatisticsHandler) ListEventStatistics(c *gin.Context) {
	query := statsUsecases.ListEventStatisticsQuery{
		Principal: middleware.PrincipalFromContext(c),
	}

	if c.Query("active") == "true" {
		now := time.Now()
		query.Filter = func(ev *event.Event) bool {
			return ev.End().After(now)
		}
	}

	stats, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list event statistics", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventStatisticResponses(stats))
}

func (h *EventStatisticsHandler) GetEventStatistic(c *gin.Context) {
	eventID, ok := h.parseEventID(c)
	if !ok {
		return
	}

	stat, err := h.getStatUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		h.logger.Errorw("failed to get event statistic", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventStatisticResponse(*stat))
}

// GetSingleEventWithStatistics returns the full per-event composite. An
// optional `lang` query parameter resolves each category description to that
// language, falling back to the base language and then to English.
func (h *EventStatisticsHandler) GetSingleEventWithStatistics(c *gin.Context) {
	query := statsUsecases.GetSingleEventQuery{
		EventShortName: c.Param("short_name"),
		Principal:      middleware.PrincipalFromContext(c),
	}

	result, err := h.getSingleUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to get event with statistics",
			"error", err,
			"short_name", query.EventShortName)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventWithStatisticsResponse(result, c.Query("lang")))
}

func (h *EventStatisticsHandler) GetGrossIncome(c *gin.Context) {
	eventID, ok := h.parseEventID(c)
	if !ok {
		return
	}

	result, err := h.grossIncomeUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		h.logger.Errorw("failed to compute gross income", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSoldOut reports whether every category of the event is exhausted.
func (h *EventStatisticsHandler) GetSoldOut(c *gin.Context) {
	eventID, ok := h.parseEventID(c)
	if !ok {
		return
	}

	stat, err := h.getStatUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	soldOut, err := h.noSeatsUC.Execute(c.Request.Context(), stat.Event)
	if err != nil {
		h.logger.Errorw("failed to evaluate availability", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"sold_out": soldOut})
}

func (h *EventStatisticsHandler) parseEventID(c *gin.Context) (uint, bool) {
	raw := c.Param("event_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid event ID: "+raw)
		return 0, false
	}
	return uint(id), true
}
