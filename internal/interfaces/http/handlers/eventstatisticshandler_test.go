package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-live/tessera/internal/application/statistics/dto"
	statsUsecases "github.com/tessera-live/tessera/internal/application/statistics/usecases"
	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
)

type mockGetSingleExecutor struct {
	ExecuteFunc func(ctx context.Context, query statsUsecases.GetSingleEventQuery) (*dto.EventWithStatistics, error)
}

func (m *mockGetSingleExecutor) Execute(ctx context.Context, query statsUsecases.GetSingleEventQuery) (*dto.EventWithStatistics, error) {
	return m.ExecuteFunc(ctx, query)
}

func newStatisticsTestRouter(handler *EventStatisticsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("principal", "alice")
	})
	engine.GET("/api/events/:short_name", handler.GetSingleEventWithStatistics)
	return engine
}

func singleEventResult(t *testing.T) *dto.EventWithStatistics {
	t.Helper()
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

	ev, err := event.ReconstructEvent(1, "rock-night", "Rock Night", 5, "Zurich", "Europe/Zurich", "CHF", begin, begin.Add(4*time.Hour))
	require.NoError(t, err)
	cat, err := category.ReconstructTicketCategory(10, 1, "Standard", 50, true, 0, begin.AddDate(0, -1, 0), begin, 5000)
	require.NoError(t, err)

	return &dto.EventWithStatistics{
		Event:        ev,
		Descriptions: map[string]string{"en": "A night of rock"},
		Categories: []dto.TicketCategoryWithStatistic{{
			Category: cat,
			Descriptions: category.DescriptionSet{
				"en": "Standard seating",
				"de": "Standardplätze",
			},
		}},
	}
}

func TestGetSingleEventWithStatistics_ResolvesRequestedLanguage(t *testing.T) {
	mockGetSingle := &mockGetSingleExecutor{
		ExecuteFunc: func(ctx context.Context, query statsUsecases.GetSingleEventQuery) (*dto.EventWithStatistics, error) {
			assert.Equal(t, "rock-night", query.EventShortName)
			assert.Equal(t, "alice", query.Principal)
			return singleEventResult(t), nil
		},
	}
	handler := NewEventStatisticsHandler(nil, nil, mockGetSingle, nil, nil, testLogger())
	engine := newStatisticsTestRouter(handler)

	// de-AT has no stored entry; the base language must serve it.
	req := httptest.NewRequest(http.MethodGet, "/api/events/rock-night?lang=de-AT", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data EventWithStatisticsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Data.Categories, 1)

	cat := response.Data.Categories[0]
	assert.Equal(t, "Standardplätze", cat.Description)
	assert.Equal(t, []string{"de", "en"}, cat.ContentLanguages)
}

func TestGetSingleEventWithStatistics_WithoutLanguageParam(t *testing.T) {
	mockGetSingle := &mockGetSingleExecutor{
		ExecuteFunc: func(ctx context.Context, query statsUsecases.GetSingleEventQuery) (*dto.EventWithStatistics, error) {
			return singleEventResult(t), nil
		},
	}
	handler := NewEventStatisticsHandler(nil, nil, mockGetSingle, nil, nil, testLogger())
	engine := newStatisticsTestRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/events/rock-night", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data EventWithStatisticsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Data.Categories, 1)

	cat := response.Data.Categories[0]
	assert.Empty(t, cat.Description, "no resolved description without a lang parameter")
	assert.Equal(t, "Standard seating", cat.Descriptions["en"])
	assert.Equal(t, []string{"de", "en"}, cat.ContentLanguages)
}
