package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"teamops-backend/internal/config"
	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/logger"
	"teamops-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInsightService(apiURL, apiKey string, maxRetries int) *service.InsightService {
	cfg := &config.Config{
		AIAPIURL:          apiURL,
		AIAPIKey:          apiKey,
		AIModel:           "gemini-1.5-pro",
		AIMaxRetries:      maxRetries,
		AIRetryBaseMillis: 1,
	}
	return service.NewInsightService(cfg, logger.New())
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`
}

func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		switch r {
		case '"':
			out += `\"`
		case '\\':
			out += `\\`
		case '\n':
			out += `\n`
		default:
			out += string(r)
		}
	}
	return out + `"`
}

// TestInsightMockMode verifies canned responses without an API key
func TestInsightMockMode(t *testing.T) {
	insightService := newTestInsightService("", "", 3)
	require.True(t, insightService.MockMode())

	board := &service.TeamBoardResponse{Date: "2026-02-04"}
	productivity, err := insightService.ProductivityInsights(context.Background(), board, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, productivity)

	personal, err := insightService.PersonalInsight(context.Background(), "Frankie", "AI Analyst", &service.PersonalSummaryResponse{})
	require.NoError(t, err)
	assert.Contains(t, personal, "Frankie")

	weekly, err := insightService.WeeklyReport(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, weekly)
}

// TestInsightRetriesOnQuota verifies the retry loop recovers after a 429
func TestInsightRetriesOnQuota(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota"}}`))
			return
		}
		w.Write([]byte(candidateBody("Team is on track.")))
	}))
	defer server.Close()

	insightService := newTestInsightService(server.URL, "test-key", 3)

	report, err := insightService.WeeklyReport(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Team is on track.", report)
	assert.Equal(t, int32(2), calls.Load())
}

// TestInsightQuotaExceeded verifies that retries give up eventually
func TestInsightQuotaExceeded(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota"}}`))
	}))
	defer server.Close()

	insightService := newTestInsightService(server.URL, "test-key", 1)

	report, err := insightService.WeeklyReport(context.Background(), nil)

	assert.Empty(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInsightQuotaExceeded)
	// Initial attempt plus one retry
	assert.Equal(t, int32(2), calls.Load())
}

// TestInsightNonRetryableError verifies other provider errors fail fast
func TestInsightNonRetryableError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"status":"INVALID_ARGUMENT","message":"bad prompt"}}`))
	}))
	defer server.Close()

	insightService := newTestInsightService(server.URL, "test-key", 3)

	report, err := insightService.WeeklyReport(context.Background(), nil)

	assert.Empty(t, report)
	assert.ErrorIs(t, err, apperrors.ErrInsightUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

// TestParseWorkLog verifies structured extraction with code fences stripped
func TestParseWorkLog(t *testing.T) {
	payload := "```json\n[{\"task_name\":\"Fixed login flow\",\"category\":\"Development\",\"duration_minutes\":90,\"description\":\"OAuth redirect bug\"}]\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateBody(payload)))
	}))
	defer server.Close()

	insightService := newTestInsightService(server.URL, "test-key", 3)

	tasks, err := insightService.ParseWorkLog(context.Background(), "fixed the login flow, about 90 minutes")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Fixed login flow", tasks[0].TaskName)
	assert.Equal(t, models.TaskCategoryDevelopment, tasks[0].Category)
	assert.Equal(t, 90, tasks[0].DurationMinutes)
}

// TestParseWorkLogUnparseableOutput verifies garbage model output maps to unavailable
func TestParseWorkLogUnparseableOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateBody("Sure! Here are the tasks you did today:")))
	}))
	defer server.Close()

	insightService := newTestInsightService(server.URL, "test-key", 3)

	tasks, err := insightService.ParseWorkLog(context.Background(), "some summary")

	assert.Nil(t, tasks)
	assert.ErrorIs(t, err, apperrors.ErrInsightUnavailable)
}

// TestParseWorkLogMockMode verifies the offline single-task fallback
func TestParseWorkLogMockMode(t *testing.T) {
	insightService := newTestInsightService("", "", 3)

	tasks, err := insightService.ParseWorkLog(context.Background(), "wrote release notes")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "wrote release notes", tasks[0].TaskName)
	assert.Equal(t, models.TaskCategoryDevelopment, tasks[0].Category)
	assert.Equal(t, 60, tasks[0].DurationMinutes)
}

// TestParseWorkLogEmptyText verifies input validation
func TestParseWorkLogEmptyText(t *testing.T) {
	insightService := newTestInsightService("", "", 3)

	tasks, err := insightService.ParseWorkLog(context.Background(), "   ")

	assert.Nil(t, tasks)
	assert.True(t, apperrors.IsValidation(err))
}
