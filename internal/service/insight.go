package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"teamops-backend/internal/config"
	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/logger"
)

const defaultInsightAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"

// InsightService is a thin client over a generative-AI content API. Without an
// API key it degrades to deterministic mock responses so the rest of the app
// keeps working offline.
type InsightService struct {
	client     *http.Client
	apiURL     string
	apiKey     string
	model      string
	maxRetries int
	retryBase  time.Duration
	log        *logger.Logger
}

// NewInsightService creates a new insight service from config
func NewInsightService(cfg *config.Config, log *logger.Logger) *InsightService {
	apiURL := cfg.AIAPIURL
	if apiURL == "" {
		apiURL = defaultInsightAPIURL
	}
	return &InsightService{
		client:     &http.Client{Timeout: 30 * time.Second},
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     cfg.AIAPIKey,
		model:      cfg.AIModel,
		maxRetries: cfg.AIMaxRetries,
		retryBase:  time.Duration(cfg.AIRetryBaseMillis) * time.Millisecond,
		log:        log,
	}
}

// ParsedTask is one task extracted from a natural-language work summary
type ParsedTask struct {
	TaskName        string              `json:"task_name"`
	Category        models.TaskCategory `json:"category"`
	DurationMinutes int                 `json:"duration_minutes"`
	Description     string              `json:"description"`
}

// generateRequest is the content-API request payload
type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

// generateResponse is the content-API response payload
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// MockMode reports whether the service answers from canned responses
func (s *InsightService) MockMode() bool {
	return s.apiKey == ""
}

// ProductivityInsights summarizes team-wide activity
func (s *InsightService) ProductivityInsights(ctx context.Context, board *TeamBoardResponse, logs []WorkLogResponse) (string, error) {
	if s.MockMode() {
		return mockProductivityInsight, nil
	}

	var sb strings.Builder
	sb.WriteString("You are an operations analyst for a small software team. ")
	sb.WriteString("Given today's attendance board and recent work logs, write 3 short, actionable productivity insights.\n\nAttendance:\n")
	for _, entry := range board.Entries {
		sb.WriteString(fmt.Sprintf("- %s (%s): present=%t hours=%.1f\n", entry.MemberName, entry.Role, entry.Present, entry.SessionHours))
	}
	sb.WriteString("\nRecent work logs:\n")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("- %s: %s [%s, %s, %dm]\n", entry.MemberName, entry.TaskName, entry.Category, entry.Status, entry.DurationMinutes))
	}
	return s.generate(ctx, sb.String())
}

// PersonalInsight suggests growth steps for one member
func (s *InsightService) PersonalInsight(ctx context.Context, memberName, role string, summary *PersonalSummaryResponse) (string, error) {
	if s.MockMode() {
		return fmt.Sprintf(mockPersonalInsight, memberName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a career coach. %s works as %s. ", memberName, role))
	sb.WriteString(fmt.Sprintf("Current streak: %d days. Cumulative effort: %.1f hours. Completed tasks: %d across %d categories.\n",
		summary.StreakDays, summary.CumulativeHours, summary.DoneCount, summary.DistinctCategories))
	sb.WriteString("Category breakdown:\n")
	for _, c := range summary.CategoryDistribution {
		sb.WriteString(fmt.Sprintf("- %s: %d%%\n", c.Category, c.Percent))
	}
	sb.WriteString("\nWrite a short, encouraging career-path insight with one concrete suggestion.")
	return s.generate(ctx, sb.String())
}

// WeeklyReport drafts a stand-up style weekly summary from work logs
func (s *InsightService) WeeklyReport(ctx context.Context, logs []WorkLogResponse) (string, error) {
	if s.MockMode() {
		return mockWeeklyReport, nil
	}

	var sb strings.Builder
	sb.WriteString("Draft a concise weekly team report (done / in progress / risks) from these work logs:\n")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s | %dm | %s\n",
			entry.Timestamp.Format("2006-01-02"), entry.MemberName, entry.TaskName, entry.Status, entry.DurationMinutes, entry.Category))
	}
	return s.generate(ctx, sb.String())
}

// ParseWorkLog extracts structured tasks from a natural-language summary
func (s *InsightService) ParseWorkLog(ctx context.Context, text string) ([]ParsedTask, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text", "must not be empty")
	}
	if s.MockMode() {
		return []ParsedTask{{
			TaskName:        text,
			Category:        models.TaskCategoryDevelopment,
			DurationMinutes: 60,
			Description:     "Logged from summary: " + text,
		}}, nil
	}

	prompt := "Extract the individual tasks from this work summary as a JSON array of objects " +
		`with keys "task_name", "category" (one of Development, Testing, Documentation, Design, Meetings, Research, Administrative), ` +
		`"duration_minutes" (integer) and "description". Respond with JSON only, no prose.` +
		"\n\nSummary: " + text

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var tasks []ParsedTask
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &tasks); err != nil {
		return nil, fmt.Errorf("%w: unparseable model output", apperrors.ErrInsightUnavailable)
	}
	return tasks, nil
}

// generate calls the content API with retry on quota exhaustion. Backoff is
// exponential from the configured base with up to 1s of jitter.
func (s *InsightService) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.retryBase*time.Duration(1<<(attempt-1)) + time.Duration(rand.Int63n(int64(time.Second)))
			s.log.WithFields(map[string]interface{}{
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("insight provider quota hit, retrying")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		text, retryable, err := s.doGenerate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %v", apperrors.ErrInsightQuotaExceeded, lastErr)
}

func (s *InsightService) doGenerate(ctx context.Context, prompt string) (text string, retryable bool, err error) {
	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", s.apiURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", apperrors.ErrInsightUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", false, fmt.Errorf("%w: status %d", apperrors.ErrInsightUnavailable, resp.StatusCode)
	}

	if resp.StatusCode == http.StatusTooManyRequests ||
		(parsed.Error != nil && parsed.Error.Status == "RESOURCE_EXHAUSTED") {
		return "", true, apperrors.ErrInsightQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", false, fmt.Errorf("%w: %s", apperrors.ErrInsightUnavailable, msg)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("%w: empty response", apperrors.ErrInsightUnavailable)
	}
	return parsed.Candidates[0].Content.Parts[0].Text, false, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

const mockProductivityInsight = `1. Attendance is steady this week; keep the morning check-in habit going.
2. Development dominates logged time. Consider reserving a slot for documentation.
3. A few tasks have sat in progress for several days. A quick triage would help.`

const mockPersonalInsight = `%s, your consistency is paying off. Your logged work leans heavily on one category; picking up one task outside it next week would broaden your track record.`

const mockWeeklyReport = `Weekly report (offline draft):
- Done: the team closed out the majority of logged tasks this week.
- In progress: a handful of development and research items carry over.
- Risks: none flagged from the logs; watch open sessions near the end of the week.`
