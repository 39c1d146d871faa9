package seed

import "teamops-backend/internal/database/models"

// Per-role task name templates used by the work-log generator. Roles without
// an explicit list fall back to the intern templates.
var taskTemplates = map[string][]string{
	"AI Specialist": {
		"Neural Architecture", "Prompt Optimization", "Guardrail Check", "Handoff Protocol",
		"Token Audit", "Strategy Session", "Model Tuning", "Inference Optimization",
		"Context Window Mapping", "System Prompt Refactor",
	},
	"Backend Developer": {
		"API Hardening", "Migration Layer", "Rate Limiting", "Sync Protocol",
		"DB Optimization", "Websocket Heartbeat", "Auth Validation", "Node Scaling",
		"Caching Strategy", "Query Profiling",
	},
	"AI Analyst": {
		"Sentiment Audit", "Hallucination Check", "Bias Scrubbing", "Telemetry Review",
		"Model Benchmarking", "Dataset Cleanup", "Uptime Report", "Latency Study",
		"Intent Analysis", "Evaluation Flow",
	},
	"Junior AI Engineer": {
		"Unit Testing", "Regression Fix", "UI Integration", "Component Audit",
		"Bug Resolution", "Documentation Update", "Feature Toggling", "Asset Versioning",
		"Code Review", "CI/CD Monitoring",
	},
	"Intern": {
		"Data Indexing", "Workflow Capture", "Manual Verification", "System Stressing",
		"Queue Management", "Feedback Logging", "Asset Tagging", "Minutes Capture",
		"Archive Cleanup", "User Testing Support",
	},
}

const fallbackTemplateRole = "Intern"

var vibes = []string{"⚡", "☕", "🧠", "🚀", "🧘", "💡", "🏗️", "🌊"}

// Only Office and Remote are drawn for synthetic rows; On Leave records come
// from live user action.
var seedLocations = []models.WorkLocation{models.WorkLocationOffice, models.WorkLocationRemote}
