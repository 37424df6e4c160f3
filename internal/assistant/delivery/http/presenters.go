package http

import (
	"strings"
	"time"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/model"
	"task-intelligence/internal/prompt"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	Title            string     `json:"title"`
	Notes            string     `json:"notes"`
	DueAt            *time.Time `json:"due_at"`
	Priority         string     `json:"priority"`
	Category         string     `json:"category"`
	CustomCategoryID string     `json:"custom_category_id"`
	EstimatedMinutes int        `json:"estimated_minutes" binding:"min=0"`
}

func (r taskReq) toInput() assistant.TaskInput {
	priority, _ := model.ParsePriority(strings.ToLower(r.Priority))
	category, _ := model.ParseCategory(strings.ToLower(r.Category))
	return assistant.TaskInput{
		Title:            r.Title,
		Notes:            r.Notes,
		DueAt:            r.DueAt,
		Priority:         priority,
		Category:         category,
		CustomCategoryID: r.CustomCategoryID,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

type estimateReq struct {
	Title string `json:"title" binding:"required"`
	Notes string `json:"notes"`
}

func (r estimateReq) toInput() assistant.EstimateInput {
	return assistant.EstimateInput{Title: r.Title, Notes: r.Notes}
}

type priorityReq struct {
	Title string     `json:"title" binding:"required"`
	Notes string     `json:"notes"`
	DueAt *time.Time `json:"due_at"`
}

func (r priorityReq) toInput() assistant.PriorityInput {
	return assistant.PriorityInput{Title: r.Title, Notes: r.Notes, DueAt: r.DueAt}
}

type orderReq struct {
	Tasks []taskReq `json:"tasks" binding:"dive"`
}

func (r orderReq) toInput() assistant.OrderInput {
	tasks := make([]assistant.TaskInput, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toInput()
	}
	return assistant.OrderInput{Tasks: tasks}
}

type analyzeReq struct {
	TaskID string  `json:"task_id"`
	Task   taskReq `json:"task"`
}

func (r analyzeReq) toInput() assistant.AnalyzeInput {
	return assistant.AnalyzeInput{TaskID: r.TaskID, Task: r.Task.toInput()}
}

type completeReq struct {
	Prompt       string `json:"prompt" binding:"required"`
	SystemPrompt string `json:"system_prompt"`
}

func (r completeReq) toInput() assistant.CompleteInput {
	return assistant.CompleteInput{Prompt: r.Prompt, SystemPrompt: r.SystemPrompt}
}

type providerReq struct {
	ProviderID string `json:"-"` // populated from URI param when present
	Endpoint   string `json:"endpoint"`
	ModelID    string `json:"model_id"`
	Credential string `json:"credential"`
}

func (r providerReq) toInput() assistant.ProviderInput {
	return assistant.ProviderInput{
		ProviderID: r.ProviderID,
		Endpoint:   r.Endpoint,
		ModelID:    r.ModelID,
		Credential: r.Credential,
	}
}

type testConnectionReq struct {
	ProviderID string `json:"provider_id" binding:"required"`
	Endpoint   string `json:"endpoint"`
	ModelID    string `json:"model_id"`
	Credential string `json:"credential"`
}

func (r testConnectionReq) toInput() assistant.ProviderInput {
	return assistant.ProviderInput{
		ProviderID: r.ProviderID,
		Endpoint:   r.Endpoint,
		ModelID:    r.ModelID,
		Credential: r.Credential,
	}
}

type correctionReq struct {
	Field      string `json:"field" binding:"required"`
	Original   string `json:"original"`
	Choice     string `json:"choice" binding:"required"`
	SourceText string `json:"source_text"`
	TaskID     string `json:"task_id"`
}

func (r correctionReq) toInput() assistant.CorrectionInput {
	return assistant.CorrectionInput{
		Field:      r.Field,
		Original:   r.Original,
		Choice:     r.Choice,
		SourceText: r.SourceText,
		TaskID:     r.TaskID,
	}
}

type durationAccuracyReq struct {
	Category         string `json:"category"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"required,min=1"`
	ActualMinutes    int    `json:"actual_minutes" binding:"required,min=1"`
}

func (r durationAccuracyReq) toInput() assistant.DurationAccuracyInput {
	return assistant.DurationAccuracyInput{
		Category:         r.Category,
		EstimatedMinutes: r.EstimatedMinutes,
		ActualMinutes:    r.ActualMinutes,
	}
}

type completionReq struct {
	TaskID string  `json:"task_id"`
	Task   taskReq `json:"task"`
	// StartedAt and CompletedAt describe an inline task; ignored with task_id.
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (r completionReq) toInput() assistant.CompletionInput {
	if r.TaskID != "" {
		return assistant.CompletionInput{TaskID: r.TaskID}
	}
	in := r.Task.toInput()
	task := model.Task{
		Title:            in.Title,
		Notes:            in.Notes,
		DueAt:            in.DueAt,
		Priority:         in.Priority,
		Category:         in.Category,
		CustomCategoryID: in.CustomCategoryID,
		EstimatedMinutes: in.EstimatedMinutes,
		StartedAt:        r.StartedAt,
		CompletedAt:      r.CompletedAt,
	}
	if r.StartedAt != nil {
		task.CreatedAt = *r.StartedAt
	}
	return assistant.CompletionInput{Task: task}
}

type correctionRateReq struct {
	Days int `form:"days"`
}

// --- Response DTOs ---

type estimateResp struct {
	Suggested      bool    `json:"suggested"`
	Minutes        int     `json:"minutes,omitempty"`
	Confidence     string  `json:"confidence,omitempty"`
	Reasoning      string  `json:"reasoning,omitempty"`
	Defaulted      bool    `json:"defaulted"`
	Personalized   bool    `json:"personalized"`
	ContextQuality float64 `json:"context_quality"`
}

func (h *handler) newEstimateResp(out assistant.EstimateOutput) estimateResp {
	return estimateResp{
		Suggested:      out.Suggested,
		Minutes:        out.Minutes,
		Confidence:     string(out.Confidence),
		Reasoning:      out.Reasoning,
		Defaulted:      out.Defaulted,
		Personalized:   out.Personalized,
		ContextQuality: out.ContextQuality,
	}
}

type priorityResp struct {
	Suggested      bool    `json:"suggested"`
	Priority       string  `json:"priority,omitempty"`
	Reasoning      string  `json:"reasoning,omitempty"`
	Defaulted      bool    `json:"defaulted"`
	Personalized   bool    `json:"personalized"`
	ContextQuality float64 `json:"context_quality"`
}

func (h *handler) newPriorityResp(out assistant.PriorityOutput) priorityResp {
	return priorityResp{
		Suggested:      out.Suggested,
		Priority:       string(out.Priority),
		Reasoning:      out.Reasoning,
		Defaulted:      out.Defaulted,
		Personalized:   out.Personalized,
		ContextQuality: out.ContextQuality,
	}
}

type orderedTaskResp struct {
	Position int    `json:"position"`
	Index    int    `json:"index"`
	Title    string `json:"title"`
}

type orderResp struct {
	Suggested bool              `json:"suggested"`
	Tasks     []orderedTaskResp `json:"tasks"`
	Reasoning string            `json:"reasoning,omitempty"`
	Defaulted bool              `json:"defaulted"`
}

func (h *handler) newOrderResp(out assistant.OrderOutput) orderResp {
	tasks := make([]orderedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = orderedTaskResp{Position: t.Position, Index: t.Index, Title: t.Task.Title}
	}
	return orderResp{
		Suggested: out.Suggested,
		Tasks:     tasks,
		Reasoning: out.Reasoning,
		Defaulted: out.Defaulted,
	}
}

type analyzeResp struct {
	Suggested         bool             `json:"suggested"`
	Analysis          *prompt.Analysis `json:"analysis,omitempty"`
	Defaulted         bool             `json:"defaulted"`
	Personalized      bool             `json:"personalized"`
	ContextQuality    float64          `json:"context_quality"`
	HasMinimalContext bool             `json:"has_minimal_context"`
}

func (h *handler) newAnalyzeResp(out assistant.AnalyzeOutput) analyzeResp {
	resp := analyzeResp{
		Suggested:         out.Suggested,
		Personalized:      out.Personalized,
		ContextQuality:    out.ContextQuality,
		HasMinimalContext: out.HasMinimalContext,
	}
	if out.Suggested {
		a := out.Analysis
		resp.Analysis = &a
		resp.Defaulted = a.Defaulted
	}
	return resp
}

type completeResp struct {
	Text string `json:"text"`
}

type providersResp struct {
	Active    string               `json:"active"`
	Providers []llmprovider.Status `json:"providers"`
	LastError string               `json:"last_error,omitempty"`
}

func (h *handler) newProvidersResp(out assistant.ProvidersOutput) providersResp {
	return providersResp{
		Active:    out.Active,
		Providers: out.Providers,
		LastError: out.LastError,
	}
}

type activateResp struct {
	Active    string `json:"active"`
	Requested string `json:"requested"`
	Reverted  bool   `json:"reverted"`
}

type modelsResp struct {
	Models []string `json:"models"`
}

type recordedResp struct {
	Recorded bool `json:"recorded"`
}

type completionResp struct {
	TaskID      string             `json:"task_id,omitempty"`
	Title       string             `json:"title"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
	Minutes     int                `json:"minutes"`
}

func (h *handler) newCompletionResp(t model.Task) completionResp {
	resp := completionResp{
		TaskID:  t.ID,
		Title:   t.Title,
		Minutes: t.DurationMinutes(),
	}
	if t.CompletedAt != nil {
		at := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &at
	}
	return resp
}

type correctionRateResp struct {
	Days int     `json:"days"`
	Rate float64 `json:"rate"`
}

type statsResp struct {
	Corrections      int     `json:"corrections"`
	DurationAccuracy int     `json:"duration_accuracy"`
	Impressions      int     `json:"impressions"`
	CompletionCount  int     `json:"completion_count"`
	PatternEntries   int     `json:"pattern_entries"`
	CorrectionRate   float64 `json:"correction_rate"`
	Processing       bool    `json:"processing"`
}

func (h *handler) newStatsResp(out assistant.StatsOutput, processing bool) statsResp {
	return statsResp{
		Corrections:      out.Corrections,
		DurationAccuracy: out.DurationAccuracy,
		Impressions:      out.Impressions,
		CompletionCount:  out.CompletionCount,
		PatternEntries:   out.PatternEntries,
		CorrectionRate:   out.CorrectionRate,
		Processing:       processing,
	}
}
