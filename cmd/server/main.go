package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"convo-intel/internal/app"
	"convo-intel/internal/cache"
	"convo-intel/internal/events"
	"convo-intel/internal/httputil"
	"convo-intel/internal/insight"
	"convo-intel/internal/risk"
)

type clientConfig struct {
	Domain       string   `json:"domain" validate:"required"`
	RiskKeywords []string `json:"risk_keywords"`
	Policies     []string `json:"policies"`
}

type analyzeRequest struct {
	InputType    string       `json:"input_type" validate:"required,oneof=text audio"`
	Conversation string       `json:"conversation"`
	ClientConfig clientConfig `json:"client_config"`
}

type analyzeResponse struct {
	Metadata struct {
		InputType         string   `json:"input_type"`
		DetectedLanguages []string `json:"detected_languages"`
	} `json:"metadata"`
	Insights struct {
		Summary        string   `json:"summary"`
		Sentiment      string   `json:"sentiment"`
		PrimaryIntents []string `json:"primary_intents"`
		TopicsEntities []string `json:"topics_entities"`
	} `json:"insights"`
	RiskAnalysis struct {
		RiskDetected    bool     `json:"risk_detected"`
		TriggerKeywords []string `json:"trigger_keywords"`
	} `json:"risk_analysis"`
	AdvancedAnalysis struct {
		CallOutcome string  `json:"call_outcome"`
		RiskScore   float64 `json:"risk_score"`
	} `json:"advanced_analysis"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/api/analyze", analyzeHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func analyzeHandler(deps app.Deps) http.HandlerFunc {
	maxUpload := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.ContentLength > maxUpload {
			httputil.Fail(deps.Log, w, fmt.Sprintf("request too large (max %d bytes)", maxUpload), nil, http.StatusBadRequest)
			return
		}

		req, err := decodeAnalyzeRequest(r, maxUpload)
		if err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		// Transcription is out of scope: audio submissions must carry a
		// transcript alongside the file.
		if req.InputType == "audio" && req.Conversation == "" {
			httputil.Fail(deps.Log, w, "audio input requires a 'conversation' transcript (transcription not implemented)", nil, http.StatusBadRequest)
			return
		}

		cacheKey := cache.GenerateCacheKey(req.Conversation, req.ClientConfig.Domain, req.ClientConfig.RiskKeywords)
		if cached, err := deps.Cache.GetAnalysis(ctx, cacheKey); err == nil && cached != nil {
			deps.Log.Info("analysis cache hit", "domain", req.ClientConfig.Domain)
			httputil.WriteJSON(w, http.StatusOK, buildResponse(req.InputType, cached.Insight, cached.Report))
			return
		} else if err != nil {
			deps.Log.Warn("cache lookup failed", "err", err)
		}

		ins := deps.Analyzer.Analyze(ctx, req.Conversation)
		report := risk.Score(req.Conversation, req.ClientConfig.RiskKeywords, string(ins.Sentiment))

		if err := deps.Cache.SetAnalysis(ctx, cacheKey, &cache.Analysis{
			Insight: ins,
			Report:  report,
		}, deps.Config.CacheTTLDuration()); err != nil {
			deps.Log.Warn("failed to cache analysis", "err", err)
		}

		publishCompletion(deps, req.ClientConfig.Domain, report)

		httputil.WriteJSON(w, http.StatusOK, buildResponse(req.InputType, ins, report))
	}
}

// decodeAnalyzeRequest accepts a JSON body or multipart form fields with
// the same semantics. An optional multipart "file" upload is accepted
// but its bytes are not processed.
func decodeAnalyzeRequest(r *http.Request, maxUpload int64) (*analyzeRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &req, nil
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	}

	req := &analyzeRequest{
		InputType:    r.FormValue("input_type"),
		Conversation: r.FormValue("conversation"),
	}
	if raw := r.FormValue("client_config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ClientConfig); err != nil {
			return nil, fmt.Errorf("client_config must be valid JSON when sent via form field: %w", err)
		}
	}
	if file, _, err := r.FormFile("file"); err == nil {
		// Uploaded audio is acknowledged but not transcribed.
		file.Close()
	}
	return req, nil
}

func buildResponse(inputType string, ins insight.ModelInsight, report risk.Report) analyzeResponse {
	var resp analyzeResponse
	resp.Metadata.InputType = inputType
	resp.Metadata.DetectedLanguages = ins.DetectedLanguages
	resp.Insights.Summary = ins.Summary
	resp.Insights.Sentiment = string(ins.Sentiment)
	resp.Insights.PrimaryIntents = ins.PrimaryIntents
	resp.Insights.TopicsEntities = ins.TopicsEntities
	resp.RiskAnalysis.RiskDetected = report.RiskDetected
	resp.RiskAnalysis.TriggerKeywords = report.TriggerKeywords
	resp.AdvancedAnalysis.CallOutcome = string(report.CallOutcome)
	resp.AdvancedAnalysis.RiskScore = report.RiskScore
	return resp
}

// publishCompletion emits an analysis.completed event. Publishing is
// best-effort and runs off the request path.
func publishCompletion(deps app.Deps, domain string, report risk.Report) {
	event := events.Event{
		ID:           uuid.New(),
		Domain:       domain,
		RiskDetected: report.RiskDetected,
		RiskScore:    report.RiskScore,
		CallOutcome:  string(report.CallOutcome),
		CompletedAt:  time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := events.PublishWithRetry(ctx, deps.Events, event, 3, 100*time.Millisecond); err != nil {
			deps.Log.Warn("failed to publish analysis event", "err", err)
		}
	}()
}
