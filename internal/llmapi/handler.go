// Package llmapi serves the LLM-backed answer-rating endpoints.
package llmapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"formloom/internal/config"
	"formloom/internal/form"
	"formloom/internal/gemini"
	"formloom/internal/httputil"
	"formloom/internal/prompt"
	"formloom/internal/rating"

	"github.com/gin-gonic/gin"
)

const maxRatingTokens = 1024

// Generator is the LLM call the handlers depend on; *gemini.Client
// satisfies it, tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, req gemini.Request) (gemini.Response, error)
}

type fieldRequest struct {
	Question       any `json:"question"`
	Value          any `json:"value"`
	AttributeValue any `json:"attributeValue"`
	Examples       any `json:"examples"`
	RowData        any `json:"rowData"`
}

// RateSimpleField handles POST /api/llm/rate-simple-field.
func RateSimpleField(llm Generator, prompts *prompt.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindFieldRequest(c)
		if !ok {
			return
		}
		in, msg := validateFieldInput(req.Question, req.Value, req.Examples)
		if msg != "" {
			httputil.Fail(c, http.StatusBadRequest, msg)
			return
		}

		userPrompt, err := prompts.SimpleField(prompt.SimpleFieldData{
			Question: in.question,
			Value:    in.value,
			Examples: prompt.FormatExamples(in.examples),
		})
		if err != nil {
			log.Printf("rate-simple-field prompt: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to build prompt")
			return
		}
		rateField(c, llm, prompts.System(), userPrompt)
	}
}

// RateDetailedRow handles POST /api/llm/rate-detailed-row.
func RateDetailedRow(llm Generator, prompts *prompt.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindFieldRequest(c)
		if !ok {
			return
		}
		in, msg := validateFieldInput(req.Question, req.AttributeValue, req.Examples)
		if msg != "" {
			httputil.Fail(c, http.StatusBadRequest, msg)
			return
		}
		if row, ok := req.RowData.(map[string]any); ok {
			in.rowData = row
		}

		userPrompt, err := prompts.DetailedRow(prompt.DetailedRowData{
			Question: in.question,
			Value:    in.value,
			RowData:  prompt.FormatRowData(in.rowData),
			Examples: prompt.FormatExamples(in.examples),
		})
		if err != nil {
			log.Printf("rate-detailed-row prompt: %v", err)
			httputil.Fail(c, http.StatusInternalServerError, "failed to build prompt")
			return
		}
		rateField(c, llm, prompts.System(), userPrompt)
	}
}

func bindFieldRequest(c *gin.Context) (fieldRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxFormBytes)
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if httputil.IsBodyTooLarge(err) {
			httputil.Fail(c, http.StatusRequestEntityTooLarge, "request body too large")
			return req, false
		}
		httputil.Fail(c, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	return req, true
}

func rateField(c *gin.Context, llm Generator, systemPrompt, userPrompt string) {
	if llm == nil {
		httputil.Fail(c, http.StatusInternalServerError, "language model not configured")
		return
	}
	resp, err := llm.Generate(c.Request.Context(), gemini.Request{
		SystemPrompt:    systemPrompt,
		UserPrompt:      userPrompt,
		ResponseSchema:  ratingSchema(),
		MaxOutputTokens: maxRatingTokens,
	})
	if err != nil {
		log.Printf("rate field: %v", err)
		httputil.Fail(c, http.StatusInternalServerError, "failed to rate field")
		return
	}

	var r rating.Rating
	if err := json.Unmarshal([]byte(resp.Text), &r); err != nil {
		log.Printf("rate field: invalid model JSON: %v", err)
		httputil.Fail(c, http.StatusInternalServerError, "invalid model response")
		return
	}
	httputil.OK(c, r.StripSuggestion())
}

type formRateRequest struct {
	Spec  json.RawMessage `json:"spec"`
	Value map[string]any  `json:"value"`
}

// RateForm handles POST /api/llm/rate. Every failure is swallowed into
// a 200 with empty ratings: the fill-in UI treats whole-form review as
// best-effort and must keep working when the model is down.
func RateForm(llm Generator, prompts *prompt.Library) gin.HandlerFunc {
	empty := map[string]rating.Rating{}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxExportBytes)
		var req formRateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("rate form: bad request body: %v", err)
			httputil.OK(c, empty)
			return
		}

		var spec form.Spec
		if err := json.Unmarshal(req.Spec, &spec); err != nil {
			log.Printf("rate form: bad spec: %v", err)
			httputil.OK(c, empty)
			return
		}

		if llm == nil {
			httputil.OK(c, empty)
			return
		}

		userPrompt, err := prompts.Form(prompt.FormData{
			FormName: spec.Name,
			Body:     buildFormBody(spec, req.Value),
		})
		if err != nil {
			log.Printf("rate form prompt: %v", err)
			httputil.OK(c, empty)
			return
		}

		resp, err := llm.Generate(c.Request.Context(), gemini.Request{
			SystemPrompt:    prompts.System(),
			UserPrompt:      userPrompt,
			ResponseSchema:  formRatingSchema(),
			MaxOutputTokens: 8192,
		})
		if err != nil {
			log.Printf("rate form: %v", err)
			httputil.OK(c, empty)
			return
		}

		httputil.OK(c, rating.MapByPath(spec, json.RawMessage(resp.Text)))
	}
}
