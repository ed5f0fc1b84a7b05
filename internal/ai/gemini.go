package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrNoQuestions = errors.New("no questions found; the input might be unclear or contain no multiple-choice questions")

const ocrPrompt = `You are an expert Optical Character Recognition (OCR) system specialized in math question papers.
Your task is to meticulously extract all multiple-choice math questions from the provided document.
For each question, you must identify the question text and all its corresponding options. Pay close attention to mathematical notations, symbols, and equations.
Your response must be a valid JSON array of objects conforming to the provided schema. Do not include any introductory text or markdown formatting.`

type Gemini struct {
	client *genai.Client
	model  string
}

var _ QuestionParser = (*Gemini)(nil)

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) Model() string { return g.model }

// ParseQuestions sends the document inline with the OCR prompt and decodes
// the JSON array the model returns.
func (g *Gemini) ParseQuestions(ctx context.Context, data []byte, mimeType string) ([]Question, error) {
	if g.client == nil {
		return nil, errors.New("gemini not configured")
	}
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	content := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				{Text: ocrPrompt},
			},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, content, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   questionSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return decodeQuestions(res.Text())
}

func decodeQuestions(js string) ([]Question, error) {
	js = stripCodeFences(js)
	if js == "" {
		return nil, ErrNoQuestions
	}
	if !json.Valid([]byte(js)) {
		s := findFirstJSON(js)
		if s == "" {
			return nil, errors.New("failed to parse Gemini response - no JSON found")
		}
		js = s
	}
	if err := validateQuestions([]byte(js)); err != nil {
		return nil, err
	}
	var out []Question
	if err := json.Unmarshal([]byte(js), &out); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response as JSON: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	// Opening fence: ```json, ``` and the like
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// findFirstJSON returns the first balanced array or object in s. Brackets inside
// strings are not special-cased.
func findFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '[', '{':
			if start == -1 {
				start = i
			}
			depth++
		case ']', '}':
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
