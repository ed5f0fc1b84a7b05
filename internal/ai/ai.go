package ai

import "context"

// Question is one multiple-choice question as read from a page image.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuestionParser reads multiple-choice questions from an image or PDF.
type QuestionParser interface {
	ParseQuestions(ctx context.Context, data []byte, mimeType string) ([]Question, error)
}
