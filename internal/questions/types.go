package questions

import (
	"github.com/thywilljoshua/mathq/internal/ai"
	"go.uber.org/zap"
)

const (
	DefaultOutputPath = "extracted_questions.txt"
	DefaultPageLimit  = 5
)

// Candidate is a span of page text that looks like a math question.
type Candidate struct {
	Page    int // 1-based
	Matcher string
	Text    string
}

type Result struct {
	Count        int
	PagesScanned int
	TotalPages   int
	OutputPath   string
	Candidates   []Candidate
	Choices      []ChoiceQuestion
}

type Config struct {
	OutputPath string
	PageLimit  int
	Reader     string
	Parser     ai.QuestionParser
	Logger     *zap.Logger
}

// DefaultConfig returns the settings used when nothing else is specified:
// the first five pages, written to extracted_questions.txt with the rsc reader.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		PageLimit:  DefaultPageLimit,
		Reader:     ReaderRSC,
	}
}

// Alias types from ai package for convenience
type ChoiceQuestion = ai.Question
