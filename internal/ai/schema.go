package ai

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	genai "google.golang.org/genai"
)

// questionSchema constrains the model output.
var questionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {
				Type:        genai.TypeString,
				Description: "The full text of the question, including any mathematical notations.",
			},
			"options": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "The possible answers for the question.",
			},
		},
		Required: []string{"question", "options"},
	},
}

// questionsJSONSchema checks the same shape locally; the model does not always
// honour the response schema.
const questionsJSONSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "options": {"type": "array", "items": {"type": "string"}}
    },
    "required": ["question", "options"]
  }
}`

var compiledQuestions = jsonschema.MustCompileString("questions.json", questionsJSONSchema)

func validateQuestions(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if err := compiledQuestions.Validate(v); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}
