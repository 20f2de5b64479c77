package inference

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// cleanJSONResponse strips markdown fences and any text around the JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// ParseResponse decodes a model answer into a Result.
func ParseResponse(raw string) (*Result, error) {
	cleaned := cleanJSONResponse(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInferenceUnavailable)
	}
	var res Result
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrInferenceUnavailable, err)
	}
	if len(res.Tags) == 0 {
		return nil, fmt.Errorf("%w: response has no tags", ErrInferenceUnavailable)
	}
	return &res, nil
}
