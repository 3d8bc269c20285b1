package recommend

import (
	"encoding/json"
	"strings"

	"github.com/smartdine/dinerag/internal/domain"
)

// llmReply is the JSON shape the model is instructed to produce. Missing
// fields decode to their zero values.
type llmReply struct {
	BestRestaurant string   `json:"bestRestaurant"`
	Alternatives   []string `json:"alternatives"`
	Explanation    string   `json:"explanation"`
}

// reconcile maps the raw model reply back to catalog entities from the
// retrieved top-K. The second return value is false when the reply did not
// parse and the fallback response was used.
func reconcile(reply string, retrieved []domain.Restaurant) (domain.RagResponse, bool) {
	var parsed llmReply
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		return fallbackResponse(reply, retrieved), false
	}

	alternatives := make([]domain.Restaurant, 0, len(parsed.Alternatives))
	for _, name := range parsed.Alternatives {
		if r := findByName(name, retrieved); r != nil {
			alternatives = append(alternatives, *r)
		}
	}

	return domain.RagResponse{
		Best:         findByName(parsed.BestRestaurant, retrieved),
		Alternatives: alternatives,
		Explanation:  parsed.Explanation,
	}, true
}

// extractJSON slices the JSON object out of a possibly noisy model reply:
// strip a ```json or ``` fence if present, then cut from the first '{' to
// the last '}'.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	s = strings.TrimSpace(s)

	first := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')
	if first != -1 && last != -1 && first < last {
		s = s[first : last+1]
	}
	return s
}

// findByName resolves a referenced name to the first retrieved restaurant
// whose name contains it, case-insensitively. Blank names resolve to nil.
// Substring matching is lossy ("Joe" matches both "Joe's Pizza" and
// "Joe Bistro") but preserved for parity with stored behavior.
func findByName(name string, retrieved []domain.Restaurant) *domain.Restaurant {
	if name == "" {
		return nil
	}
	lowered := strings.ToLower(name)
	for i := range retrieved {
		if strings.Contains(strings.ToLower(retrieved[i].Name), lowered) {
			return &retrieved[i]
		}
	}
	return nil
}

// fallbackResponse promotes the top-ranked candidate when the model reply
// is unusable; the remainder of the top-K becomes the alternatives.
func fallbackResponse(reply string, retrieved []domain.Restaurant) domain.RagResponse {
	resp := domain.RagResponse{
		Alternatives: []domain.Restaurant{},
		Explanation:  "LLM returned: " + truncate(reply, 200) + "... (parsing failed)",
	}
	if len(retrieved) > 0 {
		best := retrieved[0]
		resp.Best = &best
		resp.Alternatives = append(resp.Alternatives, retrieved[1:]...)
	}
	return resp
}

// truncate cuts s to at most n runes, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
