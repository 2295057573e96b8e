package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrAIKeyMissing = errors.New("ai api key is not configured")
	ErrAIRequest    = errors.New("ai provider request failed")
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// LinkSuggestion is one proposed internal link from a dynamic page to a
// related sibling page.
type LinkSuggestion struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AILinkService asks an OpenAI-compatible chat endpoint which sibling
// pages a given page should link to, to strengthen internal linking
// between generated landing pages.
type AILinkService struct {
	settings    *SystemSettingService
	pages       *DynamicPageService
	http        httpDoer
	baseURL     string
	model       string
	fallbackKey string
}

// NewAILinkService constructs the service. apiKey is the env-provided
// fallback; a key stored in system settings takes precedence.
func NewAILinkService(settings *SystemSettingService, pages *DynamicPageService, apiKey, baseURL, model string) *AILinkService {
	return &AILinkService{
		settings:    settings,
		pages:       pages,
		http:        &http.Client{Timeout: 60 * time.Second},
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		model:       strings.TrimSpace(model),
		fallbackKey: strings.TrimSpace(apiKey),
	}
}

// SetHTTPClient swaps the underlying HTTP client, used by tests.
func (s *AILinkService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 60 * time.Second}
		return
	}
	s.http = client
}

func (s *AILinkService) apiKey() (string, error) {
	if s.settings != nil {
		if settings, err := s.settings.GetSettings(); err == nil && settings.AIAPIKey != "" {
			return settings.AIAPIKey, nil
		}
	}
	if s.fallbackKey != "" {
		return s.fallbackKey, nil
	}
	return "", ErrAIKeyMissing
}

// SuggestLinks returns up to limit sibling pages the given page should
// link to. Slugs the model invents are dropped; with no siblings the
// result is empty without calling the provider.
func (s *AILinkService) SuggestLinks(ctx context.Context, pageID uint, limit int) ([]LinkSuggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	page, err := s.pages.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	all, err := s.pages.ListActive()
	if err != nil {
		return nil, err
	}

	siblings := make(map[string]LinkSuggestion)
	var menu []string
	for _, sibling := range all {
		if sibling.Slug == page.Slug {
			continue
		}
		siblings[sibling.Slug] = LinkSuggestion{
			Slug:  sibling.Slug,
			Title: fmt.Sprintf("Virtual Office in %s for %s", sibling.AreaName, sibling.Purpose),
			URL:   "/virtual-office/" + sibling.Slug,
		}
		menu = append(menu, fmt.Sprintf("%s (%s, %s, %s)", sibling.Slug, sibling.AreaName, sibling.CityName, sibling.Purpose))
	}
	if len(menu) == 0 {
		return nil, nil
	}

	key, err := s.apiKey()
	if err != nil {
		return nil, err
	}

	userPrompt := fmt.Sprintf(
		"Current page: %s (%s, %s, %s).\nCandidate pages:\n%s\nPick up to %d candidates most relevant to link from the current page. Respond with one slug per line and nothing else.",
		page.Slug, page.AreaName, page.CityName, page.Purpose,
		strings.Join(menu, "\n"), limit,
	)

	content, err := s.complete(ctx, key, userPrompt)
	if err != nil {
		return nil, err
	}

	var suggestions []LinkSuggestion
	for _, line := range strings.Split(content, "\n") {
		slug := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-* "))
		suggestion, ok := siblings[slug]
		if !ok {
			continue
		}
		suggestions = append(suggestions, suggestion)
		delete(siblings, slug)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions, nil
}

func (s *AILinkService) complete(ctx context.Context, apiKey, userPrompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You select internal links between virtual office landing pages. Prefer pages in the same city or for the same purpose."},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response", ErrAIRequest)
	}
	if resp.StatusCode != http.StatusOK {
		message := strings.TrimSpace(parsed.Error.Message)
		if message == "" {
			message = resp.Status
		}
		return "", fmt.Errorf("%w: %s", ErrAIRequest, message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrAIRequest)
	}
	return parsed.Choices[0].Message.Content, nil
}
