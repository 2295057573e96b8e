package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

type fakeDoer struct {
	status   int
	content  string
	lastBody []byte
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastBody, _ = io.ReadAll(req.Body)

	payload := chatCompletionResponse{}
	payload.Choices = append(payload.Choices, struct {
		Message chatMessage `json:"message"`
	}{Message: chatMessage{Role: "assistant", Content: f.content}})
	body, _ := json.Marshal(payload)

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     http.Header{},
	}, nil
}

func newLinkServiceFixture(t *testing.T) (*AILinkService, *fakeDoer, map[string]uint) {
	t.Helper()

	gdb := setupServiceTestDB(t)
	pages := NewDynamicPageService(gdb)
	settings := NewSystemSettingService(gdb)

	if _, err := pages.CreateBatch(candidatePages("GST Registration", "Company Registration", "Business Registration")); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	all, err := pages.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ids := make(map[string]uint, len(all))
	for _, page := range all {
		ids[page.Slug] = page.ID
	}

	svc := NewAILinkService(settings, pages, "sk-env", "https://api.openai.com/v1", "gpt-4o-mini")
	doer := &fakeDoer{}
	svc.SetHTTPClient(doer)
	return svc, doer, ids
}

func TestSuggestLinksFiltersToRealSiblings(t *testing.T) {
	svc, doer, ids := newLinkServiceFixture(t)
	doer.content = "baner-company-registration\nmade-up-slug\n- baner-business-registration\n"

	suggestions, err := svc.SuggestLinks(context.Background(), ids["baner-gst-registration"], 5)
	if err != nil {
		t.Fatalf("SuggestLinks: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Slug == "made-up-slug" {
			t.Fatal("invented slug not filtered")
		}
		if s.URL != "/virtual-office/"+s.Slug {
			t.Fatalf("unexpected url %q", s.URL)
		}
	}
}

func TestSuggestLinksOmitsCurrentPageFromCandidates(t *testing.T) {
	svc, doer, ids := newLinkServiceFixture(t)
	// The model echoes the current page's own slug; it must be dropped
	// because a page never links to itself.
	doer.content = "baner-gst-registration"

	suggestions, err := svc.SuggestLinks(context.Background(), ids["baner-gst-registration"], 5)
	if err != nil {
		t.Fatalf("SuggestLinks: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}

	var prompt chatCompletionRequest
	if err := json.Unmarshal(doer.lastBody, &prompt); err != nil {
		t.Fatalf("request body: %v", err)
	}
	userPrompt := prompt.Messages[len(prompt.Messages)-1].Content
	if !bytes.Contains([]byte(userPrompt), []byte("baner-company-registration")) {
		t.Fatal("candidate list missing sibling slug")
	}
}

func TestSuggestLinksRequiresAPIKey(t *testing.T) {
	gdb := setupServiceTestDB(t)
	pages := NewDynamicPageService(gdb)
	settings := NewSystemSettingService(gdb)
	if _, err := pages.CreateBatch(candidatePages("GST Registration", "Company Registration")); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	all, _ := pages.List()

	svc := NewAILinkService(settings, pages, "", "https://api.openai.com/v1", "gpt-4o-mini")
	svc.SetHTTPClient(&fakeDoer{content: "anything"})

	if _, err := svc.SuggestLinks(context.Background(), all[0].ID, 5); !errors.Is(err, ErrAIKeyMissing) {
		t.Fatalf("expected ErrAIKeyMissing, got %v", err)
	}
}

func TestSuggestLinksEnvKeyFallback(t *testing.T) {
	svc, doer, ids := newLinkServiceFixture(t)
	doer.content = "baner-company-registration"

	if _, err := svc.SuggestLinks(context.Background(), ids["baner-gst-registration"], 5); err != nil {
		t.Fatalf("SuggestLinks with env key: %v", err)
	}
}

func TestSuggestLinksUnknownPage(t *testing.T) {
	svc, _, _ := newLinkServiceFixture(t)

	if _, err := svc.SuggestLinks(context.Background(), 9999, 5); !errors.Is(err, ErrDynamicPageNotFound) {
		t.Fatalf("expected ErrDynamicPageNotFound, got %v", err)
	}
}
