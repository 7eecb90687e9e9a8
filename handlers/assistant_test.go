package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
	"github.com/beefmusic/api/testutil"
)

func askAssistant(t *testing.T, handler *AssistantHandler, secret, token, prompt string) *httptest.ResponseRecorder {
	t.Helper()

	req := testutil.MakeRequest("POST", "/api/assistant",
		models.AssistantRequest{Prompt: prompt}, map[string]string{
			"Authorization": "Bearer " + token,
		})
	w := httptest.NewRecorder()
	middleware.RequireUser(secret, handler.Ask)(w, req)
	return w
}

func TestAssistantAsk(t *testing.T) {
	// Stand-in for the chat-completions API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected authorization header %q", got)
		}

		var payload struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(payload.Messages) != 3 || payload.Messages[2].Content != "dame un título" {
			t.Errorf("Unexpected messages: %+v", payload.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "\"Fuego en la Calle\""}},
			},
		})
	}))
	defer server.Close()

	cfg := testutil.GetTestConfig()
	cfg.OpenAIKey = "test-key"
	cfg.OpenAIBaseURL = server.URL
	handler := NewAssistantHandler(cfg)

	token := testutil.UserToken(t, cfg, "user-1", "ana")

	w := askAssistant(t, handler, cfg.JWTSecret, token, "dame un título")
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssistantResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK || resp.Text != "\"Fuego en la Calle\"" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestAssistantNotConfigured(t *testing.T) {
	cfg := testutil.GetTestConfig() // no OpenAI key
	handler := NewAssistantHandler(cfg)

	token := testutil.UserToken(t, cfg, "user-1", "ana")

	w := askAssistant(t, handler, cfg.JWTSecret, token, "hola")
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestAssistantMissingPrompt(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.OpenAIKey = "test-key"
	handler := NewAssistantHandler(cfg)

	token := testutil.UserToken(t, cfg, "user-1", "ana")

	w := askAssistant(t, handler, cfg.JWTSecret, token, "   ")
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
