package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"magiars-be/internal/constant"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type GeminiChatRequest struct {
	Contents []*GeminiChatContent `json:"contents"`
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// ChatHistory is one prior turn. Role is "user" or "assistant".
type ChatHistory struct {
	Chat string
	Role string
}

// Client talks to the Gemini generateContent API. Every public method fails
// soft: without an API key or on any upstream error it returns a deterministic
// local fallback instead of propagating, so a broken LLM never breaks chat.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logf       func(format string, args ...interface{})
}

func NewClient(apiKey string, logf func(format string, args ...interface{})) *Client {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logf:       logf,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Reply generates the assistant answer for message given the prior turns.
func (c *Client) Reply(ctx context.Context, message string, history []*ChatHistory) string {
	if !c.Configured() {
		return constant.UnconfiguredReply
	}

	contents := []*GeminiChatContent{
		textContent(constant.AssistantPersonaPromptV1, constant.ChatMessageRoleUser),
		textContent("Entendido. Estoy listo para ayudar a los usuarios de MAGIARS.", constant.ChatMessageRoleModel),
	}
	for _, turn := range history {
		contents = append(contents, textContent(turn.Chat, geminiRole(turn.Role)))
	}
	contents = append(contents, textContent(message, constant.ChatMessageRoleUser))

	text, err := c.generateContent(ctx, contents)
	if err != nil {
		c.logf("[Chatbot] Reply generation failed: %v", err)
		return constant.FallbackReply
	}
	return strings.TrimSpace(text)
}

// Classify returns one label of constant.CategoryLabels for the conversation.
func (c *Client) Classify(ctx context.Context, history []*ChatHistory) string {
	if !c.Configured() {
		return constant.FallbackCategory
	}

	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Role, turn.Chat)
	}

	contents := []*GeminiChatContent{
		textContent(constant.ClassifyPromptV1+"\n\nConversación:\n"+sb.String(), constant.ChatMessageRoleUser),
	}

	text, err := c.generateContent(ctx, contents)
	if err != nil {
		c.logf("[Chatbot] Classification failed: %v", err)
		return constant.FallbackCategory
	}

	label := strings.TrimSpace(text)
	if !slices.Contains(constant.CategoryLabels, label) {
		return constant.DefaultCategory
	}
	return label
}

// TitleFor produces a short title for a conversation from its first message.
func (c *Client) TitleFor(ctx context.Context, firstMessage string) string {
	if !c.Configured() {
		return Truncate(firstMessage, constant.MaxTitleLength)
	}

	contents := []*GeminiChatContent{
		textContent(constant.TitlePromptV1+"\n\nMensaje: "+firstMessage, constant.ChatMessageRoleUser),
	}

	text, err := c.generateContent(ctx, contents)
	if err != nil {
		c.logf("[Chatbot] Title generation failed: %v", err)
		return Truncate(firstMessage, constant.MaxTitleLength)
	}

	title := strings.TrimSpace(text)
	title = strings.Trim(title, `"'`)
	title = strings.TrimRight(title, ".")
	// The model sometimes ignores the length instruction.
	return Truncate(title, constant.MaxTitleLength)
}

func (c *Client) generateContent(ctx context.Context, contents []*GeminiChatContent) (string, error) {
	payload := GeminiChatRequest{Contents: contents}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiEndpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates in response body %s", string(resBody))
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func textContent(text, role string) *GeminiChatContent {
	return &GeminiChatContent{
		Parts: []*GeminiChatParts{{Text: text}},
		Role:  role,
	}
}

// geminiRole maps stored message roles onto the Gemini wire roles.
func geminiRole(role string) string {
	if role == constant.ChatMessageRoleAssistant {
		return constant.ChatMessageRoleModel
	}
	return constant.ChatMessageRoleUser
}

// Truncate cuts s to max runes, appending an ellipsis when it had to cut.
func Truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
