package assistant_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/assistant"
)

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	lastBody []byte
	lastAuth string
	status   int
	response string
}

func (s *ClientTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.lastBody = nil
	s.lastAuth = ""
	s.response = `{"choices":[{"message":{"role":"assistant","content":"\"Market rally continues\""}}]}`
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/chat/completions", r.URL.Path)
		s.Equal(http.MethodPost, r.Method)
		s.lastAuth = r.Header.Get("Authorization")
		s.lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) client(key string) *assistant.Client {
	return assistant.NewClient(assistant.Config{
		APIKey:  key,
		Model:   "llama-3.1-8b-instant",
		BaseURL: s.server.URL + "/",
	})
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestComplete_Text() {
	answer, err := s.client("secret").Complete(context.Background(), "write a title", false)
	s.Require().NoError(err)
	s.Equal("Market rally continues", answer)

	s.Equal("Bearer secret", s.lastAuth)
	s.Equal("llama-3.1-8b-instant", gjson.GetBytes(s.lastBody, "model").String())
	s.Equal(0.3, gjson.GetBytes(s.lastBody, "temperature").Float())
	s.Equal(int64(200), gjson.GetBytes(s.lastBody, "max_tokens").Int())
	s.Equal(int64(1), gjson.GetBytes(s.lastBody, "messages.#").Int())
	s.Equal("user", gjson.GetBytes(s.lastBody, "messages.0.role").String())
	s.Equal("write a title", gjson.GetBytes(s.lastBody, "messages.0.content").String())
}

func (s *ClientTestSuite) TestComplete_JSONAddsSystemMessage() {
	s.response = "{\"choices\":[{\"message\":{\"content\":\"```json\\n{\\\"hasIssues\\\":false}\\n```\"}}]}"

	answer, err := s.client("secret").Complete(context.Background(), "check", true)
	s.Require().NoError(err)
	s.Equal(`{"hasIssues":false}`, answer)

	s.Equal(float64(0), gjson.GetBytes(s.lastBody, "temperature").Float())
	s.Equal(int64(2), gjson.GetBytes(s.lastBody, "messages.#").Int())
	s.Equal("system", gjson.GetBytes(s.lastBody, "messages.0.role").String())
	s.Equal("user", gjson.GetBytes(s.lastBody, "messages.1.role").String())
}

func (s *ClientTestSuite) TestComplete_UpstreamError() {
	s.status = http.StatusTooManyRequests
	s.response = `{"error":{"message":"rate limit reached"}}`

	_, err := s.client("secret").Complete(context.Background(), "x", false)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	s.Contains(err.Error(), "rate limit reached")
}

func (s *ClientTestSuite) TestComplete_MissingContent() {
	s.response = `{"choices":[]}`

	_, err := s.client("secret").Complete(context.Background(), "x", false)
	s.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (s *ClientTestSuite) TestComplete_Disabled() {
	c := s.client("  ")
	s.False(c.Enabled())

	_, err := c.Complete(context.Background(), "x", false)
	s.ErrorIs(err, assistant.ErrDisabled)
	s.Nil(s.lastBody)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hello", assistant.CleanText(`  "Hello" `))
	assert.Equal(t, "Hello", assistant.CleanText(`'Hello'`))
	assert.Equal(t, `{"a":1}`, assistant.CleanText("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", assistant.CleanText("```\nplain\n```"))
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":{"b":1}}`, assistant.ExtractJSON(`Sure! {"a":{"b":1}} hope it helps`))
	assert.Empty(t, assistant.ExtractJSON("no json here"))
	assert.Empty(t, assistant.ExtractJSON("{ not json }"))

	require.NotPanics(t, func() { assistant.ExtractJSON("}{") })
}
