package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]interface{}
}

func newSendGridServer(t *testing.T, status int) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &captured.body))

		w.Header().Set("X-Message-Id", "msg-123")
		w.WriteHeader(status)
		if status >= 300 {
			_, _ = w.Write([]byte(`{"errors":[{"message":"bad"}]}`))
		}
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestSendGridSend(t *testing.T) {
	server, captured := newSendGridServer(t, http.StatusAccepted)

	client, err := NewSendGrid(Config{APIKey: "SG.test", FromEmail: "noreply@example.com", FromName: "Assessment", Host: server.URL}, zerolog.New(io.Discard))
	require.NoError(t, err)

	err = client.Send(context.Background(), Message{
		To:      "jane@example.com",
		ToName:  "Jane",
		Subject: "You need Leadership Training",
		Text:    "plain",
		HTML:    "<p>html</p>",
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, captured.method)
	require.Equal(t, "/v3/mail/send", captured.path)
	require.Equal(t, "Bearer SG.test", captured.auth)
	require.Equal(t, "You need Leadership Training", captured.body["subject"])

	from := captured.body["from"].(map[string]interface{})
	require.Equal(t, "noreply@example.com", from["email"])

	personalizations := captured.body["personalizations"].([]interface{})
	require.Len(t, personalizations, 1)
	to := personalizations[0].(map[string]interface{})["to"].([]interface{})
	require.Equal(t, "jane@example.com", to[0].(map[string]interface{})["email"])

	content := captured.body["content"].([]interface{})
	require.Len(t, content, 2)
}

func TestSendGridSendAPIError(t *testing.T) {
	server, _ := newSendGridServer(t, http.StatusUnauthorized)

	client, err := NewSendGrid(Config{APIKey: "SG.bad", FromEmail: "noreply@example.com", Host: server.URL}, zerolog.New(io.Discard))
	require.NoError(t, err)

	err = client.Send(context.Background(), Message{To: "jane@example.com", Subject: "s", Text: "t", HTML: "<p>t</p>"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestNewSendGridRequiresCredentials(t *testing.T) {
	_, err := NewSendGrid(Config{FromEmail: "noreply@example.com"}, zerolog.New(io.Discard))
	require.Error(t, err)

	_, err = NewSendGrid(Config{APIKey: "SG.key"}, zerolog.New(io.Discard))
	require.Error(t, err)
}
