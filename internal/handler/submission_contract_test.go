package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"
)

const submitResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "message"],
  "properties": {
    "success": {"type": "boolean"},
    "message": {"type": "string", "minLength": 1},
    "data": {
      "type": "object",
      "required": ["reference_id", "result"],
      "properties": {
        "reference_id": {"type": "string", "minLength": 1},
        "result": {"enum": ["Leadership Training", "Team-Building Training", "Both Leadership and Team-Building Training"]}
      }
    }
  }
}`

func compileSubmitSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	compiler := jsonschema.NewCompiler()
	require.NoError(t, compiler.AddResource("submit_response.json", strings.NewReader(submitResponseSchema)))
	schema, err := compiler.Compile("submit_response.json")
	require.NoError(t, err)
	return schema
}

func TestSubmitResponsesMatchContract(t *testing.T) {
	schema := compileSubmitSchema(t)

	cases := []struct {
		name   string
		repo   *countingRepo
		mail   *countingMailer
		body   map[string]interface{}
		status int
	}{
		{name: "success", repo: &countingRepo{}, mail: &countingMailer{}, body: validPayload(), status: fiber.StatusOK},
		{name: "bad request", repo: &countingRepo{}, mail: &countingMailer{}, body: map[string]interface{}{"name": "x"}, status: fiber.StatusBadRequest},
		{name: "persistence error", repo: &countingRepo{err: errors.New("down")}, mail: &countingMailer{}, body: validPayload(), status: fiber.StatusInternalServerError},
		{name: "notification error", repo: &countingRepo{}, mail: &countingMailer{err: errors.New("down")}, body: validPayload(), status: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newSubmitApp(tc.repo, tc.mail)

			raw, err := json.Marshal(tc.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/submit", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			var document interface{}
			require.NoError(t, json.Unmarshal(body, &document))
			require.NoError(t, schema.Validate(document))

			success := document.(map[string]interface{})["success"].(bool)
			require.Equal(t, tc.status == fiber.StatusOK, success)
		})
	}
}
