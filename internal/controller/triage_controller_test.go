package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"abdochat-be/internal/dto"
	"abdochat-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTriageService mirrors the real service's scope behavior without the
// retrieval pipeline behind it.
type fakeTriageService struct {
	chatErr error
}

func (f *fakeTriageService) Validate(ctx context.Context, req *dto.ValidateRequest) *dto.ValidateResponse {
	if !rag.IsInScope(req.MainSymptom) {
		return &dto.ValidateResponse{Ok: false, Reply: rag.ReplyOutOfScope}
	}
	return &dto.ValidateResponse{Ok: true}
}

func (f *fakeTriageService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	if !rag.IsInScope(req.MainSymptom) {
		return &dto.ChatResponse{Reply: rag.ReplyOutOfScope}, nil
	}
	return &dto.ChatResponse{Reply: "stub reply"}, nil
}

func newTestApp(svc *fakeTriageService) *fiber.App {
	app := fiber.New()
	NewTriageController(svc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestValidateOutOfScope(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	resp, body := postJSON(t, app, "/validate", fiber.Map{"mainSymptom": "I have a headache"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, rag.ReplyOutOfScope, body["reply"])
}

func TestValidateInScopeOmitsReply(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	resp, body := postJSON(t, app, "/validate", fiber.Map{"mainSymptom": "stomach pain"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	_, hasReply := body["reply"]
	assert.False(t, hasReply, "reply must be omitted when ok=true")
}

func TestValidateMissingFieldIsRefusedNotRejected(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	// A missing mainSymptom decodes to "" and fails the gate; it is not a
	// 400-level input error.
	resp, body := postJSON(t, app, "/validate", fiber.Map{})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
}

func TestChatAgreementWithValidateRefusal(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	_, validateBody := postJSON(t, app, "/validate", fiber.Map{"mainSymptom": "I have a headache"})
	_, chatBody := postJSON(t, app, "/chat", fiber.Map{"mainSymptom": "I have a headache"})

	assert.Equal(t, validateBody["reply"], chatBody["reply"],
		"/validate and /chat must return the identical refusal message")
}

func TestChatDefaultsRefineAnswer(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	resp, body := postJSON(t, app, "/chat", fiber.Map{"mainSymptom": "stomach pain"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "stub reply", body["reply"])
}

func TestChatCollaboratorOutageIsServerError(t *testing.T) {
	app := newTestApp(&fakeTriageService{chatErr: errors.New("vector store unreachable")})

	resp, _ := postJSON(t, app, "/chat", fiber.Map{"mainSymptom": "stomach pain"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestChatMalformedBody(t *testing.T) {
	app := newTestApp(&fakeTriageService{})

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
