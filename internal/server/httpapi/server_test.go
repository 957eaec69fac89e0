package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/dmitrijs2005/listbot/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type fakeExecutor struct {
	got          []engine.Command
	reply        engine.Reply
	summaries    []models.Summary
	summariesErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd engine.Command) engine.Reply {
	f.got = append(f.got, cmd)
	return f.reply
}

func (f *fakeExecutor) Summaries(ctx context.Context, owner int64) ([]models.Summary, error) {
	return f.summaries, f.summariesErr
}

func newTestServer(exec Executor) http.Handler {
	return NewHTTPServer(":0", logging.Nop(), exec, secret).Router()
}

func token(t *testing.T, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken("discord", []byte(secret), validity)
	require.NoError(t, err)
	return tok
}

func do(h http.Handler, method, path, body, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth_NoAuth(t *testing.T) {
	rec := do(newTestServer(&fakeExecutor{}), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCommands_Success(t *testing.T) {
	exec := &fakeExecutor{reply: engine.Reply{
		Message: `Added "FLCL" at rank 1.`,
		Pages:   []models.Page{{Title: "anime", Body: "1. FLCL", Footer: "7/2048", Color: 0x3498DB}},
	}}
	h := newTestServer(exec)

	rec := do(h, http.MethodPost, "/v1/commands",
		`{"function":"add","parameter":"FLCL","owner":42,"display_name":"Ryuko","list_id":"anime"}`, token(t, time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, exec.got, 1)
	assert.Equal(t, engine.Command{Function: "add", Parameter: "FLCL", Owner: 42, DisplayName: "Ryuko", ListID: "anime"}, exec.got[0])

	var resp commandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, exec.reply.Message, resp.Message)
	assert.Equal(t, exec.reply.Pages, resp.Pages)
}

func TestCommands_UserErrorIsStill200(t *testing.T) {
	exec := &fakeExecutor{reply: engine.Reply{Message: "No list in use.", Err: common.ErrNoActiveList}}
	rec := do(newTestServer(exec), http.MethodPost, "/v1/commands", `{"function":"add","owner":1}`, token(t, time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":false,"message":"No list in use."}`, rec.Body.String())
}

func TestCommands_BadRequests(t *testing.T) {
	h := newTestServer(&fakeExecutor{})
	tok := token(t, time.Hour)

	for name, body := range map[string]string{
		"malformed":     `{"function":`,
		"unknown field": `{"function":"add","owner":1,"color":"red"}`,
		"no owner":      `{"function":"add"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/v1/commands", body, tok)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCommands_OversizedBodyRejected(t *testing.T) {
	exec := &fakeExecutor{}
	body := `{"function":"multiadd","owner":1,"parameter":"` + strings.Repeat("a; ", 30000) + `"}`

	rec := do(newTestServer(exec), http.MethodPost, "/v1/commands", body, token(t, time.Hour))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, exec.got)
}

func TestCommands_Auth(t *testing.T) {
	exec := &fakeExecutor{}
	h := newTestServer(exec)
	body := `{"function":"show","owner":1}`

	rec := do(h, http.MethodPost, "/v1/commands", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/v1/commands", body, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/v1/commands", body, token(t, -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"token expired"}`, rec.Body.String())

	assert.Empty(t, exec.got)
}

func TestCommands_MethodNotAllowed(t *testing.T) {
	rec := do(newTestServer(&fakeExecutor{}), http.MethodGet, "/v1/commands", "", token(t, time.Hour))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListSummaries(t *testing.T) {
	exec := &fakeExecutor{summaries: []models.Summary{{ListID: "anime", Count: 3, Active: true}}}
	rec := do(newTestServer(exec), http.MethodGet, "/v1/owners/42/lists", "", token(t, time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"list_id":"anime","count":3,"active":true}]`, rec.Body.String())
}

func TestListSummaries_EmptyAndErrors(t *testing.T) {
	tok := token(t, time.Hour)

	rec := do(newTestServer(&fakeExecutor{}), http.MethodGet, "/v1/owners/42/lists", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(newTestServer(&fakeExecutor{summariesErr: errors.New("db down")}), http.MethodGet, "/v1/owners/42/lists", "", tok)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(newTestServer(&fakeExecutor{}), http.MethodGet, "/v1/owners/abc/lists", "", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
