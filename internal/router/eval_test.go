package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	store := in_mem.NewInMemStorer()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewEvalRouter(e, history.NewRecorder(store), store).Bind()
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestEvaluate(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantResult  any
		wantPostfix string
		wantTitle   string
	}{
		{name: "arithmetic", body: `{"expression":"(2+3)*4"}`, wantStatus: http.StatusOK, wantResult: 20.0, wantPostfix: "2 3 + 4 *"},
		{name: "right associative power", body: `{"expression":"2**3**2","dialect":"arithmetic"}`, wantStatus: http.StatusOK, wantResult: 512.0, wantPostfix: "2 3 2 ** **"},
		{name: "division by zero sentinel", body: `{"expression":"1/0"}`, wantStatus: http.StatusOK, wantResult: -1.0, wantPostfix: "1 0 /"},
		{name: "boolean", body: `{"expression":"true & ~ false","dialect":"boolean"}`, wantStatus: http.StatusOK, wantResult: true, wantPostfix: "true false ~ &"},
		{name: "empty expression", body: `{"expression":""}`, wantStatus: http.StatusOK, wantResult: 0.0, wantPostfix: ""},
		{name: "unclosed parenthesis", body: `{"expression":"(1+2"}`, wantStatus: http.StatusUnprocessableEntity, wantTitle: "malformed expression"},
		{name: "missing operand", body: `{"expression":"1 +"}`, wantStatus: http.StatusUnprocessableEntity, wantTitle: "stack underflow"},
		{name: "unknown dialect", body: `{"expression":"1","dialect":"ternary"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid json", body: `{"expression":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := do(t, e, http.MethodPost, "/api/v1/evaluate", tt.body)
			assert.Equal(t, tt.wantStatus, status, out)

			if tt.wantStatus != http.StatusOK {
				if tt.wantTitle != "" {
					assert.Equal(t, tt.wantTitle, out["title"])
				}
				assert.NotEmpty(t, out["error"])
				return
			}
			assert.Equal(t, tt.wantResult, out["result"])
			assert.Equal(t, tt.wantPostfix, out["postfix"])
			assert.NotEmpty(t, out["id"])
		})
	}
}

func TestEvaluate_ErrorCarriesPosition(t *testing.T) {
	e := newTestEcho(t)

	status, out := do(t, e, http.MethodPost, "/api/v1/evaluate", `{"expression":"1 + 2 )"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, ")", out["token"])
	assert.Equal(t, 6.0, out["position"])
}

func TestPostfix(t *testing.T) {
	e := newTestEcho(t)

	status, out := do(t, e, http.MethodPost, "/api/v1/postfix", `{"expression":"~ ( true | false )","dialect":"boolean"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "true false | ~", out["postfix"])
	assert.Equal(t, "boolean", out["dialect"])
}

func TestTree(t *testing.T) {
	e := newTestEcho(t)

	status, out := do(t, e, http.MethodPost, "/api/v1/tree", `{"postfix":"2 3 + 4 *"}`)
	require.Equal(t, http.StatusOK, status, out)
	assert.Equal(t, "((2 + 3) * 4)", out["infix"])
	assert.Equal(t, 5.0, out["size"])

	root, ok := out["root"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "binary", root["kind"])
	assert.Equal(t, "*", root["value"])

	status, out = do(t, e, http.MethodPost, "/api/v1/tree", `{"postfix":"+"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "stack underflow", out["title"])
}

func TestHistory(t *testing.T) {
	e := newTestEcho(t)

	for _, expr := range []string{"1+1", "2*3", "1 +"} {
		do(t, e, http.MethodPost, "/api/v1/evaluate", `{"expression":"`+expr+`"}`)
	}

	status, out := do(t, e, http.MethodGet, "/api/v1/history?page=1&size=2", "")
	require.Equal(t, http.StatusOK, status, out)
	assert.Equal(t, 3.0, out["total"])
	assert.Equal(t, true, out["has_more"])

	items, ok := out["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	newest := items[0].(map[string]any)
	assert.Equal(t, "1 +", newest["expression"])
	assert.Equal(t, "api", newest["source"])
	assert.NotEmpty(t, newest["error"])

	status, _ = do(t, e, http.MethodGet, "/api/v1/history?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, out = do(t, e, http.MethodGet, "/api/v1/history?page=184467440737095516&size=100", "")
	require.Equal(t, http.StatusOK, status, out)
	assert.Empty(t, out["items"])
	assert.Equal(t, false, out["has_more"])
}
