package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rubika-tools/planner-api/internal/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "code", code, "error", err)
	}
	writeJSON(w, status, errorBody{
		Code:    string(code),
		Message: errors.GetMessage(err),
	})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

// pathInt64 parses a numeric path segment such as {aoid}.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid %s %q", name, raw)
	}
	return n, nil
}

// pathInt32 parses a numeric path segment such as {stat}.
func pathInt32(r *http.Request, name string) (int32, error) {
	raw := r.PathValue(name)
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid %s %q", name, raw)
	}
	return int32(n), nil
}

// queryInt32 parses an optional integer query parameter, returning
// zero when the parameter is absent.
func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid %s %q", name, raw)
	}
	return int32(n), nil
}

// queryInt64 parses an optional integer query parameter, returning
// zero when the parameter is absent.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid %s %q", name, raw)
	}
	return n, nil
}
