package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// parseBody decodes a request body into the given request type.
// JSON and URL-encoded form bodies are accepted; an empty body decodes to the
// zero value so that required-field validation reports the missing fields.
func parseBody[T any](r *http.Request) (T, error) {
	var req T

	if strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("failed to parse form body: %w", err)
		}

		// Route form fields through the same JSON decoding path so numeric
		// fields end up with their numeric types.
		fields := make(map[string]any, len(r.PostForm))
		for key, values := range r.PostForm {
			fields[key] = coerceFormValue[T](key, values[0])
		}

		encoded, err := json.Marshal(fields)
		if err != nil {
			return req, fmt.Errorf("failed to encode form body: %w", err)
		}

		if err := json.Unmarshal(encoded, &req); err != nil {
			return req, fmt.Errorf("failed to decode form body: %w", err)
		}

		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}

	return req, nil
}

// coerceFormValue maps a form string onto the JSON value it would have been
// in a JSON body: integer, number, boolean, or string. A numeric or boolean
// reading is kept only when the target field accepts that type, so a text
// field whose value merely looks numeric stays a string.
func coerceFormValue[T any](key, value string) any {
	var guess any
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		guess = n
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		guess = f
	} else if b, err := strconv.ParseBool(value); err == nil {
		guess = b
	} else {
		return value
	}

	encoded, err := json.Marshal(map[string]any{key: guess})
	if err != nil {
		return value
	}

	var target T
	if err := json.Unmarshal(encoded, &target); err != nil {
		return value
	}

	return guess
}
