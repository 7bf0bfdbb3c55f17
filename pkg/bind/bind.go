// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Austinkuria/E-commerce-Site/config"
	"github.com/Austinkuria/E-commerce-Site/pkg/validate"
)

const defaultBodyLimit = 4 << 20 // 4 MB

// bodyLimit returns the configured request body cap.
func bodyLimit() int64 {
	raw := config.Get("MAX_BODY_BYTES", "")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultBodyLimit
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is empty, malformed, or too large.
func JSON(r *http.Request, dest interface{}) (map[string]string, error) {
	limit := bodyLimit()
	r.Body = http.MaxBytesReader(nil, r.Body, limit)

	if err := decode(r.Body, dest, limit); err != nil {
		return nil, err
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

func decode(body io.Reader, dest interface{}, limit int64) error {
	dec := json.NewDecoder(body)

	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body too large (max %d bytes)", limit)
		default:
			return fmt.Errorf("invalid JSON: %w", err)
		}
	}

	// One JSON value per request; anything after it is a malformed body.
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
