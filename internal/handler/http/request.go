package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// decodeJSON reads the whole body into dst. An empty body decodes as an
// empty object, so missing fields are reported by validation instead.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

// pathID parses the named URL parameter as a base-10 integer.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// listQueryFromRequest reads the listing parameters. Absent or non-numeric
// page and limit fall back to the defaults; other values pass through.
func listQueryFromRequest(r *http.Request) models.CustomerListQuery {
	query := r.URL.Query()

	return models.CustomerListQuery{
		Page:      intOrDefault(query.Get("page"), models.DefaultPage),
		Limit:     intOrDefault(query.Get("limit"), models.DefaultLimit),
		Search:    query.Get("search"),
		City:      query.Get("city"),
		State:     query.Get("state"),
		PinCode:   query.Get("pin_code"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
