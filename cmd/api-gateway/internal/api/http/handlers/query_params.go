package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

func parsePositiveIntQuery(r *http.Request, key string) (value int32, present bool, errMsg string) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if _, ok := r.URL.Query()[key]; ok {
			return 0, true, key + " must be a positive integer"
		}
		return 0, false, ""
	}

	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || parsed <= 0 {
		return 0, true, key + " must be a positive integer"
	}

	return int32(parsed), true, ""
}
