package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// writeRevision ставит ETag и X-Revision. Возвращает true, если клиент прислал
// тот же ETag в If-None-Match и ответ уже отправлен как 304
func writeRevision(w http.ResponseWriter, r *http.Request, kind, epoch string, revision uint64) bool {
	etag := fmt.Sprintf(`"%s-%s-%d"`, kind, epoch, revision)
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Revision", strconv.FormatUint(revision, 10))

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
