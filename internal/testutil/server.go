package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// FixtureRecords is a small autocomplete payload in the endpoint's format.
// Values mix JSON strings and numbers the way real payloads do.
const FixtureRecords = `[
  {"id": "1", "name": "Apple", "category": "fruit", "value": "5"},
  {"id": "2", "name": "Orange", "category": "fruit", "value": "3"},
  {"id": "3", "name": "Banana", "category": "fruit", "value": 2},
  {"id": "4", "name": "Pineapple", "category": "fruit", "value": "7"}
]`

// Server is an httptest server that counts its requests.
type Server struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits returns how many requests the server has answered.
func (s *Server) Hits() int {
	return int(s.hits.Load())
}

// RecordsServer answers every request with status and body.
func RecordsServer(t *testing.T, status int, body string) *Server {
	t.Helper()
	srv := &Server{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
