package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tokencalc/internal/logging"
	"github.com/atomicstack/tokencalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDoer struct {
	resp *http.Response
	err  error
	req  *http.Request
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	m.req = req
	return m.resp, m.err
}

// TestMain keeps decode warnings out of the package directory for tests that
// do not set up their own log.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tokencalc-source")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating log dir: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(filepath.Join(dir, "source.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// useTempLog points the log at a per-test file and returns its path.
func useTempLog(t *testing.T) string {
	t.Helper()
	prev := logging.Path()
	path := filepath.Join(t.TempDir(), "source.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure(prev) })
	return path
}

func TestClientFetchDecodesRecords(t *testing.T) {
	useTempLog(t)
	srv := testutil.RecordsServer(t, http.StatusOK, testutil.FixtureRecords)

	records, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Apple", records[0].Name)
	assert.Equal(t, "5", records[0].Value)
	assert.Equal(t, "fruit", records[0].Category)
	assert.Equal(t, "2", records[2].Value, "numeric values are accepted")
	assert.Equal(t, 1, srv.Hits())
}

func TestClientFetchSendsAcceptHeader(t *testing.T) {
	doer := &mockDoer{resp: &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
	}}
	client := NewClient("http://example.invalid/list", WithHTTPClient(doer))

	records, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	require.NotNil(t, doer.req)
	assert.Equal(t, http.MethodGet, doer.req.Method)
	assert.Equal(t, "application/json", doer.req.Header.Get("Accept"))
}

func TestClientFetchUsesServerMessage(t *testing.T) {
	srv := testutil.RecordsServer(t, http.StatusNotFound, `{"message":"Not found"}`)

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "Not found", fetchErr.Message)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, "Not found", err.Error())
}

func TestClientFetchFallsBackToGenericMessage(t *testing.T) {
	srv := testutil.RecordsServer(t, http.StatusInternalServerError, `oops`)

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error fetching data", err.Error())
}

func TestClientFetchTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	client := NewClient("http://example.invalid", WithHTTPClient(&mockDoer{err: boom}))

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error fetching data", err.Error())
	assert.ErrorIs(t, err, boom)
}

func TestClientFetchRejectsNonArray(t *testing.T) {
	srv := testutil.RecordsServer(t, http.StatusOK, `{"items":[]}`)

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotArray)
	assert.Equal(t, "Error fetching data", err.Error())
}

func TestClientFetchWithoutEndpoint(t *testing.T) {
	_, err := NewClient("  ").Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoEndpoint)
}

func TestDecodeRecordsSkipsUnusableEntries(t *testing.T) {
	logPath := useTempLog(t)
	body := `[
		{"id":"1","name":"Apple","value":"5"},
		{"id":"2","name":"","value":"3"},
		{"id":"3","name":"Pear","value":"1.5"},
		{"id":"4","name":"Plum","value":"-2"},
		{"id":"5","name":"Kiwi"},
		{"id":"6","name":"  Fig  ","value":" 12 "}
	]`

	records, err := DecodeRecords([]byte(body))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apple", records[0].Name)
	assert.Equal(t, "Fig", records[1].Name)
	assert.Equal(t, "12", records[1].Value)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(logged), "skipping suggestion record"))
	_, err = os.Stat("tokencalc.log")
	assert.True(t, os.IsNotExist(err), "warnings must not reach the default log in the working directory")
}

func TestDecodeRecordsRejectsInvalidJSON(t *testing.T) {
	_, err := DecodeRecords([]byte(`[{`))
	require.Error(t, err)
}
