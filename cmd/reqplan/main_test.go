package main

import (
	"bytes"
	"legacy-http/http"
	"legacy-http/internal/config"
	"legacy-http/lib/pointer"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{
		"-X", "post",
		"-H", "Accept: application/json",
		"-H", "X-Id: 1",
		"-d", `{"a":1}`,
		"-q", "page=2",
		"-credentials",
		"https://example.com/items",
	})
	require.NoError(t, err)

	opts := args.Options
	assert.Equal(t, "https://example.com/items", *opts.URL)
	assert.Equal(t, http.MethodPost, *opts.Method)
	assert.Equal(t, []string{"Accept", "X-Id"}, opts.Headers.Keys())
	assert.Equal(t, `{"a":1}`, opts.Body)
	assert.Equal(t, "page=2", opts.Params.String())
	assert.True(t, *opts.WithCredentials)
}

func TestParseArgsOnlyURL(t *testing.T) {
	args, err := ParseArgs([]string{"/x"})
	require.NoError(t, err)

	assert.Equal(t, http.RequestOptions{URL: pointer.To("/x")}, args.Options)
}

func TestParseArgsErrors(t *testing.T) {
	testcases := []struct {
		desc string
		args []string
	}{
		{desc: "no url", args: nil},
		{desc: "two urls", args: []string{"/a", "/b"}},
		{desc: "bad method", args: []string{"-X", "BREW", "/a"}},
		{desc: "bad header", args: []string{"-H", "nocolon", "/a"}},
		{desc: "bad query", args: []string{"-q", "a=%z", "/a"}},
		{desc: "unknown flag", args: []string{"-nope", "/a"}},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ParseArgs(tc.args)
			assert.Error(t, err)
		})
	}
}

func TestPlan(t *testing.T) {
	cfg := &config.Config{
		Method:  "PUT",
		Headers: "Accept: text/plain",
		Params:  "a=1",
	}

	args, err := ParseArgs([]string{"-q", "b=2", "https://example.com/x"})
	require.NoError(t, err)

	req, err := plan(cfg, args)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, req.Method)
	// Params from the command line replace the configured ones.
	assert.Equal(t, "https://example.com/x?b=2", req.URL)
	v, _ := req.Headers.Get("accept")
	assert.Equal(t, "text/plain", v)
}

func TestPrintRequest(t *testing.T) {
	req, err := http.NewRequest(http.RequestOptions{
		Method:          pointer.To(http.MethodPost),
		URL:             pointer.To("/items"),
		Headers:         http.NewHeaders(map[string][]string{"Content-Type": {"text/plain"}}),
		Body:            "hello",
		WithCredentials: pointer.To(true),
	})
	require.NoError(t, err)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, printRequest(buf, req))

	expected := "POST /items\n" +
		"# with credentials\n" +
		"Content-Type: text/plain\r\n" +
		"\nhello\n"
	assert.Equal(t, expected, buf.String())
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "reqplan.log")
	require.NoError(t, setupLogger("debug", path))

	slog.Debug("hello from test")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello from test")
}
