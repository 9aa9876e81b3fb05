package main

import (
	"flag"
	"io"
	"legacy-http/http"
	"legacy-http/http/query"
	"legacy-http/internal/config"
	"strings"

	"github.com/pkg/errors"
)

type headerFlags []string

func (h *headerFlags) String() string     { return strings.Join(*h, "; ") }
func (h *headerFlags) Set(v string) error { *h = append(*h, v); return nil }

// Args holds the per-invocation overrides. Only flags given on the command line are set.
type Args struct {
	Options http.RequestOptions
}

func ParseArgs(args []string) (*Args, error) {
	fs := flag.NewFlagSet("reqplan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		headers     headerFlags
		method      = fs.String("X", "", "request method")
		data        = fs.String("d", "", "request body")
		rawQuery    = fs.String("q", "", "query parameters, replacing the configured ones")
		credentials = fs.Bool("credentials", false, "include credentials")
	)
	fs.Var(&headers, "H", "header as \"Name: value\" (repeatable), replacing the configured ones")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errors.New("usage: reqplan [flags] <url>")
	}

	var out Args
	url := fs.Arg(0)
	out.Options.URL = &url

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "X":
			var m http.RequestMethod
			if m, err = http.ParseRequestMethod(*method); err == nil {
				out.Options.Method = &m
			}
		case "d":
			out.Options.Body = *data
		case "q":
			var p *query.Params
			if p, err = query.ParseStrict(*rawQuery, nil); err == nil {
				out.Options.Params = p
			}
		case "credentials":
			out.Options.WithCredentials = credentials
		case "H":
			h := http.NewHeaders(nil)
			for _, pair := range headers {
				if err = config.AddHeader(h, pair); err != nil {
					return
				}
			}
			out.Options.Headers = h
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}

	return &out, nil
}
