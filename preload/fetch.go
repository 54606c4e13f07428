// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hack-pad/hackpadfs"
)

// Fetcher returns the bytes of the resource at a url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc is a function that implements [Fetcher].
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// HTTPFetcher fetches urls with an [http.Client].
type HTTPFetcher struct {

	// Client is the client to use; nil uses [http.DefaultClient].
	Client *http.Client

	// Base is prepended to relative urls.
	Base string
}

func (hf *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if hf.Base != "" && !strings.Contains(url, "://") {
		url = strings.TrimSuffix(hf.Base, "/") + "/" + strings.TrimPrefix(url, "/")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	cl := hf.Client
	if cl == nil {
		cl = http.DefaultClient
	}
	resp, err := cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("preload: GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FSFetcher reads urls as paths in a file system, such as an
// in-memory file system in tests or the local file system in the CLI.
type FSFetcher struct {
	FS hackpadfs.FS
}

func (ff *FSFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hackpadfs.ReadFile(ff.FS, strings.TrimPrefix(url, "/"))
}
