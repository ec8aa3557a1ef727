// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	titleTimeout = 5 * time.Second

	// maxTitleScan bounds how much of a page is read looking for <title>.
	maxTitleScan = 64 << 10
	maxTitleLen  = 256
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// LinkTitleResolver fetches web pages to read their <title>.
type LinkTitleResolver struct {
	client *utils.HTTPClient
}

// NewLinkTitleResolver returns a resolver whose requests are bounded by a
// short timeout.
func NewLinkTitleResolver() *LinkTitleResolver {
	client := utils.NewHTTPClientWithTimeout(titleTimeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &LinkTitleResolver{client: client}
}

// ResolveTitle returns the whitespace-collapsed page title of uri. Only http
// and https links are fetched.
func (r *LinkTitleResolver) ResolveTitle(ctx context.Context, uri string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidPath, u.Scheme)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return "", fmt.Errorf("%w: fetch link: %w", ErrRemoteUnavailable, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	head, err := io.ReadAll(io.LimitReader(body, maxTitleScan))
	if err != nil {
		return "", fmt.Errorf("%w: read link: %w", ErrRemoteUnavailable, err)
	}

	return extractTitle(head), nil
}

func extractTitle(page []byte) string {
	m := titlePattern.FindSubmatch(page)
	if m == nil {
		return ""
	}

	title := strings.Join(strings.Fields(html.UnescapeString(string(m[1]))), " ")
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen])
	}
	return title
}
