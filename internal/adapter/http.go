// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	registerPath = "/api/user/register"
	loginPath    = "/api/user/login"
	mePath       = "/api/user/me"
	filesPath    = "/api/files/"

	// tokenLeeway forces a new login shortly before the token expires so a
	// sync pass never starts with a token that dies halfway through.
	tokenLeeway = time.Minute
)

// HTTPStorage is the [RemoteStorage] backed by the self-hosted server.
type HTTPStorage struct {
	client *utils.HTTPClient

	login    string
	password string

	mu    sync.RWMutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPStorage constructs an [HTTPStorage]. It normalises the base URL from
// cfg.HTTP.Address and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a valid URL.
func NewHTTPStorage(cfg config.ClientRemote, log *logger.Logger) (*HTTPStorage, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTP.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	client := utils.NewHTTPClientWithTimeout(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &HTTPStorage{
		client:   client,
		login:    cfg.Login,
		password: cfg.Password,
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Name implements [RemoteStorage].
func (h *HTTPStorage) Name() string {
	return config.ProviderHTTP
}

// SetToken restores a previously issued bearer token so the first sync pass
// after a restart does not need to sign in again. Malformed tokens are
// ignored.
func (h *HTTPStorage) SetToken(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	token, err := utils.ParseTokenUnverified(raw)
	if err != nil {
		h.logger.Warn().Err(err).Msg("ignoring malformed stored token")
		return
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

// Token returns the bearer token currently held, or an empty string.
func (h *HTTPStorage) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token.SignedString
}

// UserID implements [RemoteStorage].
func (h *HTTPStorage) UserID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token.SignedString == "" {
		return ""
	}
	return strconv.FormatInt(h.token.UserID, 10)
}

// UserName implements [RemoteStorage].
func (h *HTTPStorage) UserName() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token.Login
}

// TryAuthenticate implements [RemoteStorage]. A held token that is not about
// to expire is reused; otherwise the configured credentials are exchanged for
// a new one.
func (h *HTTPStorage) TryAuthenticate(ctx context.Context) bool {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token.SignedString != "" && !utils.TokenExpired(token, time.Now(), tokenLeeway) {
		return true
	}

	if err := h.Login(ctx); err != nil {
		h.logger.Warn().Err(err).Str("provider", h.Name()).Msg("authentication failed")
		return false
	}
	return true
}

// Register creates the configured account on the server and stores the
// issued token. Returns [ErrLoginTaken] (wrapped) if the login exists.
func (h *HTTPStorage) Register(ctx context.Context) error {
	return h.authenticate(ctx, registerPath)
}

// Login exchanges the configured credentials for a bearer token.
func (h *HTTPStorage) Login(ctx context.Context) error {
	return h.authenticate(ctx, loginPath)
}

func (h *HTTPStorage) authenticate(ctx context.Context, path string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: h.login, Password: h.password}).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrRemoteUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	raw, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	token, err := utils.ParseTokenUnverified(raw)
	if err != nil {
		return fmt.Errorf("%s parse token claims: %w", path, err)
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	return nil
}

// Me returns the profile of the authenticated account as seen by the server.
func (h *HTTPStorage) Me(ctx context.Context) (models.UserInfo, error) {
	resp, err := h.authedRequest(ctx).Get(mePath)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: me request: %w", ErrRemoteUnavailable, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.UserInfo{}, err
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return models.UserInfo{}, fmt.Errorf("%w: malformed profile", ErrRemoteRejected)
	}

	return models.UserInfo{
		UserID: gjson.GetBytes(body, "user_id").Int(),
		Login:  gjson.GetBytes(body, "login").String(),
	}, nil
}

// DownloadFile implements [RemoteStorage].
func (h *HTTPStorage) DownloadFile(ctx context.Context, path string, dst io.Writer) error {
	endpoint, err := fileEndpoint(path)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("%w: download %s: %w", ErrRemoteUnavailable, path, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err = h.checkResponse(resp); err != nil {
		return fmt.Errorf("download %s: %w", path, err)
	}

	if _, err = io.Copy(dst, body); err != nil {
		return fmt.Errorf("%w: download %s: %w", ErrRemoteUnavailable, path, err)
	}
	return nil
}

// UploadFile implements [RemoteStorage].
func (h *HTTPStorage) UploadFile(ctx context.Context, src io.Reader, path string) error {
	endpoint, err := fileEndpoint(path)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(src).
		Put(endpoint)
	if err != nil {
		return fmt.Errorf("%w: upload %s: %w", ErrRemoteUnavailable, path, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// DeleteFile implements [RemoteStorage].
func (h *HTTPStorage) DeleteFile(ctx context.Context, path string) error {
	endpoint, err := fileEndpoint(path)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(endpoint)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrRemoteUnavailable, path, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// ListFiles implements [RemoteStorage].
func (h *HTTPStorage) ListFiles(ctx context.Context) ([]models.RemoteFile, error) {
	resp, err := h.authedRequest(ctx).Get(filesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list files: %w", ErrRemoteUnavailable, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed file listing", ErrRemoteRejected)
	}

	files := make([]models.RemoteFile, 0)
	gjson.ParseBytes(body).ForEach(func(_, v gjson.Result) bool {
		files = append(files, models.RemoteFile{
			Name:     v.Get("name").String(),
			Size:     v.Get("size").Int(),
			Modified: v.Get("modified").Time(),
			IsFolder: v.Get("is_folder").Bool(),
		})
		return true
	})
	return files, nil
}

func (h *HTTPStorage) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}

// checkResponse maps the response status and drops the held token when the
// server rejects it, so the next TryAuthenticate signs in again.
func (h *HTTPStorage) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		h.mu.Lock()
		h.token = models.Token{}
		h.mu.Unlock()
	}
	return err
}

func fileEndpoint(path string) (string, error) {
	if err := checkFileName(path); err != nil {
		return "", err
	}
	return filesPath + url.PathEscape(path), nil
}
