// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

// maxConcurrentUploads caps how many files of one batch are in flight at
// the image host at the same time.
const maxConcurrentUploads = 4

type imageHostResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

type imageHostUploader struct {
	client  *resty.Client
	apiKey  string
	limiter *rate.Limiter
	logger  *logger.Logger
}

// NewImageHostUploader constructs an [ImageUploader] backed by an
// imgbb-compatible upload API.
func NewImageHostUploader(cfg config.ImageHost, log *logger.Logger) (ImageUploader, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("image host base url is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("image host api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond)
	}

	return &imageHostUploader{
		client:  client,
		apiKey:  cfg.APIKey,
		limiter: limiter,
		logger:  log.GetChildLogger(),
	}, nil
}

func (u *imageHostUploader) UploadImage(ctx context.Context, file models.File) (string, error) {
	if len(file.Content) == 0 {
		return "", ErrNoFileProvided
	}

	if err := u.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var result imageHostResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetQueryParam("key", u.apiKey).
		SetFormData(map[string]string{
			"name":  file.Name,
			"image": base64.StdEncoding.EncodeToString(file.Content),
		}).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}
	if resp.StatusCode() != http.StatusOK || !result.Success || result.Data.URL == "" {
		u.logger.Warn().
			Int("status", resp.StatusCode()).
			Str("file", file.Name).
			Msg("image host rejected upload")
		return "", fmt.Errorf("%w: host returned status %d", ErrUploadFailed, resp.StatusCode())
	}

	return result.Data.URL, nil
}

func (u *imageHostUploader) UploadImages(ctx context.Context, files []models.File) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFileProvided
	}

	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)

	for i, file := range files {
		g.Go(func() error {
			url, err := u.UploadImage(ctx, file)
			if err != nil {
				return fmt.Errorf("upload %q: %w", file.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}
