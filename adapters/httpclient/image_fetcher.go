package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
)

type RestyImageFetcher struct {
	client *resty.Client
}

func NewRestyImageFetcher(timeout time.Duration) *RestyImageFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetHeader("Accept", "image/*")
	return &RestyImageFetcher{client: client}
}

var _ service.ImageFetcher = (*RestyImageFetcher)(nil)

func (f *RestyImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("download image: empty body")
	}
	if ct := resp.Header().Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "application/octet-stream") {
		return nil, fmt.Errorf("download image: unexpected content type %q", ct)
	}
	return body, nil
}
