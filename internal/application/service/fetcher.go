package service

import "context"

type ImageFetcher interface {
	// Fetch downloads a remote image and returns its bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
