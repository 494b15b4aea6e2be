package convert

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewFetcher(fs afero.Fs, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

type Fetcher struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

// Get reads the image argument, either a local path or an http(s) URL.
func (f *Fetcher) Get(src string) ([]byte, error) {
	if isURL(src) {
		return f.download(src)
	}

	bs, err := afero.ReadFile(f.fs, src)
	if err != nil {
		return nil, fmt.Errorf("read image failed: %w", err)
	}
	return bs, nil
}

func isURL(src string) bool {
	if !strings.Contains(src, "://") {
		return false
	}
	u, err := url.Parse(src)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func (f *Fetcher) download(src string) ([]byte, error) {
	resp, err := f.cli.R().Get(src)
	if err != nil {
		return nil, fmt.Errorf("fetch image failed: %w", err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, errors.Errorf("fetch image failed: %s", resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", src))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, fmt.Errorf("read image body failed: %w", err)
	}

	f.log.With(zap.String("url", src), zap.Int("bytes", buf.Len())).Debug("image downloaded")
	return buf.Bytes(), nil
}
