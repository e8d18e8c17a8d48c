// Package local stores uploads on a filesystem through afero, for development
// and single-node deployments.
package local

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"petvault/internal/port"
)

// FilesPrefix is the URL path under which signed download links are served.
const FilesPrefix = "/files/"

// Store implements port.ObjectStorage over an afero filesystem. Buckets map to
// top-level directories.
type Store struct {
	fs      afero.Fs
	baseURL string
	secret  []byte
	now     func() time.Time
}

// NewStore creates a Store rooted at root on the OS filesystem.
func NewStore(root, baseURL, secret string) (*Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return NewStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), root), baseURL, secret), nil
}

// NewStoreWithFs creates a Store over an existing filesystem (for testing).
func NewStoreWithFs(fs afero.Fs, baseURL, secret string) *Store {
	return &Store{
		fs:      fs,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  []byte(secret),
		now:     time.Now,
	}
}

func (s *Store) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	p, err := objectPath(input.Bucket, input.Key)
	if err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0o750); err != nil {
		return nil, fmt.Errorf("local upload mkdir: %w", err)
	}

	f, err := s.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return nil, fmt.Errorf("local upload open: %w", err)
	}
	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, h), input.Body); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(p)
		return nil, fmt.Errorf("local upload write: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("local upload close: %w", err)
	}

	return &port.UploadOutput{
		Location: p,
		ETag:     hex.EncodeToString(h.Sum(nil)),
	}, nil
}

func (s *Store) Download(_ context.Context, bucket, key string) ([]byte, error) {
	p, err := objectPath(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("local download %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) Delete(_ context.Context, bucket, key string) error {
	p, err := objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("local delete %s: %w", key, err)
	}
	return nil
}

// GetPresignedURL returns a link to ServeHTTP signed with the store secret.
func (s *Store) GetPresignedURL(_ context.Context, bucket, key string, expirySeconds int64) (string, error) {
	p, err := objectPath(bucket, key)
	if err != nil {
		return "", err
	}
	expires := s.now().Add(time.Duration(expirySeconds) * time.Second).Unix()
	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("sig", s.sign(p, expires))
	return s.baseURL + FilesPrefix + p + "?" + q.Encode(), nil
}

// ServeHTTP serves objects behind links produced by GetPresignedURL.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, FilesPrefix)
	expires, err := strconv.ParseInt(r.URL.Query().Get("expires"), 10, 64)
	if err != nil || s.now().Unix() > expires {
		http.Error(w, "link expired", http.StatusForbidden)
		return
	}
	want := s.sign(p, expires)
	if !hmac.Equal([]byte(want), []byte(r.URL.Query().Get("sig"))) {
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}

	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, path.Base(p), time.Time{}, bytes.NewReader(data))
}

func (s *Store) sign(p string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%d", p, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// objectPath joins bucket and key, refusing keys that escape the bucket.
func objectPath(bucket, key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return path.Join(bucket, clean), nil
}
