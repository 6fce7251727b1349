package media

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Target dimensions per image kind.
var sizes = map[string][2]int{
	"logo":   {300, 300},
	"avatar": {400, 400},
	"banner": {1200, 400},
}

// Store abstracts where processed images live. The local disk store is the
// default; the interface keeps an object-store implementation pluggable.
type Store interface {
	// Save persists the bytes under the given filename and returns the
	// public URL of the stored object.
	Save(filename string, data []byte) (string, error)
	// Delete removes the object a previously returned URL points at.
	Delete(url string) error
}

// LocalStore writes files under Dir and serves them under BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string // e.g. "/uploads"
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(filename string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(s.Dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + filename, nil
}

func (s *LocalStore) Delete(url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("bad media url %q", url)
	}
	return os.Remove(filepath.Join(s.Dir, name))
}

// Service runs the upload pipeline: decode, resize to the kind's dimensions,
// re-encode as WebP q80, store under a versioned filename, then garbage
// collect the file the previous URL pointed at. One policy for every owner
// type, so repeated uploads never accumulate orphans.
type Service struct {
	Store  Store
	Logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{Store: store, Logger: logger}
}

// Replace processes one uploaded image and swaps it in for oldURL.
// kind must be one of logo, avatar, banner.
func (s *Service) Replace(kind string, ownerID uint, file io.Reader, oldURL string) (string, error) {
	dims, ok := sizes[kind]
	if !ok {
		return "", fmt.Errorf("unknown media kind %q", kind)
	}
	data, err := process(file, dims[0], dims[1])
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d_%s.webp", kind, ownerID, uuid.NewString())
	url, err := s.Store.Save(name, data)
	if err != nil {
		return "", err
	}
	s.Remove(oldURL)
	return url, nil
}

// Remove unlinks the file behind url, best effort. Missing files are not an
// error; anything else is logged and swallowed.
func (s *Service) Remove(url string) {
	if url == "" {
		return
	}
	if err := s.Store.Delete(url); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("failed to remove media file", zap.String("url", url), zap.Error(err))
	}
}

func process(file io.Reader, width, height int) ([]byte, error) {
	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	resized := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
