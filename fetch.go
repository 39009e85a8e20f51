package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://adventofcode.com"

// ErrOffline is returned when an input is not cached and fetching is
// disabled.
var ErrOffline = errors.New("input not cached and running offline")

// inputStore serves puzzle inputs from the cache directory, fetching and
// caching them on first use.
type inputStore struct {
	cfg     *Config
	log     *zap.Logger
	client  *http.Client
	baseURL string

	// overrides maps a day to an explicit input file.
	overrides map[int]string

	sessionOnce sync.Once
	session     string
	sessionErr  error
}

func newInputStore(cfg *Config, log *zap.Logger) *inputStore {
	return &inputStore{
		cfg:       cfg,
		log:       log,
		client:    http.DefaultClient,
		baseURL:   defaultBaseURL,
		overrides: map[int]string{},
	}
}

func (s *inputStore) inputPath(day int) string {
	return filepath.Join(s.cfg.YearDir(), fmt.Sprintf("%d.input", day))
}

func (s *inputStore) descriptionPath(day int) string {
	return filepath.Join(s.cfg.YearDir(), fmt.Sprintf("%d.html", day))
}

// Input returns the input for day.
func (s *inputStore) Input(ctx context.Context, day int) ([]byte, error) {
	if path, ok := s.overrides[day]; ok {
		return os.ReadFile(path)
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", s.baseURL, s.cfg.Year, day)
	return s.fileOrFetch(ctx, s.inputPath(day), url)
}

// Description returns the puzzle page for day.
func (s *inputStore) Description(ctx context.Context, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d", s.baseURL, s.cfg.Year, day)
	return s.fileOrFetch(ctx, s.descriptionPath(day), url)
}

func (s *inputStore) fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if s.cfg.Offline {
		return nil, fmt.Errorf("%s: %w", filename, ErrOffline)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}

	lock := flock.New(filename + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("locking %s: %w", filename, err)
	}
	defer lock.Unlock()

	// Another process may have fetched it while we waited for the lock.
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, body, 0644); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, filename); err != nil {
		return nil, err
	}
	s.log.Info("cached", zap.String("url", url), zap.String("file", filename), zap.Int("bytes", len(body)))
	return body, nil
}

func (s *inputStore) sessionCookie() (string, error) {
	s.sessionOnce.Do(func() {
		b, err := os.ReadFile(s.cfg.SessionFile)
		if err != nil {
			s.sessionErr = fmt.Errorf("reading session: %w", err)
			return
		}
		s.session = strings.TrimSpace(string(b))
	})
	return s.session, s.sessionErr
}

func (s *inputStore) fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := s.sessionCookie()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	s.log.Debug("fetching", zap.String("url", url))
	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// Prefetch makes sure the inputs (and optionally the descriptions) of all
// days are cached.
func (s *inputStore) Prefetch(ctx context.Context, days []int, descriptions bool) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.FetchConcurrency)
	for _, d := range days {
		d := d
		eg.Go(func() error {
			if _, err := s.Input(ctx, d); err != nil {
				return fmt.Errorf("day %d input: %w", d, err)
			}
			if !descriptions {
				return nil
			}
			if _, err := s.Description(ctx, d); err != nil {
				return fmt.Errorf("day %d description: %w", d, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
