package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"eventdeck/internal/domain"
)

// DefaultSource is the document path used when nothing is configured
const DefaultSource = "data/events.json"

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("events request returned status: %s", e.Status)
}

// Loader retrieves the events document from a URL or a local file
type Loader struct {
	source  string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the client used for URL sources
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithTimeout bounds a single load; zero means no timeout
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// New creates a loader for source. An empty source falls back to DefaultSource.
func New(source string, opts ...Option) *Loader {
	if strings.TrimSpace(source) == "" {
		source = DefaultSource
	}
	l := &Loader{
		source: source,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns where the loader reads from
func (l *Loader) Source() string {
	return l.source
}

// IsRemote reports whether the source is fetched over HTTP
func (l *Loader) IsRemote() bool {
	return isURL(l.source)
}

// Load issues one request for the document and decodes it. No retry is made.
func (l *Loader) Load(ctx context.Context) ([]domain.Event, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	log.Printf("loader: loading events from %s", l.source)

	var (
		body   []byte
		format string
		err    error
	)
	if l.IsRemote() {
		body, format, err = l.fetch(ctx)
	} else {
		body, format, err = l.readFile()
	}
	if err != nil {
		log.Printf("loader: error fetching events data: %v", err)
		return nil, err
	}

	events, err := decode(body, format)
	if err != nil {
		log.Printf("loader: error decoding events data: %v", err)
		return nil, err
	}

	log.Printf("loader: loaded %d events from %s", len(events), l.source)
	return events, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read events response: %w", err)
	}

	format := formatJSON
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") || hasYAMLExt(req.URL.Path) {
		format = formatYAML
	}
	return body, format, nil
}

func (l *Loader) readFile() ([]byte, string, error) {
	body, err := os.ReadFile(l.source)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read events file: %w", err)
	}
	format := formatJSON
	if hasYAMLExt(l.source) {
		format = formatYAML
	}
	return body, format, nil
}

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func decode(body []byte, format string) ([]domain.Event, error) {
	var events []domain.Event

	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(body, &events); err != nil {
			return nil, fmt.Errorf("failed to parse events document: %w", err)
		}
	default:
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, errors.New("failed to parse events document: empty body")
		}
		if err := json.Unmarshal(body, &events); err != nil {
			return nil, fmt.Errorf("failed to parse events document: %w", err)
		}
	}

	if events == nil {
		events = []domain.Event{}
	}
	for i := range events {
		if events[i].Skills == nil {
			events[i].Skills = []string{}
		}
		if events[i].Speaker.Name == "" {
			log.Printf("loader: event %d (%q) has no speaker name", i, events[i].EventName)
		}
	}
	return events, nil
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func hasYAMLExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
