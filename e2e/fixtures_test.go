//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
)

const fixtureEvents = `[
  {
    "eventName": "AI Summit",
    "description": "Applied ML in production",
    "status": "current",
    "registrationLink": "https://example.com/ai",
    "noOfRegistrations": 12,
    "skills": ["ML", "Python"],
    "speaker": {"name": "Jo Doe", "profile": "Researcher", "linkedin": "https://linkedin.example/jo"}
  },
  {
    "eventName": "Text Pipelines",
    "description": "Tokenizers and NLP",
    "status": "future",
    "registrationLink": "https://example.com/text",
    "noOfRegistrations": 0,
    "skills": ["NLP"],
    "speaker": {"name": "Ana Silva", "profile": "Engineer", "linkedin": "https://linkedin.example/ana"}
  },
  {
    "eventName": "Retro Night",
    "description": "Looking back at the year",
    "status": "past",
    "registrationLink": null,
    "noOfRegistrations": 40,
    "skills": ["Community"],
    "speaker": {"name": "Lee Park", "profile": "Host", "linkedin": "https://linkedin.example/lee"}
  }
]`

// CreateTestWorkspace creates a temporary directory used as $HOME and working directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "eventdeck-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteEvents writes an events document into the workspace and returns its path
func (tf *TUITestFramework) WriteEvents(name, body string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes a config file into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(body string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ServeEvents serves body as the events document; status 0 means 200
func ServeEvents(body string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 && status != http.StatusOK {
			http.Error(w, "unavailable", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

// startWithFixture creates a workspace with the fixture document and starts the app on it
func startWithFixture(tf *TUITestFramework, extraArgs ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteEvents("events.json", fixtureEvents)
	if err != nil {
		return err
	}
	args := append([]string{"-s", path, "-log", filepath.Join(tf.workspace, "eventdeck.log")}, extraArgs...)
	return tf.StartApp(args...)
}
