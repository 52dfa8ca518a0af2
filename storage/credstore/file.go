// Package credstore provides session.TokenStore backends. The file store is
// the production backend: it is the only state that must survive a process
// restart.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
)

// payload is the on-disk shape: exactly the token and the serialized profile,
// written and cleared together.
type payload struct {
	Token   string          `json:"token"`
	Teacher session.Teacher `json:"user"`
}

type FileStore struct {
	path string
}

var _ session.TokenStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persists the pair atomically: the new content is written to a
// temporary file and renamed over the old one, so a crashed write never
// leaves a half-updated pair behind.
func (s *FileStore) Save(token string, tchr session.Teacher) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "credstore: creating directory")
	}

	data, err := json.Marshal(payload{Token: token, Teacher: tchr})
	if err != nil {
		return errors.Wrap(err, "credstore: marshaling credentials")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return errors.Wrap(err, "credstore: creating temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrap(err, "credstore: setting permissions")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrap(err, "credstore: writing credentials")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "credstore: closing temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "credstore: replacing credentials file")
}

// Read returns the persisted pair, or ok=false when none is stored.
func (s *FileStore) Read() (string, session.Teacher, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", session.Teacher{}, false, nil
	}
	if err != nil {
		return "", session.Teacher{}, false, errors.Wrap(err, "credstore: reading credentials")
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return "", session.Teacher{}, false, errors.Wrap(err, "credstore: corrupt credentials file")
	}
	if p.Token == "" {
		return "", session.Teacher{}, false, nil
	}
	return p.Token, p.Teacher, true, nil
}

// Clear removes the pair. Clearing an empty store is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "credstore: removing credentials")
	}
	return nil
}
