package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"embedbot/models"
)

// PersistError reports a failed settings write. The in-memory change still
// took effect; only durability is at risk.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

const (
	runtimeFile = "runtime.json"
	redditFile  = "reddit.json"
	ninegagFile = "ninegag.json"
	twitterFile = "twitter.json"
)

// Store holds the runtime settings and per-adapter policies. Reads are
// concurrent; updates take the write lock and persist before returning.
type Store struct {
	mu  sync.RWMutex
	dir string

	runtime Runtime
	reddit  TriplePolicy
	ninegag ContentSetPolicy
	twitter ContentSetPolicy
}

// Open loads the settings directory. Missing documents fall back to
// defaults; a present but malformed document is an error.
func Open(dir string) (*Store, error) {
	s := &Store{
		dir:     dir,
		runtime: defaultRuntime(),
		reddit:  defaultTriplePolicy(),
		ninegag: defaultContentSetPolicy(models.ContentImage, models.ContentVideo),
		twitter: defaultContentSetPolicy(models.ContentText, models.ContentImage, models.ContentVideo),
	}

	for _, doc := range []struct {
		file string
		into any
	}{
		{runtimeFile, &s.runtime},
		{redditFile, &s.reddit},
		{ninegagFile, &s.ninegag},
		{twitterFile, &s.twitter},
	} {
		if err := loadJSON(filepath.Join(dir, doc.file), doc.into); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func loadJSON(path string, into any) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(into); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (s *Store) persist(file string, doc any) error {
	path := filepath.Join(s.dir, file)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistError{Path: path, Err: err}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

// Runtime returns a copy of the runtime settings.
func (s *Store) Runtime() Runtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runtime
}

// SetImplicitAutoEmbed updates and persists the auto-embed flag. The
// in-memory value is updated even when persistence fails; the returned
// error is then a PersistError.
func (s *Store) SetImplicitAutoEmbed(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runtime.DoImplicitAutoEmbed = v
	return s.persist(runtimeFile, s.runtime)
}

// Reddit returns a copy of the Reddit embed policy.
func (s *Store) Reddit() TriplePolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TriplePolicy{EmbedSet: append([]FuzzyClassification(nil), s.reddit.EmbedSet...)}
}

// SetReddit replaces and persists the Reddit embed policy.
func (s *Store) SetReddit(p TriplePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reddit = p
	return s.persist(redditFile, s.reddit)
}

// NineGag returns a copy of the 9GAG embed policy.
func (s *Store) NineGag() ContentSetPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ContentSetPolicy{EmbedSet: append([]models.ContentKind(nil), s.ninegag.EmbedSet...)}
}

// SetNineGag replaces and persists the 9GAG embed policy.
func (s *Store) SetNineGag(p ContentSetPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ninegag = p
	return s.persist(ninegagFile, s.ninegag)
}

// Twitter returns a copy of the Twitter embed policy.
func (s *Store) Twitter() ContentSetPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ContentSetPolicy{EmbedSet: append([]models.ContentKind(nil), s.twitter.EmbedSet...)}
}

// SetTwitter replaces and persists the Twitter embed policy.
func (s *Store) SetTwitter(p ContentSetPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.twitter = p
	return s.persist(twitterFile, s.twitter)
}
