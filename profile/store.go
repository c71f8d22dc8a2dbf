// Package profile persists the single editable profile record as one JSON
// file on disk. There is exactly one record and one admin editing it, so the
// store keeps the semantics deliberately simple: Load never fails (it falls
// back to defaults), Save replaces the whole file, last write wins.
package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Record is the editable set of public-facing identity fields.
type Record struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	Email        string `json:"email"`
}

// Defaults fills in any field the stored file omits. The stored file is
// never assumed complete.
var Defaults = Record{
	Name:         "Alex Rivera",
	Title:        "Senior AI Engineer",
	Bio:          "I build intelligent systems and the interfaces that make them approachable, from generative art platforms to environmental monitoring tools.",
	ProfileImage: "/static/images/profile.jpg",
	Email:        "alex@example.com",
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the backing file and merges defaults over anything missing.
// A missing or unreadable file is not an error: the first read of a fresh
// deployment simply sees the defaults, and nothing is written until the
// admin saves.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Defaults
	}

	var stored Record
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Printf("profile: could not parse %s, using defaults: %v", s.path, err)
		return Defaults
	}

	return stored.withDefaults()
}

// Save writes the full record, defaults resolved, over the backing file.
// The write goes to a temp file in the same directory and is renamed into
// place, so a concurrent Load never observes a partial file.
func (s *Store) Save(rec Record) error {
	data, err := json.MarshalIndent(rec.withDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("profile: marshal record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("profile: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("profile: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("profile: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("profile: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("profile: replace %s: %w", s.path, err)
	}
	return nil
}

// withDefaults backfills every empty field so no consumer ever sees an
// empty recognized field, whether the stored key was absent or blank.
func (r Record) withDefaults() Record {
	if r.Name == "" {
		r.Name = Defaults.Name
	}
	if r.Title == "" {
		r.Title = Defaults.Title
	}
	if r.Bio == "" {
		r.Bio = Defaults.Bio
	}
	if r.ProfileImage == "" {
		r.ProfileImage = Defaults.ProfileImage
	}
	if r.Email == "" {
		r.Email = Defaults.Email
	}
	return r
}
