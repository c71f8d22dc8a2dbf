// Package uploads validates and stores admin-submitted photos and derives
// two bounded renditions from each: the primary image (within 1200x1200,
// overwriting the stored original) and a thumbnail (within 300x300, saved
// under a thumb_ prefix). The pipeline is independent of the web layer: it
// takes a filename and raw bytes and returns the public path of the stored
// primary file.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // decode-only; webp re-encode falls back to the original
)

const (
	largeBound   = 1200
	thumbBound   = 300
	largeQuality = 85
	thumbQuality = 80
)

// ErrDisallowedType rejects an upload before anything touches the disk.
var ErrDisallowedType = errors.New("uploads: file type not allowed")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type Pipeline struct {
	dir     string
	urlBase string

	mu        sync.Mutex
	lastStamp time.Time
}

// NewPipeline stores files under dir and reports public paths under urlBase.
func NewPipeline(dir, urlBase string) *Pipeline {
	return &Pipeline{dir: dir, urlBase: urlBase}
}

// Ingest validates the upload, stores the original bytes under a unique
// name and derives the two renditions. If decoding or re-encoding fails the
// original file is kept as-is and no thumbnail is produced; that is a
// successful outcome, not an error. The returned path is the public path of
// the primary stored file.
func (p *Pipeline) Ingest(originalFilename string, content []byte) (string, error) {
	name, err := sanitizeFilename(originalFilename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return "", fmt.Errorf("uploads: create %s: %w", p.dir, err)
	}

	f, unique, err := p.createUnique(name)
	if err != nil {
		return "", fmt.Errorf("uploads: store upload: %w", err)
	}
	dst := filepath.Join(p.dir, unique)
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("uploads: store %s: %w", unique, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("uploads: store %s: %w", unique, err)
	}

	p.buildRenditions(dst, unique, content)

	return path.Join(p.urlBase, unique), nil
}

// Dir exposes the storage directory for the static file mount.
func (p *Pipeline) Dir() string {
	return p.dir
}

// sanitizeFilename strips directory components and unsafe characters from
// the untrusted original name and checks the extension against the allowed
// set, case-insensitively.
func sanitizeFilename(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")

	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" || !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrDisallowedType, name)
	}
	return base, nil
}

// createUnique prefixes the sanitized name with a second-resolution
// timestamp that never decreases within the process, and claims the file
// with O_EXCL under the lock, appending a numeric suffix until creation
// succeeds. A burst of identical uploads in the same second therefore gets
// distinct paths even when the calls are concurrent.
func (p *Pipeline) createUnique(base string) (*os.File, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if now.Before(p.lastStamp) {
		now = p.lastStamp
	}
	p.lastStamp = now

	name := now.Format("20060102150405") + "_" + base
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 1; ; i++ {
		f, err := os.OpenFile(filepath.Join(p.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", err
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

// buildRenditions overwrites the stored original with the bounded primary
// rendition and writes the thumbnail next to it. On any codec failure the
// original bytes stay (or are put back) and the thumbnail is skipped.
func (p *Pipeline) buildRenditions(dst, unique string, content []byte) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		log.Printf("uploads: keeping original %s, decode failed: %v", unique, err)
		return
	}

	// Fit never upscales, and it clones to NRGBA, which flattens palette
	// and alpha sources before re-encoding.
	large := imaging.Fit(img, largeBound, largeBound, imaging.Lanczos)
	if err := imaging.Save(large, dst, imaging.JPEGQuality(largeQuality)); err != nil {
		log.Printf("uploads: keeping original %s, encode failed: %v", unique, err)
		if werr := os.WriteFile(dst, content, 0644); werr != nil {
			log.Printf("uploads: could not restore original %s: %v", unique, werr)
		}
		return
	}

	thumb := imaging.Fit(img, thumbBound, thumbBound, imaging.Lanczos)
	thumbPath := filepath.Join(p.dir, "thumb_"+unique)
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(thumbQuality)); err != nil {
		log.Printf("uploads: skipping thumbnail for %s: %v", unique, err)
		os.Remove(thumbPath)
	}
}
