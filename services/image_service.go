package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageService stores room images under a public static directory. The
// database keeps only the filename; everything here is plain files on disk.
type ImageService struct {
	Dir string
}

func NewImageService(dir string) *ImageService {
	return &ImageService{Dir: dir}
}

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedFile reports whether the uploaded filename carries one of the
// accepted image extensions (png, jpg, jpeg, gif, case-insensitive).
func AllowedFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// sanitizeFilename keeps only the base name and replaces anything outside
// [A-Za-z0-9._-] so the original upload name can't escape the images dir.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SaveUpload writes an uploaded image under a collision-free name built from a
// fixed prefix, a timestamp, and the sanitized original filename, and returns
// the stored filename.
func (s *ImageService) SaveUpload(filename string, src io.Reader) (string, error) {
	stored := fmt.Sprintf("room_%s_%s", time.Now().Format("20060102150405"), sanitizeFilename(filename))
	if err := s.write(stored, src); err != nil {
		return "", err
	}
	return stored, nil
}

// SaveReplacement writes a replacement image named from the timestamp and the
// upload's extension only; the edit path drops the original basename.
func (s *ImageService) SaveReplacement(filename string, src io.Reader) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	stored := fmt.Sprintf("room_%s.%s", time.Now().Format("20060102150405"), ext)
	if err := s.write(stored, src); err != nil {
		return "", err
	}
	return stored, nil
}

func (s *ImageService) write(name string, src io.Reader) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir images dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}
	return nil
}

// Remove deletes a stored image. A missing file is tolerated silently.
func (s *ImageService) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
