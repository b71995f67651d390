package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxMediaSize is the largest carousel image accepted (10MB)
const MaxMediaSize = 10 << 20

var (
	ErrMediaTooLarge       = errors.New("file exceeds the 10MB limit")
	ErrMediaEmpty          = errors.New("file is empty")
	ErrMediaExtension      = errors.New("only .webp, .avif, .jpg, .jpeg and .png images are allowed")
	ErrMediaContentInvalid = errors.New("file content does not match an allowed image type")
)

var allowedMediaTypes = map[string][]string{
	".webp": {"image/webp"},
	".avif": {"image/avif"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
}

// ValidateMediaUpload checks the extension, size and leading bytes of an
// image before it is stored. r is rewound on success.
func ValidateMediaUpload(name string, r io.ReadSeeker, size int64) error {
	if size > MaxMediaSize {
		return ErrMediaTooLarge
	}
	if size == 0 {
		return ErrMediaEmpty
	}

	ext := strings.ToLower(filepath.Ext(name))
	allowed, ok := allowedMediaTypes[ext]
	if !ok {
		return ErrMediaExtension
	}

	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read file header: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	detected := sniffImageType(buf[:n])
	for _, t := range allowed {
		if t == detected {
			return nil
		}
	}
	return ErrMediaContentInvalid
}

// sniffImageType is http.DetectContentType plus AVIF, which the standard
// sniffer does not know
func sniffImageType(head []byte) string {
	if len(head) >= 12 && bytes.Equal(head[4:8], []byte("ftyp")) {
		brand := string(head[8:12])
		if brand == "avif" || brand == "avis" {
			return "image/avif"
		}
	}
	return http.DetectContentType(head)
}
