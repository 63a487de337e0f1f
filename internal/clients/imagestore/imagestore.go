package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// Store keeps profile images on local disk and exposes them under a public URL prefix.
type Store struct {
	dir        string
	publicPath string
	maxSize    int64
	now        func() time.Time
}

func New(dir, publicPath string, maxSize int64) *Store {
	return &Store{
		dir:        dir,
		publicPath: strings.TrimRight(publicPath, "/"),
		maxSize:    maxSize,
		now:        time.Now,
	}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// SaveProfileImage validates the image content and stores it as user-<id>-<unix ms>.<ext>.
func (s *Store) SaveProfileImage(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", entity.ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)

	ext, ok := allowedTypes[mtype.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", entity.ErrImageUnsupported, mtype.String())
	}

	err := os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := fmt.Sprintf("user-%s-%d%s", userID, s.now().UnixMilli(), ext)

	err = os.WriteFile(filepath.Join(s.dir, filename), data, 0o644) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	slog.DebugContext(ctx, "profile image stored", "file", filename, "mime", mtype.String())

	return path.Join(s.publicPath, filename), nil
}

// Remove deletes a previously stored image by its public URL. Unknown or missing files are ignored.
func (s *Store) Remove(ctx context.Context, publicURL string) error {
	if publicURL == "" || !strings.HasPrefix(publicURL, s.publicPath+"/") {
		return nil
	}

	name := path.Base(publicURL)

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}

	slog.DebugContext(ctx, "profile image removed", "file", name)

	return nil
}
