package static

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// CachedFileInfo holds metadata for a static file used in HTTP cache headers.
type CachedFileInfo struct {
	ETag         string
	Size         int64
	LastModified time.Time
}

// StaticCache keeps validators for every file of an asset filesystem.
type StaticCache struct {
	fileLock sync.RWMutex
	entries  map[string]CachedFileInfo
	fs       fs.FS
}

// NewStaticCache scans fsys and computes ETag and Last-Modified for each file.
func NewStaticCache(fsys fs.FS) (*StaticCache, error) {
	c := &StaticCache{
		entries: make(map[string]CachedFileInfo),
		fs:      fsys,
	}

	c.fileLock.Lock()
	defer c.fileLock.Unlock()

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		modTime := info.ModTime()
		if modTime.IsZero() {
			modTime = time.Now()
		}

		c.entries[path] = CachedFileInfo{
			ETag:         fmt.Sprintf("\"%x\"", h.Sum(nil)),
			Size:         info.Size(),
			LastModified: modTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup returns the cached validators for path.
func (s *StaticCache) Lookup(path string) (CachedFileInfo, bool) {
	s.fileLock.RLock()
	defer s.fileLock.RUnlock()
	ci, ok := s.entries[path]
	return ci, ok
}

// ServeStaticFile serves files below prefix with conditional request support.
func (s *StaticCache) ServeStaticFile(prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := strings.TrimPrefix(c.Request().URL.Path, prefix)

		ci, ok := s.Lookup(path)
		if !ok {
			return echo.ErrNotFound
		}
		if inm := c.Request().Header.Get("If-None-Match"); inm != "" && inm == ci.ETag {
			return c.NoContent(http.StatusNotModified)
		}
		if ims := c.Request().Header.Get(echo.HeaderIfModifiedSince); ims != "" {
			if t, err := time.Parse(time.RFC1123, ims); err == nil && ci.LastModified.Before(t.Add(time.Second)) {
				return c.NoContent(http.StatusNotModified)
			}
		}

		// dist assets are not fingerprinted.
		ext := filepath.Ext(path)
		if strings.HasPrefix(path, "dist/") {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-cache, must-revalidate")
		} else {
			c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600, stale-while-revalidate=300")
		}

		f, err := s.fs.Open(path)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		c.Response().Header().Set("ETag", ci.ETag)
		c.Response().Header().Set(echo.HeaderLastModified, ci.LastModified.Format(time.RFC1123))

		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return c.Stream(http.StatusOK, contentType, f)
	}
}
