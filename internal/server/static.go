package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".webp": "image/webp",
	".txt":  "text/plain; charset=utf-8",
}

func contentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// resolvePublic maps a URL path onto a file under root. ok is false when the
// result would leave root.
func resolvePublic(root, urlPath string) (string, bool) {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index.html"
	}
	full := filepath.Join(root, filepath.FromSlash(urlPath))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

func staticFiles(root string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		full, ok := resolvePublic(root, c.Request.URL.Path)
		if !ok {
			c.String(http.StatusForbidden, "Forbidden")
			return
		}

		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		f, err := os.Open(full)
		if err != nil {
			logger.Warn("static_open_failed", zap.String("path", full), zap.Error(err))
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		defer f.Close()

		c.DataFromReader(http.StatusOK, info.Size(), contentTypeFor(full), f, nil)
	}
}
