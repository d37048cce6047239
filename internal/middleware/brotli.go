package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// BrotliConfig tunes the Brotli middleware.
type BrotliConfig struct {
	Quality int
	// MinLength is the body size below which responses are sent uncompressed.
	MinLength int
	Skipper   func(c *gin.Context) bool
}

var DefaultBrotliConfig = BrotliConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
}

// Response types that are already compressed containers.
var incompressibleTypes = map[string]bool{
	"application/zip":  true,
	"application/gzip": true,
	"application/pdf":  true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

type encodeMode int

const (
	modeBuffering encodeMode = iota
	modeBrotli
	modeRaw
)

// brotliWriter holds the body back until MinLength bytes are known, then
// commits to either brotli or the raw stream for the rest of the response.
type brotliWriter struct {
	gin.ResponseWriter
	enc       *brotli.Writer
	quality   int
	minLength int
	buf       []byte
	mode      encodeMode
}

func (bw *brotliWriter) Write(data []byte) (int, error) {
	switch bw.mode {
	case modeBrotli:
		return bw.enc.Write(data)
	case modeRaw:
		return bw.ResponseWriter.Write(data)
	}

	bw.buf = append(bw.buf, data...)
	if len(bw.buf) < bw.minLength {
		return len(data), nil
	}
	if err := bw.commit(); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (bw *brotliWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}

func (bw *brotliWriter) commit() error {
	h := bw.ResponseWriter.Header()
	if isIncompressible(h.Get("Content-Type")) || h.Get("Content-Encoding") != "" {
		bw.mode = modeRaw
	} else {
		bw.mode = modeBrotli
		h.Set("Content-Encoding", "br")
		h.Del("Content-Length")
		bw.enc = brotli.NewWriterLevel(bw.ResponseWriter, bw.quality)
	}

	buf := bw.buf
	bw.buf = nil
	if bw.mode == modeBrotli {
		_, err := bw.enc.Write(buf)
		return err
	}
	_, err := bw.ResponseWriter.Write(buf)
	return err
}

// finish runs after the handler chain. Short bodies go out as they are.
func (bw *brotliWriter) finish() error {
	switch bw.mode {
	case modeBrotli:
		return bw.enc.Close()
	case modeRaw:
		return nil
	}
	if len(bw.buf) == 0 {
		return nil
	}
	bw.mode = modeRaw
	_, err := bw.ResponseWriter.Write(bw.buf)
	bw.buf = nil
	return err
}

// Brotli compresses responses with the default settings.
func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < brotli.BestSpeed || cfg.Quality > brotli.BestCompression {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}
		if cfg.Skipper != nil && cfg.Skipper(c) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		original := c.Writer
		bw := &brotliWriter{
			ResponseWriter: original,
			quality:        cfg.Quality,
			minLength:      cfg.MinLength,
		}
		c.Writer = bw
		defer func() {
			c.Writer = original
			if err := bw.finish(); err != nil {
				_ = c.Error(err)
			}
		}()

		c.Next()
	}
}

// acceptsBrotli reports whether br is listed with a non-zero q value.
func acceptsBrotli(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc, params, _ := strings.Cut(part, ";")
		if !strings.EqualFold(strings.TrimSpace(enc), "br") {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

func isIncompressible(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return incompressibleTypes[mt] || strings.HasPrefix(mt, "image/") ||
		strings.HasPrefix(mt, "video/") || strings.HasPrefix(mt, "audio/")
}
