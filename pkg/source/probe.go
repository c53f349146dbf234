package source

import (
	"context"
	"encoding/json"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridfold/gridfold/pkg/cache"
	"github.com/gridfold/gridfold/pkg/errors"
	"github.com/gridfold/gridfold/pkg/observability"
)

// probeTTL bounds how long cached dimensions are kept. The key already
// includes size and mtime, so this only limits garbage accumulation.
const probeTTL = 90 * 24 * time.Hour

// probeKeyType labels probe entries in cache hook events.
const probeKeyType = "probe"

// Prober reads image dimensions, consulting a cache before touching pixels.
type Prober struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewProber creates a prober backed by c. Pass cache.NewNullCache() to
// disable caching.
func NewProber(c cache.Cache, logger *log.Logger) *Prober {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Prober{cache: c, logger: logger}
}

// probedDims is the cached value format.
type probedDims struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Probe returns the natural dimensions of the image at path.
// Only the header is decoded, never the full pixel data.
func (p *Prober) Probe(ctx context.Context, path string) (Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Image{}, errors.Wrap(errors.ErrCodeDecodeFailed, err, "cannot stat %q", path)
	}

	key := cache.ProbeKey(path, info.Size(), info.ModTime().UnixNano())
	if data, hit, _ := p.cache.Get(ctx, key); hit {
		var d probedDims
		if json.Unmarshal(data, &d) == nil && d.W > 0 && d.H > 0 {
			observability.Cache().OnCacheHit(ctx, probeKeyType)
			return Image{Path: path, Width: d.W, Height: d.H}, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, probeKeyType)

	f, err := os.Open(path)
	if err != nil {
		return Image{}, errors.Wrap(errors.ErrCodeDecodeFailed, err, "cannot open %q", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Image{}, errors.Wrap(errors.ErrCodeDecodeFailed, err, "cannot decode %q", path)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, errors.New(errors.ErrCodeDecodeFailed, "%q has invalid dimensions %dx%d", path, cfg.Width, cfg.Height)
	}

	data, _ := json.Marshal(probedDims{W: cfg.Width, H: cfg.Height})
	if err := p.cache.Set(ctx, key, data, probeTTL); err != nil {
		p.logger.Debug("probe cache write failed", "path", path, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, probeKeyType, len(data))
	}

	return Image{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

// ProbeAll probes every path, skipping files that cannot be decoded.
// Skipped files are logged as warnings; the pipeline treats a fully empty
// result as NO_IMAGES. This matches the behavior on corrupt inputs: skip
// loudly, never render a silent blank cell.
func (p *Prober) ProbeAll(ctx context.Context, paths []string) ([]Image, error) {
	images := make([]Image, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := p.Probe(ctx, path)
		if err != nil {
			p.logger.Warn("skipping unreadable image", "path", path, "err", err)
			observability.Pipeline().OnImageSkipped(ctx, path, err)
			continue
		}
		images = append(images, img)
	}
	return images, nil
}
