package layout

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gridfold/gridfold/pkg/errors"
	"github.com/gridfold/gridfold/pkg/source"
)

// AspectSampleCap bounds how many images the analyzer inspects.
// Folders larger than this are sampled uniformly.
const AspectSampleCap = 20

// Aspect is the analyzer result: the most frequent width/height ratio among
// the inspected images, quantized to two decimals.
type Aspect struct {
	Ratio   float64 // ratio used for layout math
	Label   string  // display label, e.g. "16:9" or "1.42:1"
	Sampled int     // how many images were inspected
}

// standardRatios maps quantized ratios to conventional names for display.
var standardRatios = []struct {
	value float64
	name  string
}{
	{1.78, "16:9"},
	{1.77, "16:9"},
	{1.60, "16:10"},
	{1.50, "3:2"},
	{1.33, "4:3"},
	{1.00, "1:1"},
	{0.75, "3:4"},
	{0.67, "2:3"},
	{0.56, "9:16"},
}

// AnalyzeAspect picks the most common aspect ratio among images.
//
// Ratios are quantized to two decimal places to merge near-duplicates, then
// tallied; the most frequent bucket wins and ties break toward the smallest
// ratio so the result is reproducible. When more than AspectSampleCap images
// are given, a uniform sample is drawn from rng; pass a seeded rand.Rand for
// deterministic tests.
func AnalyzeAspect(images []source.Image, rng *rand.Rand) (Aspect, error) {
	if len(images) == 0 {
		return Aspect{}, errors.New(errors.ErrCodeNoImages, "no images to analyze")
	}

	sampled := images
	if len(images) > AspectSampleCap {
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		perm := rng.Perm(len(images))
		sampled = make([]source.Image, AspectSampleCap)
		for i := 0; i < AspectSampleCap; i++ {
			sampled[i] = images[perm[i]]
		}
	}

	counts := make(map[float64]int, len(sampled))
	for _, img := range sampled {
		counts[quantize(img.Ratio())]++
	}

	best := 0.0
	bestCount := 0
	for ratio, count := range counts {
		if count > bestCount || (count == bestCount && ratio < best) {
			best = ratio
			bestCount = count
		}
	}

	return Aspect{
		Ratio:   best,
		Label:   ratioLabel(best),
		Sampled: len(sampled),
	}, nil
}

// quantize rounds a ratio to two decimal places.
func quantize(r float64) float64 {
	return math.Round(r*100) / 100
}

// ratioLabel snaps a ratio to the nearest named standard if it is within
// 0.1, otherwise formats it as "<ratio>:1".
func ratioLabel(ratio float64) string {
	bestName := ""
	bestDiff := math.Inf(1)
	for _, std := range standardRatios {
		if d := math.Abs(std.value - ratio); d < bestDiff {
			bestDiff = d
			bestName = std.name
		}
	}
	if bestDiff < 0.1 {
		return bestName
	}
	return fmt.Sprintf("%.2f:1", ratio)
}
