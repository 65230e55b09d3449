package colour

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"sort"
)

// ErrNoPixels reports an image with zero decodable (non-transparent)
// pixels. It is an explicit failure, never an empty result.
var ErrNoPixels = errors.New("image has no decodable pixels")

// Swatch is one extracted colour annotated with the fraction of sampled
// pixels that belong to its cluster.
type Swatch struct {
	Colour    Colour
	Frequency float64
}

// ExtractionResult is an ordered set of swatches, descending by
// frequency. Frequencies lie in (0,1] and sum to at most 1.
type ExtractionResult []Swatch

// Colours returns the swatch colours in order.
func (r ExtractionResult) Colours() []Colour {
	colours := make([]Colour, len(r))
	for i, s := range r {
		colours[i] = s.Colour
	}
	return colours
}

// Palette wraps the extracted colours into a custom-scheme palette.
func (r ExtractionResult) Palette(mode Mode) *Palette {
	return NewCustom(mode, r.Colours())
}

// Extractor clusters image colours into representative swatches using
// k-means with k-means++ seeding. The rng seed is fixed so extraction is
// reproducible for a given image.
type Extractor struct {
	rng *rand.Rand
}

// NewExtractor creates an Extractor with the default deterministic seed.
func NewExtractor() *Extractor {
	return &Extractor{rng: rand.New(rand.NewSource(kmeansSeed))}
}

// Extract clusters the image's pixel colours into at most k swatches
// ordered by descending population. Images with fewer than k distinct
// colours yield fewer, non-duplicated swatches with their true
// frequencies.
func (e *Extractor) Extract(img image.Image, k int) (ExtractionResult, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}
	if k > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", k)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, ErrNoPixels
	}

	counts := make(map[Colour]int, len(pixels))
	for _, p := range pixels {
		counts[p]++
	}

	// With k or fewer distinct colours clustering would only pad with
	// duplicates; report the exact per-colour frequencies instead.
	if len(counts) <= k {
		result := make(ExtractionResult, 0, len(counts))
		total := float64(len(pixels))
		for c, n := range counts {
			result = append(result, Swatch{Colour: c, Frequency: float64(n) / total})
		}
		sortByFrequency(result)
		return result, nil
	}

	centroids, weights := kmeans(pixels, k, e.rng)

	result := make(ExtractionResult, 0, len(centroids))
	for i, centroid := range centroids {
		if weights[i] == 0 {
			continue
		}
		result = append(result, Swatch{Colour: centroid.colour(), Frequency: weights[i]})
	}
	sortByFrequency(result)
	return result, nil
}

// sortByFrequency orders swatches by descending frequency, breaking ties
// by hex so equal-weight results are stable.
func sortByFrequency(r ExtractionResult) {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Frequency != r[j].Frequency {
			return r[i].Frequency > r[j].Frequency
		}
		return r[i].Colour.Hex() < r[j].Colour.Hex()
	})
}
