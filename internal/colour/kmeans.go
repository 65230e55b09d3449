package colour

import (
	"image"
	"math"
	"math/rand"
)

// Clustering caps. Sampling and iteration are both bounded so extraction
// always terminates in bounded time regardless of image size.
const (
	kmeansMaxIterations = 20
	kmeansConvergence   = 2.0
	kmeansMaxSamples    = 2000
	kmeansSeed          = 1
)

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) colour() Colour {
	return Colour{
		R: uint8(math.Round(p.R)),
		G: uint8(math.Round(p.G)),
		B: uint8(math.Round(p.B)),
	}
}

// samplePixels samples pixel colours from the image. Small images are read
// in full; large images are grid-sampled so the sample count stays near
// kmeansMaxSamples. Fully transparent pixels are skipped.
func samplePixels(img image.Image) []Colour {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	step := 1
	if totalPixels > kmeansMaxSamples {
		step = int(math.Sqrt(float64(totalPixels) / float64(kmeansMaxSamples)))
		if step < 1 {
			step = 1
		}
	}

	pixels := make([]Colour, 0, min(totalPixels, kmeansMaxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			pixels = append(pixels, Colour{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
			if len(pixels) >= kmeansMaxSamples {
				return pixels
			}
		}
	}

	return pixels
}

// kmeans clusters pixel colours into k groups and returns the centroids
// with their normalized cluster weights. The rng drives k-means++ seeding
// and empty-cluster reinitialisation; a fixed-seed rng makes the result
// reproducible for a given input.
func kmeans(pixels []Colour, k int, rng *rand.Rand) ([]point3D, []float64) {
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = point3D{
			R: float64(c.R),
			G: float64(c.G),
			B: float64(c.B),
		}
	}

	centroids := initializeCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Under 1% reassignment counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k, rng)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < kmeansConvergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// initializeCentroids seeds the clustering with k-means++: the first
// centroid is drawn uniformly, each subsequent one with probability
// proportional to its squared distance from the nearest existing centroid.
func initializeCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	if len(points) == 0 || k == 0 {
		return nil
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Every remaining point coincides with a centroid; nudge a
			// duplicate so the slot is not empty.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the centroid closest to point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its assigned
// points. Empty clusters are re-seeded from the point set.
func recalculateCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}
