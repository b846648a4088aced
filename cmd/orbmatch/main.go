// Command orbmatch detects ORB-style features in two images, matches them,
// and reports the result.
//
// Usage: orbmatch -a <image> -b <image> -testset <testset.json>
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"orbfeatures/internal/imaging"
	"orbfeatures/internal/orb"
	"orbfeatures/internal/rbrief"
	"orbfeatures/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	imageA := flag.String("a", "", "Path to the first image")
	imageB := flag.String("b", "", "Path to the second image")
	testSetPath := flag.String("testset", "", "Path to a trained rBRIEF test set JSON file")
	numFeatures := flag.Int("features", 500, "Maximum number of features to keep per image")
	fastThreshold := flag.Int("fast-threshold", 32, "FAST-9 intensity threshold")
	pyramidLevels := flag.Int("pyramid-levels", 4, "Number of extra pyramid levels")
	maxDistance := flag.Int("max-distance", 15, "Maximum Hamming distance accepted for a match")
	lshTables := flag.Int("lsh-tables", 10, "Number of LSH tables")
	lshBits := flag.Int("lsh-bits", 4, "Number of bit positions per LSH table")
	seed := flag.Int64("seed", 1, "Random seed for LSH table construction")
	flag.Parse()

	if *showVersion {
		fmt.Printf("orbmatch %s (%s, %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if *imageA == "" || *imageB == "" || *testSetPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: orbmatch -a <image> -b <image> -testset <testset.json>")
		os.Exit(1)
	}

	a, err := imaging.Load(*imageA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *imageA, err)
		os.Exit(1)
	}
	b, err := imaging.Load(*imageB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *imageB, err)
		os.Exit(1)
	}

	base, err := rbrief.LoadTestSet(*testSetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test set %s: %v\n", *testSetPath, err)
		os.Exit(1)
	}

	config := orb.Config{
		NumFeatures:      *numFeatures,
		FastThreshold:    *fastThreshold,
		NumPyramidLevels: *pyramidLevels,
		RBriefBank:       rbrief.FromTestSet(base),
		LSHTables:        *lshTables,
		LSHBits:          *lshBits,
		LSHMaxDistance:   *maxDistance,
	}

	fmt.Printf("Detecting features in %s...\n", *imageA)
	featuresA := orb.FindMultiscaleFeatures(a, config)
	fmt.Printf("Found %d features\n", len(featuresA))

	fmt.Printf("Detecting features in %s...\n", *imageB)
	featuresB := orb.FindMultiscaleFeatures(b, config)
	fmt.Printf("Found %d features\n", len(featuresB))

	rng := rand.New(rand.NewSource(*seed))
	matches := orb.FindMatches(featuresA, featuresB, config, rng)

	matched := 0
	for i, m := range matches {
		if m == nil {
			continue
		}
		matched++
		fmt.Printf("(%d, %d) level %d  ->  (%d, %d) level %d\n",
			featuresA[i].X, featuresA[i].Y, featuresA[i].Level, m.X, m.Y, m.Level)
	}
	fmt.Printf("\n%d of %d features matched\n", matched, len(featuresA))
}
