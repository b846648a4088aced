// Command orbtrain learns an rBRIEF test set from a directory of training
// images and writes it to disk as JSON, for later use by orbmatch.
//
// Usage: orbtrain -dir <images-dir> -out <testset.json>
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"orbfeatures/internal/imaging"
	"orbfeatures/internal/orb"
	"orbfeatures/internal/rbrief"
	"orbfeatures/internal/version"
)

// trainingWidth is the width training images are downscaled to before
// feature accumulation, so a corpus of mixed-resolution scans contributes
// comparable statistics.
const trainingWidth = 640

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	dir := flag.String("dir", "", "Directory of training images")
	outPath := flag.String("out", "testset.json", "Output test set JSON path")
	numFeatures := flag.Int("features", 500, "Maximum number of features per image")
	fastThreshold := flag.Int("fast-threshold", 32, "FAST-9 intensity threshold")
	pyramidLevels := flag.Int("pyramid-levels", 4, "Number of extra pyramid levels")
	flag.Parse()

	if *showVersion {
		fmt.Printf("orbtrain %s (%s, %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: orbtrain -dir <images-dir> -out <testset.json>")
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *dir, err)
		os.Exit(1)
	}

	config := orb.Config{
		NumFeatures:      *numFeatures,
		FastThreshold:    *fastThreshold,
		NumPyramidLevels: *pyramidLevels,
	}

	trainer := rbrief.NewTrainer()
	used := 0
	for _, entry := range entries {
		if entry.IsDir() || !imaging.IsSupportedFormat(entry.Name()) {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		img, err := loadAndResize(path, trainingWidth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		fmt.Printf("accumulating %s (%dx%d)\n", path, img.Width, img.Height)
		orb.AddImageToTrainer(trainer, img, config)
		used++
	}

	if used == 0 {
		fmt.Fprintln(os.Stderr, "no training images found")
		os.Exit(1)
	}

	fmt.Printf("trained on %d images, distilling test set...\n", used)
	set := trainer.MakeTestSet()
	if err := set.Save(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save test set: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

// loadAndResize decodes path and, if wider than width, downscales it to
// width while preserving aspect ratio, before converting to grayscale.
func loadAndResize(path string, width int) (*imaging.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= width {
		return imaging.FromGray(src), nil
	}

	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return imaging.FromGray(dst), nil
}
