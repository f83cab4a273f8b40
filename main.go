// Command imagegrouper walks a directory tree, computes a perceptual
// fingerprint per image, compares every unordered pair, and writes
// the resulting similarity groups to a CSV report.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"imagegrouper/grouping"
	"imagegrouper/imageprocessor"
	"imagegrouper/logging"
	"imagegrouper/report"
	"imagegrouper/scanner"
	"imagegrouper/signalhandler"
	"imagegrouper/utils"
)

func main() {
	// Set up signal handling before any CGo work starts
	ctx := signalhandler.SetupHandler()

	// Set the optimal number of CPUs to use
	runtime.GOMAXPROCS(signalhandler.GetOptimalProcs())

	args := utils.ParseArguments(os.Args[1:])
	if len(args.Positional) != 3 {
		utils.PrintUsage()
		os.Exit(1)
	}

	imageDir := args.Positional[0]
	outputCSV := args.Positional[2]

	threshold, err := utils.ParseThreshold(args.Positional[1])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if threshold < 0 || threshold > 1 {
		fmt.Printf("Warning: threshold %v is outside [0, 1]; grouping will be degenerate\n", threshold)
	}

	batchSize := 1
	if raw, ok := args.Flags["batch_size"]; ok {
		if batchSize, err = utils.ParseBatchSize(raw); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	// Verify the image directory exists and is accessible
	info, err := os.Stat(imageDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Fatalf("Image directory does not exist: %s", imageDir)
		}
		log.Fatalf("Cannot access image directory: %s (%v)", imageDir, err)
	}
	if !info.IsDir() {
		log.Fatalf("Path is not a directory: %s", imageDir)
	}

	// Verify the report location before hours of comparison work
	if dir := filepath.Dir(outputCSV); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			log.Fatalf("Output directory does not exist: %s", dir)
		}
	}

	// Setup debug logging if enabled
	if args.HasFlag("debug") {
		logPath := "imagegrouper.log"
		if custom, ok := args.Flags["logfile"]; ok && custom != "" {
			logPath = custom
		}
		if err := logging.SetupLogger(logPath); err != nil {
			fmt.Printf("Warning: Failed to setup logging: %v\n", err)
		} else {
			fmt.Printf("Debug mode enabled. Logging to: %s\n", logPath)
			defer logging.CloseLogger()
		}
	}

	verbose := args.HasFlag("verbose")
	if verbose {
		fmt.Println("Generating similarity groups and similarity index...")
	}

	records, err := scanner.DiscoverImages(imageDir)
	if err != nil {
		log.Fatalf("Error discovering images: %v", err)
	}

	provider := imageprocessor.NewProvider(imageprocessor.Options{
		UseLightModel: args.HasFlag("use_light_model"),
	})

	startTime := time.Now()
	engine := grouping.NewEngine()
	progress := grouping.NewProgress(len(records))
	comparator := grouping.NewComparator(provider, grouping.Options{
		Threshold: threshold,
		BatchSize: batchSize,
		Verbose:   verbose,
	})

	if err := comparator.Run(ctx, records, engine, progress); err != nil {
		logging.LogError("comparison failed: %v", err)
		log.Fatalf("Error: %v", err)
	}

	// Groups are fully buffered before the report is opened, so a
	// write failure here never discards comparison work silently.
	if err := report.WriteCSV(outputCSV, engine.Groups()); err != nil {
		logging.LogError("report write failed: %v", err)
		log.Fatalf("Error: %v", err)
	}

	if verbose {
		fmt.Printf("Similarity groups and similarity index written to %s\n", outputCSV)
	}
	fmt.Printf("Compared %d images into %d groups in %v.\n",
		len(records), len(engine.Groups()), time.Since(startTime).Round(time.Millisecond))
}
