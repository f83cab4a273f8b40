package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// boolFlags never consume a following value.
var boolFlags = map[string]bool{
	"verbose":         true,
	"use_light_model": true,
	"debug":           true,
}

// Arguments holds the parsed command line: positional arguments in
// order, plus --flag values keyed by flag name.
type Arguments struct {
	Positional []string
	Flags      map[string]string
}

// HasFlag reports whether the flag was present on the command line.
func (a Arguments) HasFlag(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// ParseArguments converts command-line arguments into positionals and a map of flags
func ParseArguments(argv []string) Arguments {
	args := Arguments{Flags: make(map[string]string)}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		// Handle flags with equals sign (--key=value)
		if strings.HasPrefix(arg, "--") && strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			args.Flags[strings.TrimPrefix(parts[0], "--")] = parts[1]
			continue
		}

		// Handle flags without equals sign (--key value)
		if strings.HasPrefix(arg, "--") {
			flagName := strings.TrimPrefix(arg, "--")

			// Boolean flags, and flags at the end of the line, take no value
			if boolFlags[flagName] || i+1 >= len(argv) || strings.HasPrefix(argv[i+1], "--") {
				args.Flags[flagName] = "true"
			} else {
				args.Flags[flagName] = argv[i+1]
				i++ // Skip the value in the next iteration
			}
			continue
		}

		args.Positional = append(args.Positional, arg)
	}

	return args
}

// ParseThreshold parses the similarity threshold value from string.
// Out-of-range values are accepted: a threshold at or below 0 groups
// every pair, above 1 groups nothing.
func ParseThreshold(thresholdStr string) (float64, error) {
	threshold, err := strconv.ParseFloat(thresholdStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid similarity threshold %q: expected a number between 0.00 and 1.00", thresholdStr)
	}
	return threshold, nil
}

// ParseBatchSize parses the fingerprint batch size from string.
func ParseBatchSize(batchStr string) (int, error) {
	batchSize, err := strconv.Atoi(batchStr)
	if err != nil || batchSize < 1 {
		return 0, fmt.Errorf("invalid batch size %q: expected a positive integer", batchStr)
	}
	return batchSize, nil
}

// PrintUsage outputs the command-line usage instructions
func PrintUsage() {
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s IMAGE_DIRECTORY SIMILARITY_THRESHOLD OUTPUT_CSV [--verbose] [--use_light_model] [--batch_size=N] [--debug] [--logfile=PATH]\n", os.Args[0])
	fmt.Printf("\nArguments:\n")
	fmt.Printf("  IMAGE_DIRECTORY      : Directory containing the images (searched recursively)\n")
	fmt.Printf("  SIMILARITY_THRESHOLD : Similarity threshold between 0.00 and 1.00\n")
	fmt.Printf("  OUTPUT_CSV           : Output CSV filename for the similarity groups\n")
	fmt.Printf("\nFlags:\n")
	fmt.Printf("  --verbose            : Stream per-pair similarity indices and progress to stdout\n")
	fmt.Printf("  --use_light_model    : Use the cheaper 64-bit average hash instead of the 256-bit DCT hash\n")
	fmt.Printf("  --batch_size=N       : Number of fingerprints computed concurrently (default: 1)\n")
	fmt.Printf("  --debug              : Enable debug logging to a file\n")
	fmt.Printf("  --logfile=PATH       : Custom log file path (default: imagegrouper.log)\n")
	fmt.Printf("\nExamples:\n")
	fmt.Printf("  %s /path/to/images 0.1 groups.csv --verbose\n", os.Args[0])
	fmt.Printf("  %s /path/to/images 0.05 groups.csv --use_light_model --batch_size=4\n", os.Args[0])
}
