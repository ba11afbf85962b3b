package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/giftlist/pkg/validate"
)

// CLI-приложение для проверки файла импорта каталога.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	validator := validate.NewRegistryValidator()

	path := *inputPath
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateCatalogFile(ctx, validator, path, format, os.Stdout)
	for _, lineErr := range summary.Errors {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", lineErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
