package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/giftlist/internal/ports"
)

// LineError — причина отбраковки строки JSONL.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Summary — итог валидации файла каталога.
type Summary struct {
	Valid   int
	Invalid int
	Errors  []LineError
}

func (s Summary) String() string { return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid) }

// ValidateJSONLStream — читает JSONL продуктов, валидирует каждую строку, валидные пишет в writer
// каноническим JSON (одна строка — один продукт). Пустые строки пропускаются,
// невалидные попадают в Summary.Errors с номером строки.
func ValidateJSONLStream(ctx context.Context, validator ports.RegistryValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	// фото и описания бывают длинными
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		product, err := decodeProduct(ctx, validator, raw)
		if err != nil {
			res.Invalid++
			res.Errors = append(res.Errors, LineError{Line: line, Err: err})
			continue
		}

		if err := writeCanonical(ow, product); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// writeCanonical — компактный JSON + перевод строки.
func writeCanonical(ow io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
