package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — формат по расширению файла; всё, что не .jsonl, считается JSON.
func DetectFormat(filePath string) InputFormat {
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateCatalogFile — валидирует файл импорта каталога.
// JSON — массив продуктов (или один объект), JSONL — продукт на строку.
// Валидные продукты пишутся в writer в каноническом JSONL.
func ValidateCatalogFile(ctx context.Context, validator ports.RegistryValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, file, ow)
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return Summary{}, fmt.Errorf("read file: %w", err)
		}
		return validateJSONDocument(ctx, validator, raw, ow)
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// validateJSONDocument — массив продуктов или одиночный объект.
func validateJSONDocument(ctx context.Context, validator ports.RegistryValidator, raw []byte, ow io.Writer) (Summary, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		product, err := decodeProduct(ctx, validator, raw)
		if err != nil {
			return Summary{Invalid: 1, Errors: []LineError{{Line: 1, Err: err}}}, err
		}
		if err := writeCanonical(ow, product); err != nil {
			return Summary{}, err
		}
		return Summary{Valid: 1}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Summary{}, fmt.Errorf("invalid json: %w", err)
	}

	var res Summary
	valid := make([]*domain.Product, 0, len(items))
	for i, item := range items {
		product, err := decodeProduct(ctx, validator, item)
		if err != nil {
			res.Invalid++
			res.Errors = append(res.Errors, LineError{Line: i + 1, Err: err})
			continue
		}
		valid = append(valid, product)
	}
	for _, p := range valid {
		if err := writeCanonical(ow, p); err != nil {
			return res, err
		}
		res.Valid++
	}
	return res, nil
}

// decodeProduct — строгий разбор одного продукта импорта: неизвестные поля и данные
// после объекта запрещены, текстовые поля обрезаются до валидации.
// Ошибка помечается id (или названием) продукта, чтобы её можно было найти в файле.
func decodeProduct(ctx context.Context, validator ports.RegistryValidator, raw []byte) (*domain.Product, error) {
	var product domain.Product
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&product); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: invalid json: trailing data", productRef(&product))
	}

	product.ID = strings.TrimSpace(product.ID)
	product.CategoryID = strings.TrimSpace(product.CategoryID)
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.ImageURL = strings.TrimSpace(product.ImageURL)
	product.StoreURL = strings.TrimSpace(product.StoreURL)

	if err := validator.ValidateProduct(ctx, &product); err != nil {
		return nil, fmt.Errorf("%s: %w", productRef(&product), err)
	}
	return &product, nil
}

func productRef(p *domain.Product) string {
	switch {
	case p.ID != "":
		return fmt.Sprintf("product %q", p.ID)
	case p.Name != "":
		return fmt.Sprintf("product named %q", p.Name)
	default:
		return "product"
	}
}
