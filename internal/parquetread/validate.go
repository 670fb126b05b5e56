package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/occload/internal/model"
)

// ValidateSchema checks that the Parquet schema contains the identifying
// columns and every configured date column.
func ValidateSchema(schema *parquet.Schema, dateColumns []string) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	for _, col := range model.RequiredColumns() {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	var missing []string
	for _, col := range dateColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing date columns: %s", strings.Join(missing, ", "))
	}

	return nil
}
