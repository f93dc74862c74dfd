package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"thirdcoast.systems/studio/pkg/sparse"
)

// DescriptorDoc stores a transformation descriptor in a JSONB column.
// Numbers read back as float64 and nested objects as sparse.Section, the same
// shape the panels produce.
type DescriptorDoc sparse.Section

// Section returns the descriptor tree.
func (d DescriptorDoc) Section() sparse.Section {
	if d == nil {
		return sparse.Section{}
	}
	return sparse.Section(d)
}

func (d *DescriptorDoc) parse(raw []byte) error {
	s, err := sparse.Parse(raw)
	if err != nil {
		return err
	}
	*d = DescriptorDoc(s)
	return nil
}

// Scan implements sql.Scanner for reading from the database.
func (d *DescriptorDoc) Scan(value any) error {
	if value == nil {
		*d = DescriptorDoc{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return d.parse(v)
	case string:
		return d.parse([]byte(v))
	default:
		return fmt.Errorf("db.DescriptorDoc.Scan: expected []byte or string, got %T", value)
	}
}

// Value implements driver.Valuer for writing to the database.
func (d DescriptorDoc) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(sparse.Section(d))
}

// ScanText implements the pgtype.TextScanner interface for pgx v5.
func (d *DescriptorDoc) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*d = DescriptorDoc{}
		return nil
	}
	return d.parse([]byte(v.String))
}

// TextValue implements the pgtype.TextValuer interface for pgx v5.
func (d DescriptorDoc) TextValue() (pgtype.Text, error) {
	b, err := d.Value()
	if err != nil {
		return pgtype.Text{}, err
	}
	return pgtype.Text{String: string(b.([]byte)), Valid: true}, nil
}
