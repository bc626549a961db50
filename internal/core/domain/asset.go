package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names of the asset store, in on-disk order
const (
	FieldID          = "ID"
	FieldSN          = "SN"
	FieldCategory    = "CATEGORY"
	FieldType        = "TYPE"
	FieldLocation    = "LOCATION"
	FieldAssignee    = "ASSIGNEE"
	FieldDescription = "DESCRIPTION"
	FieldColor       = "COLOR"
	FieldStatus      = "STATUS"
)

// Unassigned is stored in place of an empty assignee
const Unassigned = "NOT ASSIGNED"

// Columns is the fixed header of the asset store
var Columns = []string{
	FieldID,
	FieldSN,
	FieldCategory,
	FieldType,
	FieldLocation,
	FieldAssignee,
	FieldDescription,
	FieldColor,
	FieldStatus,
}

// Asset is one physical item as stored in the asset file
type Asset struct {
	ID           int
	SerialNumber string
	Category     string
	Type         string
	Location     string
	Assignee     string
	Description  string
	Color        string
	Status       string
}

// AssetInput carries every asset field except the ID, which the store assigns
type AssetInput struct {
	SerialNumber string
	Category     string
	Type         string
	Location     string
	Assignee     string
	Description  string
	Color        string
	Status       string
}

// Normalize trims surrounding whitespace and upper-cases s
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeField normalizes a value destined for the named column.
// An empty assignee becomes Unassigned.
func NormalizeField(field, value string) string {
	v := Normalize(value)
	if field == FieldAssignee && v == "" {
		return Unassigned
	}
	return v
}

// CanonicalField resolves a user supplied column name ("sn", " Status ")
// to its canonical form, or returns ErrUnknownField.
func CanonicalField(name string) (string, error) {
	field := Normalize(name)
	for _, c := range Columns {
		if c == field {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownField, name, strings.Join(Columns, ", "))
}

// NewAsset builds a normalized asset with the given id
func NewAsset(id int, in AssetInput) (*Asset, error) {
	sn := Normalize(in.SerialNumber)
	if sn == "" {
		return nil, fmt.Errorf("%w: serial number cannot be empty", ErrInvalidValue)
	}

	return &Asset{
		ID:           id,
		SerialNumber: sn,
		Category:     Normalize(in.Category),
		Type:         Normalize(in.Type),
		Location:     Normalize(in.Location),
		Assignee:     NormalizeField(FieldAssignee, in.Assignee),
		Description:  Normalize(in.Description),
		Color:        Normalize(in.Color),
		Status:       Normalize(in.Status),
	}, nil
}

// Field returns the value of a canonical column
func (a *Asset) Field(field string) string {
	switch field {
	case FieldID:
		return strconv.Itoa(a.ID)
	case FieldSN:
		return a.SerialNumber
	case FieldCategory:
		return a.Category
	case FieldType:
		return a.Type
	case FieldLocation:
		return a.Location
	case FieldAssignee:
		return a.Assignee
	case FieldDescription:
		return a.Description
	case FieldColor:
		return a.Color
	case FieldStatus:
		return a.Status
	}
	return ""
}

// SetField normalizes value and assigns it to a canonical column
func (a *Asset) SetField(field, value string) error {
	v := NormalizeField(field, value)

	switch field {
	case FieldID:
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return fmt.Errorf("%w: ID must be a positive integer, got %q", ErrInvalidValue, value)
		}
		a.ID = id
	case FieldSN:
		if v == "" {
			return fmt.Errorf("%w: serial number cannot be empty", ErrInvalidValue)
		}
		a.SerialNumber = v
	case FieldCategory:
		a.Category = v
	case FieldType:
		a.Type = v
	case FieldLocation:
		a.Location = v
	case FieldAssignee:
		a.Assignee = v
	case FieldDescription:
		a.Description = v
	case FieldColor:
		a.Color = v
	case FieldStatus:
		a.Status = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Row returns the asset's cells in Columns order
func (a *Asset) Row() []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = a.Field(c)
	}
	return row
}

// HasSerial reports whether the asset's serial matches sn after normalization
func (a *Asset) HasSerial(sn string) bool {
	return a.SerialNumber == Normalize(sn)
}
