package domain

import (
	"fmt"
	"strings"
)

const vinLength = 17

// EquipmentIdentifier identifies a piece of heavy equipment by its VIN.
// Type and model describe the machine but do not participate in equality:
// two identifiers are the same equipment when their VINs match.
type EquipmentIdentifier struct {
	vin           string
	equipmentType string
	model         string
}

// NewEquipmentIdentifier validates and normalizes a VIN (17 alphanumeric
// characters, upper-cased).
func NewEquipmentIdentifier(vin, equipmentType, model string) (EquipmentIdentifier, error) {
	fields := make(map[string]string)

	normalized := strings.ToUpper(strings.TrimSpace(vin))
	if len(normalized) != vinLength {
		fields["vin"] = fmt.Sprintf("must be %d characters, got %d", vinLength, len(normalized))
	} else if !isAlphanumeric(normalized) {
		fields["vin"] = "must contain only letters and digits"
	}
	if strings.TrimSpace(equipmentType) == "" {
		fields["equipment_type"] = "is required"
	}
	if strings.TrimSpace(model) == "" {
		fields["model"] = "is required"
	}

	if len(fields) > 0 {
		return EquipmentIdentifier{}, &ValidationError{Fields: fields}
	}

	return EquipmentIdentifier{
		vin:           normalized,
		equipmentType: equipmentType,
		model:         model,
	}, nil
}

// VIN returns the normalized vehicle identification number.
func (e EquipmentIdentifier) VIN() string { return e.vin }

// Type returns the equipment type, e.g. "excavator".
func (e EquipmentIdentifier) Type() string { return e.equipmentType }

// Model returns the manufacturer model designation.
func (e EquipmentIdentifier) Model() string { return e.model }

// IsZero reports whether the identifier is the zero value.
func (e EquipmentIdentifier) IsZero() bool { return e.vin == "" }

// Equal compares by VIN only.
func (e EquipmentIdentifier) Equal(other EquipmentIdentifier) bool {
	return e.vin == other.vin
}

// String implements fmt.Stringer.
func (e EquipmentIdentifier) String() string {
	return fmt.Sprintf("%s (%s %s)", e.vin, e.equipmentType, e.model)
}

func isAlphanumeric(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
