package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonValue marshals a slice for storage in a jsonb column. Callers must
// map a nil slice to an empty array themselves: a typed nil inside the
// interface would marshal to JSON null, not [].
func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonb value: %w", err)
	}
	return b, nil
}

func jsonScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("jsonb scan: unsupported type %T", src)
	}
}

// NumberList is a jsonb column holding phone numbers. A nil list is stored
// as an empty array so reads never see SQL NULL; the other list types below
// do the same.
type NumberList []int64

func (l NumberList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonValue([]int64(l))
}
func (l *NumberList) Scan(src interface{}) error { return jsonScan((*[]int64)(l), src) }

// StringList is a jsonb column holding emails or user types.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonValue([]string(l))
}
func (l *StringList) Scan(src interface{}) error { return jsonScan((*[]string)(l), src) }

// AddressList is a jsonb column holding a client's embedded addresses.
type AddressList []Address

func (l AddressList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonValue([]Address(l))
}
func (l *AddressList) Scan(src interface{}) error { return jsonScan((*[]Address)(l), src) }

// ContactPersonList is a jsonb column holding a client's embedded contact persons.
type ContactPersonList []ContactPerson

func (l ContactPersonList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonValue([]ContactPerson(l))
}
func (l *ContactPersonList) Scan(src interface{}) error {
	return jsonScan((*[]ContactPerson)(l), src)
}
