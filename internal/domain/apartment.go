package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// KeySeparator joins the parts of an ApartmentKey.
const KeySeparator = "-"

// ApartmentKey identifies one apartment variant on the waitlist:
// company-department-tenancyType-tenancyClass-rooms.
type ApartmentKey string

func NewApartmentKey(companyNo, departmentNo, tenancyType, tenancyLmType, rooms string) ApartmentKey {
	return ApartmentKey(strings.Join([]string{companyNo, departmentNo, tenancyType, tenancyLmType, rooms}, KeySeparator))
}

type ApartmentRecord struct {
	Position      int    `json:"position"`
	VariantString string `json:"variant_string"`
}

// VariantLabel renders e.g. "Hortensiaparken - Lejlighed - 2v".
func VariantLabel(departmentName, tenancyTypeText, rooms string) string {
	return fmt.Sprintf("%s - %s - %sv", departmentName, tenancyTypeText, rooms)
}

type Entry struct {
	Key    ApartmentKey
	Record ApartmentRecord
}

// Apartments maps ApartmentKey to ApartmentRecord and iterates in the order
// keys were first inserted. Setting an existing key replaces its record in place.
type Apartments struct {
	keys    []ApartmentKey
	records map[ApartmentKey]ApartmentRecord
}

func NewApartments() *Apartments {
	return &Apartments{records: make(map[ApartmentKey]ApartmentRecord)}
}

func (a *Apartments) Set(key ApartmentKey, rec ApartmentRecord) {
	if a.records == nil {
		a.records = make(map[ApartmentKey]ApartmentRecord)
	}
	if _, ok := a.records[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.records[key] = rec
}

func (a *Apartments) Get(key ApartmentKey) (ApartmentRecord, bool) {
	if a == nil {
		return ApartmentRecord{}, false
	}
	rec, ok := a.records[key]
	return rec, ok
}

func (a *Apartments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

func (a *Apartments) Keys() []ApartmentKey {
	if a == nil {
		return nil
	}
	out := make([]ApartmentKey, len(a.keys))
	copy(out, a.keys)
	return out
}

func (a *Apartments) Entries() []Entry {
	if a == nil {
		return nil
	}
	out := make([]Entry, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, Entry{Key: k, Record: a.records[k]})
	}
	return out
}

// MarshalJSON writes an object keyed by ApartmentKey, preserving iteration order.
func (a *Apartments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(e.Key))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
