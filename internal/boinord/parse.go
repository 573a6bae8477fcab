package boinord

import (
	"encoding/json"
	"fmt"
	"net/http"

	"waitlist-engine/internal/domain"
)

// parseLoginResponse turns one userhandler response into the apartments mapping.
// The login check runs before the status check.
func parseLoginResponse(status int, body []byte) (*domain.Apartments, error) {
	var top map[string]json.RawMessage
	decodeErr := json.Unmarshal(body, &top)
	if decodeErr == nil && top == nil {
		decodeErr = fmt.Errorf("top-level JSON is null")
	}

	if decodeErr == nil {
		if raw, ok := top["result"]; ok {
			var result string
			if json.Unmarshal(raw, &result) == nil && result == loginFailed {
				return nil, authError()
			}
		}
	}

	if status != http.StatusOK {
		return nil, transportError(status, nil)
	}
	if decodeErr != nil {
		return nil, &Error{Kind: KindSchema, Msg: "response is not a JSON object", Err: decodeErr}
	}

	raw, ok := top["MemberWishes"]
	if !ok {
		return nil, schemaError("no MemberWishes found in the response")
	}
	var wishes []memberWish
	if err := json.Unmarshal(raw, &wishes); err != nil {
		return nil, &Error{Kind: KindSchema, Msg: "decode MemberWishes", Err: err}
	}

	return foldWishes(wishes)
}

func foldWishes(wishes []memberWish) (*domain.Apartments, error) {
	out := domain.NewApartments()
	for wi, w := range wishes {
		for mi, m := range w.Matches {
			if err := m.validate(); err != nil {
				return nil, schemaError("MemberWishes[%d].Matches[%d]: %v", wi, mi, err)
			}
			if w.DepartmentName == nil || w.TenancyTypeText == nil {
				return nil, schemaError("MemberWishes[%d]: missing DepartmentName or TenancyTypeText", wi)
			}

			rooms := string(*m.Rooms)
			key := domain.NewApartmentKey(
				string(*m.CompanyNo),
				string(*m.DepartmentNo),
				string(*m.TenancyType),
				string(*m.TenancyLmType),
				rooms,
			)
			out.Set(key, domain.ApartmentRecord{
				Position:      *m.Prio,
				VariantString: domain.VariantLabel(*w.DepartmentName, *w.TenancyTypeText, rooms),
			})
		}
	}
	return out, nil
}

func (m match) validate() error {
	switch {
	case m.CompanyNo == nil:
		return fmt.Errorf("missing CompanyNo")
	case m.DepartmentNo == nil:
		return fmt.Errorf("missing DepartmentNo")
	case m.Rooms == nil:
		return fmt.Errorf("missing Rooms")
	case m.TenancyType == nil:
		return fmt.Errorf("missing TenancyType")
	case m.TenancyLmType == nil:
		return fmt.Errorf("missing TenancyLmType")
	case m.Prio == nil:
		return fmt.Errorf("missing Prio")
	}
	return nil
}
