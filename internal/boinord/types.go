package boinord

import (
	"encoding/json"
	"fmt"
)

// loginFailed is the value of "result" when credentials are rejected.
// The endpoint answers 200 in that case.
const loginFailed = "login failed"

type memberWish struct {
	DepartmentName  *string `json:"DepartmentName"`
	TenancyTypeText *string `json:"TenancyTypeText"`
	Matches         []match `json:"Matches"`
}

type match struct {
	CompanyNo     *text `json:"CompanyNo"`     // housing association
	DepartmentNo  *text `json:"DepartmentNo"`  // department within the association
	Rooms         *text `json:"Rooms"`         // room count
	TenancyType   *text `json:"TenancyType"`   // 1: apartment, 2: terraced house
	TenancyLmType *text `json:"TenancyLmType"` // 1: family housing
	Prio          *int  `json:"Prio"`          // waitlist position
}

// text holds a JSON string or number in textual form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", b)
	}
	*t = text(n.String())
	return nil
}
