// internal/models/common.go
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON numeric value that also accepts numeric strings, since
// the storefront clients are loosely typed and may send "10.5" for 10.5.
// A string that does not parse becomes NaN so that the range checks report
// it as "not a finite number" instead of a generic decode failure.
// Absence is modelled with *Number; a JSON null leaves the pointer nil.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*n = Number(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*n = Number(math.NaN())
			return nil
		}
		*n = Number(f)
	default:
		*n = Number(math.NaN())
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) IsFinite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Optional distinguishes an absent field from an explicit JSON null, which
// partial updates treat differently: absent leaves the stored value alone,
// null clears it.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.Null = false
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Enums
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)
