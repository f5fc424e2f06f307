package coupon

import (
	"strings"
)

type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

func (d DiscountType) String() string {
	return string(d)
}

func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountFixed, DiscountPercent:
		return true
	default:
		return false
	}
}

// Code is a coupon code as typed by the visitor. Matching is case-insensitive on the backend,
// so the code is only trimmed here.
type Code string

func NewCode(raw string) Code {
	return Code(strings.TrimSpace(raw))
}

func (c Code) String() string {
	return string(c)
}

func (c Code) IsEmpty() bool {
	return c == ""
}
