package booking

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxPerformerNameLength = 200
	MaxPhoneLength         = 20
	MaxCouponCodeLength    = 50

	MsgSelectAtLeastOne = "Select at least one spot."
	MsgBookingSucceeded = "Booking successful! We'll be in touch."
	MsgBookingFailed    = "Booking failed"
	MsgLoadFailed       = "Failed to load spots"
)

var (
	ErrNoSpotsSelected  = errors.New("no spots selected")
	ErrInvalidPerformer = errors.New("invalid performer details")
)

type Performer struct {
	Name  string
	Email string
	Phone string
}

func NewPerformer(name, email, phone string) Performer {
	return Performer{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
}

// PerformerError describes the first problem found with the performer details.
type PerformerError struct {
	Message string
}

func (e *PerformerError) Error() string {
	return ErrInvalidPerformer.Error() + ": " + e.Message
}

func (e *PerformerError) Is(target error) bool {
	return target == ErrInvalidPerformer
}

// Validate mirrors the form's required inputs: all three present, email well formed, lengths within backend limits.
func (p Performer) Validate() error {
	switch {
	case p.Name == "" || utf8.RuneCountInString(p.Name) > MaxPerformerNameLength:
		return &PerformerError{Message: "Performer name is required (max 200 characters)."}
	case p.Email == "":
		return &PerformerError{Message: "Email is required."}
	case p.Phone == "" || utf8.RuneCountInString(p.Phone) > MaxPhoneLength:
		return &PerformerError{Message: "Phone is required (max 20 characters)."}
	}
	if addr, err := mail.ParseAddress(p.Email); err != nil || addr.Address != p.Email {
		return &PerformerError{Message: "Email is not valid."}
	}
	return nil
}

func (p Performer) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == ""
}

// Request is the payload sent once to the booking backend, then discarded.
type Request struct {
	SpotIDs       []int64
	PerformerName string
	Email         string
	Phone         string
	CouponCode    *string
}

type Result struct {
	Success bool
	Message string
	Total   float64
}
