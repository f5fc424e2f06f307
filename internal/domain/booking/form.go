package booking

import (
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/pricing"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/pkg/ptr"
)

// Form is one visitor's in-progress booking. It is never persisted.
type Form struct {
	selection     spot.Selection
	loadError     string
	couponCode    coupon.Code
	couponApplied *coupon.Validation
	performer     Performer
	submitSuccess string
	submitError   string
}

func NewForm(spots []spot.Spot) *Form {
	return &Form{selection: spot.NewSelection(spots)}
}

// NewFailedForm is the form shown when the spot list could not be fetched.
func NewFailedForm() *Form {
	return &Form{loadError: MsgLoadFailed}
}

// Toggle flips a spot and drops any applied coupon, which must then be validated again.
func (f *Form) Toggle(spotID int64) error {
	if err := f.selection.Toggle(spotID); err != nil {
		return err
	}
	f.couponApplied = nil
	f.submitError = ""
	f.submitSuccess = ""
	return nil
}

// Reload swaps in freshly fetched spots. The applied coupon is dropped as the spot count may change.
func (f *Form) Reload(spots []spot.Spot) {
	f.selection.Refresh(spots)
	f.loadError = ""
	f.couponApplied = nil
}

func (f *Form) SetCouponCode(raw string) {
	f.couponCode = coupon.NewCode(raw)
}

func (f *Form) ClearCoupon() {
	f.couponApplied = nil
}

func (f *Form) ApplyCouponResult(v *coupon.Validation) {
	f.couponApplied = v
}

func (f *Form) SetPerformer(p Performer) {
	f.performer = p
}

func (f *Form) Quote(calc pricing.PriceCalculator) pricing.Quote {
	return calc.Quote(f.selection.Items(), f.couponApplied)
}

// BuildRequest assembles the booking payload. Nothing selected is rejected before any network call.
func (f *Form) BuildRequest() (Request, error) {
	ids := f.selection.IDs()
	if len(ids) == 0 {
		f.submitError = MsgSelectAtLeastOne
		return Request{}, ErrNoSpotsSelected
	}
	return Request{
		SpotIDs:       ids,
		PerformerName: f.performer.Name,
		Email:         f.performer.Email,
		Phone:         f.performer.Phone,
		CouponCode:    ptr.NonEmpty(f.couponCode.String()),
	}, nil
}

func (f *Form) BeginSubmit() {
	f.submitError = ""
	f.submitSuccess = ""
}

// MarkSubmitted resets the form for the next booking.
func (f *Form) MarkSubmitted() {
	f.submitSuccess = MsgBookingSucceeded
	f.submitError = ""
	f.performer = Performer{}
	f.couponCode = ""
	f.couponApplied = nil
	f.selection.Clear()
}

func (f *Form) MarkFailed(message string) {
	if message == "" {
		message = MsgBookingFailed
	}
	f.submitError = message
}

// Clone returns a copy safe to read while the original keeps changing.
func (f *Form) Clone() *Form {
	c := *f
	c.selection = f.selection.Clone()
	if f.couponApplied != nil {
		v := *f.couponApplied
		c.couponApplied = &v
	}
	return &c
}

func (f *Form) Selection() spot.Selection         { return f.selection }
func (f *Form) LoadError() string                 { return f.loadError }
func (f *Form) CouponCode() coupon.Code           { return f.couponCode }
func (f *Form) CouponApplied() *coupon.Validation { return f.couponApplied }
func (f *Form) Performer() Performer              { return f.performer }
func (f *Form) SubmitSuccess() string             { return f.submitSuccess }
func (f *Form) SubmitError() string               { return f.submitError }
func (f *Form) SelectedCount() int                { return f.selection.Count() }
