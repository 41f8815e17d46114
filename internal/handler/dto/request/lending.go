package request

type CheckoutRequest struct {
	CheckoutDays *int `json:"checkout_days,omitempty"`
}

// Days resolves the requested loan length against the configured default
// and upper bound. Values beyond the maximum are invalid, not clamped.
func (r CheckoutRequest) Days(defaultDays, maxDays int) (int, bool) {
	if r.CheckoutDays == nil {
		return defaultDays, true
	}
	days := *r.CheckoutDays
	if days < 1 || days > maxDays {
		return 0, false
	}
	return days, true
}

type RenewRequest struct {
	ExtendDays *int `json:"extend_days,omitempty"`
}

func (r RenewRequest) Days(defaultDays, maxDays int) (int, bool) {
	if r.ExtendDays == nil {
		return defaultDays, true
	}
	days := *r.ExtendDays
	if days < 1 || days > maxDays {
		return 0, false
	}
	return days, true
}
