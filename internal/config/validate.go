package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Provider.BaseURL = strings.TrimRight(strings.TrimSpace(out.Provider.BaseURL), "/")
	out.Account.Username = strings.TrimSpace(out.Account.Username)
	out.Account.KeyringAccount = strings.TrimSpace(out.Account.KeyringAccount)
	out.Telemetry.OtlpHTTPEndpoint = strings.TrimSpace(out.Telemetry.OtlpHTTPEndpoint)

	for _, e := range validationErrors(out) {
		res.addErr("%s", e)
	}

	if out.Account.Username == "" {
		res.addWarn("account.username is empty; fetching will fail until it is set.")
	}
	if out.Polling.Enabled && out.Polling.IntervalSeconds > 0 && out.Polling.IntervalSeconds < 60 {
		res.addWarn("polling.interval_seconds is very low (%d) and may get the account throttled.", out.Polling.IntervalSeconds)
	}
	if out.Provider.RequestsPerSecond == 0 {
		res.addWarn("provider.requests_per_second is 0; outbound requests are not rate limited.")
	}

	return out, res
}
