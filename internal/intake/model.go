package intake

import (
	"regexp"
	"strings"
)

// emailPattern is a syntactic check only: one "@", no whitespace, a dot
// in the domain. Deliverability is not our problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ContactRequest is the general contact form submission. Company is the
// hidden honeypot field; humans never fill it.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Company   string `json:"company"`
}

// Validate collects every violation rather than stopping at the first,
// so the form can mark all invalid fields at once.
func (r *ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "First name is required.")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "Last name is required.")
	}
	if strings.TrimSpace(r.Email) == "" || !isEmail(r.Email) {
		errs = append(errs, "A valid email is required.")
	}
	if strings.TrimSpace(r.Message) == "" {
		errs = append(errs, "Message is required.")
	}
	return errs
}

// HoneypotTriggered reports whether the hidden field was filled in.
func (r *ContactRequest) HoneypotTriggered() bool {
	return strings.TrimSpace(r.Company) != ""
}

// NotaryRequest is the notary form submission. It carries a single name
// field that is split into first/last at persistence time.
type NotaryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
	Company string `json:"company"`
}

// Validate collects every violation.
func (r *NotaryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if strings.TrimSpace(r.Email) == "" || !isEmail(r.Email) {
		errs = append(errs, "A valid email is required.")
	}
	if strings.TrimSpace(r.Message) == "" {
		errs = append(errs, "Message is required.")
	}
	return errs
}

// HoneypotTriggered reports whether the hidden field was filled in.
func (r *NotaryRequest) HoneypotTriggered() bool {
	return strings.TrimSpace(r.Company) != ""
}

// SplitName divides the notary form's single name into the store's
// first/last fields. A single bare name becomes the first name with an
// empty last name.
func (r *NotaryRequest) SplitName() (first, last string) {
	parts := strings.Fields(strings.TrimSpace(r.Name))
	if len(parts) == 0 {
		return r.Name, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// normalizePhone trims the optional phone field; blank becomes nil so
// the store records null rather than an empty string.
func normalizePhone(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &raw
}

// joinNonEmpty joins the non-empty parts with sep, mirroring how the
// upstream message bodies are assembled.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
