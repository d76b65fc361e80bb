package intake

// ServiceOption maps one form dropdown value to its human label and the
// coarser category the inquiry store understands. Most options collapse
// to the store's generic "Other" bucket on purpose: the store taxonomy
// predates the website forms and is not being widened for them.
type ServiceOption struct {
	Label      string
	StoreValue string
}

var contactServices = map[string]ServiceOption{
	"immigration": {Label: "Immigration & Refugee Law", StoreValue: "Permanent Residency (PR)"},
	"family":      {Label: "Family Law", StoreValue: "Family Sponsorship"},
	"criminal":    {Label: "Criminal Law", StoreValue: "Other"},
	"wills":       {Label: "Wills & Powers of Attorney", StoreValue: "Other"},
	"employment":  {Label: "Employment & Human Rights", StoreValue: "Other"},
	"civil":       {Label: "Civil Litigation", StoreValue: "Other"},
	"other":       {Label: "Other", StoreValue: "Other"},
}

var notaryServices = map[string]ServiceOption{
	"document-certification": {Label: "Document Certification", StoreValue: "Other"},
	"affidavit-witnessing":   {Label: "Affidavit Witnessing", StoreValue: "Other"},
	"signature-witnessing":   {Label: "Signature Witnessing", StoreValue: "Other"},
	"travel-documents":       {Label: "Travel Documents", StoreValue: "Other"},
	"real-estate":            {Label: "Real Estate Documents", StoreValue: "Other"},
	"other":                  {Label: "Other", StoreValue: "Other"},
}

// resolveContactService returns the label and store category for a
// contact-form service value. An absent value maps to neither; an
// unrecognized value keeps the raw text as label and lands in "Other".
func resolveContactService(value string) (label, storeValue *string) {
	if value == "" {
		return nil, nil
	}
	if opt, ok := contactServices[value]; ok {
		return &opt.Label, &opt.StoreValue
	}
	other := "Other"
	return &value, &other
}

// resolveNotaryService is like resolveContactService, except every
// notary inquiry lands in the store's "Other" category, including when
// no service was chosen.
func resolveNotaryService(value string) (label, storeValue *string) {
	other := "Other"
	if value == "" {
		return nil, &other
	}
	if opt, ok := notaryServices[value]; ok {
		return &opt.Label, &opt.StoreValue
	}
	return &value, &other
}
