package model

// Category codes as persisted. Expenses store the numeric code as text; the
// label is presentation only.
const (
	CategoryFood      = "1"
	CategoryEducation = "2"
	CategoryLeisure   = "3"
	CategoryHealth    = "4"
	CategoryTransport = "5"
)

var categoryLabels = map[string]string{
	CategoryFood:      "Alimentacao",
	CategoryEducation: "Educação",
	CategoryLeisure:   "Lazer",
	CategoryHealth:    "Saúde",
	CategoryTransport: "Transporte",
}

// CategoryLabel returns the display label for a category code.
func CategoryLabel(code string) (string, error) {
	label, ok := categoryLabels[code]
	if !ok {
		return "", ErrUnknownCategory
	}
	return label, nil
}

// CategoryCodes returns all known category codes in ascending order.
func CategoryCodes() []string {
	return []string{
		CategoryFood,
		CategoryEducation,
		CategoryLeisure,
		CategoryHealth,
		CategoryTransport,
	}
}
