package constants

import "strings"

// Category is the closed set of annotation categories. It doubles as the tag
// kind on annotated text and as the routing key for persisted card fields.
type Category string

const (
	Person        Category = "Person"
	Organization  Category = "Organization"
	PhoneNumber   Category = "PhoneNumber"
	Email         Category = "Email"
	URL           Category = "URL"
	PostalAddress Category = "PostalAddress"
	Note          Category = "Note"
	Face          Category = "Face"
	Logo          Category = "Logo"
	Unknown       Category = "Unknown"
)

var allCategories = []Category{
	Person,
	Organization,
	PhoneNumber,
	Email,
	URL,
	PostalAddress,
	Note,
	Face,
	Logo,
	Unknown,
}

// TextCategories are the categories produced by text annotators and persisted
// as card fields. Face and Logo are image-level; Unknown is never persisted.
var TextCategories = []Category{
	Person,
	Organization,
	PhoneNumber,
	Email,
	URL,
	PostalAddress,
	Note,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form label (vendor entity types included) onto the
// canonical category set. Returns Unknown,false when the label is unmapped.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Category{
		"person":         Person,
		"personal name":  Person,
		"name":           Person,
		"organization":   Organization,
		"organisation":   Organization,
		"company":        Organization,
		"corp":           Organization,
		"phone":          PhoneNumber,
		"phone number":   PhoneNumber,
		"phonenumber":    PhoneNumber,
		"telephone":      PhoneNumber,
		"tel":            PhoneNumber,
		"email":          Email,
		"email address":  Email,
		"url":            URL,
		"link":           URL,
		"website":        URL,
		"address":        PostalAddress,
		"postal address": PostalAddress,
		"postaladdress":  PostalAddress,
		"location":       PostalAddress,
		"note":           Note,
		"face":           Face,
		"logo":           Logo,
	}
	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if strings.EqualFold(string(cat), normalized) {
			return cat, true
		}
	}
	return Unknown, false
}
