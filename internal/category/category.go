// Package category holds the closed label set of the pre-trained classifier
// along with the display metadata for each label.
package category

// Info pairs a predicted label with its human-readable description.
type Info struct {
	Label       string
	Description string
}

// table is fixed at compile time; the label set is closed by the pre-trained
// model, so there is no dynamic registration. Order is display order.
var table = []Info{
	{"food", "Food Menu - This text describes a food or meal item"},
	{"drinks", "Drinks Menu - This text describes a beverage or cocktail"},
	{"wines", "Wine List - This text describes a wine selection"},
	{"cake", "Cake Menu - This text describes a cake or bakery item"},
	{"reviews", "Customer Review - This text sounds like a customer review"},
	{"services", "Services - This text describes a restaurant service"},
	{"about", "About / Description - This text describes the restaurant"},
	{"home", "General Info - General restaurant information"},
	{"contact", "Contact / Location - Location or contact information"},
	{"events", "Events - Event-related information"},
}

// All returns a copy of the label/description table in display order.
func All() []Info {
	return append([]Info(nil), table...)
}

// Labels returns the labels in display order.
func Labels() []string {
	labels := make([]string, len(table))
	for i, info := range table {
		labels[i] = info.Label
	}
	return labels
}

// Describe returns the description for label. Unknown labels come back
// unchanged so a model trained with extra classes still renders something.
func Describe(label string) string {
	for _, info := range table {
		if info.Label == label {
			return info.Description
		}
	}
	return label
}
