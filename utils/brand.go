package utils

import "strings"

// knownBrands maps a product-name prefix to the brand recorded on order
// item snapshots. Longest prefix wins so "Ghadi Machine Wash" files under
// the machine-wash line, not the base brand.
var knownBrands = []struct {
	Prefix string
	Brand  string
}{
	{"GHADI MACHINE WASH", "Ghadi Machine Wash"},
	{"GHADI", "Ghadi"},
	{"VENUS", "Venus"},
	{"XPERT", "Xpert"},
	{"UNIWASH", "Uniwash"},
	{"REDCHIEF", "Redchief"},
	{"AMAZON", "Amazon"},
	{"FLIPKART", "Flipkart"},
}

// ClassifyBrand derives a brand for an order item from its product name:
// the longest known-brand prefix if one matches, otherwise the first token
// of the name.
func ClassifyBrand(productName string) string {
	name := strings.ToUpper(strings.TrimSpace(productName))
	if name == "" {
		return ""
	}

	best := ""
	brand := ""
	for _, k := range knownBrands {
		if strings.HasPrefix(name, k.Prefix) && len(k.Prefix) > len(best) {
			best = k.Prefix
			brand = k.Brand
		}
	}
	if brand != "" {
		return brand
	}

	return strings.Fields(strings.TrimSpace(productName))[0]
}
