package service

// The predefined category catalog. Ids 1-25 are regular budget categories
// owned by the wider wallet application; 26-35 are the financed-purchase
// categories this service advises rates for. User-defined categories start
// above CatalogMax.
const (
	CatalogMax             = 35
	InstallmentCategoryMin = 26
	InstallmentCategoryMax = 35
)

var categoryNames = map[int]string{
	26: "Electronics",
	27: "Furniture",
	28: "Appliances",
	29: "Automotive",
	30: "Credit Card",
	31: "Household",
	32: "Technology",
	33: "Clothing",
	34: "Education",
	35: "Other",
}

// IsPredefinedCategory reports whether id belongs to the built-in catalog.
func IsPredefinedCategory(id int) bool {
	return id >= 1 && id <= CatalogMax
}

// IsInstallmentCategory reports whether id is a financed-purchase category.
func IsInstallmentCategory(id int) bool {
	return id >= InstallmentCategoryMin && id <= InstallmentCategoryMax
}

// CategoryName returns the catalog name for an installment category, or an
// empty string for ids outside the installment range.
func CategoryName(id int) string {
	return categoryNames[id]
}
