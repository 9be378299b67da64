package layouts

const appName = "Pet Community"

// CalculateTitle builds the document title for a page.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}
