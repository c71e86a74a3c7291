package views

// PageMeta is the document-level metadata used for search and social previews
type PageMeta struct {
	Title           string
	Description     string
	Keywords        string
	URL             string
	ImageURL        string
	ImageWidth      int
	ImageHeight     int
	ImageAlt        string
	TwitterCard     string
	TwitterImageURL string
}

const (
	pageTitle       = "NFL Team Leaders | Statistical Analysis"
	pageDescription = "Explore the top NFL team leaders across various statistical categories. Interactive charts and up-to-date data for football enthusiasts."
)

// DefaultMeta builds the page metadata for a site rooted at siteURL
func DefaultMeta(siteURL string) PageMeta {
	return PageMeta{
		Title:           pageTitle,
		Description:     pageDescription,
		Keywords:        "NFL, football, statistics, team leaders, data visualization",
		URL:             siteURL + "/nfl-team-leaders",
		ImageURL:        siteURL + "/images/nfl-team-leaders-og.jpg",
		ImageWidth:      1200,
		ImageHeight:     630,
		ImageAlt:        "NFL Team Leaders Chart",
		TwitterCard:     "summary_large_image",
		TwitterImageURL: siteURL + "/images/nfl-team-leaders-twitter.jpg",
	}
}
