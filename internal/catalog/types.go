package catalog

// Feature is one validated catalog entry. Values are treated as read-only once loaded.
type Feature struct {
	Name                string   `json:"feature_name" yaml:"feature_name"`
	Categories          []string `json:"categories" yaml:"categories"`
	Description         string   `json:"description" yaml:"description"`
	Keywords            []string `json:"keywords" yaml:"keywords"`
	PainPointsAddressed []string `json:"pain_points_addressed" yaml:"pain_points_addressed"`
	MoreInfoLink        string   `json:"more_info_link" yaml:"more_info_link"`
}

// rawFeature mirrors Feature with pointers so absent fields can be told apart from
// empty ones during validation.
type rawFeature struct {
	Name                *string   `json:"feature_name" yaml:"feature_name"`
	Categories          *[]string `json:"categories" yaml:"categories"`
	Description         *string   `json:"description" yaml:"description"`
	Keywords            []string  `json:"keywords" yaml:"keywords"`
	PainPointsAddressed []string  `json:"pain_points_addressed" yaml:"pain_points_addressed"`
	MoreInfoLink        *string   `json:"more_info_link" yaml:"more_info_link"`
}
