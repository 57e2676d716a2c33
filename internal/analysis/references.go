package analysis

// Reference is a literature citation attached to a fired rule category.
type Reference struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Journal   string `json:"journal"`
	Year      int    `json:"year"`
	Relevance string `json:"relevance"`
}

var romeIVReference = Reference{
	Title:     "Rome IV Criteria for Functional Gastrointestinal Disorders",
	Authors:   "Drossman DA et al.",
	Journal:   "Gastroenterology",
	Year:      2016,
	Relevance: "Standard diagnostic criteria for IBS.",
}

var bristolScaleReference = Reference{
	Title:     "Stool form scale as a useful guide to intestinal transit time",
	Authors:   "Lewis SJ, Heaton KW",
	Journal:   "Scand J Gastroenterol",
	Year:      1997,
	Relevance: "Correlates stool form with transit time.",
}
