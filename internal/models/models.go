package models

type LinkEntry struct {
	Name        string `yaml:"name" json:"name"`
	IconClass   string `yaml:"icon_class" json:"fontawesomeClass"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
}

// Contact is a LinkEntry paired with its key in the contact table.
type Contact struct {
	Key string
	LinkEntry
}

type AdConfig struct {
	Image string `yaml:"image" json:"image"`
	Link  string `yaml:"link" json:"link"`
	Code  string `yaml:"code" json:"code"`
	Name  string `yaml:"name" json:"name"`
}

type Site struct {
	Name     string               `yaml:"name"`
	Logo     string               `yaml:"logo"`
	Contacts map[string]LinkEntry `yaml:"contacts"`
	Ad       AdConfig             `yaml:"ad"`
	Tools    []LinkEntry          `yaml:"tools"`
}

type PageData struct {
	Title    string
	Route    string
	BaseURL  string
	Site     Site
	Contacts []Contact
	Year     int
}

type ClientConfig struct {
	BaseURL     string               `json:"baseUrl"`
	Timeout     int64                `json:"timeout"`
	WebName     string               `json:"webName"`
	Logo        string               `json:"logo"`
	ContactInfo map[string]LinkEntry `json:"contactInfo"`
	AdConfig    AdConfig             `json:"adConfig"`
}

type RouteInfo struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
}
