package viewmodel

// VideoCard contains everything needed to render one catalog entry.
type VideoCard struct {
	ID         string
	Title      string
	Thumbnail  string
	Category   string
	Duration   string
	Views      string
	UploadDate string
	IsNew      bool
	Tags       []string
}
