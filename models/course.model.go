package models

// Course is one entry in the catalog. AllowedRoles lists the roles that
// may open it; an empty list means nobody can.
type Course struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	Instructor   string   `json:"instructor"`
	Duration     string   `json:"duration"`
	Level        string   `json:"level"`
	AllowedRoles []Role   `json:"allowedRoles"`
	Modules      []Module `json:"modules"`
}

// Module is a section within a course. Order is for display sequencing
// only and is not required to be unique or contiguous.
type Module struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Order       int     `json:"order"`
	Classes     []Class `json:"classes"`
}

// Class is an individual lesson within a module. VideoURL is the raw
// locator as stored; EmbedURL is filled in at serialization time when the
// locator points at an embeddable platform.
type Class struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	VideoURL    string   `json:"videoUrl"`
	EmbedURL    string   `json:"embedUrl,omitempty"`
	Topics      []string `json:"topics"`
	Order       int      `json:"order"`
}
