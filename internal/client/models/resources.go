package models

// Ad is a sponsored placement shown in the mobile apps.
type Ad struct {
	ID          string `json:"_id"`
	Label       string `json:"label"`
	Img         string `json:"img"`
	Company     string `json:"company"`
	Description string `json:"description"`
	WebsiteLink string `json:"websiteLink"`
	IsActive    bool   `json:"isActive"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type AdPayload struct {
	Label       string `json:"label"`
	Img         string `json:"img"`
	Company     string `json:"company"`
	Description string `json:"description"`
	WebsiteLink string `json:"websiteLink"`
}

// Article is an editorial piece authored by a doctor or the staff.
type Article struct {
	ID                string   `json:"_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Content           string   `json:"content"`
	Img               string   `json:"img"`
	CoverImage        string   `json:"coverImage"`
	IsActive          bool     `json:"isActive"`
	Theme             string   `json:"theme,omitempty"`
	Author            string   `json:"author"`
	AuthorName        string   `json:"authorName"`
	Likes             []string `json:"likes"`
	IsDraft           bool     `json:"isDraft"`
	IsPublished       bool     `json:"isPublished"`
	ExternalLink      string   `json:"externalLink"`
	ExternalLinkTitle string   `json:"externalLinkTitle"`
	Type              string   `json:"type"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

type ArticlePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Img         string `json:"img"`
	IsActive    bool   `json:"isActive"`
}

// Notification is a push message addressed to a set of admins.
type Notification struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Link      string   `json:"link"`
	Img       string   `json:"img,omitempty"`
	Users     []string `json:"users"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type NotificationPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
	Img     string `json:"img,omitempty"`
}
