package model

// TeamMember is a person shown on the team page.
//
// Team members carry no updatedAt column. The audit trail is intentionally
// uneven across entities (projects and services track updates, messages and
// members do not) and is preserved that way.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	ImageColor  string `json:"imageColor"`
	Email       string `json:"email,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	TwitterURL  string `json:"twitterUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// DefaultImageColor is the avatar color assigned when none is chosen.
const DefaultImageColor = "bg-primary"

// ImageColors is the themed palette the admin form offers for avatars.
var ImageColors = []string{
	"bg-primary", "bg-secondary", "bg-accent",
	"bg-blue-500", "bg-green-500", "bg-yellow-500", "bg-red-500", "bg-purple-500",
}
