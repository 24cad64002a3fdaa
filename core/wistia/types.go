package wistia

// Project is a Wistia project. Medias is not part of the API payload; it is
// filled in after the project's medias have been listed.
type Project struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HashedID   string `json:"hashedId"`
	MediaCount int    `json:"mediaCount"`

	Medias []Media `json:"-"`
}

// ProjectRef is the project summary embedded in a media payload.
type ProjectRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	HashedID string `json:"hashed_id"`
}

// Media is a Wistia media (video).
type Media struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	HashedID string     `json:"hashed_id"`
	Project  ProjectRef `json:"project"`
}
