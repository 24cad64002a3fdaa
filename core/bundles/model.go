package bundles

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bundle is the subset of a bundle document needed for reconciliation.
//
// ID is opaque: collections written by Meteor use random string ids, others
// use ObjectIDs.
type Bundle struct {
	ID      any         `bson:"_id"`
	Name    string      `bson:"name,omitempty"`
	Deleted bool        `bson:"deleted,omitempty"`
	Wistia  *WistiaLink `bson:"wistia,omitempty"`
	Videos  []Video     `bson:"videos,omitempty"`
}

// WistiaLink points a bundle at its Wistia project.
type WistiaLink struct {
	Project *ProjectRef `bson:"project,omitempty"`
}

// ProjectRef references a Wistia project by numeric id.
type ProjectRef struct {
	ID       int64  `bson:"id"`
	HashedID string `bson:"hashedId,omitempty"`
}

// Video is a bundle video; only its Wistia link matters here.
type Video struct {
	Wistia VideoLink `bson:"wistia"`
}

// VideoLink points a video at its Wistia media.
type VideoLink struct {
	Video *MediaRef `bson:"video,omitempty"`
}

// MediaRef references a Wistia media by numeric id.
type MediaRef struct {
	ID       int64  `bson:"id"`
	HashedID string `bson:"hashed_id,omitempty"`
}

// Key identifies the bundle in logs and errors.
func (b Bundle) Key() string {
	switch id := b.ID.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

// ProjectID returns the linked Wistia project id, if any.
func (b Bundle) ProjectID() (int64, bool) {
	if b.Wistia == nil || b.Wistia.Project == nil {
		return 0, false
	}
	return b.Wistia.Project.ID, true
}

// ContainsMedia reports whether one of the bundle's videos references the media.
func (b Bundle) ContainsMedia(mediaID int64) bool {
	for _, v := range b.Videos {
		if v.Wistia.Video != nil && v.Wistia.Video.ID == mediaID {
			return true
		}
	}
	return false
}

// Partition splits bundles into live and deleted ones, keeping input order.
func Partition(all []Bundle) (active, deleted []Bundle) {
	for _, b := range all {
		if b.Deleted {
			deleted = append(deleted, b)
		} else {
			active = append(active, b)
		}
	}
	return active, deleted
}
