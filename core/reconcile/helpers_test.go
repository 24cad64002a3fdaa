package reconcile

import (
	"wistia-clean/core/bundles"
	"wistia-clean/core/wistia"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func bundle(projectID int64, deleted bool, mediaIDs ...int64) bundles.Bundle {
	b := bundles.Bundle{
		ID:      primitive.NewObjectID(),
		Deleted: deleted,
		Wistia:  &bundles.WistiaLink{Project: &bundles.ProjectRef{ID: projectID}},
	}
	for _, id := range mediaIDs {
		b.Videos = append(b.Videos, bundles.Video{Wistia: bundles.VideoLink{Video: &bundles.MediaRef{ID: id}}})
	}
	return b
}

func unlinkedBundle(deleted bool) bundles.Bundle {
	return bundles.Bundle{ID: primitive.NewObjectID(), Deleted: deleted}
}

func media(id, projectID int64) wistia.Media {
	return wistia.Media{
		ID:       id,
		Name:     "media",
		HashedID: "m" + primitive.NewObjectID().Hex()[:6],
		Project:  wistia.ProjectRef{ID: projectID},
	}
}

func project(id int64, medias ...wistia.Media) wistia.Project {
	return wistia.Project{ID: id, Name: "project", HashedID: "p" + primitive.NewObjectID().Hex()[:6], Medias: medias}
}
