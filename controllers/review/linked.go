package reviewController

import (
	"fmt"

	"gorm.io/gorm"

	"reviews/contenttypes"
	"reviews/models"
)

// ReviewedModelLinked returns a direct link to the reviewed model's
// admin changelist, labelled with the type's title-cased name.
func ReviewedModelLinked(r *models.Review) string {
	ct, _ := contenttypes.Get(r.ContentType)
	return fmt.Sprintf("<a href='%s'>%s</a>",
		contenttypes.ChangelistURL(r.ContentType), contenttypes.Title(ct.Label))
}

// ReviewedObjectLinked returns a direct link to the reviewed record's
// admin edit page, labelled with the record's string form. A dangling
// reference surfaces as the resolver error.
func ReviewedObjectLinked(db *gorm.DB, r *models.Review) (string, error) {
	label, err := contenttypes.Resolve(db, r.ContentType, r.ObjectID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<a href='%s'>%s</a>",
		contenttypes.ChangeURL(r.ContentType, r.ObjectID), label), nil
}
