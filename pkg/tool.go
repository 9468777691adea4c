package pkg

import (
	"fmt"

	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contains check source have target
func Contains(slice []string, val string) bool {
	for _, v := range slice {
		if v == val {
			return true
		}
	}
	return false
}

// ParseID parse a hex object id, 400 on malformed input
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errprocess.SetCode(fiber.StatusBadRequest, fmt.Sprintf("invalid id [%s]", id))
	}
	return oid, nil
}
