package services

import "gorm.io/gorm"

// Owned is any record whose ownership chain ends at a user id.
type Owned interface {
	OwnerID() uint
}

// AuthorizeOwner is the single ownership predicate for every resource lookup.
func AuthorizeOwner(userID uint, resource Owned) bool {
	return userID != 0 && resource.OwnerID() == userID
}

// findOwned loads the record with the given primary key and applies
// AuthorizeOwner. Records owned by someone else are reported as ErrNotFound
// so their existence is not revealed. Callers add Joins/Preload to db as needed.
func findOwned[T Owned](db *gorm.DB, userID, id uint) (*T, error) {
	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		return nil, notFound(err)
	}
	if !AuthorizeOwner(userID, rec) {
		return nil, ErrNotFound
	}
	return &rec, nil
}
