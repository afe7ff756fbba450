package controllers

import "gorm.io/gorm"

// Controller holds the dependencies of the request handlers.
type Controller struct {
	DB *gorm.DB
}
