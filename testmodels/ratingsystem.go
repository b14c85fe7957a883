/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import "github.com/go-openapi/strfmt"

type RatingSystem struct {

	// Timestamp when the rating system was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `dynamodbav:"CreatedAt"`

	// A description of the rating system.
	Description *string `dynamodbav:"Description"`

	// Unique identifier for the rating system.
	ID *string `dynamodbav:"Id"`

	// Name of the rating system.
	Name *string `dynamodbav:"Name"`

	// site Url
	SiteURL strfmt.URI `dynamodbav:"SiteUrl,omitempty"`

	// Rating levels, highest first.
	Levels []*RatingLevel `dynamodbav:"Levels"`

	// Timestamp when the rating system was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `dynamodbav:"UpdatedAt"`
}

type RatingLevel struct {
	Name     string `dynamodbav:"Name"`
	MinScore int    `dynamodbav:"Min"`
}
