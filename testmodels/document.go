/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds mapped types shared by the package tests.
package testmodels

import "time"

// Document exposes every mapping capability and embeds EmbedDocument, which
// embeds Document again.
type Document struct {
	ID                string          `dynamodbav:"_id"`
	MongoString       string          `dynamodbav:"mongoString"`
	MongoPublicString string          `dynamodbav:"mongoPublicString,omitempty"`
	MongoNumber       int             `dynamodbav:"mongoNumber"`
	MongoDocument     *EmbedDocument  `dynamodbav:"mongoDocument"`
	MongoCollection   []EmbedDocument `dynamodbav:"mongoCollection"`
	MongoArray        []string        `dynamodbav:"mongoArray"`
	Attribute         string          `dynamodbav:"-"`

	attribute string
}

// EmbedDocument is embedded by Document.
type EmbedDocument struct {
	MongoString   string    `dynamodbav:"mongoString"`
	MongoDocument *Document `dynamodbav:"document"`
	Audit
}

// Audit is flattened into the types embedding it.
type Audit struct {
	CreatedAt time.Time `dynamodbav:"createdAt"`
	Author    string
}
