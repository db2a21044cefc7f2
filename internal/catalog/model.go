// Package catalog implements the media catalog: the persistent item model,
// the key-value table repositories, and the create/list operations exposed
// over HTTP.
package catalog

import (
	"fmt"
	"strings"
)

// Media types accepted by the API. Stored partition keys use the uppercase
// form.
const (
	TypeWallpaper = "wallpaper"
	TypeMusic     = "music"
)

// Version is fixed: the key shape reserves room for versioning but nothing
// ever increments it.
const Version = "1"

// Item is one catalog record. Identity lives in the pk/sk pair
// ("{TYPE}#{id}" / "v#{version}"); ID and Version are split out of the keys
// for the API and never stored as attributes of their own.
type Item struct {
	PK string `json:"-" dynamodbav:"pk"`
	SK string `json:"-" dynamodbav:"sk"`

	ID      string `json:"id" dynamodbav:"-"`
	Version string `json:"version" dynamodbav:"-"`

	Type      string   `json:"type" dynamodbav:"type"`
	Title     string   `json:"title" dynamodbav:"title"`
	Caption   string   `json:"caption" dynamodbav:"caption"`
	Shloka    string   `json:"shloka" dynamodbav:"shloka"`
	Meaning   string   `json:"meaning" dynamodbav:"meaning"`
	FileKey   string   `json:"fileKey" dynamodbav:"fileKey"`
	ThumbKey  string   `json:"thumbKey" dynamodbav:"thumbKey"`
	Ratio     string   `json:"ratio" dynamodbav:"ratio"`
	Palette   []string `json:"palette" dynamodbav:"palette"`
	Style     string   `json:"style" dynamodbav:"style"`
	CreatedAt string   `json:"createdAt" dynamodbav:"createdAt"`
}

// ValidType reports whether t is one of the two accepted media types.
func ValidType(t string) bool {
	return t == TypeWallpaper || t == TypeMusic
}

// PartitionKey builds "{TYPE}#{id}" for a media type and id.
func PartitionKey(mediaType, id string) string {
	return strings.ToUpper(mediaType) + "#" + id
}

// SortKey builds "v#{version}".
func SortKey(version string) string {
	return "v#" + version
}

// TypePrefix is the partition-key prefix shared by all items of one type,
// e.g. "WALLPAPER#".
func TypePrefix(mediaType string) string {
	return strings.ToUpper(mediaType) + "#"
}

// DeriveIdentity fills ID and Version from the stored pk/sk.
func (it *Item) DeriveIdentity() error {
	_, id, ok := strings.Cut(it.PK, "#")
	if !ok {
		return fmt.Errorf("malformed partition key %q", it.PK)
	}
	_, version, ok := strings.Cut(it.SK, "#")
	if !ok {
		return fmt.Errorf("malformed sort key %q", it.SK)
	}
	it.ID = id
	it.Version = version
	return nil
}
