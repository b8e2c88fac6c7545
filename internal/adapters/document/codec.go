package document

import (
	"bytes"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// Map keys are sorted on encode, which keeps written documents diffable.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// legacyResourcesKey marks the list-shaped variant of the document
// (resources.<category>[] = {resource_id, tags}). It is not accepted.
const legacyResourcesKey = "resources"

// Encode renders doc as the flat document. Network categories are always
// present so consumers see an explicit empty object for a category with no
// resources.
func Encode(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New(errors.CodeInternal, "cannot encode nil document")
	}
	out := make(map[string]any, len(domain.AllCategories)+1)
	defaults := doc.DefaultTags
	if defaults == nil {
		defaults = domain.Tags{}
	}
	out[domain.DefaultTagsKey] = defaults
	for _, c := range domain.NetworkCategories {
		out[string(c)] = map[string]domain.Tags{}
	}
	for c, byID := range doc.Resources {
		if byID == nil {
			byID = map[string]domain.Tags{}
		}
		out[string(c)] = byID
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode configuration document")
	}
	return data, nil
}

// Decode parses the flat document. Top-level keys that are not categories
// are returned in ignored, sorted, and otherwise skipped. A null category
// or default_tags value decodes as empty. Non-string tag values are
// rejected rather than silently dropped.
func Decode(data []byte) (doc *domain.Document, ignored []string, err error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeDocumentParseError, "configuration document is not a JSON object")
	}
	if _, ok := raw[legacyResourcesKey]; ok {
		return nil, nil, errors.NewUserFacing(errors.CodeDocumentParseError,
			"configuration document uses the unsupported 'resources' list shape",
			"Regenerate the document with the discover job; categories must be top-level objects keyed by resource id.")
	}

	doc = domain.NewDocument(nil)
	for key, value := range raw {
		if key == domain.DefaultTagsKey {
			if isNull(value) {
				continue
			}
			var defaults domain.Tags
			if err := json.Unmarshal(value, &defaults); err != nil {
				return nil, nil, errors.Wrap(err, errors.CodeDocumentParseError, "'default_tags' must map tag keys to string values")
			}
			if defaults != nil {
				doc.DefaultTags = defaults
			}
			continue
		}

		category, err := domain.ParseCategory(key)
		if err != nil || string(category) != key {
			ignored = append(ignored, key)
			continue
		}
		byID := map[string]domain.Tags{}
		if !isNull(value) {
			if err := json.Unmarshal(value, &byID); err != nil {
				return nil, nil, errors.Wrap(err, errors.CodeDocumentParseError,
					fmt.Sprintf("'%s' must map resource ids to tag objects", key))
			}
		}
		if byID == nil {
			byID = map[string]domain.Tags{}
		}
		for id, tags := range byID {
			if tags == nil {
				byID[id] = domain.Tags{}
			}
		}
		doc.Resources[category] = byID
	}
	sort.Strings(ignored)
	return doc, ignored, nil
}

// A JSON null arrives as an empty RawMessage rather than the literal.
func isNull(value jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || string(trimmed) == "null"
}
