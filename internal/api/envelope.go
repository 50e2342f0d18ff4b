package api

import (
	"github.com/octofit/octofit/internal/record"
)

// Page is one decoded collection response.
type Page struct {
	// Records holds one entry per array element; non-object elements are
	// kept as empty records.
	Records []record.Record
	// Count, Next and Previous carry envelope pagination metadata when the
	// response was an envelope object.
	Count    *int
	Next     string
	Previous string
	// Enveloped reports whether the body was an object with a results key.
	Enveloped bool
}

// Normalize extracts the record sequence from a decoded body.
//
// The sequence is body["results"] when body is an object with a non-null
// results field, otherwise body itself. Anything that is not an array
// yields zero records.
func Normalize(body any) Page {
	var page Page
	candidate := body
	if obj, ok := body.(map[string]any); ok {
		env := record.Record(obj)
		if results, found := env.Lookup("results"); found {
			candidate = results
			page.Enveloped = true
		}
		if v, found := env.Lookup("count"); found {
			if n, isNum := v.(float64); isNum {
				c := int(n)
				page.Count = &c
			}
		}
		if next, isStr := obj["next"].(string); isStr {
			page.Next = next
		}
		if prev, isStr := obj["previous"].(string); isStr {
			page.Previous = prev
		}
	}

	items, ok := candidate.([]any)
	if !ok {
		page.Records = []record.Record{}
		return page
	}
	page.Records = make([]record.Record, len(items))
	for i, item := range items {
		page.Records[i] = record.FromValue(item)
	}
	return page
}
