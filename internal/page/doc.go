// Package page defines the page record shared by the content loader and the
// tag transforms: rendered content plus an open, dynamically keyed meta map.
//
// Pages are values. Transforms never write to an input page's Meta map; they
// derive a new page with WithMeta instead, so a collection handed to a
// transform can be reused safely afterwards.
package page
