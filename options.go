package htmlrag

import (
	"encoding/json"
	"io"
	"slices"
	"strings"
)

// RemovableTags are dropped by name unless exempted through ExcludeTags.
var RemovableTags = NewTagSet("script", "style", "meta")

// TagSet is a set of lowercased tag names.
type TagSet map[string]struct{}

// NewTagSet returns a set of the given tag names. Names are trimmed and
// lowercased; empty names are dropped.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		s[tag] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set. The lookup is case-insensitive.
func (s TagSet) Has(tag string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(tag)]
	return ok
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Slice returns the tags in sorted order.
func (s TagSet) Slice() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Options controls a single optimization call.
type Options struct {
	// KeepAttributes disables attribute stripping.
	KeepAttributes bool

	// RemoveEmpty drops elements whose content is empty or whitespace-only.
	RemoveEmpty bool

	// PreserveWhitespace disables whitespace normalization even when
	// MinifyText is set.
	PreserveWhitespace bool

	// ExcludeTags exempts tags from removal by name (script, style, meta)
	// and from attribute stripping.
	ExcludeTags TagSet

	// KeepTags is an inclusion list. When non-empty every element not in
	// the list is dropped together with its subtree, regardless of
	// ExcludeTags.
	KeepTags TagSet

	// RemoveComments drops <!-- ... --> comments.
	RemoveComments bool

	// MinifyText collapses whitespace in text and between tags.
	MinifyText bool
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		KeepAttributes:     false,
		RemoveEmpty:        true,
		PreserveWhitespace: false,
		ExcludeTags:        TagSet{},
		KeepTags:           TagSet{},
		RemoveComments:     true,
		MinifyText:         true,
	}
}

// NormalizesWhitespace reports whether text whitespace is collapsed.
func (o Options) NormalizesWhitespace() bool {
	return o.MinifyText && !o.PreserveWhitespace
}

// Option overrides a single field of Options.
type Option func(*Options)

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithKeepAttributes sets Options.KeepAttributes.
func WithKeepAttributes(v bool) Option {
	return func(o *Options) { o.KeepAttributes = v }
}

// WithRemoveEmpty sets Options.RemoveEmpty.
func WithRemoveEmpty(v bool) Option {
	return func(o *Options) { o.RemoveEmpty = v }
}

// WithPreserveWhitespace sets Options.PreserveWhitespace.
func WithPreserveWhitespace(v bool) Option {
	return func(o *Options) { o.PreserveWhitespace = v }
}

// WithExcludeTags replaces Options.ExcludeTags.
func WithExcludeTags(tags ...string) Option {
	return func(o *Options) { o.ExcludeTags = NewTagSet(tags...) }
}

// WithKeepTags replaces Options.KeepTags.
func WithKeepTags(tags ...string) Option {
	return func(o *Options) { o.KeepTags = NewTagSet(tags...) }
}

// WithRemoveComments sets Options.RemoveComments.
func WithRemoveComments(v bool) Option {
	return func(o *Options) { o.RemoveComments = v }
}

// WithMinifyText sets Options.MinifyText.
func WithMinifyText(v bool) Option {
	return func(o *Options) { o.MinifyText = v }
}

// WithOverrides applies every field present in ov.
func WithOverrides(ov *Overrides) Option {
	return func(o *Options) {
		if ov != nil {
			ov.Apply(o)
		}
	}
}

// Overrides is a partial Options as read from a JSON config file.
// Nil fields leave the current value untouched.
type Overrides struct {
	KeepAttributes     *bool    `json:"keepAttributes"`
	RemoveEmpty        *bool    `json:"removeEmpty"`
	PreserveWhitespace *bool    `json:"preserveWhitespace"`
	ExcludeTags        []string `json:"excludeTags"`
	KeepTags           []string `json:"keepTags"`
	RemoveComments     *bool    `json:"removeComments"`
	MinifyText         *bool    `json:"minifyText"`
}

// DecodeOverrides reads a JSON overrides document. Unknown keys are ignored.
func DecodeOverrides(r io.Reader) (*Overrides, error) {
	var ov Overrides
	if err := json.NewDecoder(r).Decode(&ov); err != nil {
		if err == io.EOF {
			return &ov, nil
		}
		return nil, Errorf(EINVALID, "invalid config: %v", err)
	}
	return &ov, nil
}

// Apply copies every present field onto o.
func (ov *Overrides) Apply(o *Options) {
	if ov.KeepAttributes != nil {
		o.KeepAttributes = *ov.KeepAttributes
	}
	if ov.RemoveEmpty != nil {
		o.RemoveEmpty = *ov.RemoveEmpty
	}
	if ov.PreserveWhitespace != nil {
		o.PreserveWhitespace = *ov.PreserveWhitespace
	}
	if ov.ExcludeTags != nil {
		o.ExcludeTags = NewTagSet(ov.ExcludeTags...)
	}
	if ov.KeepTags != nil {
		o.KeepTags = NewTagSet(ov.KeepTags...)
	}
	if ov.RemoveComments != nil {
		o.RemoveComments = *ov.RemoveComments
	}
	if ov.MinifyText != nil {
		o.MinifyText = *ov.MinifyText
	}
}
