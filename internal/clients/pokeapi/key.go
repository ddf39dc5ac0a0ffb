package pokeapi

import (
	"strconv"
	"strings"
)

// Key addresses a catalog resource either by numeric id or by slug
type Key string

// IDKey builds a key from a numeric catalog id
func IDKey(id int) Key {
	return Key(strconv.Itoa(id))
}

// SlugKey builds a key from a resource name. Catalog slugs are lower case.
func SlugKey(slug string) Key {
	return Key(strings.ToLower(strings.TrimSpace(slug)))
}

// String returns the key as it appears in a catalog URL
func (k Key) String() string {
	return string(k)
}

// IsZero reports whether the key is empty
func (k Key) IsZero() bool {
	return k == ""
}
