package font

import (
	"fmt"

	"github.com/pagetext/pagetext/core"
)

// Resolve fetches the object behind an indirect reference. The document
// collaborator supplies it; this package never touches the container.
type Resolve func(core.Ref) (core.Object, error)

// Cache holds one resolved Font per resource name for a document's
// lifetime. Fonts are deduplicated by name, not content: the first page
// to declare a name wins, and later pages reuse the entry. The cache is
// written during resolution and read-only during interpretation.
type Cache struct {
	fonts map[string]*Font
}

// NewCache creates an empty font cache.
func NewCache() *Cache {
	return &Cache{fonts: make(map[string]*Font)}
}

// Get returns the resolved font for a resource name.
func (c *Cache) Get(name string) (*Font, bool) {
	f, ok := c.fonts[name]
	return f, ok
}

// Len returns the number of resolved fonts.
func (c *Cache) Len() int {
	return len(c.fonts)
}

// Add resolves a font resource dict under the given name and caches it.
// A name already present is left untouched.
func (c *Cache) Add(name string, dict core.Dict, resolve Resolve) error {
	if _, ok := c.fonts[name]; ok {
		return nil
	}
	f, err := FromDict(name, dict, resolve)
	if err != nil {
		return err
	}
	c.fonts[name] = f
	return nil
}

// FromDict builds a Font from its resource dictionary. The declared
// /Encoding name applies when present (default StandardEncoding); a
// /ToUnicode entry, direct or by reference, is parsed into the custom
// table. A reference that does not resolve to a stream is fatal: the
// document is malformed with respect to its own declarations.
func FromDict(name string, dict core.Dict, resolve Resolve) (*Font, error) {
	f := &Font{
		Name:     name,
		Encoding: "StandardEncoding",
	}
	if enc, ok := dict.GetName("Encoding"); ok {
		f.Encoding = string(enc)
	}

	tuObj := dict.Get("ToUnicode")
	if tuObj == nil {
		return f, nil
	}

	if ref, ok := tuObj.(core.Ref); ok {
		resolved, err := resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: font %s ToUnicode %s: %v", ErrBadReference, name, ref, err)
		}
		tuObj = resolved
	}

	stream, ok := tuObj.(*core.Stream)
	if !ok {
		return nil, fmt.Errorf("%w: font %s ToUnicode is %s, want a stream", ErrBadReference, name, tuObj.Kind())
	}

	cm, err := ParseToUnicode(stream)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}
	f.ToUnicode = cm
	return f, nil
}
