// Package yaml loads storefind vocabularies and product catalogs from YAML documents.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/storefind"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// catalogFile is the document layout of a catalog file.
type catalogFile struct {
	Products []*storefind.Product `yaml:"products"`
}

// LoadVocabulary decodes a vocabulary document. Unknown fields are rejected.
// The vocabulary is not validated; storefind.NewInterpreter does that.
func LoadVocabulary(r io.Reader) (*storefind.Vocabulary, error) {
	var v storefind.Vocabulary
	if err := decode(r, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadCatalog decodes a catalog document and returns its products in
// document order. Products without an id get a generated one.
// Returns EINVALID for an invalid product or a duplicate id.
func LoadCatalog(r io.Reader) ([]*storefind.Product, error) {
	var doc catalogFile
	if err := decode(r, &doc); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doc.Products))
	for n, p := range doc.Products {
		if p == nil {
			return nil, storefind.Errorf(storefind.EINVALID, "product %d is empty", n+1)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, ok := seen[p.ID]; ok {
			return nil, storefind.Errorf(storefind.EINVALID, "duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return doc.Products, nil
}

// LoadVocabularyFile opens path and decodes it with LoadVocabulary.
// Returns ENOTFOUND if the file does not exist.
func LoadVocabularyFile(path string) (*storefind.Vocabulary, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadVocabulary(f)
}

// LoadCatalogFile opens path and decodes it with LoadCatalog.
// Returns ENOTFOUND if the file does not exist.
func LoadCatalogFile(path string) ([]*storefind.Product, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storefind.Errorf(storefind.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return f, nil
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return storefind.Errorf(storefind.EINVALID, "document is empty")
		}
		return storefind.Errorf(storefind.EINVALID, "malformed document: %s", err)
	}
	return nil
}
