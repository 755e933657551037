package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/storefind"
	"github.com/fwojciec/storefind/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vocabularyDoc = `
categories:
  - id: Garden
    synonyms: [plant, hose, shovel]
  - id: Pets
    name: Pet Supplies
    synonyms: [leash, kibble]
sort:
  priceAsc: [cheap]
  priceDesc: [pricey]
  ratingDesc: [best]
fillers:
  - "show me"
  - " the "
`

const catalogDoc = `
products:
  - id: p-1
    name: Garden Hose
    category: Garden
    price: 30
    rating: 4.5
    reviewCount: 12
    stockQty: 4
  - name: Dog Leash
    category: Pets
    price: 12.5
    rating: 4
`

func TestLoadVocabulary(t *testing.T) {
	t.Parallel()

	t.Run("decodes categories in declaration order", func(t *testing.T) {
		t.Parallel()

		v, err := yaml.LoadVocabulary(strings.NewReader(vocabularyDoc))

		require.NoError(t, err)
		require.Len(t, v.Categories, 2)
		assert.Equal(t, "Garden", v.Categories[0].ID)
		assert.Equal(t, "Pet Supplies", v.Categories[1].DisplayName())
		assert.Equal(t, []string{"pricey"}, v.Sort.PriceDesc)
		assert.Equal(t, []string{"show me", " the "}, v.Fillers)
	})

	t.Run("drives an interpreter", func(t *testing.T) {
		t.Parallel()

		v, err := yaml.LoadVocabulary(strings.NewReader(vocabularyDoc))
		require.NoError(t, err)
		interp, err := storefind.NewInterpreter(v)
		require.NoError(t, err)

		state := interp.Interpret("show me the cheap pet supplies leash", storefind.ModeFull, storefind.Selection{})

		assert.Equal(t, "Pets", state.Category)
		assert.Equal(t, storefind.SortPriceAsc, state.SortBy)
		assert.Equal(t, "leash", state.Query)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadVocabulary(strings.NewReader("colours: [red]\n"))

		require.Error(t, err)
		assert.Equal(t, storefind.EINVALID, storefind.ErrorCode(err))
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadVocabulary(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, storefind.EINVALID, storefind.ErrorCode(err))
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("decodes products and generates missing ids", func(t *testing.T) {
		t.Parallel()

		products, err := yaml.LoadCatalog(strings.NewReader(catalogDoc))

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, &storefind.Product{
			ID:          "p-1",
			Name:        "Garden Hose",
			Category:    "Garden",
			Price:       30,
			Rating:      4.5,
			ReviewCount: 12,
			StockQty:    4,
		}, products[0])
		assert.Equal(t, "Dog Leash", products[1].Name)
		assert.Equal(t, 12.5, products[1].Price)
		assert.NotEmpty(t, products[1].ID)
	})

	t.Run("rejects invalid product", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalog(strings.NewReader("products:\n  - name: Hose\n    price: 3\n"))

		require.Error(t, err)
		assert.Equal(t, storefind.EINVALID, storefind.ErrorCode(err))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		doc := `
products:
  - {id: a, name: Hose, category: Garden}
  - {id: a, name: Rake, category: Garden}
`
		_, err := yaml.LoadCatalog(strings.NewReader(doc))

		require.Error(t, err)
		assert.Equal(t, storefind.EINVALID, storefind.ErrorCode(err))
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalog(strings.NewReader("products: [unterminated"))

		require.Error(t, err)
		assert.Equal(t, storefind.EINVALID, storefind.ErrorCode(err))
	})
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	t.Run("reads products from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(catalogDoc), 0o644))

		products, err := yaml.LoadCatalogFile(path)

		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, storefind.ENOTFOUND, storefind.ErrorCode(err))
	})
}

func TestLoadVocabularyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vocabularyDoc), 0o644))

	v, err := yaml.LoadVocabularyFile(path)

	require.NoError(t, err)
	assert.Len(t, v.Categories, 2)
}
