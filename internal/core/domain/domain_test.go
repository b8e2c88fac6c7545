package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_ResourceTagsWin(t *testing.T) {
	defaults := Tags{"A": "1", "B": "2"}
	overrides := Tags{"B": "9"}

	got := Merge(defaults, overrides)

	if diff := cmp.Diff(Tags{"A": "1", "B": "9"}, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "2", defaults["B"], "defaults must not be mutated")
}

func TestMerge_NilInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, Tags{"A": "1"}, Merge(nil, Tags{"A": "1"}))
}

func TestTags_WithoutReserved(t *testing.T) {
	tags := Tags{"aws:cloudformation:stack-id": "x", "AWS:Foo": "y", "Owner": "platform"}
	assert.Equal(t, Tags{"Owner": "platform"}, tags.WithoutReserved())
	assert.Len(t, tags, 3)
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "Acme", StripQuotes(`"Acme"`))
	assert.Equal(t, "Acme Corp", StripQuotes(` 'Acme Corp' `))
	assert.Equal(t, "O'Neil", StripQuotes("O'Neil"))
	assert.Equal(t, "Globex", StripQuotes("“Globex”"))
}

func TestParseCategories(t *testing.T) {
	got, err := ParseCategories([]string{"EC2", " igw", "ec2", "s3"})
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryEC2, CategoryIGW, CategoryS3}, got)

	_, err = ParseCategories([]string{"rds"})
	assert.Error(t, err)
}

func TestDocument_SetAndCount(t *testing.T) {
	doc := NewDocument(nil)
	doc.Set(CategoryNGW, "nat-1", Tags{TagKeyCustomerName: "Acme"})
	doc.Set(CategoryEC2, "i-1", Tags{TagKeyCustomerName: "Acme"})
	doc.Set(CategoryEC2, "i-1", Tags{TagKeyCustomerName: "Globex"})

	assert.Equal(t, 2, doc.Count())
	assert.Equal(t, []Category{CategoryEC2, CategoryNGW}, doc.Categories())
	assert.Equal(t, "Globex", doc.Resources[CategoryEC2]["i-1"][TagKeyCustomerName])
	assert.NotNil(t, doc.DefaultTags)
}
