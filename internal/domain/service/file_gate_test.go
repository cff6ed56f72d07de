package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acredge/pkg/errors"
)

func TestFileGateCheck(t *testing.T) {
	gate := NewFileGate(DefaultMediaRules()[KindProject], false)

	t.Run("accepts allowed file", func(t *testing.T) {
		err := gate.Check(NewMemoryFile("images", "front.PNG", []byte("img")), 0)
		assert.NoError(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := gate.Check(NewMemoryFile("logo", "a.png", nil), 0)
		assert.True(t, errors.Is(err, ErrUnknownField))
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := gate.Check(NewMemoryFile("brochureUrl", "brochure.docx", nil), 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
		assert.Contains(t, err.Error(), "Allowed types: pdf")
	})

	t.Run("too large", func(t *testing.T) {
		file := NewMemoryFile("images", "a.jpg", nil)
		file.Size = 10*mb + 1
		err := gate.Check(file, 0)
		assert.True(t, errors.Is(err, ErrFileTooLarge))
		assert.Equal(t, 400, errors.Status(err))
	})

	t.Run("too many", func(t *testing.T) {
		err := gate.Check(NewMemoryFile("brochureUrl", "b.pdf", nil), 1)
		assert.True(t, errors.Is(err, ErrTooManyFiles))
	})
}

func TestFileGateAdmitGroupsByField(t *testing.T) {
	gate := NewFileGate(DefaultMediaRules()[KindProperty], false)

	groups, err := gate.Admit([]IncomingFile{
		NewMemoryFile("images", "1.jpg", []byte("a")),
		NewMemoryFile("documents", "deed.pdf", []byte("b")),
		NewMemoryFile("images", "2.jpg", []byte("c")),
	})
	require.NoError(t, err)
	require.Len(t, groups["images"], 2)
	assert.Equal(t, "1.jpg", groups["images"][0].Filename)
	assert.Equal(t, "2.jpg", groups["images"][1].Filename)
	assert.Len(t, groups["documents"], 1)
}

func TestFileGateAdmitRejectsWholeRequest(t *testing.T) {
	gate := NewFileGate(DefaultMediaRules()[KindDeveloper], false)

	groups, err := gate.Admit([]IncomingFile{
		NewMemoryFile("logoUrl", "a.png", nil),
		NewMemoryFile("logoUrl", "b.png", nil),
	})
	assert.Nil(t, groups)
	assert.True(t, errors.Is(err, ErrTooManyFiles))
}

func TestFileGateInspectsPDF(t *testing.T) {
	gate := NewFileGate(DefaultMediaRules()[KindSeries], true)

	err := gate.Check(NewMemoryFile("layoutPlanUrl", "plan.pdf", []byte("definitely not a pdf")), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestMediaRulesWithLimit(t *testing.T) {
	rules := DefaultMediaRules()[KindProject]
	limited := rules.WithLimit("images", 1*mb, 3)

	assert.Equal(t, int64(1*mb), limited["images"].MaxSize)
	assert.Equal(t, 3, limited["images"].MaxCount)
	assert.Equal(t, int64(10*mb), rules["images"].MaxSize, "original untouched")

	same := rules.WithLimit("missing", 1, 1)
	assert.Equal(t, rules.Fields(), same.Fields())
}

func TestMediaClassAllows(t *testing.T) {
	assert.True(t, MediaDocument.Allows("scan.JPEG"))
	assert.True(t, MediaVideo.Allows("tour.mov"))
	assert.False(t, MediaImage.Allows("tour.mov"))
	assert.False(t, MediaPDF.Allows("noext"))
	assert.Equal(t, "jpg, jpeg, png", strings.Join(MediaImage.Extensions(), ", "))
}

func TestBuildFilter(t *testing.T) {
	filter := BuildFilter(map[string]interface{}{
		"priceRange":   map[string]interface{}{"min": float64(1000000), "max": "2500000"},
		"propertyType": "Apartment",
		"city":         "Pune",
		"ignored":      "x",
	})
	assert.Equal(t, "price >= 1000000 AND price <= 2500000 AND propertyType:'Apartment' AND city:'Pune'", filter)

	assert.Equal(t, "", BuildFilter(nil))
	assert.Equal(t, `city:'D\'Souza Nagar'`, BuildFilter(map[string]interface{}{"city": "D'Souza Nagar"}))
}
