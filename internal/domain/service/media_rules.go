package service

import (
	"path/filepath"
	"sort"
	"strings"
)

type MediaClass int

const (
	MediaImage MediaClass = iota
	MediaVideo
	MediaPDF
	MediaDocument
)

var classExtensions = map[MediaClass][]string{
	MediaImage:    {".jpg", ".jpeg", ".png"},
	MediaVideo:    {".mp4", ".mov"},
	MediaPDF:      {".pdf"},
	MediaDocument: {".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"},
}

func (c MediaClass) String() string {
	switch c {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	case MediaPDF:
		return "pdf"
	default:
		return "document"
	}
}

// Allows reports whether filename carries an extension of this class.
func (c MediaClass) Allows(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range classExtensions[c] {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (c MediaClass) Extensions() []string {
	out := make([]string, 0, len(classExtensions[c]))
	for _, ext := range classExtensions[c] {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

const mb = 1 << 20

// MediaRule describes one upload field of an entity kind.
type MediaRule struct {
	Field    string
	Folder   string
	Class    MediaClass
	MaxSize  int64
	MaxCount int
	// Multiple fields store a URL list; the others a single URL.
	Multiple bool
	// DeleteField names the form field carrying URLs to drop on update.
	DeleteField string
}

type MediaRules map[string]MediaRule

// Fields returns the rule field names in a stable order.
func (r MediaRules) Fields() []string {
	out := make([]string, 0, len(r))
	for field := range r {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// WithLimit returns a copy of r with the limits of field replaced. Zero
// values keep the current limit.
func (r MediaRules) WithLimit(field string, maxSize int64, maxCount int) MediaRules {
	out := make(MediaRules, len(r))
	for k, v := range r {
		out[k] = v
	}
	rule, ok := out[field]
	if !ok {
		return out
	}
	if maxSize > 0 {
		rule.MaxSize = maxSize
	}
	if maxCount > 0 {
		rule.MaxCount = maxCount
	}
	out[field] = rule
	return out
}

const (
	KindDeveloper = "developer"
	KindProject   = "project"
	KindTower     = "tower"
	KindSeries    = "series"
	KindAmenity   = "amenity"
	KindProperty  = "property"
	KindProfile   = "profile"
)

// DefaultMediaRules returns the upload allow-list of every entity kind.
func DefaultMediaRules() map[string]MediaRules {
	return map[string]MediaRules{
		KindDeveloper: {
			"logoUrl": {Field: "logoUrl", Folder: "DeveloperLogo", Class: MediaImage, MaxSize: 2 * mb, MaxCount: 1},
		},
		KindProject: {
			"images":             {Field: "images", Folder: "ProjectImages", Class: MediaImage, MaxSize: 10 * mb, MaxCount: 20, Multiple: true, DeleteField: "deleteImages"},
			"videos":             {Field: "videos", Folder: "ProjectVideos", Class: MediaVideo, MaxSize: 50 * mb, MaxCount: 5, Multiple: true, DeleteField: "deleteVideos"},
			"brochureUrl":        {Field: "brochureUrl", Folder: "ProjectBrochures", Class: MediaPDF, MaxSize: 50 * mb, MaxCount: 1},
			"reraCertificateUrl": {Field: "reraCertificateUrl", Folder: "ReraCertificatePdf", Class: MediaPDF, MaxSize: 50 * mb, MaxCount: 1},
		},
		KindTower: {},
		KindSeries: {
			"layoutPlanUrl":    {Field: "layoutPlanUrl", Folder: "SeriesLayouts", Class: MediaPDF, MaxSize: 50 * mb, MaxCount: 1},
			"insideImagesUrls": {Field: "insideImagesUrls", Folder: "SeriesImages", Class: MediaImage, MaxSize: 10 * mb, MaxCount: 20, Multiple: true, DeleteField: "deleteInsideImages"},
			"insideVideosUrls": {Field: "insideVideosUrls", Folder: "SeriesVideos", Class: MediaVideo, MaxSize: 50 * mb, MaxCount: 5, Multiple: true, DeleteField: "deleteInsideVideos"},
		},
		KindAmenity: {
			"logoUrl": {Field: "logoUrl", Folder: "AmenitiesLogo", Class: MediaImage, MaxSize: 2 * mb, MaxCount: 1},
		},
		KindProperty: {
			"images":    {Field: "images", Folder: "PropertyImages", Class: MediaImage, MaxSize: 10 * mb, MaxCount: 20, Multiple: true, DeleteField: "deleteImages"},
			"videos":    {Field: "videos", Folder: "PropertyVideos", Class: MediaVideo, MaxSize: 50 * mb, MaxCount: 5, Multiple: true, DeleteField: "deleteVideos"},
			"documents": {Field: "documents", Folder: "PropertyDocuments", Class: MediaDocument, MaxSize: 25 * mb, MaxCount: 10, Multiple: true, DeleteField: "deleteDocuments"},
		},
		KindProfile: {
			"profileImage": {Field: "profileImage", Folder: "UserProfileImage", Class: MediaImage, MaxSize: 5 * mb, MaxCount: 1},
		},
	}
}
