// Package pdfmeta recovers the document information dictionary via pdfcpu.
// The access adapter (go-fitz) owns page content; this package is only a
// best-effort source for title/author style fields.
package pdfmeta

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Info holds the information dictionary fields. Pointer fields so absent
// values serialise as null rather than "".
type Info struct {
	Title            *string `json:"title"`
	Author           *string `json:"author"`
	Subject          *string `json:"subject"`
	Creator          *string `json:"creator"`
	Producer         *string `json:"producer"`
	CreationDate     *string `json:"creation_date"`
	ModificationDate *string `json:"modification_date"`
}

// Read recovers document metadata. Best effort: any failure yields a zero
// Info and ok=false, never an error. Metadata absence must not fail an
// extraction.
func Read(path string) (Info, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, false
	}
	defer func() { _ = f.Close() }()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	info, err := api.PDFInfo(f, path, nil, false, conf)
	if err != nil || info == nil {
		return Info{}, false
	}

	return Info{
		Title:            optional(info.Title),
		Author:           optional(info.Author),
		Subject:          optional(info.Subject),
		Creator:          optional(info.Creator),
		Producer:         optional(info.Producer),
		CreationDate:     optional(info.CreationDate),
		ModificationDate: optional(info.ModificationDate),
	}, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
