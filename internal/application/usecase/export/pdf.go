package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
)

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) heading(text string) {
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", 15)
	w.pdf.SetTextColor(88, 86, 214)
	w.pdf.CellFormat(0, 9, w.tr(text), "", 1, "L", false, 0, "")
	w.pdf.SetTextColor(51, 51, 51)
}

func (w *pdfWriter) item(title string) {
	w.pdf.SetFont("Helvetica", "B", 12)
	w.pdf.MultiCell(0, 6, w.tr(title), "", "L", false)
}

func (w *pdfWriter) text(style, s string) {
	if s == "" {
		return
	}
	w.pdf.SetFont("Helvetica", style, 11)
	w.pdf.MultiCell(0, 5.5, w.tr(s), "", "L", false)
}

func renderPDF(out io.Writer, p *profile.Profile) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(p.Name+"'s Portfolio", true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 122, 255)
	pdf.CellFormat(0, 12, w.tr(p.Name+"'s Portfolio"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 8, w.tr(p.Title), "", 1, "C", false, 0, "")

	w.heading("About Me")
	w.text("", p.Bio)

	w.heading("Education")
	for _, e := range p.Education {
		w.item(e.Institution)
		w.text("B", e.Degree)
		w.text("", e.Period)
		w.text("", e.Details)
		pdf.Ln(2)
	}

	w.heading("Skills")
	for _, s := range p.Skills {
		w.text("", fmt.Sprintf("%s - %s", s.Name, s.Proficiency))
	}

	w.heading("Projects")
	for _, pr := range p.Projects {
		w.item(pr.Title)
		w.text("", pr.Description)
		w.text("", "Technologies: "+strings.Join(pr.Technologies, ", "))
		if pr.ValueAdded != "" {
			w.text("", "Value Added: "+pr.ValueAdded)
		}
		pdf.Ln(2)
	}

	if len(p.Certificates) > 0 {
		w.heading("Certificates")
		for _, c := range p.Certificates {
			w.item(c.Name)
			w.text("", fmt.Sprintf("%s, %s", c.Issuer, c.Date))
			w.text("", c.Description)
			w.text("I", c.VerifyURL)
			pdf.Ln(2)
		}
	}

	if len(p.Testimonials) > 0 {
		w.heading("Testimonials")
		for _, t := range p.Testimonials {
			w.text("I", fmt.Sprintf("\"%s\"", t.Quote))
			w.text("B", "- "+t.Author)
			w.text("", t.Relation)
			pdf.Ln(2)
		}
	}

	ci := p.ContactInfo
	w.heading("Contact Information")
	w.text("", "Email: "+ci.Email)
	if ci.Phone != "" {
		w.text("", "Phone: "+ci.Phone)
	}
	if ci.LinkedIn != "" {
		w.text("", "LinkedIn: "+ci.LinkedIn)
	}
	if ci.GitHub != "" {
		w.text("", "GitHub: "+ci.GitHub)
	}

	return pdf.Output(out)
}
