package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// GenerateItineraryPDF renders a trip plan as a branded PDF and returns
// raw bytes (nothing touches the filesystem).
func GenerateItineraryPDF(destination string, plan Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(12, 74, 110) // deep cyan
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Weekend Traveller", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(165, 243, 252)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Your AI-curated trip plan", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(12, 74, 110)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, "  -  "+text, "", "L", false)
	}

	slot := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(170, 6, label, "", 1, "L", false, 0, "")
		for _, item := range items {
			bullet(item)
		}
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(170, 7, destination, "", 1, "L", false, 0, "")
	if plan.Header != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(170, 5, plan.Header, "", "L", false)
	}
	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(170, 6, "Generated "+time.Now().Format("02 Jan 2006, 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	// ── Days ─────────────────────────────────────────────────
	for _, day := range plan.Days {
		sectionHeader(fmt.Sprintf("%s: %s", day.DayLabel, day.Title))
		if day.Subtitle != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(80, 80, 80)
			pdf.MultiCell(170, 5, day.Subtitle, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		slot("Morning", day.Morning)
		slot("Afternoon", day.Afternoon)
		slot("Evening", day.Evening)
		pdf.Ln(3)
	}

	// ── Packing List ─────────────────────────────────────────
	if len(plan.PackingList) > 0 {
		sectionHeader("Packing List")
		for _, item := range plan.PackingList {
			bullet(item)
		}
		pdf.Ln(3)
	}

	// ── Waypoints ────────────────────────────────────────────
	if len(plan.Waypoints) > 0 {
		sectionHeader("Waypoints")
		for _, wp := range plan.Waypoints {
			bullet(wp)
		}
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := plan.Footer
	if footer == "" {
		footer = "Generated by Weekend Traveller"
	}
	pdf.CellFormat(0, 8, footer, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
