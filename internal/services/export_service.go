package services

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/phpdave11/gofpdf"

	"travelr/internal/models/response_models"
)

type ExportServiceInterface interface {
	WhatsAppShareLink(entry *response_models.WishlistEntryResponse, form TripSummary) string
	RenderPDF(entry *response_models.WishlistEntryResponse, form TripSummary) ([]byte, error)
}

// TripSummary is the slice of the trip form the exports need.
type TripSummary struct {
	Destination   string
	Days          int
	TravelerCount int
	StartDate     string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// WhatsAppShareLink formats the itinerary as a WhatsApp message and wraps it
// in a wa.me link. WhatsApp renders *bold* markers, so the section headings
// keep them.
func (e *ExportService) WhatsAppShareLink(entry *response_models.WishlistEntryResponse, form TripSummary) string {
	var msg strings.Builder

	fmt.Fprintf(&msg, "*Travel Itinerary for %s*\n\n", form.Destination)
	fmt.Fprintf(&msg, "Duration: %d days\n", form.Days)
	if form.TravelerCount > 0 {
		fmt.Fprintf(&msg, "Travelers: %d\n", form.TravelerCount)
	}
	if form.StartDate != "" {
		fmt.Fprintf(&msg, "Start Date: %s\n", form.StartDate)
	}

	if len(entry.Hotels) > 0 {
		msg.WriteString("\n*Recommended Hotels*\n")
		for i, hotel := range entry.Hotels {
			fmt.Fprintf(&msg, "%d. %s\n", i+1, hotel.Name)
			if hotel.Location != "" {
				fmt.Fprintf(&msg, "   %s\n", hotel.Location)
			}
			if price := hotelPriceLabel(hotel); price != "" {
				fmt.Fprintf(&msg, "   %s\n", price)
			}
		}
	}

	msg.WriteString("\n*Daily Itinerary*\n\n")
	for _, day := range entry.Itinerary {
		fmt.Fprintf(&msg, "*Day %d*\n", day.Day)
		if day.Morning != nil {
			fmt.Fprintf(&msg, "Morning: %s\n", day.Morning.Activity)
			if day.Morning.Location != "" {
				fmt.Fprintf(&msg, "   %s\n", day.Morning.Location)
			}
		}
		if day.Lunch != nil {
			fmt.Fprintf(&msg, "Lunch: %s\n", day.Lunch.Name)
			if day.Lunch.Location != "" {
				fmt.Fprintf(&msg, "   %s\n", day.Lunch.Location)
			}
		}
		if day.Afternoon != nil {
			fmt.Fprintf(&msg, "Afternoon: %s\n", day.Afternoon.Activity)
			if day.Afternoon.Location != "" {
				fmt.Fprintf(&msg, "   %s\n", day.Afternoon.Location)
			}
		}
		if day.Dinner != nil {
			fmt.Fprintf(&msg, "Dinner: %s\n", day.Dinner.Name)
			if day.Dinner.Location != "" {
				fmt.Fprintf(&msg, "   %s\n", day.Dinner.Location)
			}
		}
		if day.Evening != nil {
			fmt.Fprintf(&msg, "Evening: %s\n", day.Evening.Activity)
		}
		msg.WriteString("\n")
	}

	if len(entry.Tips) > 0 {
		msg.WriteString("*Travel Tips*\n")
		for _, tip := range entry.Tips {
			fmt.Fprintf(&msg, "- %s\n", tip)
		}
	}

	return "https://wa.me/?text=" + url.QueryEscape(msg.String())
}

// RenderPDF lays the itinerary out as an A4 document.
func (e *ExportService) RenderPDF(entry *response_models.WishlistEntryResponse, form TripSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFillColor(16, 185, 129)
	pdf.Rect(0, 0, pageWidth, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 18, "TravelR", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 8, "Travel Itinerary", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", form.Destination))
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Duration: %d days", form.Days))
	pdf.Ln(6)
	if form.TravelerCount > 0 {
		pdf.Cell(0, 7, fmt.Sprintf("Travelers: %d", form.TravelerCount))
		pdf.Ln(6)
	}
	if form.StartDate != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Start date: %s", form.StartDate))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, day := range entry.Itinerary {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetTextColor(16, 185, 129)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d", day.Day))
		pdf.Ln(8)
		pdf.SetTextColor(0, 0, 0)

		writeSlot := func(label, title, location, price string) {
			if title == "" {
				return
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(30, 6, label)
			pdf.SetFont("Arial", "", 11)
			pdf.MultiCell(0, 6, title, "", "L", false)
			if location != "" {
				pdf.SetX(pdf.GetX() + 30)
				pdf.SetFont("Arial", "I", 10)
				pdf.MultiCell(0, 5, location, "", "L", false)
			}
			if price != "" {
				pdf.SetX(pdf.GetX() + 30)
				pdf.SetFont("Arial", "", 10)
				pdf.MultiCell(0, 5, price, "", "L", false)
			}
		}

		if day.Morning != nil {
			writeSlot("Morning", day.Morning.Activity, day.Morning.Location, day.Morning.Price)
		}
		if day.Lunch != nil {
			writeSlot("Lunch", day.Lunch.Name, day.Lunch.Location, day.Lunch.Price)
		}
		if day.Afternoon != nil {
			writeSlot("Afternoon", day.Afternoon.Activity, day.Afternoon.Location, day.Afternoon.Price)
		}
		if day.Dinner != nil {
			writeSlot("Dinner", day.Dinner.Name, day.Dinner.Location, day.Dinner.Price)
		}
		if day.Evening != nil {
			writeSlot("Evening", day.Evening.Activity, "", day.Evening.Price)
		}
		pdf.Ln(4)
	}

	if len(entry.Hotels) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetTextColor(16, 185, 129)
		pdf.Cell(0, 9, "Recommended Hotels")
		pdf.Ln(8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 11)
		for i, hotel := range entry.Hotels {
			line := fmt.Sprintf("%d. %s", i+1, hotel.Name)
			if hotel.Location != "" {
				line += " - " + hotel.Location
			}
			if price := hotelPriceLabel(hotel); price != "" {
				line += " (" + price + ")"
			}
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(4)
	}

	if len(entry.Tips) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetTextColor(16, 185, 129)
		pdf.Cell(0, 9, "Travel Tips")
		pdf.Ln(8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 11)
		for _, tip := range entry.Tips {
			pdf.MultiCell(0, 6, "- "+tip, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func hotelPriceLabel(hotel response_models.Hotel) string {
	if hotel.PricePerNight != "" {
		return hotel.PricePerNight + "/night"
	}
	return hotel.PriceRange
}
