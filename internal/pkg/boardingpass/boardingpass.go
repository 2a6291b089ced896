package boardingpass

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/phpdave11/gofpdf"
)

const ContentType = "application/pdf"

// Render lays a boarding pass out on an A4 page.
func Render(pass dto.BoardingPass) (dto.Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boarding Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOARDING PASS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Flight %s   %s -> %s", pass.FlightNumber, pass.Origin, pass.Destination))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(pass.PassengerName)),
		fmt.Sprintf("Booking ref    : %s", safe(pass.PNR)),
		fmt.Sprintf("Date           : %s", safe(pass.Date)),
		fmt.Sprintf("Departure      : %s", safe(pass.DepartureTime)),
		fmt.Sprintf("Boarding       : %s", safe(pass.BoardingTime)),
		fmt.Sprintf("Terminal/Gate  : %s / %s", safe(pass.Terminal), safe(pass.Gate)),
		fmt.Sprintf("Seat           : %s", safe(pass.Seat)),
		fmt.Sprintf("Class          : %s", safe(pass.Class)),
		fmt.Sprintf("Group          : %s", safe(pass.Group)),
		fmt.Sprintf("Sequence       : %s", safe(pass.SequenceNumber)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Gate closes 15 minutes before departure. Present this pass and a valid "+
		"passport at security.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return dto.Document{}, fmt.Errorf("failed to render boarding pass: %w", err)
	}

	return dto.Document{
		Filename:    Filename(pass),
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}, nil
}

// Filename is e.g. "BOARDINGPASS_ABC123_BG101_1.pdf".
func Filename(pass dto.BoardingPass) string {
	return fmt.Sprintf("BOARDINGPASS_%s_%s_%d.pdf",
		filenamePart(pass.PNR), filenamePart(pass.FlightNumber), pass.PassengerID)
}

func safe(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func filenamePart(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, v)
}
