package seatmap

import (
	"fmt"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
)

const (
	Rows          = 30
	OccupiedRatio = 0.30

	ExitSurcharge  = 25
	FrontSurcharge = 15
	frontRowLimit  = 10
)

// Columns left and right of the aisle.
var (
	leftColumns  = []string{"A", "B", "C"}
	rightColumns = []string{"D", "E", "F"}
)

// ExitRows are the over-wing emergency exit rows.
var ExitRows = map[int]bool{12: true, 13: true}

// Generate builds a 30 row map, six seats per row with an aisle spacer after
// column C. Every seat is occupied independently with probability 0.30.
func Generate(src random.Source) dto.SeatMap {
	rows := make([]dto.SeatRow, 0, Rows)

	for number := 1; number <= Rows; number++ {
		cells := make([]dto.SeatMapEntry, 0, len(leftColumns)+len(rightColumns)+1)

		for _, col := range leftColumns {
			cells = append(cells, seat(src, number, col))
		}
		cells = append(cells, dto.SeatMapEntry{Row: number, Kind: dto.SeatAisle})
		for _, col := range rightColumns {
			cells = append(cells, seat(src, number, col))
		}

		rows = append(rows, dto.SeatRow{Number: number, Cells: cells})
	}

	return dto.SeatMap{Rows: rows}
}

func seat(src random.Source, row int, column string) dto.SeatMapEntry {
	kind := dto.SeatStandard
	if ExitRows[row] {
		kind = dto.SeatExit
	}

	return dto.SeatMapEntry{
		SeatID:    fmt.Sprintf("%d%s", row, column),
		Row:       row,
		Column:    column,
		Kind:      kind,
		Occupied:  random.Chance(src, OccupiedRatio),
		Surcharge: Surcharge(row),
	}
}

// Surcharge returns the seat price for a row.
func Surcharge(row int) int {
	switch {
	case ExitRows[row]:
		return ExitSurcharge
	case row < frontRowLimit:
		return FrontSurcharge
	default:
		return 0
	}
}

// Find looks a seat up by id such as "12C". Aisle cells are never returned.
func Find(m dto.SeatMap, seatID string) (dto.SeatMapEntry, bool) {
	for _, row := range m.Rows {
		for _, cell := range row.Cells {
			if cell.IsSeat() && cell.SeatID == seatID {
				return cell, true
			}
		}
	}

	return dto.SeatMapEntry{}, false
}

// Count returns the number of seats and how many of them are occupied.
func Count(m dto.SeatMap) (seats int, occupied int) {
	for _, row := range m.Rows {
		for _, cell := range row.Cells {
			if !cell.IsSeat() {
				continue
			}
			seats++
			if cell.Occupied {
				occupied++
			}
		}
	}

	return seats, occupied
}
