package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"stayfinder-backend/storage"
	"stayfinder-backend/utils"
)

type ExportService struct {
	store storage.Store
}

func NewExportService(store storage.Store) *ExportService {
	return &ExportService{store: store}
}

var exportHeaders = []string{
	"Booking ID", "User ID", "Hotel", "Room", "Check-in", "Check-out",
	"Nights", "Total Price", "Status", "Created At",
}

// ExportBookings renders every booking into an xlsx workbook, one row per
// booking with its room and hotel resolved.
func (s *ExportService) ExportBookings(ctx context.Context) (*bytes.Buffer, error) {
	bookings, err := s.store.AllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, style)

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.ID,
			b.UserID,
			b.HotelDetail.Name,
			b.RoomDetail.Name,
			b.CheckIn.Format("2006-01-02"),
			b.CheckOut.Format("2006-01-02"),
			utils.Nights(b.CheckIn, b.CheckOut),
			b.TotalPrice,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	_ = f.SetColWidth(sheet, "A", "J", 18)

	return f.WriteToBuffer()
}
