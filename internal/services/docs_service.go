package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the three document types: e-ticket per booking,
// operation receipt per trip, passenger manifest per departure group.
// Documents are a pure view over stored/computed values; no arithmetic
// happens here beyond rendering.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	TripRepo    repositories.TripRepository
	RequestID   string

	// Loaders override the repo lookups in tests.
	BookingLoader func(int64) (domain.Booking, error)
	TripLoader    func(int64) (domain.TripOperation, error)
}

func (s DocsService) loadBooking(id int64) (domain.Booking, error) {
	if s.BookingLoader != nil {
		return s.BookingLoader(id)
	}
	return s.BookingRepo.GetByID(id)
}

func (s DocsService) loadTrip(id int64) (domain.TripOperation, error) {
	if s.TripLoader != nil {
		return s.TripLoader(id)
	}
	return s.TripRepo.GetByID(id)
}

func (s DocsService) GenerateTicket(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", "order_no="+b.OrderNo)
	return buildTicketPDF(b)
}

func (s DocsService) GenerateReceipt(tripID int64) ([]byte, string, error) {
	t, err := s.loadTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("trip_id=%d", tripID))
	return buildReceiptPDF(t)
}

func (s DocsService) GenerateManifest(group ManifestGroup) ([]byte, string, error) {
	if len(group.Bookings) == 0 {
		return nil, "", domain.NotFoundError{Resource: "manifest group"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_manifest",
		"date="+group.Key.TripDate+" route="+group.Key.RouteFrom+"-"+group.Key.RouteTo)
	return buildManifestPDF(group)
}

func routeLabel(from, via, to string) string {
	if strings.TrimSpace(via) != "" {
		return fmt.Sprintf("%s -> %s -> %s", from, via, to)
	}
	return fmt.Sprintf("%s -> %s", from, to)
}

func buildTicketPDF(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	var perSeat int64
	if b.PassengerCount > 0 {
		perSeat = b.Total / int64(b.PassengerCount)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("No Order       : %s", safe(b.OrderNo, "-")),
		fmt.Sprintf("Nama Pemesan   : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("No HP          : %s", safe(b.CustomerPhone, "-")),
		fmt.Sprintf("Rute           : %s", routeLabel(b.RouteFrom, b.RouteVia, b.RouteTo)),
		fmt.Sprintf("Tanggal/Jam    : %s %s", safe(b.TripDate, "-"), safe(b.TripTime, "-")),
		fmt.Sprintf("Penumpang      : %d orang", b.PassengerCount),
		fmt.Sprintf("Harga/Orang    : %s", utils.FormatRupiah(perSeat)),
		fmt.Sprintf("Total          : %s", utils.FormatRupiah(b.Total)),
		fmt.Sprintf("Pickup         : %s", safe(b.PickupAddress, "-")),
		fmt.Sprintf("Dropoff        : %s", safe(b.DropoffAddress, "-")),
		fmt.Sprintf("Status         : %s", safe(b.PaymentStatus, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: Tunjukkan e-ticket ini beserta nomor order saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", safeFilenamePart(b.OrderNo))
	return buf.Bytes(), filename, nil
}

var expenseLabels = map[domain.ExpenseCategory]string{
	domain.ExpenseFuel:       "BBM",
	domain.ExpenseFerry:      "Penyeberangan",
	domain.ExpenseSnack:      "Snack",
	domain.ExpenseMeal:       "Makan",
	domain.ExpenseDriverFee:  "Fee Sopir",
	domain.ExpenseDriverMeal: "Makan Sopir",
	domain.ExpenseToll:       "Tol",
	domain.ExpenseParking:    "Parkir",
	domain.ExpenseOther:      "Lain-lain",
}

func buildReceiptPDF(t domain.TripOperation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rekap Operasional Trip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REKAP OPERASIONAL TRIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("Tanggal        : %s", safe(t.Date, "-")),
		fmt.Sprintf("Rute           : %s", routeLabel(t.RouteFrom, t.RouteVia, t.RouteTo)),
		fmt.Sprintf("Jam Berangkat  : %s", safe(t.DepartureTime, "-")),
		fmt.Sprintf("Penumpang      : %d orang", t.PassengerCount),
		fmt.Sprintf("Sopir          : %s", safe(t.DriverName, "-")),
		fmt.Sprintf("Nopol          : %s", safe(t.PlateNumber, "-")),
	}
	for _, s := range head {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pendapatan")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Tiket          : "+utils.FormatRupiah(t.TicketIncome))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Lainnya        : "+utils.FormatRupiah(t.OtherIncome))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Total          : "+utils.FormatRupiah(t.TotalIncome()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pengeluaran")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, cat := range domain.ExpenseCategories {
		amount := t.ExpenseAmount(cat)
		if amount == 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%-14s : %s", expenseLabels[cat], utils.FormatRupiah(amount)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Total          : "+utils.FormatRupiah(t.TotalExpense()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Laba Bersih    : "+utils.FormatRupiah(t.Profit()))
	pdf.Ln(8)

	if strings.TrimSpace(t.Notes) != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Catatan: "+t.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TRIP_%d_%s.pdf", t.ID, safeFilenamePart(t.Date))
	return buf.Bytes(), filename, nil
}

func buildManifestPDF(g ManifestGroup) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Manifest Penumpang", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "MANIFEST PENUMPANG")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Rute: %s    Tanggal: %s    Jam: %s    Total Penumpang: %d",
		routeLabel(g.Key.RouteFrom, g.Key.RouteVia, g.Key.RouteTo),
		g.Key.TripDate, g.Key.TripTime, g.Passengers))
	pdf.Ln(10)

	headers := []string{"No Order", "Nama", "No HP", "Pax", "Pickup", "Bagasi", "Paket", "Permintaan Khusus", "Status"}
	widths := []float64{36, 40, 30, 12, 50, 16, 16, 50, 27}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range g.Bookings {
		cols := []string{
			b.OrderNo,
			b.CustomerName,
			b.CustomerPhone,
			fmt.Sprintf("%d", b.PassengerCount),
			b.PickupAddress,
			fmt.Sprintf("%d", b.LuggageCount),
			fmt.Sprintf("%d", b.PackageCount),
			safe(b.SpecialRequest, "-"),
			b.PaymentStatus,
		}
		for i, v := range cols {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s_%s.pdf",
		safeFilenamePart(g.Key.TripDate),
		safeFilenamePart(g.Key.RouteFrom+"_"+g.Key.RouteTo))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
