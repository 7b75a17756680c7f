// Package document renders a travel plan as an approval-request email draft.
package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkordes/travel-approval/internal/domain"
)

// Format selects the output flavour of a rendered document.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// ParseFormat maps a user-supplied name (case-insensitive, empty means HTML)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatText, "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unsupported document format %q", domain.ErrValidation, s)
}

// ContentType is the MIME type of documents in format f.
func (f Format) ContentType() string {
	if f == FormatText {
		return "text/plain; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

// Column headings of the document tables.
var (
	SegmentColumns       = []string{"From", "To", "Date & Time", "Mode", "Amount (INR)"}
	AccommodationColumns = []string{"Description", "From", "To", "Duration", "Amount (INR)"}
	FoodColumns          = []string{"Date", "Number of meals", "Expense per meal", "Amount"}
)

// Render writes plan to w in format f.
func Render(w io.Writer, plan domain.TravelPlan, f Format) error {
	switch f {
	case FormatHTML:
		return renderHTML(w, plan)
	case FormatText:
		return renderText(w, plan)
	}
	return fmt.Errorf("%w: unsupported document format %q", domain.ErrValidation, f)
}

// Subject is the email subject line for plan.
func Subject(plan domain.TravelPlan) string {
	return fmt.Sprintf("Travel Plan Approval Request | %s | %s | %s to %s",
		plan.UserName, plan.University, FormatDate(plan.StartDate), FormatDate(plan.EndDate))
}

// FormatDate turns "2006-01-02" into "02-01-2006". Empty input stays empty;
// anything unparseable is returned as is.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02-01-2006")
}

// FormatAmount prints an amount without trailing zeros ("250", "100.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var printer = message.NewPrinter(language.English)

// FormatTotal prints a whole-unit total with thousands separators ("12,950").
func FormatTotal(v float64) string {
	return printer.Sprintf("%d", int64(v))
}

// segmentWhen is the "Date & Time" cell of a segment row.
func segmentWhen(s domain.TravelSegment, withTime bool) string {
	d := FormatDate(s.Date)
	if withTime && s.Time != "" {
		return d + " " + s.Time
	}
	return d
}

// section is one segment table of the document.
type section struct {
	Title    string
	Segments []domain.TravelSegment
	WithTime bool
}

// sections returns the non-empty segment tables in document order. Commute
// rows show the date only, since every day uses the same fixed times.
func sections(plan domain.TravelPlan) []section {
	all := []section{
		{Title: "Onward journey details", Segments: plan.OnwardJourney, WithTime: true},
		{Title: "Daily outstation local commute (Hotel to University)", Segments: plan.DailyLocalTravel},
		{Title: "Return journey details", Segments: plan.ReturnJourney, WithTime: true},
	}
	out := make([]section, 0, len(all))
	for _, s := range all {
		if len(s.Segments) > 0 {
			out = append(out, s)
		}
	}
	return out
}
