package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkordes/travel-approval/internal/domain"
)

func renderText(w io.Writer, plan domain.TravelPlan) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Subject: %s\n\n", Subject(plan))
	fmt.Fprintf(bw, "Hi Team,\n\n")
	fmt.Fprintf(bw, "I am planning to visit %s from %s to %s.\n",
		plan.University, FormatDate(plan.StartDate), FormatDate(plan.EndDate))
	fmt.Fprintf(bw, "Purpose: %s\n", plan.Reason)
	fmt.Fprintf(bw, "My overall estimated expense for this trip is ~ INR %s.\n\n", FormatTotal(plan.TotalEstimatedExpense))

	for _, s := range sections(plan) {
		rows := make([][]string, 0, len(s.Segments))
		for _, seg := range s.Segments {
			rows = append(rows, []string{seg.From, seg.To, segmentWhen(seg, s.WithTime), seg.Mode, FormatAmount(seg.Amount)})
		}
		writeTable(bw, s.Title, SegmentColumns, rows)
	}

	a := plan.Accommodation
	stay := [][]string{
		{"Stay at " + a.HotelName, FormatDate(a.From), FormatDate(a.To), fmt.Sprintf("%d Nights", a.Days), FormatAmount(a.StayAmount())},
	}
	if a.EarlyCheckIn {
		stay = append(stay, []string{"Early check-in charges", "-", "-", "-", FormatAmount(a.EarlyCheckInCost)})
	}
	stay = append(stay, []string{"Total accommodation cost", "", "", "", FormatAmount(a.TotalAmount)})
	writeTable(bw, "Accommodation details", AccommodationColumns, stay)

	food := make([][]string, 0, len(plan.FoodExpense.DailyExpenses)+1)
	for _, d := range plan.FoodExpense.DailyExpenses {
		food = append(food, []string{FormatDate(d.Date), fmt.Sprint(d.Count), FormatAmount(d.Rate), FormatAmount(d.Amount)})
	}
	food = append(food, []string{"Total food expense", "", "", FormatAmount(plan.FoodExpense.TotalAmount)})
	writeTable(bw, "Food expenses (Meal-wise breakdown)", FoodColumns, food)

	fmt.Fprintf(bw, "Regards,\n%s\n", plan.UserName)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("document.Render: text: %w", err)
	}
	return nil
}

// writeTable prints a titled, column-aligned table followed by a blank line.
func writeTable(w io.Writer, title string, columns []string, rows [][]string) {
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
