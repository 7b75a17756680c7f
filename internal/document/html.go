package document

import (
	"fmt"
	"html/template"
	"io"

	"github.com/pkordes/travel-approval/internal/domain"
)

var htmlTemplate = template.Must(template.New("email").Funcs(template.FuncMap{
	"date":   FormatDate,
	"amount": FormatAmount,
	"total":  FormatTotal,
	"when":   segmentWhen,
}).Parse(`<div class="email">
<p><strong>Subject: {{.Subject}}</strong></p>
<br>
<p>Hi Team,</p>
<br>
<p>I am planning to visit <strong>{{.Plan.University}}</strong> from {{date .Plan.StartDate}} to {{date .Plan.EndDate}}.</p>
<p><strong>Purpose:</strong> {{.Plan.Reason}}</p>
<p>My overall estimated expense for this trip is ~ <strong>INR {{total .Plan.TotalEstimatedExpense}}</strong>.</p>
<br>
{{range .Sections}}{{$withTime := .WithTime}}
<p><strong>{{.Title}}</strong></p>
<table border="1" style="width:100%;border-collapse:collapse">
<thead><tr>{{range $.SegmentColumns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Segments}}<tr><td>{{.From}}</td><td>{{.To}}</td><td>{{when . $withTime}}</td><td>{{.Mode}}</td><td>{{amount .Amount}}</td></tr>
{{end}}</tbody>
</table>
{{end}}
<p><strong>Accommodation details</strong></p>
<table border="1" style="width:100%;border-collapse:collapse">
<thead><tr>{{range .AccommodationColumns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{with .Plan.Accommodation}}<tr><td><strong>Stay at {{.HotelName}}</strong></td><td>{{date .From}}</td><td>{{date .To}}</td><td>{{.Days}} Nights</td><td>{{amount .StayAmount}}</td></tr>
{{if .EarlyCheckIn}}<tr><td><strong>Early check-in charges</strong></td><td>-</td><td>-</td><td>-</td><td>{{amount .EarlyCheckInCost}}</td></tr>
{{end}}<tr><td>Total accommodation cost</td><td colspan="3"></td><td>{{amount .TotalAmount}}</td></tr>
{{end}}</tbody>
</table>

<p><strong>Food expenses (Meal-wise breakdown)</strong></p>
<table border="1" style="width:100%;border-collapse:collapse">
<thead><tr>{{range .FoodColumns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Plan.FoodExpense.DailyExpenses}}<tr><td>{{date .Date}}</td><td>{{.Count}}</td><td>{{amount .Rate}}</td><td>{{amount .Amount}}</td></tr>
{{end}}<tr><td>Total food expense</td><td colspan="2"></td><td>{{amount .Plan.FoodExpense.TotalAmount}}</td></tr>
</tbody>
</table>
<br>
<p>Regards,</p>
<p><strong>{{.Plan.UserName}}</strong></p>
</div>
`))

type htmlData struct {
	Subject              string
	Plan                 domain.TravelPlan
	Sections             []section
	SegmentColumns       []string
	AccommodationColumns []string
	FoodColumns          []string
}

func renderHTML(w io.Writer, plan domain.TravelPlan) error {
	data := htmlData{
		Subject:              Subject(plan),
		Plan:                 plan,
		Sections:             sections(plan),
		SegmentColumns:       SegmentColumns,
		AccommodationColumns: AccommodationColumns,
		FoodColumns:          FoodColumns,
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("document.Render: html: %w", err)
	}
	return nil
}
