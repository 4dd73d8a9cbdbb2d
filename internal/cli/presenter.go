package cli

import (
	"fmt"
	"io"
	"trip-route-cli/internal/adapters/tokenfile"
	"trip-route-cli/internal/domain"
	"trip-route-cli/internal/ports"
	"trip-route-cli/internal/services"

	"github.com/charmbracelet/lipgloss"
	"github.com/twpayne/go-polyline"
)

// Presenter writes everything the user sees. Styling degrades to plain text
// when out is not a terminal.
type Presenter struct {
	out          io.Writer
	showPolyline bool

	title  lipgloss.Style
	label  lipgloss.Style
	help   lipgloss.Style
	failed lipgloss.Style
}

func NewPresenter(out io.Writer, showPolyline bool) *Presenter {
	r := lipgloss.NewRenderer(out)
	return &Presenter{
		out:          out,
		showPolyline: showPolyline,
		title:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF")),
		label:        r.NewStyle().Bold(true),
		help:         r.NewStyle().Foreground(lipgloss.Color("#888888")),
		failed:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
	}
}

func (p *Presenter) Intro(sentinel string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.title.Render("=== Trip evaluation (OpenRouteService) ==="))
	fmt.Fprintln(p.out, p.help.Render(`Enter places as "City, Country" (e.g. "Santiago, Chile").`))
	fmt.Fprintln(p.out, p.help.Render(fmt.Sprintf("Type '%s' at any prompt to quit.", sentinel)))
	fmt.Fprintln(p.out)
}

func (p *Presenter) Prompt(label string) {
	fmt.Fprintf(p.out, "%s: ", label)
}

func (p *Presenter) Progress(s services.Stage) {
	fmt.Fprintln(p.out, s.String())
}

func (p *Presenter) Report(r *domain.TripReport) {
	m := r.Metrics

	fmt.Fprintln(p.out)
	p.line("From", placeName(r.Origin))
	p.line("To", placeName(r.Destination))
	p.line("Distance", fmt.Sprintf("%.2f km", m.DistanceKm))
	p.line("Duration", m.DurationHMS+" (h:m:s)")
	p.line("Fuel", fmt.Sprintf("%.2f liters", m.FuelLiters))
	p.line("Straight", fmt.Sprintf("%.2f km", m.StraightLineKm))

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.label.Render("Trip narrative:"))
	for i, step := range r.Route.Steps {
		fmt.Fprintf(p.out, " %02d. %s\n", i+1, step.Instruction)
	}

	if p.showPolyline && len(r.Route.Geometry) > 0 {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.label.Render("Polyline:"))
		fmt.Fprintln(p.out, EncodePolyline(r.Route.Geometry))
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "---")
	fmt.Fprintln(p.out)
}

func (p *Presenter) Error(err error) {
	fmt.Fprintf(p.out, "%s %v\n\n", p.failed.Render("Error:"), err)
}

func (p *Presenter) Goodbye() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Program finished.")
}

func (p *Presenter) ISSPosition(cycle int, r ports.PositionReport) {
	fmt.Fprintf(p.out, "[%d] %s Current position: latitude %.4f, longitude %.4f\n",
		cycle, r.Timestamp.Format("15:04:05"), r.Position.Lat, r.Position.Lon)
}

func (p *Presenter) ISSError(cycle int, err error) {
	fmt.Fprintf(p.out, "[%d] %s %v\n", cycle, p.failed.Render("Error:"), err)
}

func (p *Presenter) Token(t tokenfile.Token) {
	fmt.Fprintln(p.out, "Token:", t.Value)
	fmt.Fprintln(p.out, "Time remaining before expiry:", t.ExpiresIn, "seconds")
}

func (p *Presenter) line(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render(fmt.Sprintf("%-9s:", label)), value)
}

func placeName(pl domain.Place) string {
	if pl.Label != "" {
		return pl.Label
	}
	return pl.Query
}

// EncodePolyline encodes a route line in the Google polyline format
// (precision 5), which most map tools accept.
func EncodePolyline(line []domain.Coordinates) string {
	coords := make([][]float64, 0, len(line))
	for _, c := range line {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
