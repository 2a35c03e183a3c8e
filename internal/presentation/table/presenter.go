package table

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/ozzus/team-fixtures/internal/domain/models"
)

var columns = []string{"Matchday", "Local Date Time", "Home/Away", "Opponent", "Status", "Result"}

type Presenter struct {
	out    io.Writer
	header *color.Color
	warn   *color.Color
}

func NewPresenter(out io.Writer, noColor bool) *Presenter {
	header := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	if noColor {
		header.DisableColor()
		warn.DisableColor()
	}

	return &Presenter{
		out:    out,
		header: header,
		warn:   warn,
	}
}

// Present prints one section per group in the order given. The competition
// column is left out since the section header carries it.
func (p *Presenter) Present(groups []models.CompetitionGroup) error {
	for _, g := range groups {
		if _, err := p.header.Fprintf(p.out, "--- %s ---\n", g.Competition); err != nil {
			return fmt.Errorf("write header: %w", err)
		}

		tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		writeRow(tw, columns...)
		for _, m := range g.Matches {
			writeRow(tw,
				strconv.Itoa(m.Matchday),
				m.LocalTime,
				m.Venue.String(),
				m.Opponent,
				m.Status,
				m.Result,
			)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("write %s table: %w", g.Competition, err)
		}

		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) Notice(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *Presenter) Noticef(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Presenter) Warnf(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

func writeRow(w io.Writer, cells ...string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprint(w, "\n")
}
