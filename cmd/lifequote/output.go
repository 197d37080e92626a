package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/dto"
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/domain"
)

// Output formats.
const (
	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

var formats = []string{formatTable, formatJSON, formatMarkdown}

// printer formats dollar amounts with thousands separators.
var printer = message.NewPrinter(language.English)

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(flagFormat)
	if err != nil {
		return "", err
	}

	format = strings.ToLower(format)
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("unknown format %q (want %s)", format, strings.Join(formats, ", "))
	}

	return format, nil
}

func dollars(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func wholeDollars(v int) string {
	return printer.Sprintf("$%d", v)
}

// writeQuotes prints ranked quotes. JSON output matches the POST /quote body.
func writeQuotes(w io.Writer, format string, req domain.QuoteRequest, quotes []domain.Quote) error {
	switch format {
	case formatJSON:
		return writeJSON(w, dto.NewQuoteResponses(quotes))
	case formatMarkdown:
		return writeQuotesMarkdown(w, req, quotes)
	default:
		return writeQuotesTable(w, quotes)
	}
}

func writeQuotesTable(w io.Writer, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		_, err := fmt.Fprintln(w, "No plans available. Run 'lifequote seed' first.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "RANK\tINSURER\tPLAN\tMONTHLY\tCOVERAGE\tTERM\tFEATURES")

	for i := range quotes {
		q := &quotes[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%dy\t%s\n",
			i+1, q.InsurerName, q.PlanName, dollars(q.MonthlyPremium),
			wholeDollars(q.CoverageAmount), q.TermYears, strings.Join(q.Features, ", "))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nrequest %s\n", quotes[0].RequestID)

	return err
}

func writeQuotesMarkdown(w io.Writer, req domain.QuoteRequest, quotes []domain.Quote) error {
	md := markdown.NewMarkdown(w)

	md.H1("Life Insurance Quotes")
	md.PlainText("")

	gender := req.Gender
	if gender == "" {
		gender = domain.GenderMale
	}

	smoker := "No"
	if req.Smoker {
		smoker = "Yes"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Applicant", "Value"},
		Rows: [][]string{
			{"Age", strconv.Itoa(req.Age)},
			{"Gender", cases.Title(language.English).String(string(gender))},
			{"Smoker", smoker},
			{"Coverage", wholeDollars(req.CoverageAmount)},
			{"Term", strconv.Itoa(req.TermYears) + " years"},
		},
	})
	md.PlainText("")

	md.H2("Ranked Plans")
	md.PlainText("")

	if len(quotes) == 0 {
		md.Note("No plans available. Seed the catalog first.")
		return md.Build()
	}

	rows := make([][]string, 0, len(quotes))
	for i := range quotes {
		q := &quotes[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			q.InsurerName,
			q.PlanName,
			dollars(q.MonthlyPremium),
			strings.Join(q.Features, "<br>"),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Insurer", "Plan", "Monthly Premium", "Features"},
		Rows:   rows,
	})
	md.PlainText("")
	md.Tip(fmt.Sprintf("Cheapest plan: %s by %s at %s per month.",
		quotes[0].PlanName, quotes[0].InsurerName, dollars(quotes[0].MonthlyPremium)))
	md.PlainText("")
	md.PlainText("Request `" + quotes[0].RequestID + "`")

	return md.Build()
}

// writeSeedResult prints catalog counts. JSON output matches POST /seed.
func writeSeedResult(w io.Writer, format string, result app.SeedResult) error {
	switch format {
	case formatJSON:
		return writeJSON(w, dto.NewSeedResponse(result))
	case formatMarkdown:
		md := markdown.NewMarkdown(w)
		md.H1("Catalog")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Collection", "Records"},
			Rows: [][]string{
				{"insurer", strconv.Itoa(result.Insurers)},
				{"plan", strconv.Itoa(result.Plans)},
			},
		})

		return md.Build()
	default:
		_, err := fmt.Fprintf(w, "catalog holds %d insurers and %d plans\n", result.Insurers, result.Plans)
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
