package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

const (
	flagName      = "name"
	flagAge       = "age"
	flagGender    = "gender"
	flagSmoker    = "smoker"
	flagCoverage  = "coverage"
	flagTerm      = "term"
	flagNoPersist = "no-persist"
)

// quoter is satisfied by the local quote service and the remote client.
type quoter interface {
	Quote(ctx context.Context, req domain.QuoteRequest) ([]domain.Quote, error)
}

// NewQuoteCmd creates the quote command.
func NewQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price every plan for an applicant, cheapest first",
		Long: `Quote validates the applicant, prices every plan in the catalog and
prints the quotes cheapest first. The request is recorded in the store.

Examples:
  # Demo applicant
  lifequote quote --age 40 --gender male --coverage 250000 --term 20

  # Markdown report from a running service
  lifequote quote --age 35 --smoker --coverage 500000 --term 30 \
    --server http://localhost:8080 --format markdown`,
		Args: cobra.NoArgs,
		RunE: runQuote,
	}

	cmd.Flags().String(flagName, "", "applicant first name")
	cmd.Flags().Int(flagAge, 0, fmt.Sprintf("applicant age (%d-%d)", domain.MinAge, domain.MaxAge))
	cmd.Flags().String(flagGender, string(domain.GenderMale), "male, female or other")
	cmd.Flags().Bool(flagSmoker, false, "applicant smokes")
	cmd.Flags().Int(flagCoverage, 0, fmt.Sprintf("coverage amount in dollars (%d-%d)",
		domain.MinRequestCoverage, domain.MaxRequestCoverage))
	cmd.Flags().Int(flagTerm, 0, fmt.Sprintf("term in years (%d-%d)", domain.MinTermYears, domain.MaxTermYears))
	cmd.Flags().Bool(flagNoPersist, false, "do not record individual quotes (local mode only)")

	_ = cmd.MarkFlagRequired(flagAge)
	_ = cmd.MarkFlagRequired(flagCoverage)
	_ = cmd.MarkFlagRequired(flagTerm)

	addRemoteFlags(cmd)

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	req, err := quoteRequestFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())

	var q quoter

	server, _ := cmd.Flags().GetString(flagServer)
	if server != "" {
		remote, err := newRemote(server, cfg, logger)
		if err != nil {
			return err
		}

		q = remote
	} else {
		svc, err := openServices(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer svc.close(logger)

		if noPersist, _ := cmd.Flags().GetBool(flagNoPersist); noPersist {
			svc.flags.Set(ports.FlagPersistQuotes, false)
		}

		q = svc.quotes
	}

	quotes, err := q.Quote(ctx, req)
	if err != nil {
		return fmt.Errorf("quoting: %w", err)
	}

	return writeQuotes(cmd.OutOrStdout(), format, req, quotes)
}

func quoteRequestFromFlags(cmd *cobra.Command) (domain.QuoteRequest, error) {
	f := cmd.Flags()

	name, _ := f.GetString(flagName)
	gender, _ := f.GetString(flagGender)
	smoker, _ := f.GetBool(flagSmoker)

	age, err := f.GetInt(flagAge)
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	coverage, err := f.GetInt(flagCoverage)
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	term, err := f.GetInt(flagTerm)
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	return domain.QuoteRequest{
		FirstName:      name,
		Age:            age,
		Gender:         domain.Gender(gender),
		Smoker:         smoker,
		CoverageAmount: coverage,
		TermYears:      term,
	}, nil
}
