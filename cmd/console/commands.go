package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmanzanog/portfolio-console/internal/application"
	"github.com/jmanzanog/portfolio-console/internal/domain"
)

func newPortfoliosCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolios",
		Short: "List, create and delete portfolios",
	}
	cmd.AddCommand(
		newPortfoliosListCmd(opts),
		newPortfoliosCreateCmd(opts),
		newPortfoliosDeleteCmd(opts),
	)
	return cmd
}

func newPortfoliosListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List portfolios; the default selection is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pages, _ := newPages(cfg)
			store := pages.App.Store

			store.LoadPortfolios(cmd.Context())
			state := store.Snapshot()
			if state.LoadFailed {
				return fmt.Errorf("failed to load portfolios: %s", state.LastError)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tID\tNAME\tCREATED\tINITIAL INVESTMENT")
			for _, p := range state.Portfolios {
				marker := ""
				if state.SelectedPortfolio != nil && state.SelectedPortfolio.ID == p.ID {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, p.ID, p.Name, p.CreatedDate, formatMoney(p.InitialInvestment, cfg.DisplayCurrency))
			}
			return w.Flush()
		},
	}
}

func newPortfoliosCreateCmd(opts *rootOptions) *cobra.Command {
	var name, investment string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.CreatePortfolioInput{Name: name}
			if investment != "" {
				amount, err := domain.NewDecimalFromString(investment)
				if err != nil {
					return fmt.Errorf("invalid --initial-investment: %w", err)
				}
				in.InitialInvestment = &amount
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pages, _ := newPages(cfg)

			created, err := pages.App.Store.CreatePortfolio(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created portfolio %d (%s)\n", created.ID, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "portfolio name")
	cmd.Flags().StringVar(&investment, "initial-investment", "", "initial investment amount")
	return cmd
}

func newPortfoliosDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a portfolio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid portfolio id %q: %w", args[0], err)
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pages, _ := newPages(cfg)
			store := pages.App.Store

			store.LoadPortfolios(cmd.Context())
			if err := store.DeletePortfolio(cmd.Context(), id); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Deleted portfolio %d\n", id)
			if selected := store.Selected(); selected != nil {
				fmt.Fprintf(out, "Selected portfolio: %s\n", selected.Name)
			}
			return nil
		},
	}
}

// selectPortfolio loads the store and, when id is set, selects that
// portfolio instead of the default.
func selectPortfolio(ctx context.Context, store *application.PortfolioStore, id int64) error {
	store.Reload(ctx)
	state := store.Snapshot()
	if state.LoadFailed {
		return fmt.Errorf("failed to load portfolios: %s", state.LastError)
	}
	if id == 0 {
		return nil
	}

	portfolio, ok := domain.FindPortfolio(state.Portfolios, id)
	if !ok {
		return fmt.Errorf("portfolio %d: %w", id, domain.ErrPortfolioNotFound)
	}
	store.SetSelectedPortfolio(&portfolio)
	return nil
}

func printNoPortfolio(w io.Writer) {
	fmt.Fprintln(w, "No portfolio yet. Create one with 'portfolio-console portfolios create'.")
}

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var portfolioID int64

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard of a portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pages, _ := newPages(cfg)
			if err := selectPortfolio(cmd.Context(), pages.App.Store, portfolioID); err != nil {
				return err
			}

			state := pages.Dashboard.Load(cmd.Context())
			out := cmd.OutOrStdout()
			if state.NoPortfolio {
				printNoPortfolio(out)
				return nil
			}
			if state.LoadError != "" {
				return errors.New(state.LoadError)
			}
			return printDashboard(out, state, cfg.DisplayCurrency)
		},
	}

	cmd.Flags().Int64Var(&portfolioID, "portfolio", 0, "portfolio id (default: first portfolio)")
	return cmd
}

func printDashboard(out io.Writer, state application.DashboardState, currency string) error {
	fmt.Fprintf(out, "%s\n\n", state.Portfolio.Name)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if s := state.Summary; s != nil {
		fmt.Fprintf(w, "Invested\t%s\n", formatMoney(s.TotalInvestedAmount, currency))
		fmt.Fprintf(w, "Current value\t%s\n", formatMoney(s.CurrentPortfolioValue, currency))
		fmt.Fprintf(w, "Return\t%s (%s)\n", formatMoney(s.AbsoluteReturn, currency), formatReturn(s.PercentageReturn))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(state.GroupPerformance) > 0 {
		fmt.Fprintln(out, "\nGroups")
		w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tHOLDINGS\tVALUE\tRETURN")
		for _, g := range state.GroupPerformance {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", g.GroupName, g.HoldingCount, formatMoney(g.CurrentValue, currency), formatReturn(g.PercentageReturn))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if len(state.UpcomingDue) > 0 {
		fmt.Fprintln(out, "\nCredit cards due soon")
		if err := printCards(out, state.UpcomingDue, currency); err != nil {
			return err
		}
	}
	return nil
}

func printCards(out io.Writer, cards []domain.CreditCard, currency string) error {
	total, err := sumOutstanding(cards)
	if err != nil {
		return fmt.Errorf("failed to total outstanding amounts: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CARD\tOUTSTANDING\tDUE\tSTATUS")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, formatMoney(c.OutstandingAmount, currency), c.DueDate, c.DueStatus)
	}
	fmt.Fprintf(w, "Total\t%s\t\t\n", formatMoney(total, currency))
	return w.Flush()
}

func newAlertsCmd(opts *rootOptions) *cobra.Command {
	var portfolioID int64

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Check credit cards that are due soon or overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pages, _ := newPages(cfg)
			if err := selectPortfolio(cmd.Context(), pages.App.Store, portfolioID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report, err := pages.Alerts.Check(cmd.Context())
			if errors.Is(err, domain.ErrPortfolioNotSelected) {
				printNoPortfolio(out)
				return nil
			}
			if err != nil {
				return err
			}

			if len(report.Overdue) == 0 && len(report.UpcomingDue) == 0 {
				fmt.Fprintln(out, "No credit card needs attention.")
				return nil
			}
			if len(report.Overdue) > 0 {
				fmt.Fprintln(out, "Overdue")
				if err := printCards(out, report.Overdue, cfg.DisplayCurrency); err != nil {
					return err
				}
			}
			if len(report.UpcomingDue) > 0 {
				fmt.Fprintln(out, "Due soon")
				if err := printCards(out, report.UpcomingDue, cfg.DisplayCurrency); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&portfolioID, "portfolio", 0, "portfolio id (default: first portfolio)")
	return cmd
}
