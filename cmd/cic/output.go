package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-cic/internal/models"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("86")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 2)

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, bannerStyle.Render("Crafting Idle Clicker\nUpgrade Planner"))
	fmt.Fprintln(w)
}

// printCatalogErrors prints one line per catalog violation
func printCatalogErrors(w io.Writer, err error) {
	errorColor := color.New(color.FgRed)

	for _, e := range unjoin(err) {
		errorColor.Fprintf(w, "   ❌ %v\n", e)
	}
	errorColor.Fprintln(w, "Errors encountered in product data. Exiting.")
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func printNextPurchase(w io.Writer, solution *models.Solution) {
	next := solution.NextPurchase()
	if next == nil {
		fmt.Fprintln(w, "none")
		return
	}
	fmt.Fprintf(w, "purchase:%s:%d\n", next.Product, next.ToRank)
}

func printTicks(w io.Writer, solution *models.Solution) {
	fmt.Fprintf(w, "Ticks required: %d\n", solution.TickCount)
}

func printPurchaseOrder(w io.Writer, solution *models.Solution) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Product", "Rank", "Cost", "Tick", "Waited", "Profit/Tick", "Money After"}),
	)

	for i, p := range solution.Purchases {
		row := []string{
			fmt.Sprintf("%d", i+1),
			models.DisplayName(p.Product),
			fmt.Sprintf("%d → %d", p.FromRank, p.ToRank),
			formatMoney(p.Cost),
			fmt.Sprintf("%d", p.Tick),
			formatWait(p.WaitedTicks),
			formatProfit(p),
			formatMoney(p.MoneyAfter),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, solution *models.Solution) {
	successColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)

	fmt.Fprintf(w, "\n💰 Leftover money: %s\n", formatMoney(solution.LeftoverMoney))

	fmt.Fprintln(w, "\n📋 Rank verification:")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Product", "Target", "Desired", "Final"}),
	)
	allOk := true
	for _, r := range solution.Ranks {
		_ = table.Append([]string{
			models.DisplayName(r.Product),
			fmt.Sprintf("%d", r.TargetRank),
			fmt.Sprintf("%d", r.DesiredRank),
			fmt.Sprintf("%d", r.FinalRank),
		})
		if r.FinalRank < r.DesiredRank {
			allOk = false
		}
	}
	_ = table.Render()

	if allOk {
		successColor.Fprintln(w, "\n✅ All products reached their desired ranks!")
	} else {
		errorColor.Fprintln(w, "\n❌ Some products did not reach their desired ranks!")
	}
}

func formatMoney(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	// thousands separators
	var b strings.Builder
	start := 0
	if s[0] == '-' {
		b.WriteByte('-')
		start = 1
	}
	digits := s[start:]
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func formatProfit(p models.PurchaseAction) string {
	if p.WaitedTicks == 0 {
		return "-"
	}
	return formatMoney(p.ProfitPerTick)
}

func formatWait(ticks int) string {
	if ticks == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", ticks)
}
