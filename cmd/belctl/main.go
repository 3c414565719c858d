package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/iotmart/belportal/components/belboard"
)

type cli struct {
	Validate validateCmd `cmd:"" help:"Validate a portal seed file against the document schema."`
	Export   exportCmd   `cmd:"" help:"Export a portal collection as CSV."`
	Snapshot snapshotCmd `cmd:"" help:"Print a paginated snapshot of a portal view."`
}

type validateCmd struct {
	SeedPath string `arg:"" type:"path" help:"Path to the seed YAML file."`
}

type exportCmd struct {
	Collection string `arg:"" enum:"accounts,payouts" help:"Collection to export (accounts or payouts)."`
	SeedPath   string `type:"path" help:"Seed file to load (defaults to the built-in dataset)."`
	Out        string `type:"path" help:"Output file (defaults to stdout)."`
	Tier       string `help:"Filter accounts by tier before exporting."`
	Region     string `help:"Filter accounts by region before exporting."`
	SortBy     string `help:"Sort key for accounts (id,name,tier,clicks,orders,revenue)."`
	Desc       bool   `help:"Sort descending."`
}

type snapshotCmd struct {
	View     string `arg:"" help:"View to snapshot (accounts, payouts, orders, assets, tickets, ticket-history, announcements)."`
	SeedPath string `type:"path" help:"Seed file to load (defaults to the built-in dataset)."`
	Page     int    `default:"1" help:"1-based page to display."`
	PageSize int    `default:"10" help:"Rows per page."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Operations utility for the BEL portal seed data and exports."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *validateCmd) Run(_ context.Context) error {
	path, err := filepath.Abs(cmd.SeedPath)
	if err != nil {
		return fmt.Errorf("belctl: resolve seed path: %w", err)
	}
	seed, err := belboard.ReadSeedFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ %s is valid (%d accounts, %d tickets, %d assets)\n",
		path, len(seed.Leaderboard), len(seed.Tickets), len(seed.Assets))
	return nil
}

func (cmd *exportCmd) Run(_ context.Context) error {
	store, err := loadStore(cmd.SeedPath)
	if err != nil {
		return err
	}
	out := os.Stdout
	if cmd.Out != "" {
		f, err := os.Create(cmd.Out) //nolint:gosec
		if err != nil {
			return fmt.Errorf("belctl: create output %s: %w", cmd.Out, err)
		}
		defer f.Close()
		out = f
	}
	switch cmd.Collection {
	case "accounts":
		filters := belboard.FilterState{
			Tier:   belboard.Tier(cmd.Tier),
			Region: cmd.Region,
		}
		sortState := belboard.SortState{Key: cmd.SortBy, Desc: cmd.Desc}
		accounts := belboard.Process(store.Accounts(), filters, sortState)
		return belboard.ExportAccountsCSV(out, accounts)
	case "payouts":
		return belboard.ExportPayoutsCSV(out, store.Payouts())
	default:
		return fmt.Errorf("belctl: unknown collection %s", cmd.Collection)
	}
}

func (cmd *snapshotCmd) Run(_ context.Context) error {
	store, err := loadStore(cmd.SeedPath)
	if err != nil {
		return err
	}
	service := belboard.NewService(belboard.Options{Store: store})
	view := belboard.ViewID(cmd.View)
	service.View(view).SetPageSize(cmd.PageSize)
	service.View(view).Page = cmd.Page

	switch view {
	case belboard.ViewAccounts, belboard.ViewAccountCards:
		page := service.AccountsPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		for _, a := range page.Items {
			fmt.Fprintf(os.Stdout, "%-12s %-20s %-10s %-14s %6d %5d %10s\n",
				a.ID, a.Name, a.Tier, a.Region(), a.Clicks30, a.Orders30,
				belboard.FormatMoney(a.Revenue30))
		}
	case belboard.ViewPayouts:
		page := service.PayoutsPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		for _, b := range page.Items {
			fmt.Fprintf(os.Stdout, "%-12s %10s %4d BELs\n", b.Date, belboard.FormatMoney(b.Total), b.BELCount)
		}
	case belboard.ViewOrders:
		page := service.OrdersPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		for _, o := range page.Items {
			fmt.Fprintf(os.Stdout, "%-12s %-14s %-12s %10s %s\n",
				o.OrderDate, o.OrderNumber, o.ReferralID, belboard.FormatMoney(o.Amount), o.Status)
		}
	case belboard.ViewAssets:
		page := service.AssetsPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		for _, a := range page.Items {
			fmt.Fprintf(os.Stdout, "%-12s %-30s %-16s %s\n", a.UploadDate, a.Title, a.Category, a.PageLink)
		}
	case belboard.ViewTickets:
		page := service.TicketsPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		printTickets(page.Items)
	case belboard.ViewTicketHistory:
		page := service.TicketHistoryPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		printTickets(page.Items)
	case belboard.ViewAnnouncements:
		page := service.AnnouncementsPage()
		printPageHeader(cmd.View, page.From, page.To, page.Total)
		for _, a := range page.Items {
			fmt.Fprintf(os.Stdout, "%-12s %-16s %s\n", a.Created, a.Category, a.Title)
		}
	default:
		views := make([]string, 0, len(belboard.AllViews()))
		for _, v := range belboard.AllViews() {
			views = append(views, string(v))
		}
		return fmt.Errorf("belctl: unknown view %s (expected one of %s)", cmd.View, strings.Join(views, ", "))
	}
	return nil
}

func printTickets(tickets []belboard.Ticket) {
	for _, t := range tickets {
		fmt.Fprintf(os.Stdout, "%-14s %-12s %-10s %s\n", t.TicketNumber, t.ReferralID, t.Status, t.Subject)
	}
}

func printPageHeader(view string, from, to, total int) {
	fmt.Fprintf(os.Stdout, "%s: showing %d-%d of %d\n", view, from, to, total)
}

func loadStore(seedPath string) (*belboard.Store, error) {
	if seedPath == "" {
		return belboard.NewStore(nil), nil
	}
	seed, err := belboard.ReadSeedFile(seedPath)
	if err != nil {
		return nil, err
	}
	return belboard.NewStore(seed), nil
}
