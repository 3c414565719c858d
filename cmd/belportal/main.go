package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iotmart/belportal/components/belboard"
)

var (
	accent      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	tierLeader  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	tierBuilder = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	rowSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	rowCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// tierFilterCycle is the order the f key walks through the tier filter.
var tierFilterCycle = []belboard.Tier{
	"",
	belboard.TierBuilder,
	belboard.TierEnabler,
	belboard.TierExplorer,
	belboard.TierLeader,
}

type screen int

const (
	screenAccounts screen = iota
	screenTickets
	screenDetail
)

type model struct {
	service *belboard.Service
	screen  screen
	cursor  int
	ready   bool
	width   int
	height  int
	status  string

	search     textinput.Model
	searching  bool
	tierFilter int
}

func newModel(service *belboard.Service) model {
	search := textinput.New()
	search.Placeholder = "account name"
	search.CharLimit = 64
	return model{
		service: service,
		search:  search,
	}
}

func main() {
	seedPath := flag.String("seed", "", "path to a seed YAML file (defaults to the built-in dataset)")
	flag.Parse()

	var store *belboard.Store
	if *seedPath == "" {
		store = belboard.NewStore(nil)
	} else {
		seed, err := belboard.ReadSeedFile(*seedPath)
		if err != nil {
			fmt.Println("error loading seed:", err)
			os.Exit(1)
		}
		store = belboard.NewStore(seed)
	}

	service := belboard.NewService(belboard.Options{Store: store})
	if _, err := tea.NewProgram(newModel(service), tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("error running program:", err)
		os.Exit(1)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenTickets:
			return m.updateTickets(msg)
		default:
			return m.updateAccounts(msg)
		}
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		filters := m.service.Filters()
		filters.Name = m.search.Value()
		m.service.ApplyFilters(context.Background(), filters)
		m.cursor = 0
		m.status = ""
		return m, nil
	case "esc":
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m model) updateAccounts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.service.AccountsPage()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}
	case "right", "n":
		m.service.NextPage(context.Background(), belboard.ViewAccounts)
		m.cursor = 0
	case "left", "p":
		m.service.PrevPage(context.Background(), belboard.ViewAccounts)
		m.cursor = 0
	case " ":
		if m.cursor < len(page.Items) {
			m.service.ToggleSelect(page.Items[m.cursor].ID)
		}
	case "a":
		m.service.ToggleSelectAllOnPage(!m.service.PageFullySelected())
	case "/":
		m.searching = true
		m.search.SetValue(m.service.Filters().Name)
		m.search.Focus()
	case "f":
		m.tierFilter = (m.tierFilter + 1) % len(tierFilterCycle)
		filters := m.service.Filters()
		filters.Tier = tierFilterCycle[m.tierFilter]
		m.service.ApplyFilters(context.Background(), filters)
		m.cursor = 0
	case "x":
		m.tierFilter = 0
		m.service.ResetFilters(context.Background())
		m.search.SetValue("")
		m.cursor = 0
	case "c":
		m.service.ToggleSort(context.Background(), belboard.SortByClicks)
	case "o":
		m.service.ToggleSort(context.Background(), belboard.SortByOrders)
	case "r":
		m.service.ToggleSort(context.Background(), belboard.SortByRevenue)
	case "enter":
		if m.cursor < len(page.Items) {
			if m.service.Detail().Open(page.Items[m.cursor].ID) {
				m.screen = screenDetail
				m.status = ""
			}
		}
	case "t":
		m.screen = screenTickets
		m.cursor = 0
	}
	return m, nil
}

func (m model) updateTickets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.service.TicketsPage()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}
	case "right", "n":
		m.service.NextPage(context.Background(), belboard.ViewTickets)
		m.cursor = 0
	case "left", "p":
		m.service.PrevPage(context.Background(), belboard.ViewTickets)
		m.cursor = 0
	case "d":
		if m.cursor < len(page.Items) {
			ticket := page.Items[m.cursor]
			if err := m.service.CloseTicket(context.Background(), ticket.TicketNumber); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("closed %s", ticket.TicketNumber)
				if m.cursor > 0 {
					m.cursor--
				}
			}
		}
	case "t", "esc":
		m.screen = screenAccounts
		m.cursor = 0
		m.status = ""
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	detail := m.service.Detail()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		detail.Close()
		m.screen = screenAccounts
		m.status = ""
	case "tab":
		switch detail.Tab() {
		case belboard.TabPerformance:
			detail.SwitchTab(belboard.TabNotes)
		case belboard.TabNotes:
			detail.SwitchTab(belboard.TabBanking)
		default:
			detail.SwitchTab(belboard.TabPerformance)
		}
	case "t":
		detail.SetPendingTier(nextTier(detail.Record().Tier))
		if err := detail.Save(); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("tier saved: %s", detail.Record().Tier)
		}
	}
	return m, nil
}

func nextTier(current belboard.Tier) belboard.Tier {
	tiers := belboard.Tiers()
	for i, tier := range tiers {
		if tier == current {
			return tiers[(i+1)%len(tiers)]
		}
	}
	return tiers[0]
}

func (m model) View() string {
	if !m.ready {
		return "Loading BEL portal..."
	}
	header := headerStyle.Render("BEL Management Portal")
	var body string
	switch m.screen {
	case screenDetail:
		body = m.viewDetail()
	case screenTickets:
		body = m.viewTickets()
	default:
		body = m.viewAccounts()
	}
	sections := []string{header, body}
	if m.status != "" {
		sections = append(sections, accent.Render(m.status))
	}
	return strings.Join(sections, "\n\n")
}

func (m model) viewAccounts() string {
	page := m.service.AccountsPage()
	var b strings.Builder
	for i, a := range page.Items {
		marker := "  "
		if m.service.Selection().IsSelected(a.ID) {
			marker = rowSelected.Render("* ")
		}
		line := fmt.Sprintf("%s%-12s %-20s %-10s %-14s %6d %5d %10s",
			marker, a.ID, a.Name, renderTier(a.Tier), a.Region(),
			a.Clicks30, a.Orders30, belboard.FormatMoney(a.Revenue30))
		if i == m.cursor {
			line = rowCursor.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(page.Items) == 0 {
		b.WriteString(subtle.Render("No accounts match the active filters."))
		b.WriteString("\n")
	}
	footer := subtle.Render(fmt.Sprintf(
		"showing %d-%d of %d · %d selected · / search · f tier filter · x reset · c/o/r sort · space select · a page · enter detail · t tickets · q quit",
		page.From, page.To, page.Total, m.service.Selection().Count()))
	if m.searching {
		footer = "search: " + m.search.View()
	}
	return panel.Render(b.String()) + "\n" + footer
}

func (m model) viewTickets() string {
	page := m.service.TicketsPage()
	var b strings.Builder
	for i, t := range page.Items {
		line := fmt.Sprintf("%-14s %-12s %-10s %s", t.TicketNumber, t.ReferralID, t.Status, t.Subject)
		if i == m.cursor {
			line = rowCursor.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(page.Items) == 0 {
		b.WriteString(subtle.Render("No open tickets."))
		b.WriteString("\n")
	}
	footer := subtle.Render(fmt.Sprintf(
		"open tickets %d-%d of %d · d close · n/p page · esc back · q quit",
		page.From, page.To, page.Total))
	return panel.Render(b.String()) + "\n" + footer
}

func (m model) viewDetail() string {
	detail := m.service.Detail()
	record := detail.Record()
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", record.Name, record.ID)
	fmt.Fprintf(&b, "Tier: %s · Region: %s · Country: %s\n\n",
		renderTier(record.Tier), record.Region(), record.Country())
	switch detail.Tab() {
	case belboard.TabNotes:
		notes := detail.Notes()
		if len(notes) == 0 {
			b.WriteString(subtle.Render("No notes recorded."))
		}
		for _, note := range notes {
			fmt.Fprintf(&b, "%s  %s\n", subtle.Render(note.Time), note.Text)
		}
	case belboard.TabBanking:
		profile, ok := m.service.Store().Banking(record.ID)
		if !ok {
			b.WriteString(subtle.Render("No banking profile on file."))
		} else {
			fmt.Fprintf(&b, "Bank: %s\nSWIFT: %s\nHolder: %s\nPhone: %s\nAddress: %s\n",
				profile.BankName, profile.SwiftCode, profile.AccountHolder, profile.Phone, profile.Address)
		}
	default:
		fmt.Fprintf(&b, "Clicks (30d):  %d\n", record.Clicks30)
		fmt.Fprintf(&b, "Orders (30d):  %d\n", record.Orders30)
		fmt.Fprintf(&b, "Revenue (30d): %s\n", belboard.FormatMoney(record.Revenue30))
		fmt.Fprintf(&b, "Conv rate:     %s\n", belboard.FormatPercent(record.ConversionRate()))
		fmt.Fprintf(&b, "AOV:           %s\n", belboard.FormatMoney(record.AverageOrderValue()))
	}
	footer := subtle.Render(fmt.Sprintf("tab: %s · tab switch · t cycle tier · esc close", detail.Tab()))
	return panel.Render(b.String()) + "\n" + footer
}

func renderTier(tier belboard.Tier) string {
	switch tier {
	case belboard.TierLeader:
		return tierLeader.Render(string(tier))
	case belboard.TierBuilder:
		return tierBuilder.Render(string(tier))
	default:
		return string(tier)
	}
}
